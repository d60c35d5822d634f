package maze

import (
	"github.com/vovakirdan/mazegen/internal/core"
)

// State is the generator's run state.
type State uint8

const (
	// StateActive means the frontier is non-empty and unvisited cells remain.
	StateActive State = iota
	// StateDone means carving has finished.
	StateDone
)

// String returns the string representation of a state.
func (s State) String() string {
	switch s {
	case StateActive:
		return "Active"
	case StateDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// Stats summarizes a generation run.
type Stats struct {
	Steps      int // Transitions executed
	Passages   int // Passages opened (each counted once, not per side)
	Backtracks int // Frontier pops
	MaxDepth   int // Deepest frontier seen
}

// Generator carves a perfect maze with a randomized depth-first backtracker.
// It owns its grid until Run returns; afterwards the grid is read-only.
type Generator struct {
	grid      *Grid
	rng       core.RandSource
	frontier  []Coord // current depth-first path; top is the current cell
	unvisited int
	stats     Stats
	exits     [len(Directions)]Dir // scratch buffer for candidate exits
}

// NewGenerator creates a generator over a fresh width x height grid with the
// origin (0,0) already visited and on the frontier. A nil rng falls back to
// the default-seeded SimpleRNG.
func NewGenerator(width, height int, rng core.RandSource) (*Generator, error) {
	grid, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = core.NewRNG(0)
	}

	g := &Generator{
		grid:      grid,
		rng:       rng,
		frontier:  make([]Coord, 0, min(grid.Len(), 1024)),
		unvisited: grid.Len(),
	}

	origin := C(0, 0)
	g.visit(origin)
	g.frontier = append(g.frontier, origin)
	g.stats.MaxDepth = 1
	return g, nil
}

// Grid returns the grid being carved.
func (g *Generator) Grid() *Grid {
	return g.grid
}

// State reports whether the generator has more work to do.
func (g *Generator) State() State {
	if len(g.frontier) > 0 && g.unvisited > 0 {
		return StateActive
	}
	return StateDone
}

// Unvisited returns the number of cells not yet visited.
func (g *Generator) Unvisited() int {
	return g.unvisited
}

// Frontier returns a copy of the current depth-first path, origin first.
func (g *Generator) Frontier() []Coord {
	out := make([]Coord, len(g.frontier))
	copy(out, g.frontier)
	return out
}

// Stats returns the counters accumulated so far.
func (g *Generator) Stats() Stats {
	return g.stats
}

// Step performs one transition and returns the resulting state.
func (g *Generator) Step() State {
	if g.State() == StateDone {
		return StateDone
	}
	g.stats.Steps++

	current := g.frontier[len(g.frontier)-1]
	exits := g.candidates(current)

	if len(exits) == 0 {
		g.frontier = g.frontier[:len(g.frontier)-1]
		g.stats.Backtracks++
		return g.State()
	}

	d := exits[g.rng.Intn(len(exits))]
	next := current.Step(d)

	// Both sides of the passage, one cell at a time.
	g.grid.open(current, d)
	g.grid.open(next, d.Opposite())
	g.stats.Passages++

	g.frontier = append(g.frontier, next)
	if len(g.frontier) > g.stats.MaxDepth {
		g.stats.MaxDepth = len(g.frontier)
	}
	g.visit(next)

	return g.State()
}

// Run steps until the generator is done and returns the final stats.
func (g *Generator) Run() Stats {
	for g.Step() == StateActive {
	}
	return g.stats
}

// visit marks c visited and decrements the unvisited counter, only the first time.
func (g *Generator) visit(c Coord) {
	if g.grid.At(c).IsVisited() {
		return
	}
	g.grid.markVisited(c)
	g.unvisited--
}

// candidates returns the directions from c that lead to an in-bounds,
// unvisited neighbour through a wall that is still closed.
func (g *Generator) candidates(c Coord) []Dir {
	exits := g.exits[:0]
	state := g.grid.At(c)
	for _, d := range Directions {
		if state.IsOpen(d) {
			continue
		}
		n, ok := g.grid.Neighbor(c, d)
		if !ok || g.grid.At(n).IsVisited() {
			continue
		}
		exits = append(exits, d)
	}
	return exits
}

// Generate carves a width x height maze with rng and returns the finished grid.
func Generate(width, height int, rng core.RandSource) (*Grid, Stats, error) {
	gen, err := NewGenerator(width, height, rng)
	if err != nil {
		return nil, Stats{}, err
	}
	stats := gen.Run()
	return gen.Grid(), stats, nil
}
