// Package maze holds the grid state model and the randomized depth-first
// backtracker that carves a perfect maze into it.
package maze

import (
	"fmt"
	"strings"
)

// Grid is the maze board: a rectangular array of cell states stored in
// row-major order, index = y*width + x.
//
// OpenPassage touches exactly one cell. Keeping both sides of a passage in
// agreement is the caller's job.
type Grid struct {
	width  int
	height int
	cells  []CellState
}

// NewGrid creates a fully walled, unvisited grid.
func NewGrid(width, height int) (*Grid, error) {
	if err := CheckDimension("width", width, 1); err != nil {
		return nil, err
	}
	if err := CheckDimension("height", height, 1); err != nil {
		return nil, err
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]CellState, width*height),
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c Coord) int {
	return c.Y*g.width + c.X
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

func (g *Grid) checkBounds(c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %s in %dx%d grid", ErrOutOfBounds, c, g.width, g.height)
	}
	return nil
}

// Get returns the state of the cell at c.
func (g *Grid) Get(c Coord) (CellState, error) {
	if err := g.checkBounds(c); err != nil {
		return 0, err
	}
	return g.cells[g.index(c)], nil
}

// At returns the state of the cell at c and panics when c is outside the
// grid. Renderers use it after iterating over known-good coordinates.
func (g *Grid) At(c Coord) CellState {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("maze: %s outside %dx%d grid", c, g.width, g.height))
	}
	return g.cells[g.index(c)]
}

// OpenPassage sets the passage flag for d on the cell at c.
func (g *Grid) OpenPassage(c Coord, d Dir) error {
	if err := g.checkBounds(c); err != nil {
		return err
	}
	g.open(c, d)
	return nil
}

// open is OpenPassage without the bounds check.
func (g *Grid) open(c Coord, d Dir) {
	i := g.index(c)
	g.cells[i] = g.cells[i].With(d.Flag())
}

// IsVisited reports whether the cell at c has been visited.
func (g *Grid) IsVisited(c Coord) (bool, error) {
	s, err := g.Get(c)
	if err != nil {
		return false, err
	}
	return s.IsVisited(), nil
}

// MarkVisited sets the Visited flag on the cell at c. Idempotent.
func (g *Grid) MarkVisited(c Coord) error {
	if err := g.checkBounds(c); err != nil {
		return err
	}
	g.markVisited(c)
	return nil
}

func (g *Grid) markVisited(c Coord) {
	i := g.index(c)
	g.cells[i] = g.cells[i].With(Visited)
}

// Neighbor returns the cell adjacent to c in direction d and whether it
// lies inside the grid.
func (g *Grid) Neighbor(c Coord, d Dir) (Coord, bool) {
	n := c.Step(d)
	return n, g.InBounds(n)
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]CellState, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		width:  g.width,
		height: g.height,
		cells:  cells,
	}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i, cell := range g.cells {
		if cell != other.cells[i] {
			return false
		}
	}
	return true
}

// Bytes returns the raw cell states in row-major order.
func (g *Grid) Bytes() []byte {
	out := make([]byte, len(g.cells))
	for i, cell := range g.cells {
		out[i] = byte(cell)
	}
	return out
}

// String dumps the grid: a Width and a Height line, then one line per row
// with each cell state as two hex digits followed by a space.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(32 + g.height*(g.width*3+1))

	fmt.Fprintf(&sb, "Width: %d\nHeight: %d\n", g.width, g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			sb.WriteString(g.cells[g.index(C(x, y))].String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
