package maze

import "fmt"

// Report is the structural summary of a grid's passages.
type Report struct {
	Cells      int      // width * height
	Passages   int      // passage pairs between adjacent cells
	Reachable  int      // cells reachable from the origin through passages
	Violations []string // asymmetric or out-of-grid passage flags
}

// Symmetric reports whether every passage flag has its matching partner.
func (r Report) Symmetric() bool {
	return len(r.Violations) == 0
}

// Perfect reports whether the passages form a spanning tree: symmetric,
// connected and with exactly Cells-1 edges (hence no cycle).
func (r Report) Perfect() bool {
	return r.Symmetric() && r.Reachable == r.Cells && r.Passages == r.Cells-1
}

// Analyze inspects the passage structure of g.
func Analyze(g *Grid) Report {
	rep := Report{Cells: g.Len()}

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := C(x, y)
			state := g.At(c)
			for _, d := range Directions {
				n, ok := g.Neighbor(c, d)
				open := state.IsOpen(d)
				if !ok {
					if open {
						rep.Violations = append(rep.Violations,
							fmt.Sprintf("%s opens %s out of the grid", c, d))
					}
					continue
				}
				if open != g.At(n).IsOpen(d.Opposite()) {
					rep.Violations = append(rep.Violations,
						fmt.Sprintf("%s and %s disagree on the %s wall", c, n, d))
				}
				// Count each pair once, from its west/north member.
				if open && (d == East || d == South) {
					rep.Passages++
				}
			}
		}
	}

	rep.Reachable = reachable(g)
	return rep
}

// reachable counts cells connected to the origin, following passages that
// are open on both sides.
func reachable(g *Grid) int {
	seen := make([]bool, g.Len())
	queue := []Coord{C(0, 0)}
	seen[0] = true
	count := 0

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		count++

		state := g.At(c)
		for _, d := range Directions {
			if !state.IsOpen(d) {
				continue
			}
			n, ok := g.Neighbor(c, d)
			if !ok || !g.At(n).IsOpen(d.Opposite()) {
				continue
			}
			if i := g.index(n); !seen[i] {
				seen[i] = true
				queue = append(queue, n)
			}
		}
	}
	return count
}
