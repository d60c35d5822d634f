package maze

import "fmt"

// Coord addresses a cell on the grid.
// X increases to the right (east), Y increases downward (south).
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Delta is a displacement between two coordinates.
type Delta struct {
	DX int
	DY int
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by d.
func (c Coord) Add(d Delta) Coord {
	return Coord{X: c.X + d.DX, Y: c.Y + d.DY}
}

// Step returns the neighbouring coordinate in direction d.
func (c Coord) Step(d Dir) Coord {
	return c.Add(d.Delta())
}
