package maze

import "fmt"

// CellState is the per-cell flag set. The zero value is a fully walled,
// unvisited cell. Flag values match the hex dump printed in verbose mode.
type CellState uint8

const (
	// Visited is set once the generator has entered the cell.
	Visited CellState = 1 << iota
	// NorthOpen means there is a passage to the cell above.
	NorthOpen
	// SouthOpen means there is a passage to the cell below.
	SouthOpen
	// EastOpen means there is a passage to the cell on the right.
	EastOpen
	// WestOpen means there is a passage to the cell on the left.
	WestOpen
)

// Has reports whether every flag in f is set.
func (s CellState) Has(f CellState) bool {
	return s&f == f
}

// With returns s with the flags in f set.
func (s CellState) With(f CellState) CellState {
	return s | f
}

// IsOpen reports whether there is a passage in direction d.
func (s CellState) IsOpen(d Dir) bool {
	return s.Has(d.Flag())
}

// IsVisited reports whether the Visited flag is set.
func (s CellState) IsVisited() bool {
	return s.Has(Visited)
}

// String returns the state as two hex digits.
func (s CellState) String() string {
	return fmt.Sprintf("%02x", uint8(s))
}
