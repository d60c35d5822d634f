package maze

// Dir is one of the four grid directions.
type Dir uint8

const (
	North Dir = iota
	South
	East
	West
)

// Directions lists every direction in the order the generator examines them.
var Directions = [4]Dir{North, South, East, West}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Delta returns the displacement for one step in this direction.
// North decreases Y, South increases Y.
func (d Dir) Delta() Delta {
	switch d {
	case North:
		return Delta{DX: 0, DY: -1}
	case South:
		return Delta{DX: 0, DY: 1}
	case East:
		return Delta{DX: 1, DY: 0}
	case West:
		return Delta{DX: -1, DY: 0}
	default:
		return Delta{}
	}
}

// Opposite returns the opposite direction.
func (d Dir) Opposite() Dir {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// Flag returns the passage flag for this direction.
func (d Dir) Flag() CellState {
	switch d {
	case North:
		return NorthOpen
	case South:
		return SouthOpen
	case East:
		return EastOpen
	case West:
		return WestOpen
	default:
		return 0
	}
}
