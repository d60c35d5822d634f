package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Colors used by the text renderer.
const (
	ColorDefault     Color = iota // Terminal default, used for open space
	ColorBrightWhite              // Walls
)
