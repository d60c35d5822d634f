package core

// RuntimeConfig describes the terminal a maze is being shown in.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for the first maze (0 = time based)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0,
	}
}

// MazeFit returns the largest maze (in cells) whose text rendering fits a
// screen of the given size, given the per-cell and per-wall character widths
// and heights. reservedRows lines are kept free for status/help output.
func (c RuntimeConfig) MazeFit(cellW, cellH, wallW, wallH, reservedRows int) (w, h int) {
	availW := c.ScreenW - wallW
	availH := c.ScreenH - reservedRows - wallH
	w = availW / (cellW + wallW)
	h = availH / (cellH + wallH)
	return max(w, 1), max(h, 1)
}
