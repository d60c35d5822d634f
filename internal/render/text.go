package render

import (
	"image"
	"image/color"

	"github.com/vovakirdan/mazegen/internal/core"
	"github.com/vovakirdan/mazegen/internal/maze"
)

// TextOptions configures the character rendering of a maze.
type TextOptions struct {
	Geometry  Geometry   // Size in characters; terminal cells are about twice as tall as wide
	WallRune  rune       // Character used for walls
	WallColor core.Color // Color of wall characters
}

// DefaultTextOptions returns options that give roughly square cells.
func DefaultTextOptions() TextOptions {
	return TextOptions{
		Geometry:  Geometry{CellWidth: 2, CellHeight: 1, WallWidth: 2, WallHeight: 1},
		WallRune:  '█',
		WallColor: core.ColorBrightWhite,
	}
}

// screenSurface adapts a core.Screen to the Surface interface: wall-colored
// pixels become wall runes, everything else becomes a space.
type screenSurface struct {
	screen *core.Screen
	wall   color.RGBA
	opt    TextOptions
}

func (s screenSurface) runeFor(c color.Color) (rune, core.Color) {
	if rgba, ok := c.(color.RGBA); ok && rgba == s.wall {
		return s.opt.WallRune, s.opt.WallColor
	}
	return ' ', core.ColorDefault
}

func (s screenSurface) SetPixel(x, y int, c color.Color) {
	r, col := s.runeFor(c)
	s.screen.SetColored(x, y, r, col)
}

// FillRect paints a whole strip with one DrawRect call.
func (s screenSurface) FillRect(r core.Rect, c color.Color) {
	ch, col := s.runeFor(c)
	s.screen.DrawRect(r, ch, col)
}

func (s screenSurface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.screen.Width(), s.screen.Height())
}

// Text draws grid onto a new character screen.
func Text(grid *maze.Grid, opt TextOptions) (*core.Screen, error) {
	if opt.WallRune == 0 {
		opt.WallRune = '█'
	}
	if err := opt.Geometry.Validate(); err != nil {
		return nil, err
	}

	w, h := opt.Geometry.ImageSize(grid.Width(), grid.Height())
	screen := core.NewScreen(w, h)
	pal := DefaultPalette()
	surface := screenSurface{screen: screen, wall: pal.Wall, opt: opt}

	if err := Draw(surface, grid, opt.Geometry, pal); err != nil {
		return nil, err
	}
	return screen, nil
}
