// Package render turns a finished maze grid into pixels: a raster image for
// PNG output and a character screen for terminal previews. Both go through
// the same Surface contract so their wall topology is identical.
package render

import (
	"github.com/vovakirdan/mazegen/internal/core"
	"github.com/vovakirdan/mazegen/internal/maze"
)

// Geometry holds the pixel size of a cell interior and of a wall strip.
type Geometry struct {
	CellWidth  int
	CellHeight int
	WallWidth  int
	WallHeight int
}

// DefaultGeometry returns one-pixel cells and walls.
func DefaultGeometry() Geometry {
	return Geometry{CellWidth: 1, CellHeight: 1, WallWidth: 1, WallHeight: 1}
}

// Validate returns a *maze.DimensionError for the first parameter below 1.
func (g Geometry) Validate() error {
	checks := []struct {
		name  string
		value int
	}{
		{"cellw", g.CellWidth},
		{"cellh", g.CellHeight},
		{"wallw", g.WallWidth},
		{"wallh", g.WallHeight},
	}
	for _, c := range checks {
		if err := maze.CheckDimension(c.name, c.value, 1); err != nil {
			return err
		}
	}
	return nil
}

// ImageSize returns the surface size needed for a cols x rows grid.
func (g Geometry) ImageSize(cols, rows int) (w, h int) {
	w = cols*(g.CellWidth+g.WallWidth) + g.WallWidth
	h = rows*(g.CellHeight+g.WallHeight) + g.WallHeight
	return w, h
}

// CellRect returns the interior rectangle of the cell at (cx, cy).
func (g Geometry) CellRect(cx, cy int) core.Rect {
	return core.NewRect(
		cx*(g.CellWidth+g.WallWidth)+g.WallWidth,
		cy*(g.CellHeight+g.WallHeight)+g.WallHeight,
		g.CellWidth,
		g.CellHeight,
	)
}
