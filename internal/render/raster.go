package render

import (
	"fmt"
	"image/color"

	"github.com/vovakirdan/mazegen/internal/core"
	"github.com/vovakirdan/mazegen/internal/maze"
)

// Raster draws grid onto a newly allocated image sized by geo.
func Raster(grid *maze.Grid, geo Geometry, pal Palette) (*Image, error) {
	if err := geo.Validate(); err != nil {
		return nil, err
	}
	w, h := geo.ImageSize(grid.Width(), grid.Height())
	im := NewImage(w, h)
	if err := Draw(im, grid, geo, pal); err != nil {
		return nil, err
	}
	return im, nil
}

// Draw paints grid onto dst. dst must be at least geo.ImageSize large.
//
// The surface is filled with the open color, then every cell in row-major
// order paints its interior, its outer top/left border when on row/column 0,
// its east and south wall strips (open when the passage exists) and the
// always-walled corner diagonally below-right of it.
func Draw(dst Surface, grid *maze.Grid, geo Geometry, pal Palette) error {
	if err := geo.Validate(); err != nil {
		return err
	}
	w, h := geo.ImageSize(grid.Width(), grid.Height())
	if b := dst.Bounds(); b.Dx() < w || b.Dy() < h {
		return fmt.Errorf("render: surface %dx%d too small for %dx%d maze", b.Dx(), b.Dy(), w, h)
	}

	fill(dst, core.NewRect(0, 0, w, h), pal.Open)

	for cy := 0; cy < grid.Height(); cy++ {
		for cx := 0; cx < grid.Width(); cx++ {
			state := grid.At(maze.C(cx, cy))
			cell := geo.CellRect(cx, cy)

			fill(dst, cell, pal.Open)

			if cy == 0 {
				fill(dst, core.NewRect(cell.X-geo.WallWidth, 0, cell.W+2*geo.WallWidth, geo.WallHeight), pal.Wall)
			}
			if cx == 0 {
				fill(dst, core.NewRect(0, cell.Y-geo.WallHeight, geo.WallWidth, cell.H+2*geo.WallHeight), pal.Wall)
			}

			east := core.NewRect(cell.Right(), cell.Y, geo.WallWidth, cell.H)
			fill(dst, east, pick(state.IsOpen(maze.East), pal))

			south := core.NewRect(cell.X, cell.Bottom(), cell.W, geo.WallHeight)
			fill(dst, south, pick(state.IsOpen(maze.South), pal))

			corner := core.NewRect(cell.Right(), cell.Bottom(), geo.WallWidth, geo.WallHeight)
			fill(dst, corner, pal.Wall)
		}
	}
	return nil
}

func pick(open bool, pal Palette) color.RGBA {
	if open {
		return pal.Open
	}
	return pal.Wall
}

func fill(dst Surface, r core.Rect, c color.Color) {
	if r.Empty() {
		return
	}
	if rf, ok := dst.(RectFiller); ok {
		rf.FillRect(r, c)
		return
	}
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			dst.SetPixel(x, y, c)
		}
	}
}
