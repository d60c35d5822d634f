package render

import (
	"image"
	"image/color"

	"github.com/vovakirdan/mazegen/internal/core"
)

// Surface is anything a maze can be drawn onto.
type Surface interface {
	SetPixel(x, y int, c color.Color)
	Bounds() image.Rectangle
}

// RectFiller is implemented by surfaces that can fill a whole strip at once.
// Draw uses it instead of per-pixel writes when available.
type RectFiller interface {
	FillRect(r core.Rect, c color.Color)
}

// Palette holds the two colors a maze is drawn with.
type Palette struct {
	Wall color.RGBA
	Open color.RGBA
}

// DefaultPalette returns white walls on a black background.
func DefaultPalette() Palette {
	return Palette{
		Wall: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Open: color.RGBA{R: 0, G: 0, B: 0, A: 255},
	}
}

// Image is an RGBA raster surface.
type Image struct {
	*image.RGBA
}

// NewImage allocates a w x h raster surface.
func NewImage(w, h int) *Image {
	return &Image{RGBA: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// SetPixel sets the pixel at (x, y). Out-of-bounds writes are ignored.
func (im *Image) SetPixel(x, y int, c color.Color) {
	im.Set(x, y, c)
}
