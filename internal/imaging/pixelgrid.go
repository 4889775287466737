package imaging

import (
	"image"
)

// PixelGrid is a width × height array of colors stored row-major.
//
// A grid is produced by Generate and never modified afterwards. Callers read
// it through ColorAt, Row or Image.
type PixelGrid struct {
	width    int
	height   int
	hasAlpha bool
	pix      []RGBAColor
}

func newPixelGrid(width, height int, hasAlpha bool) *PixelGrid {
	return &PixelGrid{
		width:    width,
		height:   height,
		hasAlpha: hasAlpha,
		pix:      make([]RGBAColor, width*height),
	}
}

// Width returns the grid width in pixels.
func (g *PixelGrid) Width() int { return g.width }

// Height returns the grid height in pixels.
func (g *PixelGrid) Height() int { return g.height }

// HasAlpha reports whether any pixel may be translucent. When false every
// pixel has A == 255.
func (g *PixelGrid) HasAlpha() bool { return g.hasAlpha }

// ColorAt returns the color at (x, y). It panics if the point is out of range,
// like indexing a slice.
func (g *PixelGrid) ColorAt(x, y int) RGBAColor {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		panic("imaging: PixelGrid.ColorAt out of range")
	}
	return g.pix[y*g.width+x]
}

// Row returns a copy of row y.
func (g *PixelGrid) Row(y int) []RGBAColor {
	row := make([]RGBAColor, g.width)
	copy(row, g.pix[y*g.width:(y+1)*g.width])
	return row
}

// Equal reports whether two grids have the same size and pixels.
func (g *PixelGrid) Equal(other *PixelGrid) bool {
	if g.width != other.width || g.height != other.height || g.hasAlpha != other.hasAlpha {
		return false
	}
	for i := range g.pix {
		if g.pix[i] != other.pix[i] {
			return false
		}
	}
	return true
}

// Image returns a freshly allocated non-premultiplied copy of the grid,
// suitable for the standard library encoders. Opaque grids produce an image
// whose Opaque method reports true, so PNG output carries no alpha channel.
func (g *PixelGrid) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.width, g.height))
	for i, c := range g.pix {
		o := i * 4
		img.Pix[o] = c.R
		img.Pix[o+1] = c.G
		img.Pix[o+2] = c.B
		img.Pix[o+3] = c.A
	}
	return img
}
