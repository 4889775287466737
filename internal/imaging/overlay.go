package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// DefaultOverlayColor is semi-transparent white, visible over dark and
// saturated tiles alike.
var DefaultOverlayColor = RGBAColor{R: 255, G: 255, B: 255, A: 160}

// DrawTileBoundaries composites one-pixel lines over img at every multiple of
// spacing, marking where one tile ends and the next begins. Lines are drawn
// with draw.Over so a translucent color tints the tiles instead of replacing
// them.
//
// Lines at x=0 and y=0 are omitted since they coincide with the image edge.
func DrawTileBoundaries(img draw.Image, spacing int, c RGBAColor) error {
	if spacing <= 0 {
		return fmt.Errorf("%w: tile spacing must be > 0, got %d", ErrInvalidDimension, spacing)
	}

	src := image.NewUniform(color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A})
	bounds := img.Bounds()

	for x := bounds.Min.X + spacing; x < bounds.Max.X; x += spacing {
		line := image.Rect(x, bounds.Min.Y, x+1, bounds.Max.Y)
		draw.Draw(img, line, src, image.Point{}, draw.Over)
	}
	for y := bounds.Min.Y + spacing; y < bounds.Max.Y; y += spacing {
		line := image.Rect(bounds.Min.X, y, bounds.Max.X, y+1)
		draw.Draw(img, line, src, image.Point{}, draw.Over)
	}

	return nil
}
