package imaging

import (
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ErrInvalidDimension is returned when a width, height or tile size is not
// strictly positive.
var ErrInvalidDimension = errors.New("invalid dimension")

// MaxPixels bounds Width*Height of a pattern, about 1 GiB of pixel data.
const MaxPixels = 1 << 28

// PatternParameters fully describes a checkerboard.
//
// Values are built once (see PatternOptions.Parameters) and passed by value;
// nothing in this package keeps a reference to them.
type PatternParameters struct {
	Width    int       `json:"width"`     // Image width in pixels (> 0)
	Height   int       `json:"height"`    // Image height in pixels (> 0)
	TileSize int       `json:"tile_size"` // Tile edge length in pixels (> 0)
	First    RGBAColor `json:"first"`     // Color of the tile at the origin
	Second   RGBAColor `json:"second"`    // Color of the neighbouring tiles
}

// Validate checks that every dimension is strictly positive and that the
// image area does not exceed MaxPixels.
//
// The returned error wraps ErrInvalidDimension and names the offending field.
func (p PatternParameters) Validate() error {
	if p.Width <= 0 {
		return fmt.Errorf("%w: width must be > 0, got %d", ErrInvalidDimension, p.Width)
	}
	if p.Height <= 0 {
		return fmt.Errorf("%w: height must be > 0, got %d", ErrInvalidDimension, p.Height)
	}
	if p.TileSize <= 0 {
		return fmt.Errorf("%w: tile size must be > 0, got %d", ErrInvalidDimension, p.TileSize)
	}
	if p.Width > MaxPixels/p.Height {
		return fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrInvalidDimension, p.Width, p.Height, MaxPixels)
	}
	return nil
}

// HasAlpha reports whether either tile color is translucent.
func (p PatternParameters) HasAlpha() bool {
	return !p.First.IsOpaque() || !p.Second.IsOpaque()
}

// ColorAt returns the color of pixel (x, y) for valid, in-bounds inputs.
//
// Tile indices use integer division, so the tile containing the origin
// is always First and adjacent tiles alternate in both directions.
func (p PatternParameters) ColorAt(x, y int) RGBAColor {
	if (x/p.TileSize+y/p.TileSize)%2 == 0 {
		return p.First
	}
	return p.Second
}

// minBandRows keeps tiny images on a single goroutine.
const minBandRows = 64

// Generate renders the checkerboard described by params.
//
// Parameters are validated before anything is allocated; an invalid
// configuration returns an error wrapping ErrInvalidDimension.
//
// # Concurrency
//
// Rows are split into contiguous bands, one per available CPU, and filled
// concurrently. Each band writes only its own slice of the pixel buffer, so
// no locking is involved and the result is identical to a sequential scan.
func Generate(params PatternParameters) (*PixelGrid, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	grid := newPixelGrid(params.Width, params.Height, params.HasAlpha())

	bands := runtime.GOMAXPROCS(0)
	if maxBands := (params.Height + minBandRows - 1) / minBandRows; bands > maxBands {
		bands = maxBands
	}
	rowsPerBand := (params.Height + bands - 1) / bands

	var g errgroup.Group
	for y0 := 0; y0 < params.Height; y0 += rowsPerBand {
		y0 := y0
		y1 := min(y0+rowsPerBand, params.Height)
		g.Go(func() error {
			fillRows(grid, params, y0, y1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return grid, nil
}

// fillRows paints rows [y0, y1) of grid.
func fillRows(grid *PixelGrid, p PatternParameters, y0, y1 int) {
	for y := y0; y < y1; y++ {
		row := grid.pix[y*grid.width : (y+1)*grid.width]
		for x := range row {
			row[x] = p.ColorAt(x, y)
		}
	}
}
