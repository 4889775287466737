package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"

	"github.com/disintegration/imaging"
)

// SaveResult describes a pattern written to disk.
type SaveResult struct {
	Path     string `json:"path"`
	Format   string `json:"format"` // "png", "jpeg", "gif", "tiff" or "bmp"
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	HasAlpha bool   `json:"has_alpha"`
}

// Save encodes grid to path. The format is chosen by file extension:
// .png, .jpg/.jpeg, .gif, .tif/.tiff and .bmp are supported.
//
// GIF output uses the grid's own colors as palette, without dithering, so
// tiles stay solid. JPEG is lossy and drops alpha; use PNG or TIFF when
// exact pixels matter.
//
// # Errors
//
//   - Unsupported file extension
//   - The file cannot be created or written
func Save(grid *PixelGrid, path string) (*SaveResult, error) {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return nil, fmt.Errorf("cannot save %s: %w", path, err)
	}

	opts := []imaging.EncodeOption{
		imaging.JPEGQuality(95),
		imaging.PNGCompressionLevel(png.BestCompression),
		imaging.GIFQuantizer(paletteQuantizer{grid}),
		imaging.GIFDrawer(draw.Src),
	}
	if err := imaging.Save(grid.Image(), path, opts...); err != nil {
		return nil, fmt.Errorf("failed to save image: %w", err)
	}

	return &SaveResult{
		Path:     path,
		Format:   strings.ToLower(format.String()),
		Width:    grid.Width(),
		Height:   grid.Height(),
		HasAlpha: grid.HasAlpha(),
	}, nil
}

// paletteQuantizer builds a GIF palette from the distinct colors in a grid.
type paletteQuantizer struct {
	grid *PixelGrid
}

// Quantize implements draw.Quantizer.
func (q paletteQuantizer) Quantize(p color.Palette, _ image.Image) color.Palette {
	seen := make(map[RGBAColor]bool)
	for _, c := range q.grid.pix {
		if seen[c] || len(p) == cap(p) {
			continue
		}
		seen[c] = true
		p = append(p, color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A})
	}
	return p
}

// PreviewResult contains a base64 encoded PNG rendering of a pattern.
type PreviewResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Scale       int    `json:"scale"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// PreviewOptions controls EncodePreview.
type PreviewOptions struct {
	// Scale is an integer magnification factor. Values below 1 mean 1.
	Scale int

	// ShowTiles draws one-pixel tile boundary lines in OverlayColor.
	ShowTiles    bool
	OverlayColor RGBAColor
	TileSize     int
}

// Upscaled previews are limited to 4096x4096 pixels in area.
const (
	maxPreviewSide   = 4096
	maxPreviewPixels = maxPreviewSide * maxPreviewSide
)

func previewScale(scale int) int {
	if scale < 1 {
		return 1
	}
	return scale
}

// CheckPreviewSize reports whether a width x height pattern magnified by scale
// fits in a preview. It is cheap, so callers can run it before generating the
// pattern. Scales below 1 mean 1.
func CheckPreviewSize(width, height, scale int) error {
	if err := (PatternParameters{Width: width, Height: height, TileSize: 1}).Validate(); err != nil {
		return err
	}
	scale = previewScale(scale)
	if scale > maxPreviewSide || width*height > maxPreviewPixels/(scale*scale) {
		return fmt.Errorf("preview of %dx%d at scale %d exceeds %d pixels; lower the scale",
			width, height, scale, maxPreviewPixels)
	}
	return nil
}

// EncodePreview renders grid as a base64 PNG for clients that display images
// inline.
//
// Upscaling uses nearest-neighbor sampling so tile edges stay sharp. Tile
// boundaries are drawn after scaling so lines stay one pixel wide.
func EncodePreview(grid *PixelGrid, opts PreviewOptions) (*PreviewResult, error) {
	scale := previewScale(opts.Scale)
	if err := CheckPreviewSize(grid.Width(), grid.Height(), scale); err != nil {
		return nil, err
	}
	w, h := grid.Width()*scale, grid.Height()*scale

	img := grid.Image()
	if scale > 1 {
		img = imaging.Resize(img, w, h, imaging.NearestNeighbor)
	}
	if opts.ShowTiles {
		if err := DrawTileBoundaries(img, opts.TileSize*scale, opts.OverlayColor); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode preview: %w", err)
	}

	return &PreviewResult{
		Width:       w,
		Height:      h,
		Scale:       scale,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
