package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color with 8-bit components.
//
// Each component ranges from 0 to 255, where:
//   - 0 represents no intensity (black for all components)
//   - 255 represents full intensity (white for all components)
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// Opaque returns the color with a fully opaque alpha channel.
func (c RGBColor) Opaque() RGBAColor {
	return RGBAColor{R: c.R, G: c.G, B: c.B, A: 255}
}

// Hex returns the color as "#RRGGBB".
func (c RGBColor) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// RGBAColor represents an RGBA color with 8-bit components including alpha.
//
// The alpha component represents opacity:
//   - 0 = fully transparent
//   - 255 = fully opaque
//
// Components are not premultiplied.
type RGBAColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha/opacity component (0-255)
}

// RGB drops the alpha channel.
func (c RGBAColor) RGB() RGBColor {
	return RGBColor{R: c.R, G: c.G, B: c.B}
}

// IsOpaque reports whether the alpha channel is 255.
func (c RGBAColor) IsOpaque() bool {
	return c.A == 255
}

// Hex returns "#RRGGBB" for opaque colors and "#RRGGBBAA" otherwise.
func (c RGBAColor) Hex() string {
	if c.IsOpaque() {
		return c.RGB().Hex()
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// HSVColor represents a color in HSV (Hue, Saturation, Value) color space.
type HSVColor struct {
	H float64 `json:"h"` // Hue in degrees; any real value, reduced modulo 360
	S float64 `json:"s"` // Saturation: 0.0-1.0 (clamped)
	V float64 `json:"v"` // Value/brightness: 0.0-1.0 (clamped)
}

// RGB converts the color to 8-bit RGB. See HSVToRGB.
func (c HSVColor) RGB() RGBColor {
	return HSVToRGB(c.H, c.S, c.V)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
//
// HSL is reported alongside RGB when inspecting images; it is never accepted
// as an input color.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// HSVToRGB converts an HSV triple to 8-bit RGB.
//
// Input handling:
//   - h is periodic: it is reduced modulo 360 into [0, 360), so -120 and 600
//     both behave as 240. NaN and infinite hues are treated as 0.
//   - s and v are clamped to [0, 1]. NaN is treated as 0.
//
// # Algorithm
//
// Chroma c = v*s, x = c*(1 - |((h/60) mod 2) - 1|) and m = v - c. The
// (R,G,B) ordering of (c, x, 0) is picked by the 60° sector containing h.
// Sectors are half-open, so a hue exactly on a boundary belongs to the sector
// starting there (120 is pure green, not the tail of the yellow sector).
//
// # Rounding
//
// Each channel in [0,1] is scaled to 8 bits as floor(c*255 + 0.5), that is
// round half up. Results are bit-reproducible for identical inputs.
func HSVToRGB(h, s, v float64) RGBColor {
	c := colorful.Hsv(normalizeHue(h), clampUnit(s), clampUnit(v))
	r, g, b := c.Clamped().RGB255()
	return RGBColor{R: r, G: g, B: b}
}

func normalizeHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// A tiny negative hue wraps to exactly 360.0 after the addition.
	if h >= 360 {
		h = 0
	}
	return h
}

func clampUnit(f float64) float64 {
	switch {
	case math.IsNaN(f), f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

// ColorResult contains a color value in multiple representations.
//
// This struct provides the same color in four formats to suit different use cases:
//   - Hex: Compact string format for CSS/web usage
//   - RGB: Standard 8-bit components without alpha
//   - RGBA: 8-bit components with alpha for transparency
//   - HSL: Perceptual color space for intuitive color operations
type ColorResult struct {
	Hex  string    `json:"hex"`  // Hex format "#RRGGBB" (no alpha)
	RGB  RGBColor  `json:"rgb"`  // RGB components
	RGBA RGBAColor `json:"rgba"` // RGBA components with alpha
	HSL  HSLColor  `json:"hsl"`  // HSL representation
}

// NewColorResult describes c in every supported representation.
func NewColorResult(c RGBAColor) ColorResult {
	return ColorResult{
		Hex:  c.RGB().Hex(),
		RGB:  c.RGB(),
		RGBA: c,
		HSL:  rgbToHSL(c.R, c.G, c.B),
	}
}

// SampleColor extracts the color value at a specific pixel coordinate.
//
// Coordinates are 0-based with origin at top-left. Channels are reported
// non-premultiplied, so a translucent tile reads back as the color that was
// written.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	result := NewColorResult(toRGBA(img, x, y))
	return &result, nil
}

// toRGBA reads one pixel as non-premultiplied 8-bit RGBA.
func toRGBA(img image.Image, x, y int) RGBAColor {
	c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	return RGBAColor{R: c.R, G: c.G, B: c.B, A: c.A}
}

// ColorFrequency represents a color and its occurrence frequency in an image.
//
// Colors that differ only in alpha are counted separately.
type ColorFrequency struct {
	Hex        string    `json:"hex"`        // "#RRGGBB", or "#RRGGBBAA" when translucent
	Percentage float64   `json:"percentage"` // Percentage of pixels with this color (0-100)
	RGB        RGBColor  `json:"rgb"`        // RGB components
	RGBA       RGBAColor `json:"rgba"`       // RGBA components, non-premultiplied
}

// DominantColorsResult contains the most frequently occurring colors in an image.
//
// Colors are sorted by frequency in descending order (most common first).
type DominantColorsResult struct {
	Colors []ColorFrequency `json:"colors"` // Colors sorted by frequency (descending)
}

// DominantColors returns the count most common exact colors of an image.
//
// Generated patterns have exactly two colors, so no quantization is applied:
// a checkerboard with even tile counts reports two entries at 50% each.
// Ties are broken by hex string so output is stable.
func DominantColors(img image.Image, count int) (*DominantColorsResult, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}

	bounds := img.Bounds()
	counts := make(map[RGBAColor]int)
	total := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			counts[toRGBA(img, x, y)]++
			total++
		}
	}

	colors := make([]ColorFrequency, 0, len(counts))
	for c, n := range counts {
		colors = append(colors, ColorFrequency{
			Hex:        c.Hex(),
			Percentage: math.Round(float64(n)/float64(total)*10000) / 100,
			RGB:        c.RGB(),
			RGBA:       c,
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		return colors[i].Hex < colors[j].Hex
	})

	if len(colors) > count {
		colors = colors[:count]
	}

	return &DominantColorsResult{Colors: colors}, nil
}

// rgbToHSL converts 8-bit RGB values to HSL with integer components
// (H 0-360, S and L 0-100, truncated).
func rgbToHSL(r, g, b uint8) HSLColor {
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	h, s, l := c.Hsl()
	if math.IsNaN(h) {
		h = 0
	}
	return HSLColor{H: int(h), S: int(s * 100), L: int(l * 100)}
}
