package imaging

import (
	"image"
	"image/color"
	"math"
	"testing"
)

// createInMemoryImage creates an in-memory test image
func createInMemoryImage(width, height int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestHSVToRGB_KnownColors(t *testing.T) {
	tests := []struct {
		name    string
		h, s, v float64
		want    RGBColor
	}{
		{"red", 0, 1, 1, RGBColor{255, 0, 0}},
		{"yellow", 60, 1, 1, RGBColor{255, 255, 0}},
		{"green", 120, 1, 1, RGBColor{0, 255, 0}},
		{"cyan", 180, 1, 1, RGBColor{0, 255, 255}},
		{"blue", 240, 1, 1, RGBColor{0, 0, 255}},
		{"magenta", 300, 1, 1, RGBColor{255, 0, 255}},
		{"orange rounds half up", 30, 1, 1, RGBColor{255, 128, 0}},
		{"black", 200, 1, 0, RGBColor{0, 0, 0}},
		{"white", 0, 0, 1, RGBColor{255, 255, 255}},
		{"mid gray rounds half up", 0, 0, 0.5, RGBColor{128, 128, 128}},
		{"dark red", 0, 1, 0.5, RGBColor{128, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HSVToRGB(tt.h, tt.s, tt.v)
			if got != tt.want {
				t.Errorf("HSVToRGB(%v, %v, %v) = %+v, want %+v", tt.h, tt.s, tt.v, got, tt.want)
			}
		})
	}
}

func TestHSVToRGB_Achromatic(t *testing.T) {
	for _, v := range []float64{0, 0.1, 0.2, 0.25, 0.5, 0.75, 0.9, 1} {
		want := uint8(v*255 + 0.5)
		for _, h := range []float64{0, 45, 90, 179.5, 270, 359.9, -30, 725} {
			got := HSVToRGB(h, 0, v)
			if got.R != want || got.G != want || got.B != want {
				t.Errorf("HSVToRGB(%v, 0, %v) = %+v, want gray %d", h, v, got, want)
			}
		}
	}
}

func TestHSVToRGB_HuePeriodicity(t *testing.T) {
	for _, h := range []float64{0, 15, 60, 120, 200, 240, 330} {
		base := HSVToRGB(h, 1, 1)
		for _, k := range []float64{-3, -1, 1, 2, 10} {
			shifted := h + k*360
			if got := HSVToRGB(shifted, 1, 1); got != base {
				t.Errorf("HSVToRGB(%v, 1, 1) = %+v, want %+v (same as hue %v)", shifted, got, base, h)
			}
		}
	}

	if got, want := HSVToRGB(360, 1, 1), HSVToRGB(0, 1, 1); got != want {
		t.Errorf("hue 360: got %+v, want %+v", got, want)
	}
	if got, want := HSVToRGB(-120, 1, 1), (RGBColor{0, 0, 255}); got != want {
		t.Errorf("hue -120: got %+v, want %+v", got, want)
	}
}

func TestHSVToRGB_SectorBoundaries(t *testing.T) {
	// Just below a boundary still belongs to the previous sector, where the
	// secondary component approaches full intensity.
	below := HSVToRGB(119, 1, 1)
	if below.R == 0 || below.G != 255 {
		t.Errorf("hue 119: got %+v, want R>0 and G=255", below)
	}

	on := HSVToRGB(120, 1, 1)
	if on != (RGBColor{0, 255, 0}) {
		t.Errorf("hue 120: got %+v, want pure green", on)
	}
}

func TestHSVToRGB_ClampsOutOfRange(t *testing.T) {
	tests := []struct {
		name    string
		h, s, v float64
		want    RGBColor
	}{
		{"saturation above 1", 0, 5, 1, RGBColor{255, 0, 0}},
		{"saturation below 0", 0, -1, 1, RGBColor{255, 255, 255}},
		{"value above 1", 240, 1, 42, RGBColor{0, 0, 255}},
		{"value below 0", 240, 1, -0.5, RGBColor{0, 0, 0}},
		{"NaN saturation", 0, math.NaN(), 1, RGBColor{255, 255, 255}},
		{"NaN value", 0, 1, math.NaN(), RGBColor{0, 0, 0}},
		{"NaN hue", math.NaN(), 1, 1, RGBColor{255, 0, 0}},
		{"infinite hue", math.Inf(1), 1, 1, RGBColor{255, 0, 0}},
		{"tiny negative hue", -1e-20, 1, 1, RGBColor{255, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HSVToRGB(tt.h, tt.s, tt.v); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestHSVColor_RGB(t *testing.T) {
	c := HSVColor{H: 240, S: 1, V: 1}
	if got := c.RGB(); got != (RGBColor{0, 0, 255}) {
		t.Errorf("HSVColor.RGB: got %+v, want blue", got)
	}
}

func TestRGBAColor_Hex(t *testing.T) {
	tests := []struct {
		c    RGBAColor
		want string
	}{
		{RGBAColor{0x20, 0x20, 0xFF, 0xFF}, "#2020FF"},
		{RGBAColor{0xFF, 0x20, 0x20, 0x80}, "#FF202080"},
		{RGBAColor{0, 0, 0, 0}, "#00000000"},
	}
	for _, tt := range tests {
		if got := tt.c.Hex(); got != tt.want {
			t.Errorf("Hex(%+v) = %s, want %s", tt.c, got, tt.want)
		}
	}
}

func TestSampleColor(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 128, 64, 255})

	result, err := SampleColor(img, 50, 50)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}

	if result.Hex != "#FF8040" {
		t.Errorf("Hex: got %s, want #FF8040", result.Hex)
	}
	if result.RGBA != (RGBAColor{255, 128, 64, 255}) {
		t.Errorf("RGBA: got %+v, want (255,128,64,255)", result.RGBA)
	}
}

func TestSampleColor_Translucent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.SetNRGBA(1, 1, color.NRGBA{R: 0xFF, G: 0x20, B: 0x20, A: 0x80})

	result, err := SampleColor(img, 1, 1)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}
	if result.RGBA != (RGBAColor{0xFF, 0x20, 0x20, 0x80}) {
		t.Errorf("RGBA: got %+v, want non-premultiplied (255,32,32,128)", result.RGBA)
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 50},
		{"negative y", 50, -1},
		{"x too large", 100, 50},
		{"y too large", 50, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := SampleColor(img, tt.x, tt.y); err == nil {
				t.Error("SampleColor should fail for out-of-bounds coordinates")
			}
		})
	}
}

func TestDominantColors_Checkerboard(t *testing.T) {
	grid, err := Generate(PatternParameters{
		Width: 40, Height: 40, TileSize: 10,
		First: DefaultFirstColor, Second: DefaultSecondColor,
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	result, err := DominantColors(grid.Image(), 5)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}

	if len(result.Colors) != 2 {
		t.Fatalf("got %d colors, want 2", len(result.Colors))
	}
	// Equal shares are ordered by hex.
	if result.Colors[0].Hex != "#2020FF" || result.Colors[1].Hex != "#FF2020" {
		t.Errorf("colors: got %s, %s", result.Colors[0].Hex, result.Colors[1].Hex)
	}
	for _, c := range result.Colors {
		if c.Percentage != 50 {
			t.Errorf("%s: got %.2f%%, want 50%%", c.Hex, c.Percentage)
		}
	}
}

func TestDominantColors_CountLimit(t *testing.T) {
	img := createInMemoryImage(10, 10, color.RGBA{10, 20, 30, 255})
	img.(*image.RGBA).Set(0, 0, color.RGBA{200, 200, 200, 255})

	result, err := DominantColors(img, 1)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}
	if len(result.Colors) != 1 {
		t.Fatalf("got %d colors, want 1", len(result.Colors))
	}
	if result.Colors[0].Hex != "#0A141E" || result.Colors[0].Percentage != 99 {
		t.Errorf("got %+v, want #0A141E at 99%%", result.Colors[0])
	}
}

func TestDominantColors_AlphaIsDistinct(t *testing.T) {
	translucent := RGBAColor{R: 0xFF, G: 0x20, B: 0x20, A: 0x80}
	grid, err := Generate(PatternParameters{
		Width: 20, Height: 20, TileSize: 10,
		First: translucent, Second: DefaultSecondColor,
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	result, err := DominantColors(grid.Image(), 5)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}

	if len(result.Colors) != 2 {
		t.Fatalf("got %d colors, want 2: %+v", len(result.Colors), result.Colors)
	}
	if result.Colors[0].Hex != "#FF2020" || result.Colors[1].Hex != "#FF202080" {
		t.Errorf("colors: got %s, %s", result.Colors[0].Hex, result.Colors[1].Hex)
	}
	if result.Colors[1].RGBA != translucent {
		t.Errorf("translucent RGBA: got %+v, want %+v", result.Colors[1].RGBA, translucent)
	}
	if result.Colors[1].RGB != translucent.RGB() {
		t.Errorf("translucent RGB: got %+v, want %+v", result.Colors[1].RGB, translucent.RGB())
	}
}

func TestDominantColors_InvalidCount(t *testing.T) {
	img := createInMemoryImage(2, 2, color.Black)
	if _, err := DominantColors(img, 0); err == nil {
		t.Error("DominantColors should fail for count 0")
	}
}

func TestRgbToHSL(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    HSLColor
	}{
		{"red", 255, 0, 0, HSLColor{0, 100, 50}},
		{"green", 0, 255, 0, HSLColor{120, 100, 50}},
		{"blue", 0, 0, 255, HSLColor{240, 100, 50}},
		{"white", 255, 255, 255, HSLColor{0, 0, 100}},
		{"black", 0, 0, 0, HSLColor{0, 0, 0}},
		{"gray", 128, 128, 128, HSLColor{0, 0, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rgbToHSL(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("rgbToHSL(%d,%d,%d) = %+v, want %+v", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}
