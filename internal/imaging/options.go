package imaging

import (
	"fmt"
	"strconv"
	"strings"
)

// Preset names a set of default dimensions.
type Preset string

const (
	// PresetStandard produces a 600x450 image with 10 pixel tiles.
	PresetStandard Preset = "standard"

	// PresetSquare produces a square canvas (height always equals width,
	// 1024 by default) with a fixed 100 pixel tile.
	PresetSquare Preset = "square"
)

// Defaults for each preset.
const (
	DefaultWidth          = 600
	DefaultHeight         = 450
	DefaultTileSize       = 10
	DefaultSquareWidth    = 1024
	DefaultSquareTileSize = 100
	DefaultOutput         = "output.png"
)

// Default tile colors: blue (#2020FF) at the origin, red (#FF2020) beside it.
var (
	DefaultFirstColor  = RGBAColor{R: 0x20, G: 0x20, B: 0xFF, A: 0xFF}
	DefaultSecondColor = RGBAColor{R: 0xFF, G: 0x20, B: 0x20, A: 0xFF}
)

// PatternOptions is the raw, loosely validated input from the command line
// or an MCP tool call. Parameters maps it to PatternParameters.
//
// Zero values mean "use the preset default". Colors are resolved per slot in
// this order: HSV triple, hex string, default color.
type PatternOptions struct {
	Preset   Preset    `json:"preset,omitempty"`
	Width    int       `json:"width,omitempty"`
	Height   int       `json:"height,omitempty"`
	TileSize int       `json:"tile_size,omitempty"`
	HSV1     []float64 `json:"hsv1,omitempty"`
	HSV2     []float64 `json:"hsv2,omitempty"`
	Hex1     string    `json:"hex1,omitempty"`
	Hex2     string    `json:"hex2,omitempty"`
}

// Parameters resolves the options into validated PatternParameters.
//
// # Color Resolution
//
// An HSV slice with fewer than three values is treated as absent and falls
// through silently; values beyond the third are ignored. Out-of-range HSV
// components are clamped or wrapped by HSVToRGB. A malformed hex string is
// an error.
//
// # Errors
//
//   - Unknown preset name
//   - Malformed hex color
//   - Width, height or tile size <= 0 after defaults (wraps ErrInvalidDimension)
func (o PatternOptions) Parameters() (PatternParameters, error) {
	var p PatternParameters

	switch o.Preset {
	case "", PresetStandard:
		p.Width = orDefault(o.Width, DefaultWidth)
		p.Height = orDefault(o.Height, DefaultHeight)
		p.TileSize = orDefault(o.TileSize, DefaultTileSize)
	case PresetSquare:
		p.Width = orDefault(o.Width, DefaultSquareWidth)
		p.Height = p.Width
		p.TileSize = DefaultSquareTileSize
	default:
		return PatternParameters{}, fmt.Errorf("unknown preset: %s", o.Preset)
	}

	var err error
	if p.First, err = resolveColor(o.HSV1, o.Hex1, DefaultFirstColor); err != nil {
		return PatternParameters{}, fmt.Errorf("first color: %w", err)
	}
	if p.Second, err = resolveColor(o.HSV2, o.Hex2, DefaultSecondColor); err != nil {
		return PatternParameters{}, fmt.Errorf("second color: %w", err)
	}

	if err := p.Validate(); err != nil {
		return PatternParameters{}, err
	}
	return p, nil
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func resolveColor(hsv []float64, hex string, def RGBAColor) (RGBAColor, error) {
	if len(hsv) >= 3 {
		return HSVToRGB(hsv[0], hsv[1], hsv[2]).Opaque(), nil
	}
	if hex != "" {
		return ParseHexColor(hex)
	}
	return def, nil
}

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA" (the leading '#' is optional).
// Six-digit colors are fully opaque.
func ParseHexColor(hex string) (RGBAColor, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) != 6 && len(s) != 8 {
		return RGBAColor{}, fmt.Errorf("invalid hex color %q: want #RRGGBB or #RRGGBBAA", hex)
	}

	val, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGBAColor{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}

	if len(s) == 6 {
		return RGBAColor{R: uint8(val >> 16), G: uint8(val >> 8), B: uint8(val), A: 255}, nil
	}
	return RGBAColor{R: uint8(val >> 24), G: uint8(val >> 16), B: uint8(val >> 8), A: uint8(val)}, nil
}
