// Package imaging generates two-color checkerboard images and the color
// conversions they depend on.
//
// The core is two pure functions: HSVToRGB, which turns a hue-saturation-value
// triple into 8-bit RGB, and Generate, which turns PatternParameters into a
// PixelGrid. Everything else in the package surrounds that core: option
// mapping (PatternOptions), file output (Save), inline previews
// (EncodePreview) and reading files back for verification (ImageCache,
// SampleColor, DominantColors).
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner, X
// increasing rightward and Y increasing downward. The tile containing the
// origin always takes the first color.
//
// # Color Representation
//
//   - RGBColor / RGBAColor: 8-bit components, alpha not premultiplied
//   - HSVColor: hue in degrees (periodic), saturation and value in [0,1]
//   - HSLColor: integer hue, saturation and lightness, reported only
//
// # Thread Safety
//
// Generate, HSVToRGB and the option mapping hold no shared state and may be
// called concurrently. A PixelGrid is read-only once returned. ImageCache is
// safe for concurrent use.
//
// # Error Handling
//
// Dimension problems wrap ErrInvalidDimension and are reported before any
// pixel buffer is allocated. Out-of-range HSV components and short HSV
// triples are never errors; they are clamped, wrapped or replaced by the
// default color. Encoding and file errors are wrapped with %w.
package imaging
