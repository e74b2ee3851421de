// Package geometry defines the abstract and native measures exchanged
// between portable views and their cores.
//
// Abstract lengths are float64 device-independent units. Native lengths are
// int pixels of the toolkit; one abstract unit is ScaleFactor native pixels.
package geometry

import "math"

// Point is a position in abstract units.
type Point struct {
	X float64
	Y float64
}

// Size is a width and height in abstract units.
type Size struct {
	Width  float64
	Height float64
}

// Rect is an axis-aligned rectangle in abstract units.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the rectangle's size.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// PixelSize is a width and height in native pixels.
type PixelSize struct {
	Width  int
	Height int
}

// PixelRect is a rectangle in native pixels.
type PixelRect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Size returns the rectangle's size.
func (r PixelRect) Size() PixelSize {
	return PixelSize{Width: r.Width, Height: r.Height}
}

// ToPixels converts an abstract length to native pixels.
func ToPixels(v, scale float64) int {
	return int(math.Round(v * scale))
}

// FromPixels converts native pixels to an abstract length.
func FromPixels(px int, scale float64) float64 {
	if scale == 0 {
		return 0
	}
	return float64(px) / scale
}

// RectToPixels converts r to native pixels. Negative sizes are kept; callers
// clamp them where the toolkit needs it.
func RectToPixels(r Rect, scale float64) PixelRect {
	return PixelRect{
		X:      ToPixels(r.X, scale),
		Y:      ToPixels(r.Y, scale),
		Width:  ToPixels(r.Width, scale),
		Height: ToPixels(r.Height, scale),
	}
}

// SizeFromPixels converts a native size to abstract units.
func SizeFromPixels(s PixelSize, scale float64) Size {
	return Size{
		Width:  FromPixels(s.Width, scale),
		Height: FromPixels(s.Height, scale),
	}
}

// ClampSize returns s with negative dimensions replaced by zero.
func ClampSize(s PixelSize) PixelSize {
	return PixelSize{Width: max(s.Width, 0), Height: max(s.Height, 0)}
}
