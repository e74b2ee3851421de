// Package native defines the handle-scoped operations a toolkit binding
// provides to view cores.
//
// All methods are called on the toolkit's UI thread. They are infallible at
// this layer: a binding that can fail reports the failure itself and
// returns zero values.
package native

import "github.com/go-drift/viewcore/pkg/geometry"

// UnsetSize passed to SetSizeRequest clears the request for that dimension.
const UnsetSize = -1

// Unconstrained marks a Measurement dimension without constraint.
const Unconstrained = -1

// Measurement selects which size query Measure performs.
//
// ForWidth >= 0 asks for the height at that width, ForHeight >= 0 for the
// width at that height. With both Unconstrained the toolkit reports its
// unconstrained preferred size. Setting both is invalid.
type Measurement struct {
	ForWidth  int
	ForHeight int
}

// Natural returns an unconstrained Measurement.
func Natural() Measurement {
	return Measurement{ForWidth: Unconstrained, ForHeight: Unconstrained}
}

// HeightForWidth returns a Measurement constrained to width.
func HeightForWidth(width int) Measurement {
	return Measurement{ForWidth: width, ForHeight: Unconstrained}
}

// WidthForHeight returns a Measurement constrained to height.
func WidthForHeight(height int) Measurement {
	return Measurement{ForWidth: Unconstrained, ForHeight: height}
}

// Widget is a native widget handle.
type Widget interface {
	// Visible reports the widget's own visibility flag.
	Visible() bool
	// SetVisible sets the widget's visibility flag.
	SetVisible(visible bool)

	// SizeRequest returns the fixed size request, UnsetSize where unset.
	SizeRequest() (width, height int)
	// SetSizeRequest pins the widget's size in native pixels.
	SetSizeRequest(width, height int)

	// Measure returns the minimum and natural size in native pixels. For a
	// constrained Measurement only the unconstrained dimension of the
	// result is meaningful.
	Measure(m Measurement) (minimum, natural geometry.PixelSize)

	// ScaleFactor returns the device pixels per abstract unit. The value
	// may change over the widget's lifetime.
	ScaleFactor() float64

	// Parent returns the container the widget is attached to, or nil.
	Parent() Container
}

// Container is a widget that holds and positions child widgets.
type Container interface {
	Widget

	// Put attaches child at x, y. The child must not have a parent.
	Put(child Widget, x, y int)
	// Move repositions an attached child without changing its size.
	Move(child Widget, x, y int)
	// Remove detaches child.
	Remove(child Widget)
}

// FontSizer is implemented by widgets that know their font size in
// abstract units.
type FontSizer interface {
	FontSize() float64
}
