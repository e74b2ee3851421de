package view

import (
	"github.com/go-drift/viewcore/pkg/geometry"
)

// Layout places a view's children inside the view's bounds.
type Layout interface {
	// Arrange assigns bounds to the children of v, whose own size is size.
	Arrange(v *View, size geometry.Size)
	// Measure returns the size v would like for the given width.
	Measure(v *View, width float64) geometry.Size
}

// Layout runs v's layout at its current bounds and recurses into the
// children. Views without a layout keep their children's bounds.
func (v *View) Layout() {
	if v.layout != nil {
		v.layout.Arrange(v, v.Bounds().Size())
	}
	for _, c := range v.children {
		c.Layout()
	}
}

// Column stacks visible children top to bottom, each as wide as the
// column's content box and as tall as it prefers at that width.
type Column struct {
	// Spacing is the gap between children in abstract units.
	Spacing float64
}

// Arrange implements Layout.
func (c Column) Arrange(v *View, size geometry.Size) {
	pad := contentInset(v)
	width := max(size.Width-pad.Left-pad.Right, 0)
	y := pad.Top
	for _, child := range v.visibleChildren() {
		h := child.PreferredHeight(width)
		child.SetBounds(geometry.Rect{X: pad.Left, Y: y, Width: width, Height: h})
		y += h + c.Spacing
	}
}

// Measure implements Layout.
func (c Column) Measure(v *View, width float64) geometry.Size {
	pad := contentInset(v)
	inner := max(width-pad.Left-pad.Right, 0)
	height := pad.Top + pad.Bottom
	for i, child := range v.visibleChildren() {
		if i > 0 {
			height += c.Spacing
		}
		height += child.PreferredHeight(inner)
	}
	return geometry.Size{Width: width, Height: height}
}

func (v *View) visibleChildren() []*View {
	var out []*View
	for _, c := range v.children {
		if c.Visible() {
			out = append(out, c)
		}
	}
	return out
}

// PreferredHeight asks the view's layout when it has one, since a
// container widget only knows the extent of already placed children.
func (v *View) PreferredHeight(width float64) float64 {
	if v.layout != nil {
		return v.layout.Measure(v, width).Height
	}
	return v.PreferredHeightForWidth(width).Height
}

// inset is a padding in abstract units.
type inset struct {
	Top, Right, Bottom, Left float64
}

// contentInset returns the padding v's core measures with, in abstract
// units. It falls back to the default padding when v sets none.
func contentInset(v *View) inset {
	if v.core == nil {
		return inset{}
	}
	px := v.core.PaddingPixels()
	scale := v.core.Widget().ScaleFactor()
	return inset{
		Top:    geometry.FromPixels(px.Top, scale),
		Right:  geometry.FromPixels(px.Right, scale),
		Bottom: geometry.FromPixels(px.Bottom, scale),
		Left:   geometry.FromPixels(px.Left, scale),
	}
}
