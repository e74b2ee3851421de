package core

import (
	"github.com/go-drift/viewcore/pkg/geometry"
	"github.com/go-drift/viewcore/pkg/native"
)

type constraint int

const (
	unconstrained constraint = iota
	widthConstraint
	heightConstraint
)

// CalcPreferredSize implements ViewCore.
func (c *Core) CalcPreferredSize() geometry.Size {
	return c.measure(unconstrained, 0)
}

// CalcPreferredHeightForWidth implements ViewCore.
func (c *Core) CalcPreferredHeightForWidth(width float64) geometry.Size {
	return c.measure(widthConstraint, width)
}

// CalcPreferredWidthForHeight implements ViewCore.
func (c *Core) CalcPreferredWidthForHeight(height float64) geometry.Size {
	return c.measure(heightConstraint, height)
}

// PaddingPixels implements ViewCore. It returns the view's padding, or the
// default padding when the view sets none or is gone.
func (c *Core) PaddingPixels() geometry.Margin {
	if outer := c.OuterView(); outer != nil {
		if pad, ok := outer.Padding().Get(); ok {
			return c.UIMarginToPixelMargin(pad)
		}
	}
	return c.DefaultPaddingPixels()
}

// measure asks the widget for its natural size under one optional
// constraint and adds the padding.
//
// Invisible widgets measure as zero and a size request pins the measured
// size, so the widget is made visible and its size request cleared for the
// duration of the query. Both are restored before returning.
//
// A constrained dimension is reported exactly as given; the widget is
// queried with the content extent, the constraint minus the padding.
func (c *Core) measure(kind constraint, value float64) geometry.Size {
	w := c.widget
	scale := c.ScaleFactor()
	pad := c.PaddingPixels()

	oldWidth, oldHeight := w.SizeRequest()
	oldVisible := w.Visible()
	defer func() {
		if !oldVisible {
			w.SetVisible(false)
		}
		w.SetSizeRequest(oldWidth, oldHeight)
	}()
	if !oldVisible {
		w.SetVisible(true)
	}
	w.SetSizeRequest(native.UnsetSize, native.UnsetSize)

	var size geometry.Size
	switch kind {
	case widthConstraint:
		content := max(geometry.ToPixels(value, scale)-pad.Horizontal(), 0)
		_, natural := w.Measure(native.HeightForWidth(content))
		size = geometry.Size{
			Width:  value,
			Height: geometry.FromPixels(natural.Height+pad.Vertical(), scale),
		}
	case heightConstraint:
		content := max(geometry.ToPixels(value, scale)-pad.Vertical(), 0)
		_, natural := w.Measure(native.WidthForHeight(content))
		size = geometry.Size{
			Width:  geometry.FromPixels(natural.Width+pad.Horizontal(), scale),
			Height: value,
		}
	default:
		_, natural := w.Measure(native.Natural())
		size = geometry.SizeFromPixels(geometry.PixelSize{
			Width:  natural.Width + pad.Horizontal(),
			Height: natural.Height + pad.Vertical(),
		}, scale)
	}
	c.log.V(1).Info("measure", "widget", w, "constraint", kind, "value", value, "size", size)
	return size
}
