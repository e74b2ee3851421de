package core

import (
	"github.com/go-logr/logr"

	"github.com/go-drift/viewcore/pkg/errors"
	"github.com/go-drift/viewcore/pkg/geometry"
	"github.com/go-drift/viewcore/pkg/native"
	"github.com/go-drift/viewcore/pkg/property"
	"github.com/go-drift/viewcore/pkg/uiprovider"
)

// OuterView is the portable view as seen by its core.
//
// Implementations must return an untyped nil from ParentView and ViewCore
// when there is no parent or no core.
type OuterView interface {
	// Visible returns the view's current visibility.
	Visible() bool
	// Padding returns the view's padding, if one is set.
	Padding() property.Optional[geometry.UIMargin]
	// ParentView returns the portable parent, or nil for a root.
	ParentView() OuterView
	// ViewCore returns the view's core, or nil if it has none.
	ViewCore() ViewCore
}

// ClickEvent is delivered to a view's click notifier.
type ClickEvent struct {
	Source OuterView
}

// Clickable is implemented by views that publish click events.
type Clickable interface {
	OnClick() *property.Notifier[ClickEvent]
}

// ViewCore is the contract between a portable view and its core.
type ViewCore interface {
	// Widget returns the native widget.
	Widget() native.Widget
	// OuterView returns the view, or nil once the core is disposed.
	OuterView() OuterView
	// AsContainer returns the core's container capability.
	AsContainer() (Container, bool)

	// Dispose detaches the core from its view.
	Dispose()

	// SetVisible pushes visibility into the widget.
	SetVisible(visible bool)
	// SetPadding pushes the view's padding into the widget.
	SetPadding(padding property.Optional[geometry.UIMargin])
	// SetBounds sizes and positions the widget; bounds are abstract units
	// relative to the parent.
	SetBounds(bounds geometry.Rect)

	// UILengthToPixels converts l to native pixels for this widget.
	UILengthToPixels(l geometry.UILength) int
	// UIMarginToPixelMargin converts m to native pixels for this widget.
	UIMarginToPixelMargin(m geometry.UIMargin) geometry.Margin
	// PaddingPixels returns the padding measurement applies: the view's own
	// padding, or the default padding when it sets none.
	PaddingPixels() geometry.Margin

	// CalcPreferredSize returns the unconstrained preferred size.
	CalcPreferredSize() geometry.Size
	// CalcPreferredHeightForWidth returns the preferred size at width. The
	// result's Width is width.
	CalcPreferredHeightForWidth(width float64) geometry.Size
	// CalcPreferredWidthForHeight returns the preferred size at height. The
	// result's Height is height.
	CalcPreferredWidthForHeight(height float64) geometry.Size

	// TryChangeParentView re-attaches the widget after the view moved to
	// newParent. It reports false if the core could not be attached; the
	// caller then recreates the core.
	TryChangeParentView(newParent OuterView) bool
}

// Core is the base view core for a leaf widget. Container cores embed it.
type Core struct {
	widget   native.Widget
	provider uiprovider.Provider
	log      logr.Logger

	outer    OuterView
	detached bool

	container      Container
	defaultPadding property.Optional[geometry.UIMargin]
}

// New returns a core for outer wrapping widget. The widget takes outer's
// visibility and is attached into the nearest ancestor core's container.
//
// New panics with a *errors.ProgrammingError when outer has a parent but no
// ancestor has a core, or when that ancestor core is not a container.
func New(outer OuterView, widget native.Widget, provider uiprovider.Provider, opts ...Option) *Core {
	c := newCore(outer, widget, provider, opts)
	c.init()
	return c
}

func newCore(outer OuterView, widget native.Widget, provider uiprovider.Provider, opts []Option) *Core {
	cfg := options{log: logr.Discard()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Core{
		widget:         widget,
		provider:       provider,
		log:            cfg.log,
		outer:          outer,
		defaultPadding: cfg.defaultPadding,
	}
}

func (c *Core) init() {
	c.SetVisible(c.outer.Visible())
	if err := c.attach(); err != nil {
		panic(errors.NewProgrammingError("core.New", err))
	}
}

// Widget returns the native widget.
func (c *Core) Widget() native.Widget {
	return c.widget
}

// OuterView returns the view, or nil once Dispose was called.
func (c *Core) OuterView() OuterView {
	if c.detached {
		return nil
	}
	return c.outer
}

// AsContainer returns the container capability resolved at construction.
func (c *Core) AsContainer() (Container, bool) {
	return c.container, c.container != nil
}

// Dispose clears the reference to the view. The widget is neither destroyed
// nor detached; the native toolkit and the view tree own that teardown.
func (c *Core) Dispose() {
	c.detached = true
	c.outer = nil
}

// ScaleFactor returns the widget's current scale factor.
func (c *Core) ScaleFactor() float64 {
	return c.widget.ScaleFactor()
}

// SetVisible implements ViewCore.
func (c *Core) SetVisible(visible bool) {
	c.widget.SetVisible(visible)
}

// SetPadding implements ViewCore. Generic widgets have no adjustable
// content inset, so the padding only takes part in measurement, where it is
// read from the view.
func (c *Core) SetPadding(property.Optional[geometry.UIMargin]) {}

// SetBounds implements ViewCore.
func (c *Core) SetBounds(bounds geometry.Rect) {
	px := geometry.RectToPixels(bounds, c.ScaleFactor())
	size := geometry.ClampSize(px.Size())
	c.widget.SetSizeRequest(size.Width, size.Height)

	outer := c.OuterView()
	if outer == nil {
		return
	}
	parent, err := parentContainer(outer)
	if err != nil {
		panic(errors.NewProgrammingError("core.SetBounds", err))
	}
	if parent != nil {
		parent.RepositionChild(c, px.X, px.Y)
	}
}

// UILengthToPixels implements ViewCore.
func (c *Core) UILengthToPixels(l geometry.UILength) int {
	return c.provider.PixelsForLength(c.widget, l)
}

// UIMarginToPixelMargin implements ViewCore.
func (c *Core) UIMarginToPixelMargin(m geometry.UIMargin) geometry.Margin {
	return c.provider.PixelMarginForMargin(c.widget, m)
}

// DefaultPaddingPixels returns the padding used when the view sets none.
func (c *Core) DefaultPaddingPixels() geometry.Margin {
	if m, ok := c.defaultPadding.Get(); ok {
		return c.UIMarginToPixelMargin(m)
	}
	return geometry.Margin{}
}

// TryChangeParentView implements ViewCore. The walk reads the view's
// current parent chain; newParent is the parent the view already points to.
func (c *Core) TryChangeParentView(newParent OuterView) bool {
	if err := c.attach(); err != nil {
		errors.ReportProgramming("core.TryChangeParentView", err)
		return false
	}
	return true
}

// GenerateClick notifies the view's click subscribers, if the view still
// exists and publishes clicks.
func (c *Core) GenerateClick() {
	outer := c.OuterView()
	if outer == nil {
		return
	}
	if src, ok := outer.(Clickable); ok {
		src.OnClick().Notify(ClickEvent{Source: outer})
	}
}

// attach puts the widget into the nearest ancestor container, or detaches
// it from any native parent when the view is a root.
func (c *Core) attach() error {
	outer := c.OuterView()
	if outer == nil {
		return nil
	}
	parent, err := parentContainer(outer)
	if err != nil {
		return err
	}
	if parent == nil {
		if old := c.widget.Parent(); old != nil {
			old.Remove(c.widget)
		}
		return nil
	}
	c.log.V(1).Info("attach", "parent", parent.Widget(), "child", c.widget)
	parent.AcceptChild(c)
	return nil
}

// parentContainer finds the container core of the nearest ancestor of outer
// that has a core. It returns nil without error for a root view.
func parentContainer(outer OuterView) (Container, error) {
	p := outer.ParentView()
	if p == nil {
		return nil, nil
	}
	for ; p != nil; p = p.ParentView() {
		vc := p.ViewCore()
		if vc == nil {
			continue
		}
		container, ok := vc.AsContainer()
		if !ok {
			return nil, ErrNotContainer
		}
		return container, nil
	}
	return nil, ErrNoParentCore
}
