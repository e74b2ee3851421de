// Package view is the portable, toolkit-agnostic view tree.
//
// A View holds its state in reactive properties. Once realized it owns a
// core created by a core.Registry, and every property change is pushed into
// that core:
//
//	reg := core.NewRegistry(uiprovider.NewMetrics())
//	platform.RegisterHeadless(reg, headless.New())
//
//	root := view.New(core.KindWindow, view.WithLayout(view.Column{}))
//	root.AddChild(view.New(core.KindLabel, view.WithText("hello")))
//	root.Realize(reg)
//	root.SetBounds(geometry.Rect{Width: 320, Height: 200})
//	root.Layout()
//
// Views belong to the UI thread. Property subscribers run on the goroutine
// that calls Set; background goroutines must redispatch before touching a
// realized view.
package view

import (
	"errors"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/go-drift/viewcore/pkg/core"
	"github.com/go-drift/viewcore/pkg/geometry"
	"github.com/go-drift/viewcore/pkg/property"
)

// ErrCycle is returned when adding a view below itself.
var ErrCycle = errors.New("view: cannot add a view to its own subtree")

// View is a node of the portable view tree.
type View struct {
	kind string

	visible *property.Property[bool]
	padding *property.Property[property.Optional[geometry.UIMargin]]
	bounds  *property.Property[geometry.Rect]
	text    *property.Property[string]
	onClick property.Notifier[core.ClickEvent]
	subs    []*property.Subscription

	layout Layout
	log    logr.Logger

	parent   *View
	children []*View

	core     core.ViewCore
	registry *core.Registry
}

// Option configures a View.
type Option func(*View)

// WithText sets the initial text of text-bearing views.
func WithText(text string) Option {
	return func(v *View) { v.text.Set(text) }
}

// WithPadding sets the initial padding.
func WithPadding(m geometry.UIMargin) Option {
	return func(v *View) { v.padding.Set(property.Some(m)) }
}

// Hidden makes the view initially invisible.
func Hidden() Option {
	return func(v *View) { v.visible.Set(false) }
}

// WithLayout sets how Layout places the view's children.
func WithLayout(l Layout) Option {
	return func(v *View) { v.layout = l }
}

// WithLogger sets the logger.
func WithLogger(log logr.Logger) Option {
	return func(v *View) { v.log = log }
}

// New returns an unrealized view of the given kind.
func New(kind string, opts ...Option) *View {
	v := &View{
		kind:    kind,
		visible: property.New(true),
		padding: property.New(property.None[geometry.UIMargin]()),
		bounds:  property.New(geometry.Rect{}),
		text:    property.New(""),
		log:     logr.Discard(),
	}
	for _, opt := range opts {
		opt(v)
	}
	v.subs = []*property.Subscription{
		v.visible.OnChange().Subscribe(func(p property.ReadOnly[bool]) {
			if v.core != nil {
				v.core.SetVisible(p.Get())
			}
		}),
		v.padding.OnChange().Subscribe(func(p property.ReadOnly[property.Optional[geometry.UIMargin]]) {
			if v.core != nil {
				v.core.SetPadding(p.Get())
			}
		}),
		v.bounds.OnChange().Subscribe(func(p property.ReadOnly[geometry.Rect]) {
			if v.core != nil {
				v.core.SetBounds(p.Get())
			}
		}),
	}
	return v
}

// Kind returns the view kind used to pick a core factory.
func (v *View) Kind() string { return v.kind }

func (v *View) String() string {
	if t := v.text.Get(); t != "" {
		return fmt.Sprintf("%s(%q)", v.kind, t)
	}
	return v.kind
}

// Visible implements core.OuterView.
func (v *View) Visible() bool { return v.visible.Get() }

// SetVisible sets the visibility.
func (v *View) SetVisible(visible bool) { v.visible.Set(visible) }

// VisibleProperty returns the visibility property.
func (v *View) VisibleProperty() *property.Property[bool] { return v.visible }

// Padding implements core.OuterView.
func (v *View) Padding() property.Optional[geometry.UIMargin] { return v.padding.Get() }

// SetPadding sets or, with property.None, clears the padding.
func (v *View) SetPadding(p property.Optional[geometry.UIMargin]) { v.padding.Set(p) }

// PaddingProperty returns the padding property.
func (v *View) PaddingProperty() *property.Property[property.Optional[geometry.UIMargin]] {
	return v.padding
}

// Bounds returns the bounds last assigned by layout.
func (v *View) Bounds() geometry.Rect { return v.bounds.Get() }

// SetBounds assigns the view's bounds relative to its parent.
func (v *View) SetBounds(r geometry.Rect) { v.bounds.Set(r) }

// BoundsProperty returns the bounds property.
func (v *View) BoundsProperty() *property.Property[geometry.Rect] { return v.bounds }

// Text returns the view's text.
func (v *View) Text() string { return v.text.Get() }

// SetText sets the view's text.
func (v *View) SetText(text string) { v.text.Set(text) }

// TextProperty returns the text property.
func (v *View) TextProperty() *property.Property[string] { return v.text }

// OnClick implements core.Clickable.
func (v *View) OnClick() *property.Notifier[core.ClickEvent] { return &v.onClick }

// ParentView implements core.OuterView.
func (v *View) ParentView() core.OuterView {
	if v.parent == nil {
		return nil
	}
	return v.parent
}

// Parent returns the parent view, or nil.
func (v *View) Parent() *View { return v.parent }

// Children returns the child views in order.
func (v *View) Children() []*View {
	out := make([]*View, len(v.children))
	copy(out, v.children)
	return out
}

// ViewCore implements core.OuterView.
func (v *View) ViewCore() core.ViewCore { return v.core }

// Realized reports whether the view has a core.
func (v *View) Realized() bool { return v.core != nil }

// Close disposes the subtree's cores and releases the property
// subscriptions.
func (v *View) Close() {
	for _, c := range v.children {
		c.Close()
	}
	v.disposeCores()
	for _, s := range v.subs {
		s.Unsubscribe()
	}
	v.visible.Close()
	v.padding.Close()
	v.bounds.Close()
	v.text.Close()
	v.onClick.UnsubscribeAll()
}
