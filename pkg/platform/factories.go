package platform

import (
	"github.com/go-drift/viewcore/pkg/core"
	"github.com/go-drift/viewcore/pkg/native"
	"github.com/go-drift/viewcore/pkg/native/headless"
	"github.com/go-drift/viewcore/pkg/property"
	"github.com/go-drift/viewcore/pkg/uiprovider"
)

// TextSource is implemented by outer views that carry text. Label cores
// show the text and follow its changes; window cores use it as the title.
type TextSource interface {
	TextProperty() *property.Property[string]
}

// TextWidget is a native widget that shows text.
type TextWidget interface {
	native.Widget
	SetText(text string)
}

// TextOf returns the text of outer, or "" if it carries none.
func TextOf(outer core.OuterView) string {
	if src, ok := outer.(TextSource); ok {
		return src.TextProperty().Get()
	}
	return ""
}

// TextCore is a leaf core whose widget follows the view's text.
type TextCore struct {
	*core.Core
	sub *property.Subscription
}

// NewTextCore returns a leaf core for widget. Construction follows
// core.New; afterwards every change of the view's text is pushed to the
// widget until the core is disposed.
func NewTextCore(outer core.OuterView, widget TextWidget, provider uiprovider.Provider, opts ...core.Option) *TextCore {
	tc := &TextCore{Core: core.New(outer, widget, provider, opts...)}
	if src, ok := outer.(TextSource); ok {
		tc.sub = src.TextProperty().OnChange().Subscribe(func(p property.ReadOnly[string]) {
			widget.SetText(p.Get())
		})
	}
	return tc
}

// Dispose stops following the view's text and detaches the core.
func (tc *TextCore) Dispose() {
	if tc.sub != nil {
		tc.sub.Unsubscribe()
	}
	tc.Core.Dispose()
}

// RegisterHeadless registers window, column and label factories backed by
// tk.
func RegisterHeadless(reg *core.Registry, tk *headless.Toolkit) {
	reg.RegisterFactory(core.KindWindow, func(outer core.OuterView, p uiprovider.Provider, opts ...core.Option) (core.ViewCore, error) {
		return core.NewContainer(outer, tk.NewWindow(TextOf(outer)), p, opts...), nil
	})
	reg.RegisterFactory(core.KindColumn, func(outer core.OuterView, p uiprovider.Provider, opts ...core.Option) (core.ViewCore, error) {
		return core.NewContainer(outer, tk.NewFixed(), p, opts...), nil
	})
	reg.RegisterFactory(core.KindLabel, func(outer core.OuterView, p uiprovider.Provider, opts ...core.Option) (core.ViewCore, error) {
		return NewTextCore(outer, tk.NewLabel(TextOf(outer)), p, opts...), nil
	})
}

// RegisterBridge registers window, column and label factories whose
// widgets are created through tk. Clicks reported by native code are
// delivered to the view's click subscribers.
func RegisterBridge(reg *core.Registry, tk *Toolkit) {
	reg.RegisterFactory(core.KindWindow, func(outer core.OuterView, p uiprovider.Provider, opts ...core.Option) (core.ViewCore, error) {
		w := tk.NewContainer("window", map[string]any{"title": TextOf(outer)})
		c := core.NewContainer(outer, w, p, opts...)
		w.SetClickHandler(c.GenerateClick)
		return c, nil
	})
	reg.RegisterFactory(core.KindColumn, func(outer core.OuterView, p uiprovider.Provider, opts ...core.Option) (core.ViewCore, error) {
		w := tk.NewContainer("fixed", nil)
		c := core.NewContainer(outer, w, p, opts...)
		w.SetClickHandler(c.GenerateClick)
		return c, nil
	})
	reg.RegisterFactory(core.KindLabel, func(outer core.OuterView, p uiprovider.Provider, opts ...core.Option) (core.ViewCore, error) {
		label := tk.NewLabel(TextOf(outer))
		c := NewTextCore(outer, label, p, opts...)
		label.SetClickHandler(c.GenerateClick)
		return c, nil
	})
}
