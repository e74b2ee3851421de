//go:build gtk

package gtk

import (
	"github.com/go-drift/viewcore/pkg/core"
	"github.com/go-drift/viewcore/pkg/platform"
	"github.com/go-drift/viewcore/pkg/uiprovider"
)

// Register registers GTK window, column and label factories and routes
// platform dispatch through the GLib main loop.
func Register(reg *core.Registry) {
	InstallDispatch(platform.RegisterDispatch)
	reg.RegisterFactory(core.KindWindow, func(outer core.OuterView, p uiprovider.Provider, opts ...core.Option) (core.ViewCore, error) {
		return core.NewContainer(outer, NewWindow(platform.TextOf(outer)), p, opts...), nil
	})
	reg.RegisterFactory(core.KindColumn, func(outer core.OuterView, p uiprovider.Provider, opts ...core.Option) (core.ViewCore, error) {
		return core.NewContainer(outer, NewFixed(), p, opts...), nil
	})
	reg.RegisterFactory(core.KindLabel, func(outer core.OuterView, p uiprovider.Provider, opts ...core.Option) (core.ViewCore, error) {
		label := NewLabel(platform.TextOf(outer))
		c := platform.NewTextCore(outer, label, p, opts...)
		label.OnClicked(c.GenerateClick)
		return c, nil
	})
}
