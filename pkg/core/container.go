package core

import (
	"github.com/go-drift/viewcore/pkg/native"
	"github.com/go-drift/viewcore/pkg/uiprovider"
)

// Container is the capability of cores whose widget holds children.
type Container interface {
	ViewCore

	// AcceptChild attaches child's widget into this core's widget,
	// detaching it from any previous native parent first.
	AcceptChild(child ViewCore)
	// RepositionChild moves an attached child's widget to x, y in native
	// pixels without changing its size.
	RepositionChild(child ViewCore, x, y int)
	// DetachChild removes child's widget from this core's widget.
	DetachChild(child ViewCore)
}

// ContainerCore is a core wrapping a native container.
type ContainerCore struct {
	*Core
	native native.Container
}

// NewContainer returns a container core. Construction follows New.
func NewContainer(outer OuterView, widget native.Container, provider uiprovider.Provider, opts ...Option) *ContainerCore {
	cc := &ContainerCore{
		Core:   newCore(outer, widget, provider, opts),
		native: widget,
	}
	cc.container = cc
	cc.init()
	return cc
}

// AcceptChild implements Container. A child already attached here is left
// in place.
func (cc *ContainerCore) AcceptChild(child ViewCore) {
	w := child.Widget()
	old := w.Parent()
	if old == cc.native {
		return
	}
	if old != nil {
		old.Remove(w)
	}
	cc.native.Put(w, 0, 0)
}

// RepositionChild implements Container.
func (cc *ContainerCore) RepositionChild(child ViewCore, x, y int) {
	cc.log.V(1).Info("reposition", "parent", cc.native, "child", child.Widget(), "x", x, "y", y)
	cc.native.Move(child.Widget(), x, y)
}

// DetachChild implements Container.
func (cc *ContainerCore) DetachChild(child ViewCore) {
	cc.native.Remove(child.Widget())
}
