package view

import (
	"github.com/go-drift/viewcore/pkg/core"
	"github.com/go-drift/viewcore/pkg/geometry"
)

// Realize creates the cores of v and its subtree with reg, parents before
// children. It is called on a root; views added later below a realized
// parent are realized automatically.
//
// Views that already have a core are kept and their subtree is walked, so
// calling Realize again after an error completes the tree.
func (v *View) Realize(reg *core.Registry) error {
	if v.core == nil {
		vc, err := reg.Create(v.kind, v)
		if err != nil {
			return err
		}
		v.core = vc
		v.registry = reg
		v.log.V(1).Info("realized", "view", v.String())
	}
	for _, c := range v.children {
		if err := c.Realize(reg); err != nil {
			return err
		}
	}
	return nil
}

// AddChild appends child, moving it from its current parent if it has one.
//
// Below a realized parent the child is realized, or, when it already has a
// core, re-attached with TryChangeParentView; a core that cannot be
// re-attached is replaced. Below an unrealized parent the child's cores are
// disposed.
func (v *View) AddChild(child *View) error {
	for p := v; p != nil; p = p.parent {
		if p == child {
			return ErrCycle
		}
	}
	old := nearestContainer(child)
	if child.parent != nil {
		child.parent.unlink(child)
	}
	child.parent = v
	v.children = append(v.children, child)

	switch {
	case v.core == nil:
		child.detachFrom(old)
		child.disposeCores()
		return nil
	case child.core == nil:
		return child.Realize(v.registry)
	case child.core.TryChangeParentView(v):
		return nil
	default:
		child.detachFrom(old)
		child.disposeCores()
		return child.Realize(v.registry)
	}
}

func (v *View) detachFrom(container core.Container) {
	if container != nil && v.core != nil {
		container.DetachChild(v.core)
	}
}

// RemoveChild removes child, detaches its widget and disposes the subtree's
// cores. It is a no-op if child is not a child of v.
func (v *View) RemoveChild(child *View) {
	if child.parent != v {
		return
	}
	child.detachFrom(nearestContainer(child))
	v.unlink(child)
	child.parent = nil
	child.disposeCores()
}

func (v *View) unlink(child *View) {
	for i, c := range v.children {
		if c == child {
			v.children = append(v.children[:i], v.children[i+1:]...)
			return
		}
	}
}

// disposeCores disposes the cores of v's subtree, children first.
func (v *View) disposeCores() {
	for _, c := range v.children {
		c.disposeCores()
	}
	if v.core != nil {
		v.core.Dispose()
		v.core = nil
		v.registry = nil
	}
}

// nearestContainer returns the container core of the nearest ancestor of v
// that has a core.
func nearestContainer(v *View) core.Container {
	for p := v.parent; p != nil; p = p.parent {
		if p.core != nil {
			c, _ := p.core.AsContainer()
			return c
		}
	}
	return nil
}

// PreferredSize returns the core's preferred size, or zero if unrealized.
func (v *View) PreferredSize() geometry.Size {
	if v.core == nil {
		return geometry.Size{}
	}
	return v.core.CalcPreferredSize()
}

// PreferredHeightForWidth returns the core's preferred size at width.
func (v *View) PreferredHeightForWidth(width float64) geometry.Size {
	if v.core == nil {
		return geometry.Size{Width: width}
	}
	return v.core.CalcPreferredHeightForWidth(width)
}

// PreferredWidthForHeight returns the core's preferred size at height.
func (v *View) PreferredWidthForHeight(height float64) geometry.Size {
	if v.core == nil {
		return geometry.Size{Height: height}
	}
	return v.core.CalcPreferredWidthForHeight(height)
}
