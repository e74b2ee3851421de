package headless

import (
	"fmt"
	"sync"

	"github.com/go-drift/viewcore/pkg/geometry"
	"github.com/go-drift/viewcore/pkg/native"
)

type placement struct {
	child attachable
	x, y  int
}

// Fixed is a container that places children at absolute positions.
type Fixed struct {
	widget
	self     native.Container
	childMu  sync.Mutex
	children []placement
}

// NewFixed returns an empty fixed container.
func (tk *Toolkit) NewFixed() *Fixed {
	f := &Fixed{}
	f.init(tk, tk.newName("fixed"))
	f.self = f
	f.content = f.measureChildren
	return f
}

// Window is a top-level fixed container.
type Window struct {
	Fixed
	Title string
}

// NewWindow returns a window.
func (tk *Toolkit) NewWindow(title string) *Window {
	w := &Window{Title: title}
	w.init(tk, tk.newName("window"))
	w.self = w
	w.content = w.measureChildren
	return w
}

// Put attaches child at x, y. It panics if child already has a parent or
// is not a headless widget.
func (f *Fixed) Put(child native.Widget, x, y int) {
	c := f.attachable(child)
	if c.Parent() != nil {
		panic(fmt.Sprintf("headless: %s already has a parent", c.Name()))
	}
	c.setParent(f.self)
	f.childMu.Lock()
	f.children = append(f.children, placement{child: c, x: x, y: y})
	f.childMu.Unlock()
	f.tk.journal.record(Call{Op: OpPut, Target: f.name, Child: c.Name(), Args: []int{x, y}})
}

// Move repositions an attached child. It panics if child is not attached
// to f.
func (f *Fixed) Move(child native.Widget, x, y int) {
	c := f.attachable(child)
	f.childMu.Lock()
	i := f.indexLocked(c)
	if i < 0 {
		f.childMu.Unlock()
		panic(fmt.Sprintf("headless: %s is not a child of %s", c.Name(), f.name))
	}
	f.children[i].x = x
	f.children[i].y = y
	f.childMu.Unlock()
	f.tk.journal.record(Call{Op: OpMove, Target: f.name, Child: c.Name(), Args: []int{x, y}})
}

// Remove detaches child. Removing a widget that is not a child is a no-op.
func (f *Fixed) Remove(child native.Widget) {
	c := f.attachable(child)
	f.childMu.Lock()
	i := f.indexLocked(c)
	if i < 0 {
		f.childMu.Unlock()
		return
	}
	f.children = append(f.children[:i], f.children[i+1:]...)
	f.childMu.Unlock()
	c.setParent(nil)
	f.tk.journal.record(Call{Op: OpRemove, Target: f.name, Child: c.Name()})
}

// Children returns the attached children in attach order.
func (f *Fixed) Children() []native.Widget {
	f.childMu.Lock()
	defer f.childMu.Unlock()
	out := make([]native.Widget, len(f.children))
	for i, p := range f.children {
		out[i] = p.child
	}
	return out
}

// Position returns the position of an attached child.
func (f *Fixed) Position(child native.Widget) (x, y int, ok bool) {
	c, isHeadless := child.(attachable)
	if !isHeadless {
		return 0, 0, false
	}
	f.childMu.Lock()
	defer f.childMu.Unlock()
	i := f.indexLocked(c)
	if i < 0 {
		return 0, 0, false
	}
	return f.children[i].x, f.children[i].y, true
}

func (f *Fixed) indexLocked(c attachable) int {
	for i, p := range f.children {
		if p.child == c {
			return i
		}
	}
	return -1
}

func (f *Fixed) attachable(child native.Widget) attachable {
	c, ok := child.(attachable)
	if !ok {
		panic(fmt.Sprintf("headless: %T is not a headless widget", child))
	}
	return c
}

// measureChildren returns the bounding box of the visible children.
func (f *Fixed) measureChildren(native.Measurement) (minimum, natural geometry.PixelSize) {
	f.childMu.Lock()
	children := make([]placement, len(f.children))
	copy(children, f.children)
	f.childMu.Unlock()

	for _, p := range children {
		size := allocation(p.child)
		natural.Width = max(natural.Width, p.x+size.Width)
		natural.Height = max(natural.Height, p.y+size.Height)
	}
	return natural, natural
}
