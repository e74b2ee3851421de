package headless

import (
	"sync"

	"github.com/go-drift/viewcore/pkg/geometry"
	"github.com/go-drift/viewcore/pkg/native"
)

// attachable is implemented by every headless widget so containers can
// maintain the parent link.
type attachable interface {
	native.Widget
	Name() string
	setParent(parent native.Container)
}

// widget holds the state common to all headless widgets.
type widget struct {
	tk      *Toolkit
	name    string
	mu      sync.Mutex
	visible bool
	reqW    int
	reqH    int
	parent  native.Container

	// content returns the natural size of the widget's content in native
	// pixels for the given measurement.
	content func(m native.Measurement) (minimum, natural geometry.PixelSize)
}

func (w *widget) init(tk *Toolkit, name string) {
	w.tk = tk
	w.name = name
	w.visible = true
	w.reqW = native.UnsetSize
	w.reqH = native.UnsetSize
}

// Name returns the widget's journal name.
func (w *widget) Name() string {
	return w.name
}

func (w *widget) Visible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.visible
}

func (w *widget) SetVisible(visible bool) {
	w.mu.Lock()
	w.visible = visible
	w.mu.Unlock()
	v := 0
	if visible {
		v = 1
	}
	w.tk.journal.record(Call{Op: OpSetVisible, Target: w.name, Args: []int{v}})
}

func (w *widget) SizeRequest() (width, height int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.reqW, w.reqH
}

func (w *widget) SetSizeRequest(width, height int) {
	w.mu.Lock()
	w.reqW = width
	w.reqH = height
	w.mu.Unlock()
	w.tk.journal.record(Call{Op: OpSetSizeRequest, Target: w.name, Args: []int{width, height}})
}

// Measure reports zero for an invisible widget and lets a size request
// override the content's size in the requested dimension.
func (w *widget) Measure(m native.Measurement) (minimum, natural geometry.PixelSize) {
	visible, reqW, reqH := w.state()
	if !visible {
		return geometry.PixelSize{}, geometry.PixelSize{}
	}
	if w.content != nil {
		minimum, natural = w.content(m)
	}
	if reqW >= 0 {
		minimum.Width, natural.Width = reqW, reqW
	}
	if reqH >= 0 {
		minimum.Height, natural.Height = reqH, reqH
	}
	return minimum, natural
}

func (w *widget) ScaleFactor() float64 {
	return w.tk.ScaleFactor()
}

func (w *widget) Parent() native.Container {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.parent
}

func (w *widget) setParent(parent native.Container) {
	w.mu.Lock()
	w.parent = parent
	w.mu.Unlock()
}

func (w *widget) state() (visible bool, reqW, reqH int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.visible, w.reqW, w.reqH
}

// allocation returns the size the widget occupies inside a container: its
// size request where set, otherwise its natural size.
func allocation(child native.Widget) geometry.PixelSize {
	if !child.Visible() {
		return geometry.PixelSize{}
	}
	_, nat := child.Measure(native.Natural())
	return nat
}
