//go:build gtk

// Package gtk binds the native widget operations to GTK 4 through gotk4.
//
// Build with -tags gtk. All functions must be called on the GTK main
// thread; InstallDispatch routes platform.Dispatch there.
package gtk

import (
	"sync"

	"github.com/diamondburned/gotk4/pkg/glib/v2"
	gtk4 "github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/go-drift/viewcore/pkg/geometry"
	"github.com/go-drift/viewcore/pkg/native"
)

// Widget wraps a GTK widget.
type Widget struct {
	w *gtk4.Widget

	mu     sync.Mutex
	parent native.Container
}

// Wrap returns a Widget for any GTK widget.
func Wrap(w gtk4.Widgetter) *Widget {
	return &Widget{w: gtk4.BaseWidget(w)}
}

// GTK returns the wrapped widget.
func (w *Widget) GTK() *gtk4.Widget { return w.w }

func (w *Widget) Visible() bool { return w.w.Visible() }

func (w *Widget) SetVisible(visible bool) { w.w.SetVisible(visible) }

func (w *Widget) SizeRequest() (width, height int) { return w.w.SizeRequest() }

func (w *Widget) SetSizeRequest(width, height int) { w.w.SetSizeRequest(width, height) }

// Measure maps a height-for-width query to a vertical measurement and a
// width-for-height query to a horizontal one.
func (w *Widget) Measure(m native.Measurement) (minimum, natural geometry.PixelSize) {
	switch {
	case m.ForWidth >= 0:
		minH, natH, _, _ := w.w.Measure(gtk4.OrientationVertical, m.ForWidth)
		return geometry.PixelSize{Width: m.ForWidth, Height: minH},
			geometry.PixelSize{Width: m.ForWidth, Height: natH}
	case m.ForHeight >= 0:
		minW, natW, _, _ := w.w.Measure(gtk4.OrientationHorizontal, m.ForHeight)
		return geometry.PixelSize{Width: minW, Height: m.ForHeight},
			geometry.PixelSize{Width: natW, Height: m.ForHeight}
	default:
		minReq, natReq := w.w.PreferredSize()
		return geometry.PixelSize{Width: minReq.Width(), Height: minReq.Height()},
			geometry.PixelSize{Width: natReq.Width(), Height: natReq.Height()}
	}
}

func (w *Widget) ScaleFactor() float64 { return float64(w.w.ScaleFactor()) }

func (w *Widget) Parent() native.Container {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.parent
}

func (w *Widget) setParent(p native.Container) {
	w.mu.Lock()
	w.parent = p
	w.mu.Unlock()
}

type wrapped interface {
	base() *Widget
}

func (w *Widget) base() *Widget { return w }

func unwrap(child native.Widget) *Widget {
	c, ok := child.(wrapped)
	if !ok {
		panic("gtk: child is not a GTK widget")
	}
	return c.base()
}

// Fixed is a container with absolute child positions.
type Fixed struct {
	Widget
	fixed *gtk4.Fixed
	self  native.Container
}

// NewFixed returns an empty Fixed.
func NewFixed() *Fixed {
	f := gtk4.NewFixed()
	c := &Fixed{Widget: Widget{w: gtk4.BaseWidget(f)}, fixed: f}
	c.self = c
	return c
}

func (f *Fixed) Put(child native.Widget, x, y int) {
	c := unwrap(child)
	if c.Parent() != nil {
		panic("gtk: widget already has a parent")
	}
	c.setParent(f.self)
	f.fixed.Put(c.w, float64(x), float64(y))
}

func (f *Fixed) Move(child native.Widget, x, y int) {
	f.fixed.Move(unwrap(child).w, float64(x), float64(y))
}

func (f *Fixed) Remove(child native.Widget) {
	c := unwrap(child)
	if c.Parent() != f.self {
		return
	}
	c.setParent(nil)
	f.fixed.Remove(c.w)
}

// Window is a toplevel whose content is a Fixed. Visibility and size
// requests apply to the toplevel, children go into the Fixed.
type Window struct {
	Fixed
	window *gtk4.Window
}

// NewWindow returns a hidden toplevel titled title.
func NewWindow(title string) *Window {
	win := gtk4.NewWindow()
	win.SetTitle(title)
	f := gtk4.NewFixed()
	win.SetChild(f)
	w := &Window{
		Fixed:  Fixed{Widget: Widget{w: gtk4.BaseWidget(win)}, fixed: f},
		window: win,
	}
	w.self = w
	return w
}

// GTKWindow returns the toplevel.
func (w *Window) GTKWindow() *gtk4.Window { return w.window }

// Label is a text widget that wraps at word boundaries.
type Label struct {
	Widget
	label *gtk4.Label
}

// NewLabel returns a label showing text.
func NewLabel(text string) *Label {
	l := gtk4.NewLabel(text)
	l.SetWrap(true)
	return &Label{Widget: Widget{w: gtk4.BaseWidget(l)}, label: l}
}

func (l *Label) SetText(text string) { l.label.SetText(text) }

func (l *Label) Text() string { return l.label.Text() }

// OnClicked runs fn whenever a pointer press is released over the label.
func (l *Label) OnClicked(fn func()) {
	g := gtk4.NewGestureClick()
	g.ConnectReleased(func(int, float64, float64) { fn() })
	l.label.AddController(g)
}

// InstallDispatch makes platform dispatch run callbacks from the GLib main
// loop.
func InstallDispatch(register func(func(callback func()))) {
	register(func(cb func()) { glib.IdleAdd(cb) })
}
