package platform

import (
	"fmt"
	"sync"

	"github.com/go-logr/logr"

	"github.com/go-drift/viewcore/pkg/errors"
	"github.com/go-drift/viewcore/pkg/geometry"
	"github.com/go-drift/viewcore/pkg/native"
)

// WidgetChannel is the method channel bridge widgets talk over.
const WidgetChannel = "viewcore/widgets"

// Toolkit creates native widgets on the far side of the NativeBridge.
//
// Outgoing methods: create, setVisible, setSizeRequest, measure,
// scaleFactor, setText, put, move, remove. Every call carries the widget's
// id as "widgetId". Incoming methods: onClick.
//
// Visibility, size requests and parent links are only ever changed from
// Go, so the proxies cache them. Measurements and the scale factor are
// queried on every call.
type Toolkit struct {
	channel *MethodChannel
	log     logr.Logger

	mu      sync.Mutex
	nextID  int64
	widgets map[int64]*Widget
}

// ToolkitOption configures a Toolkit.
type ToolkitOption func(*Toolkit)

// WithToolkitLogger sets the logger bridge calls are traced to at V(1).
func WithToolkitLogger(log logr.Logger) ToolkitOption {
	return func(tk *Toolkit) { tk.log = log }
}

// NewToolkit registers the widget channel and returns a toolkit using it.
func NewToolkit(opts ...ToolkitOption) *Toolkit {
	tk := &Toolkit{
		channel: NewMethodChannel(WidgetChannel),
		log:     logr.Discard(),
		widgets: make(map[int64]*Widget),
	}
	for _, opt := range opts {
		opt(tk)
	}
	tk.channel.SetHandler(tk.handleMethodCall)
	return tk
}

func (tk *Toolkit) handleMethodCall(method string, args any) (any, error) {
	switch method {
	case "onClick":
		w, err := tk.lookup(args)
		if err != nil {
			return nil, err
		}
		w.mu.Lock()
		handler := w.onClick
		w.mu.Unlock()
		RunOnUIThread(handler)
		return nil, nil
	default:
		return nil, ErrMethodNotFound
	}
}

func (tk *Toolkit) lookup(args any) (*Widget, error) {
	id, ok := toInt(argsMap(args)["widgetId"])
	if !ok {
		return nil, ErrInvalidArguments
	}
	tk.mu.Lock()
	w := tk.widgets[int64(id)]
	tk.mu.Unlock()
	if w == nil {
		return nil, fmt.Errorf("%w: %d", ErrWidgetNotFound, id)
	}
	return w, nil
}

// NewWidget creates a leaf widget of the given native kind.
func (tk *Toolkit) NewWidget(kind string, params map[string]any) *Widget {
	w := &Widget{}
	tk.create(w, kind, params)
	return w
}

// NewContainer creates a container widget of the given native kind.
func (tk *Toolkit) NewContainer(kind string, params map[string]any) *ContainerWidget {
	c := &ContainerWidget{}
	tk.create(&c.Widget, kind, params)
	return c
}

// NewLabel creates a label widget showing text.
func (tk *Toolkit) NewLabel(text string) *Label {
	l := &Label{text: text}
	tk.create(&l.Widget, "label", map[string]any{"text": text})
	return l
}

func (tk *Toolkit) create(w *Widget, kind string, params map[string]any) {
	tk.mu.Lock()
	tk.nextID++
	id := tk.nextID
	tk.widgets[id] = w
	tk.mu.Unlock()

	w.tk = tk
	w.id = id
	w.kind = kind
	w.visible = true
	w.reqW, w.reqH = native.UnsetSize, native.UnsetSize

	args := map[string]any{"widgetId": id, "kind": kind}
	if len(params) > 0 {
		args["params"] = params
	}
	tk.invoke("create", args)
}

// invoke calls method on the widget channel. Failures are reported as
// platform errors and yield a nil result.
func (tk *Toolkit) invoke(method string, args map[string]any) any {
	tk.log.V(1).Info("invoke", "method", method, "args", args)
	result, err := tk.channel.Invoke(method, args)
	if err != nil {
		errors.Report(&errors.ViewCoreError{
			Op:      "platform." + method,
			Kind:    errors.KindPlatform,
			Err:     err,
			Channel: tk.channel.Name(),
		})
		return nil
	}
	return result
}

func (tk *Toolkit) unexpected(method string, reply any) {
	errors.Report(&errors.ViewCoreError{
		Op:      "platform." + method,
		Kind:    errors.KindPlatform,
		Err:     fmt.Errorf("%w: %v", ErrUnexpectedResult, reply),
		Channel: tk.channel.Name(),
	})
}

// Widget is a proxy for a native widget.
type Widget struct {
	tk   *Toolkit
	id   int64
	kind string

	mu      sync.Mutex
	visible bool
	reqW    int
	reqH    int
	parent  native.Container
	onClick func()
}

// ID returns the id native code knows the widget by.
func (w *Widget) ID() int64 { return w.id }

// Kind returns the native widget kind the widget was created as.
func (w *Widget) Kind() string { return w.kind }

func (w *Widget) String() string {
	return fmt.Sprintf("%s#%d", w.kind, w.id)
}

// SetClickHandler sets the function run when native code reports a click.
// The handler runs through Dispatch when a dispatch function is
// registered.
func (w *Widget) SetClickHandler(fn func()) {
	w.mu.Lock()
	w.onClick = fn
	w.mu.Unlock()
}

func (w *Widget) Visible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.visible
}

func (w *Widget) SetVisible(visible bool) {
	w.mu.Lock()
	w.visible = visible
	w.mu.Unlock()
	w.tk.invoke("setVisible", map[string]any{"widgetId": w.id, "visible": visible})
}

func (w *Widget) SizeRequest() (width, height int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.reqW, w.reqH
}

func (w *Widget) SetSizeRequest(width, height int) {
	w.mu.Lock()
	w.reqW, w.reqH = width, height
	w.mu.Unlock()
	w.tk.invoke("setSizeRequest", map[string]any{"widgetId": w.id, "width": width, "height": height})
}

// Measure queries the native widget. A failed or malformed reply measures
// as zero.
func (w *Widget) Measure(m native.Measurement) (minimum, natural geometry.PixelSize) {
	reply := w.tk.invoke("measure", map[string]any{
		"widgetId":  w.id,
		"forWidth":  m.ForWidth,
		"forHeight": m.ForHeight,
	})
	if reply == nil {
		return
	}
	result := argsMap(reply)
	var dims [4]int
	for i, key := range []string{"minWidth", "minHeight", "naturalWidth", "naturalHeight"} {
		v, ok := toInt(result[key])
		if !ok {
			w.tk.unexpected("measure", reply)
			return geometry.PixelSize{}, geometry.PixelSize{}
		}
		dims[i] = v
	}
	minimum = geometry.PixelSize{Width: dims[0], Height: dims[1]}
	natural = geometry.PixelSize{Width: dims[2], Height: dims[3]}
	return minimum, natural
}

// ScaleFactor queries the native widget. It returns 1 if the query fails.
func (w *Widget) ScaleFactor() float64 {
	reply := w.tk.invoke("scaleFactor", map[string]any{"widgetId": w.id})
	if reply == nil {
		return 1
	}
	scale, ok := toFloat64(reply)
	if !ok || scale <= 0 {
		w.tk.unexpected("scaleFactor", reply)
		return 1
	}
	return scale
}

func (w *Widget) Parent() native.Container {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.parent
}

func (w *Widget) setParent(parent native.Container) {
	w.mu.Lock()
	w.parent = parent
	w.mu.Unlock()
}

// ContainerWidget is a proxy for a native container with absolute
// positioning.
type ContainerWidget struct {
	Widget
}

// Put attaches child at x, y. It panics if child is not a widget of the
// same toolkit or already has a parent.
func (c *ContainerWidget) Put(child native.Widget, x, y int) {
	cw := c.proxy(child)
	if cw.Parent() != nil {
		panic(fmt.Sprintf("platform: %s already has a parent", cw))
	}
	cw.setParent(c)
	c.tk.invoke("put", map[string]any{"widgetId": c.id, "childId": cw.id, "x": x, "y": y})
}

// Move repositions an attached child. It panics if child is not attached
// to c.
func (c *ContainerWidget) Move(child native.Widget, x, y int) {
	cw := c.proxy(child)
	if cw.Parent() != native.Container(c) {
		panic(fmt.Sprintf("platform: %s is not a child of %s", cw, c))
	}
	c.tk.invoke("move", map[string]any{"widgetId": c.id, "childId": cw.id, "x": x, "y": y})
}

// Remove detaches child. Removing a widget that is not a child of c does
// nothing.
func (c *ContainerWidget) Remove(child native.Widget) {
	cw := c.proxy(child)
	if cw.Parent() != native.Container(c) {
		return
	}
	cw.setParent(nil)
	c.tk.invoke("remove", map[string]any{"widgetId": c.id, "childId": cw.id})
}

type proxied interface {
	proxyWidget() *Widget
}

func (w *Widget) proxyWidget() *Widget { return w }

func (c *ContainerWidget) proxy(child native.Widget) *Widget {
	p, ok := child.(proxied)
	if !ok || p.proxyWidget().tk != c.tk {
		panic(fmt.Sprintf("platform: %v is not a widget of this toolkit", child))
	}
	return p.proxyWidget()
}

// Label is a proxy for a native text widget.
type Label struct {
	Widget
	text string
}

// Text returns the label's text.
func (l *Label) Text() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.text
}

// SetText replaces the label's text.
func (l *Label) SetText(text string) {
	l.mu.Lock()
	l.text = text
	l.mu.Unlock()
	l.tk.invoke("setText", map[string]any{"widgetId": l.id, "text": text})
}
