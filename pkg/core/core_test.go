package core

import (
	stderrors "errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/viewcore/pkg/errors"
	"github.com/go-drift/viewcore/pkg/geometry"
	"github.com/go-drift/viewcore/pkg/native"
	"github.com/go-drift/viewcore/pkg/native/headless"
	"github.com/go-drift/viewcore/pkg/property"
	"github.com/go-drift/viewcore/pkg/uiprovider"
)

// --- Test helpers ---

type testView struct {
	visible bool
	padding property.Optional[geometry.UIMargin]
	parent  *testView
	core    ViewCore
	clicks  property.Notifier[ClickEvent]
}

func newTestView(parent *testView) *testView {
	return &testView{visible: true, parent: parent}
}

func (v *testView) Visible() bool                                  { return v.visible }
func (v *testView) Padding() property.Optional[geometry.UIMargin] { return v.padding }
func (v *testView) ViewCore() ViewCore                             { return v.core }
func (v *testView) OnClick() *property.Notifier[ClickEvent]        { return &v.clicks }

func (v *testView) ParentView() OuterView {
	if v.parent == nil {
		return nil
	}
	return v.parent
}

type fixture struct {
	tk       *headless.Toolkit
	provider *uiprovider.Metrics
	root     *testView
	window   *headless.Window
}

func newFixture(t *testing.T, scale float64) *fixture {
	t.Helper()
	f := &fixture{
		tk:       headless.New(headless.WithScaleFactor(scale)),
		provider: uiprovider.NewMetrics(),
		root:     newTestView(nil),
	}
	f.window = f.tk.NewWindow("root")
	f.root.core = NewContainer(f.root, f.window, f.provider)
	return f
}

func (f *fixture) label(parent *testView, text string, opts ...Option) (*testView, *headless.Label) {
	v := newTestView(parent)
	l := f.tk.NewLabel(text)
	v.core = New(v, l, f.provider, opts...)
	return v, l
}

func (f *fixture) fixed(parent *testView) (*testView, *headless.Fixed) {
	v := newTestView(parent)
	w := f.tk.NewFixed()
	v.core = NewContainer(v, w, f.provider)
	return v, w
}

func expectProgrammingError(t *testing.T, want error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		pe, ok := errors.AsProgrammingError(r)
		if !ok {
			t.Fatalf("recovered %v, want a programming error", r)
		}
		if !stderrors.Is(pe, want) {
			t.Errorf("programming error %v, want %v", pe, want)
		}
	}()
	fn()
}

// --- Lifecycle ---

func TestRootCoreDoesNotAttach(t *testing.T) {
	f := newFixture(t, 1)
	if got := len(f.tk.Journal().Filter(headless.OpPut)); got != 0 {
		t.Errorf("root core made %d put calls, want 0", got)
	}
	if f.window.Parent() != nil {
		t.Error("root window should have no native parent")
	}
}

func TestChildCoreAttachesOnceToRoot(t *testing.T) {
	f := newFixture(t, 1)
	_, l := f.label(f.root, "child")

	puts := f.tk.Journal().Filter(headless.OpPut)
	if len(puts) != 1 {
		t.Fatalf("got %d put calls, want 1", len(puts))
	}
	want := headless.Call{Op: headless.OpPut, Target: f.window.Name(), Child: l.Name(), Args: []int{0, 0}}
	if diff := cmp.Diff(want, puts[0]); diff != "" {
		t.Errorf("put call mismatch (-want +got):\n%s", diff)
	}
	if l.Parent() != native.Container(f.window) {
		t.Error("label should be attached to the window")
	}
}

func TestConstructionPushesVisibility(t *testing.T) {
	f := newFixture(t, 1)
	v := newTestView(f.root)
	v.visible = false
	l := f.tk.NewLabel("hidden")
	v.core = New(v, l, f.provider)

	if l.Visible() {
		t.Error("widget should take the view's visibility")
	}
}

func TestAttachSkipsViewsWithoutCore(t *testing.T) {
	f := newFixture(t, 1)
	middle := newTestView(f.root)
	_, l := f.label(middle, "deep")

	if l.Parent() != native.Container(f.window) {
		t.Errorf("label parent = %v, want the root window", l.Parent())
	}
}

func TestMissingParentCoreIsProgrammingError(t *testing.T) {
	tk := headless.New()
	orphanParent := newTestView(nil)
	v := newTestView(orphanParent)

	expectProgrammingError(t, ErrNoParentCore, func() {
		New(v, tk.NewLabel("x"), uiprovider.NewMetrics())
	})
}

func TestLeafParentCoreIsProgrammingError(t *testing.T) {
	f := newFixture(t, 1)
	leaf, _ := f.label(f.root, "leaf")
	v := newTestView(leaf)

	expectProgrammingError(t, ErrNotContainer, func() {
		New(v, f.tk.NewLabel("x"), f.provider)
	})
}

func TestContainerCapability(t *testing.T) {
	f := newFixture(t, 1)
	leaf, _ := f.label(f.root, "leaf")

	if _, ok := leaf.core.AsContainer(); ok {
		t.Error("leaf core should not be a container")
	}
	c, ok := f.root.core.AsContainer()
	if !ok || c != f.root.core {
		t.Error("root core should be its own container capability")
	}
}

func TestDisposeClearsOuterViewOnly(t *testing.T) {
	f := newFixture(t, 2)
	v, l := f.label(f.root, "bye")
	c := v.core.(*Core)
	f.tk.Journal().Reset()

	c.Dispose()
	if c.OuterView() != nil {
		t.Error("OuterView should be nil after Dispose")
	}
	if l.Parent() == nil {
		t.Error("Dispose must not detach the widget")
	}

	c.SetBounds(geometry.Rect{X: 1, Y: 1, Width: 10, Height: 10})
	if n := len(f.tk.Journal().Filter(headless.OpMove)); n != 0 {
		t.Errorf("disposed core repositioned itself %d times", n)
	}
	if w, h := l.SizeRequest(); w != 20 || h != 20 {
		t.Errorf("size request = %d,%d, want 20,20", w, h)
	}
}

func TestGenerateClick(t *testing.T) {
	f := newFixture(t, 1)
	v, _ := f.label(f.root, "button")
	clicks := 0
	v.clicks.Subscribe(func(e ClickEvent) {
		if e.Source != OuterView(v) {
			t.Errorf("click source = %v, want the view", e.Source)
		}
		clicks++
	})

	c := v.core.(*Core)
	c.GenerateClick()
	c.Dispose()
	c.GenerateClick()

	if clicks != 1 {
		t.Errorf("got %d clicks, want 1", clicks)
	}
}

// --- Bounds ---

func TestSetBoundsClampsAndRepositionsThroughParent(t *testing.T) {
	f := newFixture(t, 2)
	v, l := f.label(f.root, "child")
	f.tk.Journal().Reset()

	v.core.SetBounds(geometry.Rect{X: 10, Y: 20, Width: -5, Height: 50})

	want := []headless.Call{
		{Op: headless.OpSetSizeRequest, Target: l.Name(), Args: []int{0, 100}},
		{Op: headless.OpMove, Target: f.window.Name(), Child: l.Name(), Args: []int{20, 40}},
	}
	if diff := cmp.Diff(want, f.tk.Journal().Calls()); diff != "" {
		t.Errorf("native calls mismatch (-want +got):\n%s", diff)
	}
}

func TestSetBoundsNeverRequestsNegativeSizes(t *testing.T) {
	f := newFixture(t, 1.5)
	v, l := f.label(f.root, "child")

	for _, r := range []geometry.Rect{
		{Width: -1, Height: -1},
		{Width: -0.1, Height: 3},
		{Width: 4, Height: -100},
	} {
		v.core.SetBounds(r)
		w, h := l.SizeRequest()
		if w < 0 || h < 0 {
			t.Errorf("SetBounds(%+v) requested %d,%d", r, w, h)
		}
	}
}

func TestSetBoundsOnRootOnlySizes(t *testing.T) {
	f := newFixture(t, 1)
	f.tk.Journal().Reset()

	f.root.core.SetBounds(geometry.Rect{X: 5, Y: 5, Width: 300, Height: 200})

	if n := len(f.tk.Journal().Filter(headless.OpMove)); n != 0 {
		t.Errorf("root made %d move calls, want 0", n)
	}
	if w, h := f.window.SizeRequest(); w != 300 || h != 200 {
		t.Errorf("root size request = %d,%d, want 300,200", w, h)
	}
}

func TestSetBoundsUsesLiveScaleFactor(t *testing.T) {
	f := newFixture(t, 1)
	v, l := f.label(f.root, "child")

	v.core.SetBounds(geometry.Rect{X: 1, Y: 2, Width: 10, Height: 10})
	f.tk.SetScaleFactor(3)
	v.core.SetBounds(geometry.Rect{X: 1, Y: 2, Width: 10, Height: 10})

	if w, h := l.SizeRequest(); w != 30 || h != 30 {
		t.Errorf("size request = %d,%d, want 30,30", w, h)
	}
	if x, y, _ := f.window.Position(l); x != 3 || y != 6 {
		t.Errorf("position = %d,%d, want 3,6", x, y)
	}
}

// --- Measurement ---

func TestCalcPreferredSizeIsIdempotentAndRestoresState(t *testing.T) {
	f := newFixture(t, 1)
	v, l := f.label(f.root, "hello")
	v.core.SetVisible(false)
	l.SetSizeRequest(5, 7)

	first := v.core.CalcPreferredSize()
	second := v.core.CalcPreferredSize()

	if diff := cmp.Diff(geometry.Size{Width: 35, Height: 13}, first); diff != "" {
		t.Errorf("preferred size mismatch (-want +got):\n%s", diff)
	}
	if first != second {
		t.Errorf("second call returned %v, first %v", second, first)
	}
	if l.Visible() {
		t.Error("visibility leaked out of measurement")
	}
	if w, h := l.SizeRequest(); w != 5 || h != 7 {
		t.Errorf("size request after measurement = %d,%d, want 5,7", w, h)
	}
}

func TestCalcPreferredSizeAtScale(t *testing.T) {
	f := newFixture(t, 2)
	v, _ := f.label(f.root, "hello")

	got := v.core.CalcPreferredSize()
	if diff := cmp.Diff(geometry.Size{Width: 35, Height: 13}, got); diff != "" {
		t.Errorf("preferred size mismatch (-want +got):\n%s", diff)
	}
}

func TestCalcPreferredSizeAddsPadding(t *testing.T) {
	f := newFixture(t, 2)
	v, _ := f.label(f.root, "hello")
	v.padding = property.Some(geometry.UniformMargin(geometry.DIP(2)))

	got := v.core.CalcPreferredSize()
	if diff := cmp.Diff(geometry.Size{Width: 39, Height: 17}, got); diff != "" {
		t.Errorf("preferred size mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultPaddingAppliesWhenUnset(t *testing.T) {
	f := newFixture(t, 1)
	v, _ := f.label(f.root, "hello", WithDefaultPadding(geometry.SymmetricMargin(geometry.DIP(1), geometry.DIP(3))))

	got := v.core.CalcPreferredSize()
	if diff := cmp.Diff(geometry.Size{Width: 41, Height: 15}, got); diff != "" {
		t.Errorf("preferred size mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(geometry.Margin{Top: 1, Right: 3, Bottom: 1, Left: 3}, v.core.PaddingPixels()); diff != "" {
		t.Errorf("effective padding mismatch (-want +got):\n%s", diff)
	}

	v.padding = property.Some(geometry.UIMargin{})
	if diff := cmp.Diff(geometry.Margin{}, v.core.PaddingPixels()); diff != "" {
		t.Errorf("explicit padding mismatch (-want +got):\n%s", diff)
	}
	got = v.core.CalcPreferredSize()
	if diff := cmp.Diff(geometry.Size{Width: 35, Height: 13}, got); diff != "" {
		t.Errorf("explicit padding should replace the default (-want +got):\n%s", diff)
	}
}

func TestHeightForWidthKeepsWidth(t *testing.T) {
	f := newFixture(t, 1.5)
	v, _ := f.label(f.root, "several words that wrap")
	v.padding = property.Some(geometry.UniformMargin(geometry.DIP(4)))

	for _, w := range []float64{0, 1, 33.3, 60, 1000} {
		got := v.core.CalcPreferredHeightForWidth(w)
		if got.Width != w {
			t.Errorf("CalcPreferredHeightForWidth(%v).Width = %v", w, got.Width)
		}
		if got.Height <= 0 {
			t.Errorf("CalcPreferredHeightForWidth(%v).Height = %v, want positive", w, got.Height)
		}
	}
}

func TestHeightForWidthWrapsNarrowText(t *testing.T) {
	f := newFixture(t, 1)
	v, _ := f.label(f.root, "aa bb cc")

	wide := v.core.CalcPreferredHeightForWidth(100)
	narrow := v.core.CalcPreferredHeightForWidth(30)
	if wide.Height != 13 || narrow.Height != 39 {
		t.Errorf("heights = %v/%v, want 13/39", wide.Height, narrow.Height)
	}
}

func TestWidthForHeightKeepsHeight(t *testing.T) {
	f := newFixture(t, 2)
	v, _ := f.label(f.root, "hello")

	got := v.core.CalcPreferredWidthForHeight(40)
	if diff := cmp.Diff(geometry.Size{Width: 35, Height: 40}, got); diff != "" {
		t.Errorf("width for height mismatch (-want +got):\n%s", diff)
	}
}

func TestNegativeConstraintClampsToZero(t *testing.T) {
	f := newFixture(t, 1)
	v, _ := f.label(f.root, "aa bb")

	got := v.core.CalcPreferredHeightForWidth(-20)
	if got.Width != -20 || got.Height != 26 {
		t.Errorf("CalcPreferredHeightForWidth(-20) = %+v, want width -20 height 26", got)
	}
}

// --- Re-parenting ---

func TestTryChangeParentViewAttachesToNewAncestor(t *testing.T) {
	f := newFixture(t, 1)
	box, boxWidget := f.fixed(f.root)
	v, l := f.label(f.root, "mover")
	f.tk.Journal().Reset()

	v.parent = box
	if !v.core.TryChangeParentView(box) {
		t.Fatal("TryChangeParentView returned false")
	}

	if got := f.tk.Journal().Count(headless.OpPut, boxWidget.Name()); got != 1 {
		t.Errorf("new parent got %d put calls, want 1", got)
	}
	if got := f.tk.Journal().Count(headless.OpRemove, f.window.Name()); got != 1 {
		t.Errorf("old parent got %d remove calls, want 1", got)
	}
	if l.Parent() != native.Container(boxWidget) {
		t.Error("label should now be attached to the box")
	}

	if !v.core.TryChangeParentView(box) {
		t.Fatal("second TryChangeParentView returned false")
	}
	if got := f.tk.Journal().Count(headless.OpPut, boxWidget.Name()); got != 1 {
		t.Errorf("repeating the move made %d put calls, want 1", got)
	}
	if l.Parent() != native.Container(boxWidget) {
		t.Error("label should stay attached to the box")
	}
}

func TestTryChangeParentViewToRootDetaches(t *testing.T) {
	f := newFixture(t, 1)
	v, l := f.label(f.root, "loose")

	v.parent = nil
	if !v.core.TryChangeParentView(nil) {
		t.Fatal("TryChangeParentView returned false")
	}
	if l.Parent() != nil {
		t.Error("widget should be detached after moving to no parent")
	}
}

func TestTryChangeParentViewReportsFailure(t *testing.T) {
	f := newFixture(t, 1)
	leaf, _ := f.label(f.root, "leaf")
	v, l := f.label(f.root, "mover")

	var reported *errors.ViewCoreError
	old := errors.Handler()
	errors.SetHandler(&captureHandler{onError: func(e *errors.ViewCoreError) { reported = e }})
	defer errors.SetHandler(old)

	v.parent = leaf
	if v.core.TryChangeParentView(leaf) {
		t.Fatal("TryChangeParentView under a leaf should fail")
	}
	if reported == nil || !stderrors.Is(reported, ErrNotContainer) {
		t.Errorf("reported %v, want ErrNotContainer", reported)
	}
	if reported != nil && reported.Kind != errors.KindProgramming {
		t.Errorf("reported kind %v, want programming", reported.Kind)
	}
	if l.Parent() != native.Container(f.window) {
		t.Error("failed move must leave the widget where it was")
	}
}

type captureHandler struct {
	onError func(*errors.ViewCoreError)
}

func (h *captureHandler) HandleError(err *errors.ViewCoreError) { h.onError(err) }
func (h *captureHandler) HandlePanic(*errors.PanicError)        {}

// --- Conversion ---

func TestUnitConversionUsesProvider(t *testing.T) {
	f := newFixture(t, 2)
	v, _ := f.label(f.root, "x")

	if got := v.core.UILengthToPixels(geometry.DIP(3)); got != 6 {
		t.Errorf("UILengthToPixels = %d, want 6", got)
	}
	got := v.core.UIMarginToPixelMargin(geometry.UniformMargin(geometry.DIP(1)))
	if diff := cmp.Diff(geometry.Margin{Top: 2, Right: 2, Bottom: 2, Left: 2}, got); diff != "" {
		t.Errorf("margin mismatch (-want +got):\n%s", diff)
	}
}
