package uiprovider

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/viewcore/pkg/geometry"
	"github.com/go-drift/viewcore/pkg/native"
	"github.com/go-drift/viewcore/pkg/native/headless"
)

func TestPixelsForLength(t *testing.T) {
	tk := headless.New(headless.WithScaleFactor(2))
	label := tk.NewLabel("x")
	fixed := tk.NewFixed()

	tests := []struct {
		name    string
		metrics *Metrics
		widget  native.Widget
		length  geometry.UILength
		want    int
	}{
		{"dip", NewMetrics(), fixed, geometry.DIP(5), 10},
		{"none", NewMetrics(), fixed, geometry.UILength{Value: 99}, 0},
		{"sem", NewMetrics(WithSemSize(10)), fixed, geometry.SEM(1.5), 30},
		{"sem text scale", NewMetrics(WithSemSize(10), WithTextScale(1.5)), fixed, geometry.SEM(1), 30},
		{"em fallback", NewMetrics(WithEmSize(8)), fixed, geometry.EM(2), 32},
		{"em from widget font", NewMetrics(WithEmSize(8)), label, geometry.EM(2), 52},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.metrics.PixelsForLength(tt.widget, tt.length); got != tt.want {
				t.Errorf("PixelsForLength(%v) = %d, want %d", tt.length, got, tt.want)
			}
		})
	}
}

func TestPixelsFollowLiveScale(t *testing.T) {
	tk := headless.New()
	w := tk.NewFixed()
	m := NewMetrics()

	if got := m.PixelsForLength(w, geometry.DIP(10)); got != 10 {
		t.Fatalf("at scale 1 got %d, want 10", got)
	}
	tk.SetScaleFactor(3)
	if got := m.PixelsForLength(w, geometry.DIP(10)); got != 30 {
		t.Errorf("at scale 3 got %d, want 30", got)
	}
}

func TestPixelMarginForMargin(t *testing.T) {
	tk := headless.New(headless.WithScaleFactor(2))
	w := tk.NewFixed()
	m := NewMetrics()

	got := m.PixelMarginForMargin(w, geometry.SymmetricMargin(geometry.DIP(1), geometry.DIP(3)))
	want := geometry.Margin{Top: 2, Right: 6, Bottom: 2, Left: 6}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("margin mismatch (-want +got):\n%s", diff)
	}
}

func TestNewMetricsDefaultsFromFace(t *testing.T) {
	m := NewMetrics()
	if m.EmSize != 13 || m.SemSize != 13 || m.TextScale != 1 {
		t.Errorf("defaults = %+v, want em=13 sem=13 textScale=1", *m)
	}
}
