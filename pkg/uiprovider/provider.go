// Package uiprovider converts abstract lengths to native pixels.
//
// A Provider is passed explicitly to every core; there is no process-wide
// instance. Conversions read the scale factor live from the widget because
// it changes when a window moves between monitors.
package uiprovider

import (
	"gioui.org/unit"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/go-drift/viewcore/pkg/geometry"
	"github.com/go-drift/viewcore/pkg/native"
)

// Provider converts abstract lengths for a given widget.
type Provider interface {
	// PixelsForLength converts l to native pixels for w.
	PixelsForLength(w native.Widget, l geometry.UILength) int
	// PixelMarginForMargin converts every side of m to native pixels for w.
	PixelMarginForMargin(w native.Widget, m geometry.UIMargin) geometry.Margin
}

// Metrics is the default Provider.
//
// DIP lengths scale by the widget's scale factor. SEM lengths are multiples
// of SemSize, further scaled by TextScale like scalable font units. EM
// lengths are multiples of the widget's own font size when the widget is a
// native.FontSizer and of EmSize otherwise.
type Metrics struct {
	// TextScale is the user's text-size preference; 1 is the default.
	TextScale float64
	// EmSize is the fallback font size in abstract units.
	EmSize float64
	// SemSize is the system font size in abstract units.
	SemSize float64
}

// Option configures Metrics.
type Option func(*Metrics)

// WithTextScale sets the text scale.
func WithTextScale(s float64) Option {
	return func(m *Metrics) { m.TextScale = s }
}

// WithEmSize sets the fallback em size.
func WithEmSize(size float64) Option {
	return func(m *Metrics) { m.EmSize = size }
}

// WithSemSize sets the system em size.
func WithSemSize(size float64) Option {
	return func(m *Metrics) { m.SemSize = size }
}

// WithFace derives both em sizes from the line height of face.
func WithFace(face font.Face) Option {
	return func(m *Metrics) {
		h := FaceSize(face)
		m.EmSize = h
		m.SemSize = h
	}
}

// NewMetrics returns Metrics sized from basicfont.Face7x13 unless
// overridden.
func NewMetrics(opts ...Option) *Metrics {
	h := FaceSize(basicfont.Face7x13)
	m := &Metrics{TextScale: 1, EmSize: h, SemSize: h}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// FaceSize returns the line height of face in abstract units.
func FaceSize(face font.Face) float64 {
	return float64(face.Metrics().Height.Ceil())
}

// PixelsForLength implements Provider.
func (m *Metrics) PixelsForLength(w native.Widget, l geometry.UILength) int {
	metric := m.metric(w)
	switch l.Unit {
	case geometry.UnitDIP:
		return metric.Dp(unit.Dp(l.Value))
	case geometry.UnitSEM:
		return metric.Sp(unit.Sp(l.Value * m.SemSize))
	case geometry.UnitEM:
		em := m.EmSize
		if fs, ok := w.(native.FontSizer); ok {
			em = fs.FontSize()
		}
		return metric.Sp(unit.Sp(l.Value * em))
	default:
		return 0
	}
}

// PixelMarginForMargin implements Provider.
func (m *Metrics) PixelMarginForMargin(w native.Widget, margin geometry.UIMargin) geometry.Margin {
	return geometry.Margin{
		Top:    m.PixelsForLength(w, margin.Top),
		Right:  m.PixelsForLength(w, margin.Right),
		Bottom: m.PixelsForLength(w, margin.Bottom),
		Left:   m.PixelsForLength(w, margin.Left),
	}
}

func (m *Metrics) metric(w native.Widget) unit.Metric {
	scale := float32(w.ScaleFactor())
	textScale := float32(m.TextScale)
	if textScale == 0 {
		textScale = 1
	}
	return unit.Metric{PxPerDp: scale, PxPerSp: scale * textScale}
}
