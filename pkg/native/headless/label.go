package headless

import (
	"math"
	"strings"

	"golang.org/x/image/font"

	"github.com/go-drift/viewcore/pkg/geometry"
	"github.com/go-drift/viewcore/pkg/native"
)

// Label is a text widget. Its natural size is the text measured with the
// toolkit's font face, scaled to native pixels. Height-for-width queries
// word-wrap the text.
type Label struct {
	widget
	text string
}

// NewLabel returns a label showing text.
func (tk *Toolkit) NewLabel(text string) *Label {
	l := &Label{text: text}
	l.init(tk, tk.newName("label"))
	l.content = l.measureText
	return l
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
}

// FontSize returns the face's line height in abstract units.
func (l *Label) FontSize() float64 {
	return float64(l.tk.face.Metrics().Height.Ceil())
}

func (l *Label) measureText(m native.Measurement) (minimum, natural geometry.PixelSize) {
	scale := l.ScaleFactor()
	face := l.tk.face
	lineHeight := l.FontSize()
	text := l.Text()
	words := strings.Fields(text)

	wordWidth := 0.0
	for _, w := range words {
		wordWidth = math.Max(wordWidth, advance(face, w))
	}
	lineWidth := advance(face, text)

	minimum = geometry.PixelSize{
		Width:  int(math.Ceil(wordWidth * scale)),
		Height: int(math.Ceil(lineHeight * scale)),
	}

	if m.ForWidth >= 0 {
		avail := float64(m.ForWidth) / scale
		lines := wrap(face, words, avail)
		natural = geometry.PixelSize{
			Width:  m.ForWidth,
			Height: int(math.Ceil(float64(lines) * lineHeight * scale)),
		}
		return minimum, natural
	}

	natural = geometry.PixelSize{
		Width:  int(math.Ceil(lineWidth * scale)),
		Height: minimum.Height,
	}
	if m.ForHeight >= 0 {
		natural.Height = m.ForHeight
	}
	return minimum, natural
}

// advance returns the width of s in abstract units.
func advance(face font.Face, s string) float64 {
	return float64(font.MeasureString(face, s).Ceil())
}

// wrap returns the number of lines words occupy when broken greedily at
// avail. A word wider than avail gets a line of its own.
func wrap(face font.Face, words []string, avail float64) int {
	if len(words) == 0 {
		return 1
	}
	space := advance(face, " ")
	lines := 1
	cur := 0.0
	for _, w := range words {
		ww := advance(face, w)
		switch {
		case cur == 0:
			cur = ww
		case cur+space+ww <= avail:
			cur += space + ww
		default:
			lines++
			cur = ww
		}
	}
	return lines
}
