// Package headless is an in-memory native toolkit.
//
// Widgets behave like their GTK counterparts where layout is concerned:
// invisible widgets measure as zero, a size request pins the reported size,
// and containers position children absolutely. Every mutating call is
// recorded in the toolkit's Journal, which makes the package the backing
// toolkit for tests and for the viewcore CLI.
package headless

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Toolkit owns the shared state of a set of headless widgets.
type Toolkit struct {
	mu      sync.RWMutex
	scale   float64
	face    font.Face
	journal Journal
	nextID  int
}

// Option configures a Toolkit.
type Option func(*Toolkit)

// WithScaleFactor sets the initial scale factor. The default is 1.
func WithScaleFactor(scale float64) Option {
	return func(tk *Toolkit) { tk.scale = scale }
}

// WithFace sets the font face labels are measured with. The default is
// basicfont.Face7x13.
func WithFace(face font.Face) Option {
	return func(tk *Toolkit) { tk.face = face }
}

// New returns a toolkit.
func New(opts ...Option) *Toolkit {
	tk := &Toolkit{
		scale: 1,
		face:  basicfont.Face7x13,
	}
	for _, opt := range opts {
		opt(tk)
	}
	return tk
}

// ScaleFactor returns the current scale factor shared by all widgets.
func (tk *Toolkit) ScaleFactor() float64 {
	tk.mu.RLock()
	defer tk.mu.RUnlock()
	return tk.scale
}

// SetScaleFactor changes the scale factor, as when a window moves to a
// monitor with a different density.
func (tk *Toolkit) SetScaleFactor(scale float64) {
	tk.mu.Lock()
	tk.scale = scale
	tk.mu.Unlock()
}

// Face returns the font face used to measure text.
func (tk *Toolkit) Face() font.Face {
	return tk.face
}

// Journal returns the call journal.
func (tk *Toolkit) Journal() *Journal {
	return &tk.journal
}

func (tk *Toolkit) newName(prefix string) string {
	tk.mu.Lock()
	defer tk.mu.Unlock()
	tk.nextID++
	return fmt.Sprintf("%s#%d", prefix, tk.nextID)
}
