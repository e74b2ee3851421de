// Package scene reads view trees from YAML.
//
//	kind: window
//	text: Inbox
//	padding: 8
//	children:
//	  - kind: label
//	    text: No new messages
//	    padding: [2, 1em]
//
// Padding takes one length or a list of one, two or four lengths in CSS
// order. Column views stack their children; other views may set
// "layout: column" to do the same.
package scene

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/viewcore/pkg/core"
	"github.com/go-drift/viewcore/pkg/geometry"
	"github.com/go-drift/viewcore/pkg/view"
)

// LayoutColumn is the only named layout.
const LayoutColumn = "column"

// ErrInvalid wraps every validation error.
var ErrInvalid = errors.New("invalid scene")

// Node is one view of a scene.
type Node struct {
	Kind     string  `yaml:"kind"`
	Text     string  `yaml:"text,omitempty"`
	Hidden   bool    `yaml:"hidden,omitempty"`
	Padding  Margin  `yaml:"padding,omitempty"`
	Layout   string  `yaml:"layout,omitempty"`
	Spacing  float64 `yaml:"spacing,omitempty"`
	Children []*Node `yaml:"children,omitempty"`
}

// Margin is a padding read from one length or a list of lengths.
type Margin struct {
	Set    bool
	Margin geometry.UIMargin
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *Margin) UnmarshalYAML(n *yaml.Node) error {
	var parts []string
	switch n.Kind {
	case yaml.ScalarNode:
		parts = strings.Fields(n.Value)
	case yaml.SequenceNode:
		if err := n.Decode(&parts); err != nil {
			return err
		}
	default:
		return fmt.Errorf("line %d: padding must be a length or a list of lengths", n.Line)
	}
	margin, err := geometry.ParseUIMargin(parts)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	m.Set, m.Margin = true, margin
	return nil
}

// Load decodes and validates a scene. Unknown fields are errors.
func Load(r io.Reader) (*Node, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var root Node
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalid)
		}
		return nil, err
	}
	if err := root.validate("root"); err != nil {
		return nil, err
	}
	return &root, nil
}

// LoadFile loads the scene stored at path.
func LoadFile(path string) (*Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	n, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}

func (n *Node) validate(path string) error {
	if n.Kind == "" {
		return fmt.Errorf("%w: %s has no kind", ErrInvalid, path)
	}
	if n.Layout != "" && n.Layout != LayoutColumn {
		return fmt.Errorf("%w: %s has unknown layout %q", ErrInvalid, path, n.Layout)
	}
	if n.Spacing < 0 {
		return fmt.Errorf("%w: %s has negative spacing", ErrInvalid, path)
	}
	for i, c := range n.Children {
		if c == nil {
			return fmt.Errorf("%w: %s.children[%d] is empty", ErrInvalid, path, i)
		}
		if err := c.validate(fmt.Sprintf("%s.children[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}

// Build creates the unrealized view tree of n. Extra options are applied
// to every view.
func (n *Node) Build(opts ...view.Option) (*view.View, error) {
	vopts := append([]view.Option{}, opts...)
	if n.Text != "" {
		vopts = append(vopts, view.WithText(n.Text))
	}
	if n.Hidden {
		vopts = append(vopts, view.Hidden())
	}
	if n.Padding.Set {
		vopts = append(vopts, view.WithPadding(n.Padding.Margin))
	}
	if n.Layout == LayoutColumn || (n.Layout == "" && n.Kind == core.KindColumn) {
		vopts = append(vopts, view.WithLayout(view.Column{Spacing: n.Spacing}))
	}

	v := view.New(n.Kind, vopts...)
	for _, c := range n.Children {
		child, err := c.Build(opts...)
		if err != nil {
			return nil, err
		}
		if err := v.AddChild(child); err != nil {
			return nil, err
		}
	}
	return v, nil
}
