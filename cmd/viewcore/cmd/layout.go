package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-drift/viewcore/pkg/geometry"
	"github.com/go-drift/viewcore/pkg/view"
)

// defaultWidth is the root width used without --width.
const defaultWidth = 320

func init() {
	RegisterCommand(&Command{
		Name:  "layout",
		Short: "Lay out a scene and print the bounds",
		Long: `Realize a scene on the headless toolkit, give the root the requested size
and run the layouts. Prints every view with its bounds in abstract units.

Without --height the root gets the height its layout asks for at the width.

Flags:
  --width W        Root width (default 320)
  --height H       Root height (default: preferred height at the width)
  --scale S        Display scale, overriding viewcore.yaml
  --config DIR     Read viewcore.yaml from DIR instead of the project root
  --journal        Also print the native calls the layout caused`,
		Usage: "viewcore layout <scene.yaml> [--width W] [--height H] [--scale S] [--journal]",
		Run:   runLayout,
	})
}

func runLayout(args []string) error {
	opts, err := parseSceneArgs(args)
	if err != nil {
		return err
	}
	s, err := newSession(opts)
	if err != nil {
		return err
	}
	root, err := s.load(opts.path)
	if err != nil {
		return err
	}
	defer root.Close()

	width := opts.width
	if width < 0 {
		width = defaultWidth
	}
	height := opts.height
	if height < 0 {
		height = root.PreferredHeight(width)
	}

	s.tk.Journal().Reset()
	root.SetBounds(geometry.Rect{Width: width, Height: height})
	root.Layout()

	printTree(stdout, root, 0)
	if opts.journal {
		fmt.Fprintln(stdout)
		for _, c := range s.tk.Journal().Calls() {
			fmt.Fprintln(stdout, c)
		}
	}
	return nil
}

func printTree(w io.Writer, v *view.View, depth int) {
	b := v.Bounds()
	fmt.Fprintf(w, "%s%s %g,%g %gx%g", strings.Repeat("  ", depth), v, b.X, b.Y, b.Width, b.Height)
	if !v.Visible() {
		fmt.Fprint(w, " hidden")
	}
	fmt.Fprintln(w)
	for _, c := range v.Children() {
		printTree(w, c, depth+1)
	}
}
