package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-drift/viewcore/pkg/geometry"
	"github.com/go-drift/viewcore/pkg/view"
)

func init() {
	RegisterCommand(&Command{
		Name:  "measure",
		Short: "Print the preferred size of every view",
		Long: `Realize a scene on the headless toolkit and print the preferred size each
view core reports, in abstract units.

With --width the height-for-width size is reported, with --height the
width-for-height size, otherwise the unconstrained size. The two flags are
exclusive.

Flags:
  --width W        Measure each view at width W
  --height H       Measure each view at height H
  --scale S        Display scale, overriding viewcore.yaml
  --config DIR     Read viewcore.yaml from DIR instead of the project root`,
		Usage: "viewcore measure <scene.yaml> [--width W | --height H] [--scale S]",
		Run:   runMeasure,
	})
}

func runMeasure(args []string) error {
	opts, err := parseSceneArgs(args)
	if err != nil {
		return err
	}
	if opts.width >= 0 && opts.height >= 0 {
		return fmt.Errorf("--width and --height are exclusive")
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

	measure := func(v *view.View) geometry.Size {
		switch {
		case opts.width >= 0:
			return v.PreferredHeightForWidth(opts.width)
		case opts.height >= 0:
			return v.PreferredWidthForHeight(opts.height)
		default:
			return v.PreferredSize()
		}
	}
	printSizes(stdout, root, 0, measure)
	return nil
}

func printSizes(w io.Writer, v *view.View, depth int, measure func(*view.View) geometry.Size) {
	size := measure(v)
	fmt.Fprintf(w, "%s%s %gx%g\n", strings.Repeat("  ", depth), v, size.Width, size.Height)
	for _, c := range v.Children() {
		printSizes(w, c, depth+1, measure)
	}
}
