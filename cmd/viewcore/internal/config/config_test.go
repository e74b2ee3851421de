package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	vcerrors "github.com/go-drift/viewcore/pkg/errors"
	"github.com/go-drift/viewcore/pkg/geometry"
	"github.com/go-drift/viewcore/pkg/property"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/tools/scenes/v2\n\ngo 1.24\n")

	got, err := Resolve(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := &Resolved{
		Root:       dir,
		ModulePath: "example.com/tools/scenes/v2",
		AppName:    "scenes",
		Scale:      1,
		TextScale:  1,
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(property.Optional[geometry.UIMargin]{})); diff != "" {
		t.Errorf("Resolve mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveWithoutGoMod(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "demo")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := Resolve(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got.ModulePath != "" || got.AppName != "demo" {
		t.Errorf("got module %q app %q, want empty module and app demo", got.ModulePath, got.AppName)
	}
}

func TestResolveFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, `
app:
  name: gallery
display:
  scale: 2
  textScale: 1.25
fonts:
  em: 16
defaultPadding: ["4", "0.5em"]
`)

	got, err := Resolve(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got.AppName != "gallery" || got.Scale != 2 || got.TextScale != 1.25 || got.EmSize != 16 || got.SemSize != 0 {
		t.Errorf("unexpected resolved config: %+v", got)
	}
	pad, ok := got.DefaultPadding.Get()
	if !ok {
		t.Fatal("default padding not set")
	}
	if diff := cmp.Diff(geometry.SymmetricMargin(geometry.DIP(4), geometry.EM(0.5)), pad); diff != "" {
		t.Errorf("padding mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed yaml", "display: [1"},
		{"negative scale", "display:\n  scale: -1\n"},
		{"bad padding", "defaultPadding: [\"1\", \"2\", \"3\"]\n"},
		{"bad length", "defaultPadding: [\"wide\"]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, FileName, tt.content)

			_, err := Resolve(dir)
			var vce *vcerrors.ViewCoreError
			if !errors.As(err, &vce) {
				t.Fatalf("Resolve() error = %v, want a ViewCoreError", err)
			}
			if vce.Kind != vcerrors.KindConfig {
				t.Errorf("kind = %v, want config", vce.Kind)
			}
		})
	}
}

func TestDefaultAppName(t *testing.T) {
	tests := []struct {
		modulePath, dir, want string
	}{
		{"github.com/acme/widgets", "/src/x", "widgets"},
		{"github.com/acme/widgets/v3", "/src/x", "widgets"},
		{"", "/src/gallery", "gallery"},
		{"", "/", "viewcore_app"},
	}
	for _, tt := range tests {
		if got := defaultAppName(tt.modulePath, tt.dir); got != tt.want {
			t.Errorf("defaultAppName(%q, %q) = %q, want %q", tt.modulePath, tt.dir, got, tt.want)
		}
	}
}
