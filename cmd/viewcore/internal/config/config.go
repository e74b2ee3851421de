// Package config loads viewcore.yaml, the optional project configuration
// of the viewcore CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	vcerrors "github.com/go-drift/viewcore/pkg/errors"
	"github.com/go-drift/viewcore/pkg/geometry"
	"github.com/go-drift/viewcore/pkg/property"
)

// FileName is the configuration file looked up in the project root.
const FileName = "viewcore.yaml"

// Config represents the optional viewcore.yaml configuration.
type Config struct {
	App            AppConfig     `yaml:"app"`
	Display        DisplayConfig `yaml:"display"`
	Fonts          FontConfig    `yaml:"fonts"`
	DefaultPadding []string      `yaml:"defaultPadding,omitempty"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
}

// DisplayConfig describes the simulated display.
type DisplayConfig struct {
	Scale     float64 `yaml:"scale,omitempty"`
	TextScale float64 `yaml:"textScale,omitempty"`
}

// FontConfig sets the font sizes em and sem lengths are relative to.
type FontConfig struct {
	Em  float64 `yaml:"em,omitempty"`
	Sem float64 `yaml:"sem,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root           string
	ModulePath     string
	AppName        string
	Scale          float64
	TextScale      float64
	EmSize         float64
	SemSize        float64
	DefaultPadding property.Optional[geometry.UIMargin]
}

// LoadOptional reads viewcore.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads viewcore.yaml (if present) and resolves defaults. Errors
// are *errors.ViewCoreError of kind KindConfig.
func Resolve(dir string) (*Resolved, error) {
	r, err := resolve(dir)
	if err != nil {
		return nil, &vcerrors.ViewCoreError{Op: "config.Resolve", Kind: vcerrors.KindConfig, Err: err}
	}
	return r, nil
}

func resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modulePath, dir)
	}

	r := &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		AppName:    appName,
		Scale:      orDefault(cfg.Display.Scale, 1),
		TextScale:  orDefault(cfg.Display.TextScale, 1),
		EmSize:     cfg.Fonts.Em,
		SemSize:    cfg.Fonts.Sem,
	}
	for name, v := range map[string]float64{
		"display.scale":     r.Scale,
		"display.textScale": r.TextScale,
		"fonts.em":          r.EmSize,
		"fonts.sem":         r.SemSize,
	} {
		if v < 0 {
			return nil, fmt.Errorf("%s must not be negative (got %g)", name, v)
		}
	}

	if len(cfg.DefaultPadding) > 0 {
		m, err := geometry.ParseUIMargin(cfg.DefaultPadding)
		if err != nil {
			return nil, fmt.Errorf("defaultPadding: %w", err)
		}
		r.DefaultPadding = property.Some(m)
	}

	return r, nil
}

// FindProjectRoot walks up from the current directory to the first
// directory holding viewcore.yaml or go.mod. It returns the current
// directory if there is none.
func FindProjectRoot() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for dir := wd; ; {
		for _, name := range []string{FileName, "go.mod"} {
			if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return wd, nil
		}
		dir = parent
	}
}

// modulePath returns the module path of dir's go.mod, or "" without one.
func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modulePath != "" {
		if modName, _, ok := module.SplitPathVersion(modulePath); ok {
			parts := strings.Split(modName, "/")
			base = parts[len(parts)-1]
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "viewcore_app"
	}
	return base
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
