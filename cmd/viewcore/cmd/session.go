package cmd

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"

	"github.com/go-drift/viewcore/cmd/viewcore/internal/config"
	"github.com/go-drift/viewcore/cmd/viewcore/internal/scene"
	"github.com/go-drift/viewcore/pkg/core"
	"github.com/go-drift/viewcore/pkg/errors"
	"github.com/go-drift/viewcore/pkg/native/headless"
	"github.com/go-drift/viewcore/pkg/platform"
	"github.com/go-drift/viewcore/pkg/uiprovider"
	"github.com/go-drift/viewcore/pkg/view"
)

// sceneOptions are the flags shared by the scene commands.
type sceneOptions struct {
	path      string
	configDir string
	width     float64
	height    float64
	scale     float64
	journal   bool
}

func parseSceneArgs(args []string) (sceneOptions, error) {
	opts := sceneOptions{width: -1, height: -1}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, value, hasValue := strings.Cut(arg, "=")
		next := func() (string, error) {
			if hasValue {
				return value, nil
			}
			if i+1 >= len(args) {
				return "", fmt.Errorf("%s requires a value", name)
			}
			i++
			return args[i], nil
		}
		number := func(dst *float64) error {
			s, err := next()
			if err != nil {
				return err
			}
			v, err := strconv.ParseFloat(s, 64)
			if err != nil || v < 0 {
				return fmt.Errorf("%s must be a non-negative number (got %q)", name, s)
			}
			*dst = v
			return nil
		}

		var err error
		switch name {
		case "--width":
			err = number(&opts.width)
		case "--height":
			err = number(&opts.height)
		case "--scale":
			err = number(&opts.scale)
		case "--config":
			opts.configDir, err = next()
		case "--journal":
			opts.journal = true
		default:
			if strings.HasPrefix(arg, "-") {
				return opts, fmt.Errorf("unknown flag: %s", arg)
			}
			if opts.path != "" {
				return opts, fmt.Errorf("unexpected argument: %s", arg)
			}
			opts.path = arg
		}
		if err != nil {
			return opts, err
		}
	}
	if opts.path == "" {
		return opts, fmt.Errorf("scene file is required")
	}
	return opts, nil
}

// session is a headless toolkit with a core registry configured from
// viewcore.yaml.
type session struct {
	cfg *config.Resolved
	log logr.Logger
	tk  *headless.Toolkit
	reg *core.Registry
}

func newLogger() logr.Logger {
	stdr.SetVerbosity(verbosity)
	return stdr.New(log.New(os.Stderr, "", log.LstdFlags))
}

func newSession(opts sceneOptions) (*session, error) {
	root := opts.configDir
	if root == "" {
		var err error
		if root, err = config.FindProjectRoot(); err != nil {
			return nil, err
		}
	}
	cfg, err := config.Resolve(root)
	if err != nil {
		return nil, err
	}
	if opts.scale > 0 {
		cfg.Scale = opts.scale
	}

	logger := newLogger()
	errors.SetHandler(&errors.LogHandler{Logger: logger.WithName("errors"), Verbose: verbosity > 0})

	metricOpts := []uiprovider.Option{uiprovider.WithTextScale(cfg.TextScale)}
	if cfg.EmSize > 0 {
		metricOpts = append(metricOpts, uiprovider.WithEmSize(cfg.EmSize))
	}
	if cfg.SemSize > 0 {
		metricOpts = append(metricOpts, uiprovider.WithSemSize(cfg.SemSize))
	}
	coreOpts := []core.Option{core.WithLogger(logger.WithName("core"))}
	if pad, ok := cfg.DefaultPadding.Get(); ok {
		coreOpts = append(coreOpts, core.WithDefaultPadding(pad))
	}

	s := &session{
		cfg: cfg,
		log: logger,
		tk:  headless.New(headless.WithScaleFactor(cfg.Scale)),
	}
	s.reg = core.NewRegistry(uiprovider.NewMetrics(metricOpts...), coreOpts...)
	platform.RegisterHeadless(s.reg, s.tk)
	logger.V(1).Info("session", "app", cfg.AppName, "root", cfg.Root, "scale", cfg.Scale)
	return s, nil
}

// load builds and realizes the scene at path.
func (s *session) load(path string) (*view.View, error) {
	n, err := scene.LoadFile(path)
	if err != nil {
		return nil, &errors.ViewCoreError{Op: "scene.Load", Kind: errors.KindConfig, Err: err}
	}
	root, err := n.Build(view.WithLogger(s.log.WithName("view")))
	if err != nil {
		return nil, err
	}
	if err := realize(root, s.reg); err != nil {
		return nil, err
	}
	return root, nil
}

// realize turns programming errors raised while creating cores into
// errors, so a malformed scene fails the command instead of crashing it.
func realize(root *view.View, reg *core.Registry) (err error) {
	defer func() {
		if r := recover(); r != nil {
			pe, ok := errors.AsProgrammingError(r)
			if !ok {
				panic(r)
			}
			err = pe
		}
	}()
	return root.Realize(reg)
}
