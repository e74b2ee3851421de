package core

import (
	"errors"

	"github.com/go-logr/logr"

	"github.com/go-drift/viewcore/pkg/geometry"
	"github.com/go-drift/viewcore/pkg/property"
)

// Sentinel errors for core-tree invariants.
var (
	// ErrNoParentCore is returned when a view has a parent but no ancestor
	// has a core to attach to.
	ErrNoParentCore = errors.New("core: view has a parent but no ancestor core")

	// ErrNotContainer is returned when the nearest ancestor core cannot hold
	// children.
	ErrNotContainer = errors.New("core: ancestor core does not support child views")

	// ErrViewTypeNotFound is returned when no factory is registered for a
	// view kind.
	ErrViewTypeNotFound = errors.New("core: view kind not registered")
)

// Option configures a core.
type Option func(*options)

type options struct {
	log            logr.Logger
	defaultPadding property.Optional[geometry.UIMargin]
}

// WithLogger sets the logger. Attach and reposition calls are logged at V(1).
func WithLogger(log logr.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithDefaultPadding sets the padding used in measurement when the view
// sets none. It is converted with the core's provider on every use, so it
// follows scale factor changes.
func WithDefaultPadding(m geometry.UIMargin) Option {
	return func(o *options) { o.defaultPadding = property.Some(m) }
}
