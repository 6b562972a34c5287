package sdk

import (
	"errors"

	wapc "github.com/wapc/wapc-guest-tinygo"
)

// DefaultNamespace is used when no explicit namespace is provided.
const DefaultNamespace = "edgekv"

// DefaultEntryPoint is the waPC function name the host invokes to run the guest.
const DefaultEntryPoint = "handler"

// ErrHandlerNil is returned when the provided guest handler is nil.
var ErrHandlerNil = errors.New("guest handler cannot be nil")

// Config provides configuration options for SDK initialization.
type Config struct {
	// Namespace controls the namespace used to scope host capability calls.
	// If empty, DefaultNamespace is used.
	Namespace string

	// EntryPoint is the waPC function name registered for the guest handler.
	// If empty, DefaultEntryPoint is used.
	EntryPoint string

	// Handler receives the payload of each host invocation of the entry point.
	Handler func([]byte) ([]byte, error)
}

// RuntimeConfig carries the runtime settings shared with capability clients.
type RuntimeConfig struct {
	// Namespace is the namespace used to scope host capability calls.
	Namespace string
}

// SDK represents an initialized guest with a registered waPC entry point.
type SDK struct {
	runtime RuntimeConfig
	handler func([]byte) ([]byte, error)
}

// New validates the configuration and registers the handler with waPC.
func New(config Config) (*SDK, error) {
	if config.Handler == nil {
		return nil, ErrHandlerNil
	}

	cfg := RuntimeConfig{Namespace: DefaultNamespace}
	if config.Namespace != "" {
		cfg.Namespace = config.Namespace
	}

	entry := DefaultEntryPoint
	if config.EntryPoint != "" {
		entry = config.EntryPoint
	}

	s := &SDK{runtime: cfg, handler: config.Handler}
	wapc.RegisterFunction(entry, s.handler)

	return s, nil
}

// Config returns the current runtime configuration snapshot.
func (s *SDK) Config() RuntimeConfig { return s.runtime }
