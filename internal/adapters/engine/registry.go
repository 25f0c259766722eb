package engine

import (
	"maps"
	"slices"
	"sync"

	"go.trai.ch/reform/internal/core/domain"
	"go.trai.ch/reform/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.EngineFactory = (*Registry)(nil)

// Constructor builds an engine from its configuration.
type Constructor func(cfg domain.EngineConfig) (ports.TransformEngine, error)

// Registry maps engine kinds to constructors.
type Registry struct {
	mu    sync.RWMutex
	ctors map[string]Constructor
}

// NewRegistry creates a Registry with the built-in normalize and command engines.
func NewRegistry(logger ports.Logger) *Registry {
	r := &Registry{ctors: make(map[string]Constructor)}

	normalizer := NewNormalizer()
	r.Register(domain.EngineNormalize, func(domain.EngineConfig) (ports.TransformEngine, error) {
		return normalizer, nil
	})
	r.Register(domain.EngineCommand, func(cfg domain.EngineConfig) (ports.TransformEngine, error) {
		return NewCommand(cfg.Command, logger)
	})

	return r
}

// Register adds or replaces the constructor for kind.
func (r *Registry) Register(kind string, ctor Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ctors[kind] = ctor
}

// Kinds returns the registered engine kinds in sorted order.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.ctors))
}

// New builds the engine selected by cfg.Kind. An empty kind selects normalize.
func (r *Registry) New(cfg domain.EngineConfig) (ports.TransformEngine, error) {
	kind := cfg.Kind
	if kind == "" {
		kind = domain.EngineNormalize
	}

	r.mu.RLock()
	ctor, ok := r.ctors[kind]
	r.mu.RUnlock()

	if !ok {
		return nil, zerr.With(domain.ErrUnknownEngine, "engine", kind)
	}
	return ctor(cfg)
}
