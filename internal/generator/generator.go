package generator

import (
	"fmt"
	"io"

	"github.com/rescom/rescom/internal/config"
)

// Generator renders one complete output artifact to a write sink. The
// sink may be memory-backed or a real file; generators never decide.
type Generator interface {
	Generate(w io.Writer) error
}

// Factory builds a generator bound to a configuration.
type Factory func(cfg *config.Config) Generator

// Registry maps generator names to factories, with at most one entry
// flagged as the default. It is constructed explicitly at startup and
// read-only afterwards.
type Registry struct {
	factories   map[string]Factory
	defaultName string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a named factory. When isDefault is true the name
// becomes the registry's default selection.
func (r *Registry) Register(name string, factory Factory, isDefault bool) {
	r.factories[name] = factory
	if isDefault {
		r.defaultName = name
	}
}

// Create instantiates the named generator bound to cfg. An empty name
// selects the registered default.
func (r *Registry) Create(name string, cfg *config.Config) (Generator, error) {
	if name == "" {
		if r.defaultName == "" {
			return nil, fmt.Errorf("no default generator registered")
		}
		name = r.defaultName
	}

	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("generator '%s' not found", name)
	}
	return factory(cfg), nil
}
