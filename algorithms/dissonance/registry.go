package dissonance

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Registry maps model names to model implementations. It is read-only once
// built, so one registry can be shared by any number of goroutines.
type Registry struct {
	models map[string]Model
}

// NewRegistry builds a registry from models. Names must be non-empty and unique.
func NewRegistry(models ...Model) (*Registry, error) {
	r := &Registry{models: make(map[string]Model, len(models))}
	for _, m := range models {
		if m == nil {
			return nil, fmt.Errorf("%w: nil model", ErrInvalidModel)
		}
		name := m.Name()
		if name == "" {
			return nil, fmt.Errorf("%w: empty model name", ErrInvalidModel)
		}
		if _, exists := r.models[name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateModel, name)
		}
		r.models[name] = m
	}
	return r, nil
}

// Models returns one instance of every published model
func Models() []Model {
	return []Model{
		Sethares1993{},
		Vassilakis2001{},
		Cook2002{},
		Cook2006{},
		Cook2009{},
	}
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	r, err := NewRegistry(Models()...)
	if err != nil {
		panic(fmt.Sprintf("dissonance: building default registry: %v", err))
	}
	return r
})

// DefaultRegistry returns the registry of the published models. It is built
// on first use and never modified afterwards.
func DefaultRegistry() *Registry {
	return defaultRegistry()
}

// Resolve looks a model up by exact name. Misses return *UnknownModelError.
func (r *Registry) Resolve(name string) (Model, error) {
	m, ok := r.models[name]
	if !ok {
		return nil, &UnknownModelError{Name: name}
	}
	return m, nil
}

// Names returns the registered names in sorted order
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.models))
}

// Len returns the number of registered models
func (r *Registry) Len() int {
	return len(r.models)
}

// SupportedModels returns the names of the published models
func SupportedModels() []string {
	return DefaultRegistry().Names()
}

// ResolveModel resolves name against the default registry
func ResolveModel(name string) (Model, error) {
	return DefaultRegistry().Resolve(name)
}
