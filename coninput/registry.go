package coninput

import (
	"errors"
	"fmt"
	"sort"
)

// Factory builds one registered type from an ordered argument list. Params
// declares what the Builder must collect, in order; New receives the
// collected values in that same order and returns the constructed value.
type Factory struct {
	Params []Param
	New    func(args []any) (any, error)
}

// Registry maps type names to factories. A Type of KindObject resolves
// here by its Name; a missing entry is the no-constructor failure. The
// zero value is not usable, call NewRegistry. Mutation is not synchronized
// because the interaction model is single-threaded by contract.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory under name. Registering the same name twice is
// an error so two embedders cannot silently replace each other's types.
func (r *Registry) Register(name string, f Factory) error {
	if name == "" {
		return errors.New("factory name must not be empty")
	}
	if f.New == nil {
		return fmt.Errorf("factory for %s has a nil constructor", name)
	}
	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("factory already registered for type: %s", name)
	}
	r.factories[name] = f
	return nil
}

// Lookup returns the factory registered under name.
func (r *Registry) Lookup(name string) (Factory, bool) {
	f, ok := r.factories[name]
	return f, ok
}

// Names returns the registered type names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered factories.
func (r *Registry) Len() int {
	return len(r.factories)
}

// Reset drops every registration.
func (r *Registry) Reset() {
	clear(r.factories)
}
