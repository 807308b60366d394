package provider

import (
	"fmt"
	"sort"
)

// Factory builds a provider from configuration.
type Factory func(cfg Config) Provider

// Registry maps datasource names to factories.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory under name, replacing any previous one.
func (r *Registry) Register(name string, f Factory) {
	r.factories[name] = f
}

// Names returns the registered datasource names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the provider registered under name.
func (r *Registry) New(name string, cfg Config) (Provider, error) {
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown datasource %q (available: %v)", name, r.Names())
	}
	return f(cfg), nil
}
