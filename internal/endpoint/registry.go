package endpoint

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds resource definitions indexed by catalog name.
type Registry struct {
	resources map[string]*Resource
	mu        sync.RWMutex
}

// NewRegistry creates an empty resource registry.
func NewRegistry() *Registry {
	return &Registry{
		resources: make(map[string]*Resource),
	}
}

// Register adds a resource definition.
// Panics if the name is already registered.
func (r *Registry) Register(resource *Resource) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.resources[resource.Name]; exists {
		panic(fmt.Sprintf("resource already registered: %s", resource.Name))
	}
	r.resources[resource.Name] = resource
}

// Get returns the resource for the given name.
func (r *Registry) Get(name string) (*Resource, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	resource, ok := r.resources[name]
	return resource, ok
}

// List returns all registered resource names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.resources))
	for name := range r.resources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MustGet returns the resource or panics when it is not registered.
func (r *Registry) MustGet(name string) *Resource {
	resource, ok := r.Get(name)
	if !ok {
		panic(fmt.Sprintf("unknown resource: %s", name))
	}
	return resource
}

// --- Default Global Registry ---

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the global resource registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register adds a resource to the default registry.
func Register(resource *Resource) {
	defaultRegistry.Register(resource)
}
