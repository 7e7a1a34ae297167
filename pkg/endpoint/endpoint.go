// Package endpoint provides the public API for Snyk resource access.
package endpoint

import (
	"fmt"

	internal "github.com/nucleus/snyk-core/internal/endpoint"
)

// Re-export types for external use
type (
	Record          = internal.Record
	Iterator[T any] = internal.Iterator[T]
	Backend         = internal.Backend
	Resource        = internal.Resource
	FieldDef        = internal.FieldDef
	Query           = internal.Query
	Descriptor      = internal.Descriptor
	Registry        = internal.Registry
	ValidationError = internal.ValidationError
)

// Request styles understood by the backends.
const (
	RequestStyleStandard      = internal.RequestStyleStandard
	RequestStyleRelationships = internal.RequestStyleRelationships
	RequestStyleImport        = internal.RequestStyleImport
)

// DefaultRegistry returns the global resource registry.
func DefaultRegistry() *Registry {
	return internal.DefaultRegistry()
}

// NewQuery builds a query against a registered resource.
func NewQuery(resourceName string) (*Query, error) {
	resource, ok := DefaultRegistry().Get(resourceName)
	if !ok {
		return nil, fmt.Errorf("unknown resource: %s", resourceName)
	}
	return internal.NewQuery(resource), nil
}

// Describe returns the descriptor for a registered resource.
func Describe(resourceName string) (Descriptor, bool) {
	return DefaultRegistry().Describe(resourceName)
}

// Resources returns descriptors for every registered resource, sorted by
// name.
func Resources() []Descriptor {
	return DefaultRegistry().Descriptors()
}
