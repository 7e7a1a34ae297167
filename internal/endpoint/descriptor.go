package endpoint

// Descriptor summarizes a resource for catalog listings and docs. It is a
// read-only projection of the Resource definition: callers that only render
// or enumerate the catalog work with descriptors instead of the definitions
// themselves.
type Descriptor struct {
	Name              string
	Path              string
	IDColumn          string
	RoutingParameters []string
	Operations        []string
	RequestStyle      string
	Fields            []FieldDef
}

// Describe builds the descriptor for a resource.
func Describe(r *Resource) Descriptor {
	var operations []string
	if r.CanQuery {
		operations = append(operations, "query")
	}
	if r.CanCreate {
		operations = append(operations, "create")
	}
	if r.CanUpdate {
		operations = append(operations, "update")
	}
	if r.CanDelete {
		operations = append(operations, "delete")
	}

	return Descriptor{
		Name:              r.Name,
		Path:              r.Path,
		IDColumn:          r.IDColumnName(),
		RoutingParameters: r.RoutingParameters(),
		Operations:        operations,
		RequestStyle:      r.RequestStyle,
		Fields:            r.Fields,
	}
}

// Describe returns the descriptor for a registered resource.
func (r *Registry) Describe(name string) (Descriptor, bool) {
	resource, ok := r.Get(name)
	if !ok {
		return Descriptor{}, false
	}
	return Describe(resource), true
}

// Descriptors returns descriptors for every registered resource, sorted by
// name.
func (r *Registry) Descriptors() []Descriptor {
	names := r.List()
	descriptors := make([]Descriptor, 0, len(names))
	for _, name := range names {
		if descriptor, ok := r.Describe(name); ok {
			descriptors = append(descriptors, descriptor)
		}
	}
	return descriptors
}
