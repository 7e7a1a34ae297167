package endpoint

import (
	"fmt"
	"strings"
)

// Request styles understood by the backends.
const (
	// RequestStyleStandard is the backend's default write flow.
	RequestStyleStandard = ""

	// RequestStyleRelationships builds relationships-only JSON:API payloads
	// (membership resources).
	RequestStyleRelationships = "relationships"

	// RequestStyleImport reads the created id from the Location response
	// header instead of a body (v1 import jobs).
	RequestStyleImport = "import"
)

// FieldDef defines a schema field exposed by a resource.
type FieldDef struct {
	Name     string
	DataType string
	Nullable bool
	Comment  string
}

// Resource is the declarative schema for one remote Snyk resource.
// Instances are constructed once in a backend's catalog and treated as
// immutable afterwards.
type Resource struct {
	// Name is the catalog identifier (e.g. "snyk.projects").
	Name string

	// Path is the endpoint path template relative to the backend base URL.
	// Segments like {org_id} are routing parameters substituted from query
	// conditions or request data (e.g. "orgs/{org_id}/projects").
	Path string

	// IDColumn is the record field addressing one instance (default "id").
	IDColumn string

	// Type is the JSON:API resource type used in write payloads
	// (e.g. "project"). Empty for resources that are never written.
	Type string

	// Fields lists the static schema fields, model-side naming.
	Fields []FieldDef

	// APIToModel renames API fields to model fields during record mapping
	// (e.g. "type" -> "project_type").
	APIToModel map[string]string

	// RequestStyle selects how the backend builds and interprets write
	// requests for this resource. The zero value is the backend's standard
	// flow; see the RequestStyle constants.
	RequestStyle string

	// Capability flags. Operations outside the granted set are rejected
	// before any request is issued.
	CanQuery  bool
	CanCreate bool
	CanUpdate bool
	CanDelete bool
}

// RoutingParameters returns the placeholder names in the path template,
// in order of appearance.
func (r *Resource) RoutingParameters() []string {
	var params []string
	path := r.Path
	for {
		start := strings.Index(path, "{")
		if start < 0 {
			return params
		}
		end := strings.Index(path[start:], "}")
		if end < 0 {
			return params
		}
		params = append(params, path[start+1:start+end])
		path = path[start+end+1:]
	}
}

// ResolvePath substitutes routing parameters from the given values and
// returns the concrete path plus the names of the parameters consumed.
// A missing routing value is an error: the request cannot be routed.
func (r *Resource) ResolvePath(values map[string]string) (string, []string, error) {
	path := r.Path
	var used []string
	for _, param := range r.RoutingParameters() {
		value, ok := values[param]
		if !ok || value == "" {
			return "", nil, fmt.Errorf("resource %s: missing routing parameter %q for path %q", r.Name, param, r.Path)
		}
		path = strings.ReplaceAll(path, "{"+param+"}", value)
		used = append(used, param)
	}
	return path, used, nil
}

// IDColumnName returns the configured id column, defaulting to "id".
func (r *Resource) IDColumnName() string {
	if r.IDColumn == "" {
		return "id"
	}
	return r.IDColumn
}
