package snykrest

import "github.com/nucleus/snyk-core/internal/endpoint"

// init registers every REST catalog resource with the global registry.
func init() {
	for _, resource := range Resources {
		endpoint.Register(resource)
	}
}
