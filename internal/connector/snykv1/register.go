package snykv1

import "github.com/nucleus/snyk-core/internal/endpoint"

// init registers every v1 catalog resource with the global registry.
func init() {
	for _, resource := range Resources {
		endpoint.Register(resource)
	}
}
