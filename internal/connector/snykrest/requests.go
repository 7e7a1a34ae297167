package snykrest

import "github.com/nucleus/snyk-core/internal/endpoint"

// RequestBuilder shapes outgoing create/update bodies. The standard builder
// wraps data in a JSON:API attributes envelope; resources whose API deviates
// (memberships) plug in their own builder through the catalog.
type RequestBuilder interface {
	// BuildCreate returns the request body for a create.
	BuildCreate(data endpoint.Record, resource *endpoint.Resource) endpoint.Record

	// BuildUpdate returns the request body for an update. The current record,
	// when available, provides context values the update data omits.
	BuildUpdate(id string, data endpoint.Record, current endpoint.Record, resource *endpoint.Resource) endpoint.Record
}

// attributesRequestBuilder builds the standard JSON:API envelope:
// {"data": {"type": ..., "attributes": {...}}}.
type attributesRequestBuilder struct{}

func (attributesRequestBuilder) BuildCreate(data endpoint.Record, resource *endpoint.Resource) endpoint.Record {
	return endpoint.Record{
		"data": endpoint.Record{
			"type":       resource.Type,
			"attributes": data,
		},
	}
}

func (attributesRequestBuilder) BuildUpdate(id string, data endpoint.Record, current endpoint.Record, resource *endpoint.Resource) endpoint.Record {
	return endpoint.Record{
		"data": endpoint.Record{
			"type":       resource.Type,
			"id":         id,
			"attributes": data,
		},
	}
}
