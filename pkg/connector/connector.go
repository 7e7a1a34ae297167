// Package connector registers the Snyk backends and exposes their
// constructors.
package connector

import (
	"github.com/nucleus/snyk-core/internal/connector/snykrest"
	"github.com/nucleus/snyk-core/internal/connector/snykv1"
	"github.com/nucleus/snyk-core/pkg/endpoint"
)

// Importing the backend packages registers their resource catalogs.

// Config types for the two Snyk API generations.
type (
	RESTConfig = snykrest.Config
	V1Config   = snykv1.Config
)

// NewREST creates a backend for the Snyk REST API. A nil config uses the
// defaults (api.snyk.io, credentials from the environment).
func NewREST(config *RESTConfig) (endpoint.Backend, error) {
	return snykrest.New(config)
}

// NewV1 creates a backend for the legacy Snyk v1 API. A nil config uses the
// defaults (api.snyk.io, credentials from the environment).
func NewV1(config *V1Config) (endpoint.Backend, error) {
	return snykv1.New(config)
}
