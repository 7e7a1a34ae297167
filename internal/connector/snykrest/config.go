package snykrest

import (
	nethttp "net/http"

	"github.com/nucleus/snyk-core/internal/config"
	"github.com/nucleus/snyk-core/internal/connector/http"
	"github.com/nucleus/snyk-core/internal/endpoint"
)

// Defaults for the Snyk REST API.
const (
	DefaultBaseURL    = "https://api.snyk.io/rest/"
	DefaultAPIVersion = "2025-11-05"

	// DefaultPaginationParameter is the cursor parameter name.
	DefaultPaginationParameter = "starting_after"

	// DefaultLimitParameter is the page-size parameter name.
	DefaultLimitParameter = "limit"
)

// Config holds Snyk REST backend configuration. Construct once, validate
// eagerly, treat as immutable afterwards.
type Config struct {
	// BaseURL of the REST API (default https://api.snyk.io/rest/).
	BaseURL string

	// APIVersion is the mandatory version parameter stamped onto every
	// request (default "2025-11-05").
	APIVersion string

	// Auth supplies request credentials. Nil resolves from the environment
	// (SNYK_AUTH_SECRET_PATH, then SNYK_AUTH_KEY).
	Auth http.AuthConfig

	// APICasing and ModelCasing name the field conventions on each side of
	// the record mapping. The REST API already uses snake_case.
	APICasing   string
	ModelCasing string

	// PaginationParameterName overrides the cursor parameter name.
	PaginationParameterName string

	// LimitParameterName overrides the page-size parameter name.
	LimitParameterName string

	// Transport allows injecting a custom HTTP transport (for tests/stubs).
	Transport nethttp.RoundTripper

	apiCasing   endpoint.Casing
	modelCasing endpoint.Casing
}

// Validate normalizes defaults and rejects unknown configuration values.
func (c *Config) Validate() error {
	env := config.LoadClientConfig()
	if c.BaseURL == "" {
		c.BaseURL = env.RestBaseURL
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.APIVersion == "" {
		c.APIVersion = env.APIVersion
	}
	if c.APIVersion == "" {
		c.APIVersion = DefaultAPIVersion
	}
	if c.Auth == nil {
		c.Auth = http.AuthFromEnvironment()
	}
	if c.APICasing == "" {
		c.APICasing = string(endpoint.SnakeCase)
	}
	if c.ModelCasing == "" {
		c.ModelCasing = string(endpoint.SnakeCase)
	}
	if c.PaginationParameterName == "" {
		c.PaginationParameterName = DefaultPaginationParameter
	}
	if c.LimitParameterName == "" {
		c.LimitParameterName = DefaultLimitParameter
	}

	var err error
	if c.apiCasing, err = endpoint.ParseCasing(c.APICasing); err != nil {
		return &endpoint.ValidationError{Field: "APICasing", Message: "unknown casing " + c.APICasing}
	}
	if c.modelCasing, err = endpoint.ParseCasing(c.ModelCasing); err != nil {
		return &endpoint.ValidationError{Field: "ModelCasing", Message: "unknown casing " + c.ModelCasing}
	}
	return nil
}
