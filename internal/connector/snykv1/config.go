package snykv1

import (
	nethttp "net/http"

	"github.com/nucleus/snyk-core/internal/config"
	"github.com/nucleus/snyk-core/internal/connector/http"
	"github.com/nucleus/snyk-core/internal/endpoint"
)

// Defaults for the Snyk v1 API.
const (
	DefaultBaseURL = "https://api.snyk.io/v1/"

	// DefaultPaginationParameter is the page-number parameter name.
	DefaultPaginationParameter = "page"

	// DefaultLimitParameter is the page-size parameter name.
	DefaultLimitParameter = "perPage"

	// DefaultLimit is the page size assumed when a query sets none.
	DefaultLimit = 100
)

// Config holds Snyk v1 backend configuration. Construct once, validate
// eagerly, treat as immutable afterwards.
type Config struct {
	// BaseURL of the v1 API (default https://api.snyk.io/v1/).
	BaseURL string

	// Auth supplies request credentials. Nil resolves from the environment
	// (SNYK_AUTH_SECRET_PATH, then SNYK_AUTH_KEY).
	Auth http.AuthConfig

	// APICasing and ModelCasing name the field conventions on each side of
	// the record mapping. The v1 API uses camelCase; models use snake_case.
	APICasing   string
	ModelCasing string

	// PaginationParameterName overrides the page-number parameter name.
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
	if c.BaseURL == "" {
		c.BaseURL = config.LoadClientConfig().V1BaseURL
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Auth == nil {
		c.Auth = http.AuthFromEnvironment()
	}
	if c.APICasing == "" {
		c.APICasing = string(endpoint.CamelCase)
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
