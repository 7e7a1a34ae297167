package http

import (
	"net/http"
	"os"
	"strings"
)

// =============================================================================
// AUTHENTICATION STRATEGIES
// =============================================================================

// AuthConfig represents authentication configuration.
type AuthConfig interface {
	Apply(req *http.Request)
}

// NoAuth represents no authentication.
type NoAuth struct{}

func (a NoAuth) Apply(req *http.Request) {}

// TokenAuth uses Snyk-style token authentication
// (Authorization: token <key>).
type TokenAuth struct {
	Token string
}

// Apply adds the token header to the request.
func (a TokenAuth) Apply(req *http.Request) {
	if a.Token == "" {
		return
	}
	req.Header.Set("Authorization", "token "+a.Token)
}

// BearerToken uses Bearer token authentication.
type BearerToken struct {
	Token string
}

// Apply adds Bearer token header to the request.
func (a BearerToken) Apply(req *http.Request) {
	if a.Token == "" {
		return
	}
	req.Header.Set("Authorization", "Bearer "+a.Token)
}

// =============================================================================
// ENVIRONMENT RESOLUTION
// =============================================================================

// Environment variables consulted by AuthFromEnvironment.
const (
	// EnvAuthSecretPath points to a mounted secret file holding the API key.
	// Preferred in production.
	EnvAuthSecretPath = "SNYK_AUTH_SECRET_PATH"

	// EnvAuthKey holds the API key directly.
	EnvAuthKey = "SNYK_AUTH_KEY"
)

// AuthFromEnvironment resolves the default Snyk authentication.
// SNYK_AUTH_SECRET_PATH takes precedence: its value names a secret file whose
// trimmed contents are the API key. SNYK_AUTH_KEY supplies the key directly.
// When neither is set the returned strategy sends no credentials.
func AuthFromEnvironment() AuthConfig {
	if secretPath := os.Getenv(EnvAuthSecretPath); secretPath != "" {
		key, err := os.ReadFile(secretPath)
		if err == nil {
			return TokenAuth{Token: strings.TrimSpace(string(key))}
		}
	}
	if key := os.Getenv(EnvAuthKey); key != "" {
		return TokenAuth{Token: key}
	}
	return NoAuth{}
}
