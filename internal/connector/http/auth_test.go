package http

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"
)

func authHeader(t *testing.T, auth AuthConfig) string {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, "http://example.local/", nil)
	if err != nil {
		t.Fatalf("NewRequest failed: %v", err)
	}
	auth.Apply(req)
	return req.Header.Get("Authorization")
}

func TestTokenAuth(t *testing.T) {
	if got := authHeader(t, TokenAuth{Token: "abc"}); got != "token abc" {
		t.Errorf("header = %q, want token abc", got)
	}
	if got := authHeader(t, TokenAuth{}); got != "" {
		t.Errorf("empty token should set no header, got %q", got)
	}
}

func TestBearerToken(t *testing.T) {
	if got := authHeader(t, BearerToken{Token: "abc"}); got != "Bearer abc" {
		t.Errorf("header = %q, want Bearer abc", got)
	}
}

func TestNoAuth(t *testing.T) {
	if got := authHeader(t, NoAuth{}); got != "" {
		t.Errorf("NoAuth should set no header, got %q", got)
	}
}

func TestAuthFromEnvironmentSecretFile(t *testing.T) {
	secretFile := filepath.Join(t.TempDir(), "snyk-key")
	if err := os.WriteFile(secretFile, []byte("  file-key\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	t.Setenv(EnvAuthSecretPath, secretFile)
	t.Setenv(EnvAuthKey, "env-key")

	// The secret file wins over the direct key, trimmed.
	if got := authHeader(t, AuthFromEnvironment()); got != "token file-key" {
		t.Errorf("header = %q, want token file-key", got)
	}
}

func TestAuthFromEnvironmentKeyFallback(t *testing.T) {
	t.Setenv(EnvAuthSecretPath, "")
	t.Setenv(EnvAuthKey, "env-key")

	if got := authHeader(t, AuthFromEnvironment()); got != "token env-key" {
		t.Errorf("header = %q, want token env-key", got)
	}
}

func TestAuthFromEnvironmentUnreadableSecretFallsBack(t *testing.T) {
	t.Setenv(EnvAuthSecretPath, filepath.Join(t.TempDir(), "does-not-exist"))
	t.Setenv(EnvAuthKey, "env-key")

	if got := authHeader(t, AuthFromEnvironment()); got != "token env-key" {
		t.Errorf("header = %q, want token env-key", got)
	}
}

func TestAuthFromEnvironmentUnset(t *testing.T) {
	t.Setenv(EnvAuthSecretPath, "")
	t.Setenv(EnvAuthKey, "")

	if _, ok := AuthFromEnvironment().(NoAuth); !ok {
		t.Error("expected NoAuth when nothing is configured")
	}
}
