package config

import "testing"

func TestLoadClientConfigDefaults(t *testing.T) {
	cfg := LoadClientConfig()
	if cfg.RestBaseURL != "" || cfg.V1BaseURL != "" || cfg.APIVersion != "" {
		t.Errorf("expected empty endpoint overrides, got %+v", cfg)
	}
	if cfg.TimeoutSecs != 0 || cfg.MaxRetries != 0 || cfg.RateLimit != 0 || cfg.RateBurst != 0 {
		t.Errorf("expected zero tuning values, got %+v", cfg)
	}
}

func TestLoadClientConfigFromEnvironment(t *testing.T) {
	t.Setenv("SNYK_REST_BASE_URL", "https://api.eu.snyk.io/rest/")
	t.Setenv("SNYK_API_VERSION", "2026-01-01")
	t.Setenv("SNYK_HTTP_TIMEOUT_SECS", "60")
	t.Setenv("SNYK_HTTP_RATE_LIMIT", "2.5")
	t.Setenv("SNYK_HTTP_RATE_BURST", "not-a-number")

	cfg := LoadClientConfig()
	if cfg.RestBaseURL != "https://api.eu.snyk.io/rest/" {
		t.Errorf("RestBaseURL = %q", cfg.RestBaseURL)
	}
	if cfg.APIVersion != "2026-01-01" {
		t.Errorf("APIVersion = %q", cfg.APIVersion)
	}
	if cfg.TimeoutSecs != 60 {
		t.Errorf("TimeoutSecs = %d, want 60", cfg.TimeoutSecs)
	}
	if cfg.RateLimit != 2.5 {
		t.Errorf("RateLimit = %v, want 2.5", cfg.RateLimit)
	}
	// Unparseable values fall back to the default.
	if cfg.RateBurst != 0 {
		t.Errorf("RateBurst = %d, want 0", cfg.RateBurst)
	}
}
