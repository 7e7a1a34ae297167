// Package config provides environment configuration for the Snyk connectors.
package config

import (
	"os"
	"strconv"
)

// ClientConfig holds client tuning and endpoint overrides loaded from the
// environment. Zero values mean "not set": callers keep their own defaults.
type ClientConfig struct {
	// Endpoint overrides
	RestBaseURL string
	V1BaseURL   string
	APIVersion  string

	// HTTP client tuning
	TimeoutSecs int
	MaxRetries  int
	RateLimit   float64
	RateBurst   int
}

// LoadClientConfig loads connector configuration from environment.
func LoadClientConfig() *ClientConfig {
	return &ClientConfig{
		RestBaseURL: getEnv("SNYK_REST_BASE_URL", ""),
		V1BaseURL:   getEnv("SNYK_V1_BASE_URL", ""),
		APIVersion:  getEnv("SNYK_API_VERSION", ""),
		TimeoutSecs: getEnvInt("SNYK_HTTP_TIMEOUT_SECS", 0),
		MaxRetries:  getEnvInt("SNYK_HTTP_MAX_RETRIES", 0),
		RateLimit:   getEnvFloat("SNYK_HTTP_RATE_LIMIT", 0),
		RateBurst:   getEnvInt("SNYK_HTTP_RATE_BURST", 0),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}
