// Package config loads service configuration from environment variables.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration for the web client.
type Config struct {
	Port     string
	LogLevel string

	// Analysis engine
	AnalysisAPIURL string

	// HTTP client settings
	HTTPTimeout    time.Duration
	MaxRetries     int
	InitialBackoff time.Duration
	MaxConcurrency int

	// Report cache
	CacheTTL time.Duration

	// Observability
	OTLPEndpoint string

	// Localization
	DefaultLanguage string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		AnalysisAPIURL: getEnv("ANALYSIS_API_URL", "http://localhost:8000"),

		// The engine runs a full statement analysis per request, which can
		// take tens of seconds under load.
		HTTPTimeout:    getEnvDuration("HTTP_TIMEOUT", 60*time.Second),
		MaxRetries:     getEnvInt("MAX_RETRIES", 2),
		InitialBackoff: getEnvDuration("INITIAL_BACKOFF", 500*time.Millisecond),
		MaxConcurrency: getEnvInt("MAX_CONCURRENCY", 10),

		CacheTTL: getEnvDuration("CACHE_TTL", 15*time.Minute),

		OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),

		DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "en"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
