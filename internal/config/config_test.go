package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.AnalysisAPIURL != "http://localhost:8000" {
		t.Errorf("unexpected analysis URL: %s", cfg.AnalysisAPIURL)
	}
	if cfg.HTTPTimeout != 60*time.Second {
		t.Errorf("unexpected HTTP timeout: %s", cfg.HTTPTimeout)
	}
	if cfg.DefaultLanguage != "en" {
		t.Errorf("unexpected default language: %s", cfg.DefaultLanguage)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MAX_RETRIES", "5")
	t.Setenv("CACHE_TTL", "1m")
	t.Setenv("DEFAULT_LANGUAGE", "hi")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.MaxRetries != 5 {
		t.Errorf("expected 5 retries, got %d", cfg.MaxRetries)
	}
	if cfg.CacheTTL != time.Minute {
		t.Errorf("unexpected cache TTL: %s", cfg.CacheTTL)
	}
	if cfg.DefaultLanguage != "hi" {
		t.Errorf("unexpected language: %s", cfg.DefaultLanguage)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("MAX_RETRIES", "lots")
	t.Setenv("HTTP_TIMEOUT", "soon")

	cfg := Load()

	if cfg.MaxRetries != 2 {
		t.Errorf("expected fallback retries 2, got %d", cfg.MaxRetries)
	}
	if cfg.HTTPTimeout != 60*time.Second {
		t.Errorf("expected fallback timeout, got %s", cfg.HTTPTimeout)
	}
}
