package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("GOOGLE_PLACES_API_KEY", "")
	t.Setenv("PLACES_TIMEOUT", "10s")
	t.Setenv("CORS_ORIGINS", "http://localhost:8081")
	t.Setenv("CORS_ALLOW_CREDENTIALS", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.GetPlacesTimeout() != 10*time.Second {
		t.Fatalf("expected 10s timeout, got %s", cfg.GetPlacesTimeout())
	}
	if cfg.GetPlacesBaseURL() != "https://places.googleapis.com" {
		t.Fatalf("unexpected base URL %q", cfg.GetPlacesBaseURL())
	}
	if cfg.IsAuthEnabled() {
		t.Fatalf("expected auth disabled without a secret")
	}
}

func TestLoadRejectsInvalidTimeout(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("PLACES_TIMEOUT", "soon")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid PLACES_TIMEOUT")
	}
}

func TestLoadRequiresAuthSecretInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PLACES_TIMEOUT", "10s")
	t.Setenv("AUTH_TOKEN_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when AUTH_TOKEN_SECRET is missing in production")
	}
}

func TestWildcardOriginEnablesAllowAll(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("PLACES_TIMEOUT", "10s")
	t.Setenv("CORS_ORIGINS", "*")
	t.Setenv("CORS_ALLOW_CREDENTIALS", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !cfg.GetCORSAllowAll() {
		t.Fatalf("expected wildcard origin to enable CORS allow all")
	}
}
