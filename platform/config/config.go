// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// AuthConfig provides settings for verifying identity provider tokens.
type AuthConfig interface {
	GetAuthTokenSecret() string
	IsAuthEnabled() bool
}

// RateLimitConfig provides settings for the per-IP limiter on callables.
type RateLimitConfig interface {
	GetRateLimitRPS() float64
	GetRateLimitBurst() int
}

// PlacesConfig provides settings for the Google Places proxy.
type PlacesConfig interface {
	GetGooglePlacesAPIKey() string
	GetGooglePlacesAPIKeyFile() string
	GetPlacesBaseURL() string
	GetPlacesTimeout() time.Duration
}

// RedisConfig provides settings for the key-value store.
type RedisConfig interface {
	GetRedisURL() string
}

// FeedConfig provides settings for the home feed.
type FeedConfig interface {
	GetFeaturedPlacesFile() string
}

// GatewayConfig provides settings for clients of the callable API.
type GatewayConfig interface {
	GetCallableBaseURL() string
	GetCallableIDToken() string
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                    string
	HTTPAddr               string
	CORSAllowAll           bool
	CORSOrigins            []string
	CORSAllowCreds         bool
	AuthTokenSecret        string
	RateLimitRPS           float64
	RateLimitBurst         int
	GooglePlacesAPIKey     string
	GooglePlacesAPIKeyFile string
	PlacesBaseURL          string
	PlacesTimeout          time.Duration
	RedisURL               string
	FeaturedPlacesFile     string
	CallableBaseURL        string
	CallableIDToken        string
}

// =============================================================================
// Interface Implementations
// =============================================================================

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// AuthConfig implementation
func (c *Config) GetAuthTokenSecret() string { return c.AuthTokenSecret }
func (c *Config) IsAuthEnabled() bool        { return c.AuthTokenSecret != "" }

// RateLimitConfig implementation
func (c *Config) GetRateLimitRPS() float64 { return c.RateLimitRPS }
func (c *Config) GetRateLimitBurst() int   { return c.RateLimitBurst }

// PlacesConfig implementation
func (c *Config) GetGooglePlacesAPIKey() string     { return c.GooglePlacesAPIKey }
func (c *Config) GetGooglePlacesAPIKeyFile() string { return c.GooglePlacesAPIKeyFile }
func (c *Config) GetPlacesBaseURL() string          { return c.PlacesBaseURL }
func (c *Config) GetPlacesTimeout() time.Duration   { return c.PlacesTimeout }

// RedisConfig implementation
func (c *Config) GetRedisURL() string { return c.RedisURL }

// FeedConfig implementation
func (c *Config) GetFeaturedPlacesFile() string { return c.FeaturedPlacesFile }

// GatewayConfig implementation
func (c *Config) GetCallableBaseURL() string { return c.CallableBaseURL }
func (c *Config) GetCallableIDToken() string { return c.CallableIDToken }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:8081"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:                    getEnv("APP_ENV", "development"),
		HTTPAddr:               getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:           corsAllowAll,
		CORSOrigins:            corsOrigins,
		CORSAllowCreds:         strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "false"), "true"),
		AuthTokenSecret:        getEnv("AUTH_TOKEN_SECRET", ""),
		RateLimitRPS:           mustFloat(getEnv("RATE_LIMIT_RPS", "5")),
		RateLimitBurst:         mustInt(getEnv("RATE_LIMIT_BURST", "20")),
		GooglePlacesAPIKey:     getEnv("GOOGLE_PLACES_API_KEY", ""),
		GooglePlacesAPIKeyFile: getEnv("GOOGLE_PLACES_API_KEY_FILE", ""),
		PlacesBaseURL:          strings.TrimRight(getEnv("PLACES_BASE_URL", "https://places.googleapis.com"), "/"),
		PlacesTimeout:          mustDuration(getEnv("PLACES_TIMEOUT", "10s")),
		RedisURL:               getEnv("REDIS_URL", ""),
		FeaturedPlacesFile:     getEnv("FEATURED_PLACES_FILE", "configs/featured.yaml"),
		CallableBaseURL:        strings.TrimRight(getEnv("CALLABLE_BASE_URL", "http://localhost:8080/api/v1/callable"), "/"),
		CallableIDToken:        getEnv("CALLABLE_ID_TOKEN", ""),
	}

	if cfg.PlacesTimeout <= 0 {
		return nil, fmt.Errorf("PLACES_TIMEOUT must be a positive duration")
	}
	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}
	if strings.EqualFold(cfg.Env, "production") && !cfg.IsAuthEnabled() {
		return nil, fmt.Errorf("AUTH_TOKEN_SECRET is required in production")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt(value string) int {
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return result
}

func mustFloat(value string) float64 {
	result, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
