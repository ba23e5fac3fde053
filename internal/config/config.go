// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// App holds the coordinator service configuration. All fields come from
// environment variables; main loads .env first via godotenv.
type App struct {
	// Port the HTTP API listens on (PORT, default 8080).
	Port int

	// DatabaseURL is the PostgreSQL connection string (DATABASE_URL).
	// Empty means the in-memory store.
	DatabaseURL string

	// GeminiAPIKey enables LLM-backed question generation (GEMINI_API_KEY).
	// Empty means the static question banks.
	GeminiAPIKey string

	// GeminiModel overrides the question generation model (GEMINI_MODEL).
	GeminiModel string

	// SLAScanInterval is how often the SLA watcher scans the pipeline
	// (SLA_SCAN_INTERVAL, default 1h).
	SLAScanInterval time.Duration
}

// Load reads the service configuration from the environment.
func Load() (*App, error) {
	cfg := &App{
		Port:            getEnvInt("PORT", 8080),
		DatabaseURL:     getEnvString("DATABASE_URL", ""),
		GeminiAPIKey:    getEnvString("GEMINI_API_KEY", ""),
		GeminiModel:     getEnvString("GEMINI_MODEL", ""),
		SLAScanInterval: getEnvDuration("SLA_SCAN_INTERVAL", time.Hour),
	}

	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("config error: PORT must be between 1 and 65535, got %d", cfg.Port)
	}
	if cfg.SLAScanInterval <= 0 {
		return nil, fmt.Errorf("config error: SLA_SCAN_INTERVAL must be positive, got %s", cfg.SLAScanInterval)
	}

	return cfg, nil
}

// getEnvString gets an environment variable as a string with a default value.
func getEnvString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as an integer with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as a duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
