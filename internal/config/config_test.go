package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Empty(t, cfg.GeminiAPIKey)
	assert.Equal(t, time.Hour, cfg.SLAScanInterval)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://localhost/hiring")
	t.Setenv("GEMINI_API_KEY", "key-123")
	t.Setenv("SLA_SCAN_INTERVAL", "15m")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "postgres://localhost/hiring", cfg.DatabaseURL)
	assert.Equal(t, "key-123", cfg.GeminiAPIKey)
	assert.Equal(t, 15*time.Minute, cfg.SLAScanInterval)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "70000")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORT")
}

func TestLoad_UnparseableValuesFallBack(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	t.Setenv("SLA_SCAN_INTERVAL", "soonish")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, time.Hour, cfg.SLAScanInterval)
}
