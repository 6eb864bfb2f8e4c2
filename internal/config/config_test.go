package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/api", cfg.APIBase)
	assert.Equal(t, 1500*time.Millisecond, cfg.CacheTTL)
	assert.Equal(t, 500*time.Millisecond, cfg.MockLatency)
	assert.Equal(t, 2*time.Second, cfg.HistoryDebounce)
	assert.True(t, cfg.MockFallback)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TIMEOFF_API_BASE", "https://timeoff.example.com/api")
	t.Setenv("CACHE_TTL_MS", "3000")
	t.Setenv("MOCK_LATENCY_MS", "0")
	t.Setenv("MOCK_FALLBACK", "false")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://timeoff.example.com/api", cfg.APIBase)
	assert.Equal(t, 3*time.Second, cfg.CacheTTL)
	assert.Equal(t, time.Duration(0), cfg.MockLatency)
	assert.False(t, cfg.MockFallback)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadIgnoresInvalidNumbers(t *testing.T) {
	t.Setenv("CACHE_TTL_MS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, cfg.CacheTTL)
}
