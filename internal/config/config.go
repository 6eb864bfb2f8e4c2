package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the application
type Config struct {
	APIBase         string        // Base URL of the timeoff backend, e.g. http://localhost:8080/api
	RequestTimeout  time.Duration // Per-request HTTP timeout
	CacheTTL        time.Duration // How long a successful GET response stays cached
	MockLatency     time.Duration // Simulated latency on the mock fallback path
	HistoryDebounce time.Duration // Suppression window for repeated view-history writes
	MockFallback    bool          // Whether transport failures fall back to mock data
	RedisURL        string
	LogLevel        string
	Environment     string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		APIBase:         getEnv("TIMEOFF_API_BASE", "http://localhost:8080/api"),
		RequestTimeout:  getDurationEnv("REQUEST_TIMEOUT_MS", 10*time.Second),
		CacheTTL:        getDurationEnv("CACHE_TTL_MS", 1500*time.Millisecond),
		MockLatency:     getDurationEnv("MOCK_LATENCY_MS", 500*time.Millisecond),
		HistoryDebounce: getDurationEnv("HISTORY_DEBOUNCE_MS", 2*time.Second),
		MockFallback:    getBoolEnv("MOCK_FALLBACK", true),
		RedisURL:        getEnv("REDIS_URL", ""),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		Environment:     getEnv("ENVIRONMENT", "production"),
	}, nil
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getDurationEnv reads a millisecond-valued environment variable.
func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if ms, err := strconv.Atoi(value); err == nil && ms >= 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return fallback
}

// getBoolEnv gets a boolean environment variable with a fallback value
func getBoolEnv(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
