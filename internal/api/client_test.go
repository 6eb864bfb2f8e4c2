package api

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"

	"timeoff/internal/config"
	"timeoff/pkg/logger"
)

// unreachableBase is a base URL that refuses connections immediately, used
// to force the mock fallback path.
const unreachableBase = "http://127.0.0.1:1/api"

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		APIBase:         baseURL,
		RequestTimeout:  2 * time.Second,
		CacheTTL:        1500 * time.Millisecond,
		MockLatency:     0,
		HistoryDebounce: 2 * time.Second,
		MockFallback:    true,
		LogLevel:        "error",
	}
}

func newTestClient(t *testing.T, cfg *config.Config, opts ...Option) *Client {
	t.Helper()
	return New(cfg, logger.NewNop(), opts...)
}

func newMockClockClient(t *testing.T, cfg *config.Config) (*Client, *clock.Mock) {
	t.Helper()
	mclk := clock.NewMock()
	return newTestClient(t, cfg, WithClock(mclk)), mclk
}
