package api

import (
	"context"
	"net/http"

	"github.com/benbjohnson/clock"

	"timeoff/internal/config"
	"timeoff/pkg/logger"
)

// Client is the data access layer. Every domain operation goes through the
// request multiplexer (deduplicated, short-lived cached GETs) and, when the
// backend is unreachable, the in-memory mock dataset. All state — response
// cache, in-flight registry, mock store, debounce registry — is owned by
// the instance; there are no package-level globals.
type Client struct {
	cfg   *config.Config
	log   *logger.Logger
	http  *http.Client
	clock clock.Clock

	mux   *multiplexer
	store *mockStore
	views *viewDebouncer

	// currentUser resolves the session's logged-in user id when an
	// operation is called without an explicit one. May be nil.
	currentUser func(ctx context.Context) string
}

// Option customizes a Client. Used by tests to inject a mock clock or a
// stub HTTP client.
type Option func(*Client)

// WithClock replaces the wall clock. TTL expiry, mock latency and the
// history suppression window all follow it.
func WithClock(clk clock.Clock) Option {
	return func(c *Client) { c.clock = clk }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithCurrentUser sets the resolver for the session's current user id,
// consulted when history and favorites operations get an empty user id.
func WithCurrentUser(fn func(ctx context.Context) string) Option {
	return func(c *Client) { c.currentUser = fn }
}

// New creates the data access layer client.
func New(cfg *config.Config, log *logger.Logger, opts ...Option) *Client {
	c := &Client{
		cfg:   cfg,
		log:   log,
		clock: clock.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: cfg.RequestTimeout}
	}

	c.mux = newMultiplexer(cfg.CacheTTL, c.clock)
	c.store = newMockStore(c.clock)
	c.views = newViewDebouncer(cfg.HistoryDebounce, c.clock)

	return c
}

// ResetCaches drops the response cache and the debounce registry, and
// reseeds the mock dataset. Test hook; a browser page reload is the only
// equivalent in production.
func (c *Client) ResetCaches() {
	c.mux.reset()
	c.views.reset()
	c.store.reset()
}

// resolveUser falls back to the session's current user when id is empty.
// An empty result means the operation should short-circuit.
func (c *Client) resolveUser(ctx context.Context, id string) string {
	if id != "" {
		return id
	}
	if c.currentUser != nil {
		return c.currentUser(ctx)
	}
	return ""
}
