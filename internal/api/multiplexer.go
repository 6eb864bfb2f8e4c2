package api

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"golang.org/x/sync/singleflight"
)

// multiplexer guarantees at most one in-flight network call per distinct
// (method, URL) key and caches successful response bodies for a short
// window. Failed calls are never cached.
type multiplexer struct {
	mu     sync.Mutex
	ttl    time.Duration
	clk    clock.Clock
	cache  map[string]cacheEntry
	flight singleflight.Group
}

type cacheEntry struct {
	body    []byte
	expires time.Time
}

func newMultiplexer(ttl time.Duration, clk clock.Clock) *multiplexer {
	return &multiplexer{
		ttl:   ttl,
		clk:   clk,
		cache: make(map[string]cacheEntry),
	}
}

// lookup returns the cached body for key if it has not expired. Expired
// entries are evicted on the spot.
func (m *multiplexer) lookup(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.cache[key]
	if !ok {
		return nil, false
	}
	if m.clk.Now().After(entry.expires) {
		delete(m.cache, key)
		return nil, false
	}
	return entry.body, true
}

// put caches a successful response body. Expiry is anchored at the moment
// the request was issued, not when it completed.
func (m *multiplexer) put(key string, body []byte, issued time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cache[key] = cacheEntry{body: body, expires: issued.Add(m.ttl)}
}

// reset drops every cached response.
func (m *multiplexer) reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cache = make(map[string]cacheEntry)
}
