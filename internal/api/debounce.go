package api

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// viewDebouncer treats "record a view" as a low-value, high-frequency write.
// A repeat write for the same (user, type, item) key inside the suppression
// window is dropped silently, and concurrent callers of an in-flight write
// share its outcome instead of issuing duplicates.
//
// singleflight is not usable here: a caller must join an existing flight
// but never start one while the window is closed, and singleflight cannot
// tell those cases apart. Hence the explicit call registry.
type viewDebouncer struct {
	mu     sync.Mutex
	window time.Duration
	clk    clock.Clock
	last   map[string]time.Time
	calls  map[string]*viewCall
}

type viewCall struct {
	done chan struct{}
	err  error
}

func newViewDebouncer(window time.Duration, clk clock.Clock) *viewDebouncer {
	return &viewDebouncer{
		window: window,
		clk:    clk,
		last:   make(map[string]time.Time),
		calls:  make(map[string]*viewCall),
	}
}

// record runs fn at most once per key per suppression window. The window
// opens at attempt time, successful or not. Returns false when the write
// was suppressed.
func (d *viewDebouncer) record(key string, fn func() error) (bool, error) {
	d.mu.Lock()
	if cl, ok := d.calls[key]; ok {
		d.mu.Unlock()
		<-cl.done
		return true, cl.err
	}
	now := d.clk.Now()
	if last, ok := d.last[key]; ok && now.Sub(last) < d.window {
		d.mu.Unlock()
		return false, nil
	}
	cl := &viewCall{done: make(chan struct{})}
	d.calls[key] = cl
	d.last[key] = now
	d.mu.Unlock()

	cl.err = fn()
	close(cl.done)

	d.mu.Lock()
	delete(d.calls, key)
	d.mu.Unlock()

	return true, cl.err
}

// reset clears the suppression registry.
func (d *viewDebouncer) reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.last = make(map[string]time.Time)
}
