package api

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	apperrors "timeoff/pkg/errors"
)

// fetchResult carries a decoded payload and its origin through the
// singleflight group.
type fetchResult[T any] struct {
	val    T
	origin Origin
}

// getJSON is the single read combinator: cache hit, else one coalesced
// remote attempt, else the mock fallback. The fallback runs inside the
// coalesced unit, so N concurrent callers of the same URL observe one
// outcome after one simulated-latency delay even when the backend is down.
func getJSON[T any](ctx context.Context, c *Client, path string, local func(s *mockStore) (T, error)) (T, Origin, error) {
	key := http.MethodGet + " " + c.cfg.APIBase + path

	if body, ok := c.mux.lookup(key); ok {
		val, err := decode[T](body)
		return val, OriginRemote, err
	}

	v, err, _ := c.mux.flight.Do(key, func() (interface{}, error) {
		issued := c.clock.Now()
		body, reqErr := c.do(ctx, http.MethodGet, path, nil)
		if reqErr == nil {
			val, decErr := decode[T](body)
			if decErr == nil {
				c.mux.put(key, body, issued)
				return fetchResult[T]{val: val, origin: OriginRemote}, nil
			}
			// A garbled payload falls back like a transport failure.
			reqErr = decErr
		}

		if !c.cfg.MockFallback {
			return nil, reqErr
		}

		c.log.Warn("backend unreachable, falling back to mock data",
			zap.String("endpoint", path), zap.Error(reqErr))

		if sleepErr := c.simulateLatency(ctx); sleepErr != nil {
			return nil, sleepErr
		}
		val, localErr := local(c.store)
		if localErr != nil {
			return nil, localErr
		}
		return fetchResult[T]{val: val, origin: OriginFallback}, nil
	})
	if err != nil {
		var zero T
		return zero, OriginRemote, err
	}

	res := v.(fetchResult[T])
	return res.val, res.origin, nil
}

// mutateJSON is the write-side combinator: one direct request, and on
// transport failure the equivalent mutation against the mock store. Writes
// are never cached or coalesced.
func mutateJSON[T any](ctx context.Context, c *Client, method, path string, payload interface{}, local func(s *mockStore) (T, error)) (T, Origin, error) {
	var zero T

	body, reqErr := c.do(ctx, method, path, payload)
	if reqErr == nil {
		val, decErr := decode[T](body)
		if decErr == nil {
			return val, OriginRemote, nil
		}
		reqErr = decErr
	}

	if !c.cfg.MockFallback {
		return zero, OriginRemote, reqErr
	}

	c.log.Warn("backend unreachable, applying mutation to mock data",
		zap.String("method", method), zap.String("endpoint", path), zap.Error(reqErr))

	if sleepErr := c.simulateLatency(ctx); sleepErr != nil {
		return zero, OriginFallback, sleepErr
	}
	val, localErr := local(c.store)
	if localErr != nil {
		return zero, OriginFallback, localErr
	}
	return val, OriginFallback, nil
}

// decode unmarshals a response body, treating an empty body as the zero
// value (the backend answers 204 on deletes).
func decode[T any](body []byte) (T, error) {
	var out T
	if len(body) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return out, apperrors.NewDecodeError("failed to parse response body", err)
	}
	return out, nil
}

// simulateLatency suspends the caller for the configured mock latency so
// the fallback path keeps the loading-state behavior of a real call.
func (c *Client) simulateLatency(ctx context.Context) error {
	if c.cfg.MockLatency <= 0 {
		return nil
	}
	t := c.clock.Timer(c.cfg.MockLatency)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
