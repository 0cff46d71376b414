// Package ratelimit implements a fixed-window request-admission counter.
// One window exists per (client address, logical resource) key; when a
// window's quota is spent, further requests are rejected until the next
// window boundary. The limiter is an injected component with no package
// state, so tests can build their own instance and reset it by dropping it.
package ratelimit

import (
	"context"
	"time"
)

// Store counts hits per key within a numbered window. Implementations must
// be safe for concurrent use.
type Store interface {
	// Incr records one hit for key in the given window and returns the
	// total hits for that key in that window, including this one. A new
	// window number resets the count.
	Incr(ctx context.Context, key string, window int64, ttl time.Duration) (int64, error)
}

// Limiter evaluates fixed-window quotas against a Store.
type Limiter struct {
	store  Store
	window time.Duration
	now    func() time.Time
}

func NewLimiter(store Store, window time.Duration) *Limiter {
	return &Limiter{
		store:  store,
		window: window,
		now:    time.Now,
	}
}

// Allow records a hit for key and reports whether it fits inside the current
// window's quota of max requests.
func (l *Limiter) Allow(ctx context.Context, key string, max int) (bool, error) {
	window := l.now().UnixNano() / int64(l.window)
	count, err := l.store.Incr(ctx, key, window, l.window)
	if err != nil {
		return false, err
	}
	return count <= int64(max), nil
}

// Window returns the configured window length.
func (l *Limiter) Window() time.Duration {
	return l.window
}
