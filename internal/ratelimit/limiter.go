// Package ratelimit implements a fixed-window per-key request limiter.
//
// Each key gets a counter that resets entirely once its window expires.
// State is process memory only; it is advisory and lost on restart.
package ratelimit

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultSweepInterval is how often expired entries are reclaimed. The sweep
// only bounds memory; lookups already treat expired entries as absent.
const DefaultSweepInterval = 10 * time.Minute

// entry tracks one key's count within its current window
type entry struct {
	count     int
	resetTime time.Time
}

// Result is the outcome of a rate limit check
type Result struct {
	Allowed   bool
	Remaining int
	// ResetTime is when the key's window expires, for computing wait time
	ResetTime time.Time
}

// Limiter allows up to max requests per key within a fixed window
type Limiter struct {
	mu      sync.Mutex
	entries map[string]entry
	max     int
	window  time.Duration
	now     func() time.Time
}

// Option configures the Limiter
type Option func(*Limiter)

// WithClock overrides the time source, for tests
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) {
		if now != nil {
			l.now = now
		}
	}
}

// New creates a Limiter allowing max requests per window
func New(max int, window time.Duration, opts ...Option) *Limiter {
	l := &Limiter{
		entries: make(map[string]entry),
		max:     max,
		window:  window,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Check records a request for the key and reports whether it is allowed.
// The check-and-increment runs under the limiter lock so two concurrent
// requests for the same key cannot both be admitted past the max.
func (l *Limiter) Check(key string) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	// a missing entry and an expired one are the same thing: a fresh window
	e, ok := l.entries[key]
	if !ok || now.After(e.resetTime) {
		reset := now.Add(l.window)
		l.entries[key] = entry{count: 1, resetTime: reset}

		return Result{Allowed: true, Remaining: l.max - 1, ResetTime: reset}
	}

	if e.count >= l.max {
		return Result{Allowed: false, Remaining: 0, ResetTime: e.resetTime}
	}

	e.count++
	l.entries[key] = e

	return Result{Allowed: true, Remaining: l.max - e.count, ResetTime: e.resetTime}
}

// Sweep deletes expired entries and returns how many were removed
func (l *Limiter) Sweep() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	removed := 0

	for key, e := range l.entries {
		if now.After(e.resetTime) {
			delete(l.entries, key)
			removed++
		}
	}

	return removed
}

// Start runs a background sweep at the given interval until ctx is done
func (l *Limiter) Start(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if removed := l.Sweep(); removed > 0 {
					log.Debug().Int("removed", removed).Msg("swept expired rate limit entries")
				}
			}
		}
	}()
}

// ClientIP extracts the client address from proxy headers, preferring the
// first X-Forwarded-For value, then X-Real-IP, falling back to "unknown".
// It never fails; behind no proxy all clients share the fallback bucket.
func ClientIP(h http.Header) string {
	if forwarded := h.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}

	if realIP := h.Get("X-Real-Ip"); realIP != "" {
		return realIP
	}

	return "unknown"
}
