// Package ratelimit provides fixed-window rate limiting for the AI-backed endpoints.
package ratelimit

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// maxEntries caps the in-memory store. When exceeded, expired windows are
// purged so an ever-growing set of distinct client identities cannot grow
// memory without bound.
const maxEntries = 10000

// entry tracks one client's request count within the current window.
type entry struct {
	count       int
	windowStart time.Time
}

// Limiter is a fixed-window request counter keyed by client identity.
// Each key gets maxRequests per window; the counter resets when the window
// elapses. The clock is injectable so tests can advance time directly.
type Limiter struct {
	window      time.Duration
	maxRequests int
	entries     map[string]*entry
	lastSweep   time.Time
	now         func() time.Time
	mu          sync.Mutex
}

// NewLimiter creates a limiter allowing maxRequests per window per key.
func NewLimiter(window time.Duration, maxRequests int) *Limiter {
	return &Limiter{
		window:      window,
		maxRequests: maxRequests,
		entries:     make(map[string]*entry),
		now:         time.Now,
	}
}

// IsLimited records one request for the key and reports whether the key has
// exceeded its allowance in the current window. A key with no entry, or whose
// window has elapsed, starts a fresh window with count 1 and is not limited.
func (l *Limiter) IsLimited(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	e, ok := l.entries[key]
	if !ok {
		l.entries[key] = &entry{count: 1, windowStart: now}
		return false
	}
	if now.Sub(e.windowStart) > l.window {
		e.count = 1
		e.windowStart = now
		return false
	}
	e.count++
	return e.count > l.maxRequests
}

// sweep purges expired windows, at most once per window and only when the
// store has grown past the entry cap. Callers hold l.mu.
func (l *Limiter) sweep(now time.Time) {
	if len(l.entries) <= maxEntries {
		return
	}
	if now.Sub(l.lastSweep) < l.window {
		return
	}
	l.lastSweep = now
	for key, e := range l.entries {
		if now.Sub(e.windowStart) > l.window {
			delete(l.entries, key)
		}
	}
}

// ClientIP derives the client identity for rate limiting. Proxy headers are
// preferred over the socket address since the server typically sits behind a
// CDN or reverse proxy. Falls back to "unknown" when nothing usable exists.
func ClientIP(r *http.Request) string {
	if ip := strings.TrimSpace(r.Header.Get("Cf-Connecting-Ip")); ip != "" {
		return ip
	}
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		// First entry is the originating client.
		first, _, _ := strings.Cut(fwd, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-Ip")); ip != "" {
		return ip
	}
	if r.RemoteAddr != "" {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			return r.RemoteAddr
		}
		return ip
	}
	return "unknown"
}
