package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter defines the interface for rate limiting
type Limiter interface {
	Allow(key string) bool
}

// InMemoryLimiter is an implementation of Limiter stored in memory, keyed by
// an opaque caller identity (the gateway uses the bearer token).
type InMemoryLimiter struct {
	callers map[string]*rate.Limiter
	mu      sync.Mutex
	r       rate.Limit
	b       int
}

// NewInMemoryLimiter creates a new rate limiter.
// Example: NewInMemoryLimiter(10, time.Second, 20) -> 10 requests per second
// with a burst of 20.
func NewInMemoryLimiter(requests int, per time.Duration, burst int) Limiter {
	return &InMemoryLimiter{
		callers: make(map[string]*rate.Limiter),
		r:       rate.Every(per / time.Duration(requests)),
		b:       burst,
	}
}

// Allow checks if a caller is allowed to perform an action
func (l *InMemoryLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, exists := l.callers[key]
	if !exists {
		limiter = rate.NewLimiter(l.r, l.b)
		l.callers[key] = limiter
	}

	return limiter.Allow()
}
