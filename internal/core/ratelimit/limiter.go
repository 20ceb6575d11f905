// Package ratelimit provides the sliding-window request limiter used
// by the chat endpoints. The limiter is an injected capability so the
// process-local implementation can be swapped for a shared counter
// store in a multi-instance deployment.
package ratelimit

import (
	"sync"
	"time"
)

// Limiter reports whether one more request is allowed for key within
// the sliding window, consuming a slot when it is.
type Limiter interface {
	Allow(key string, limit int, window time.Duration) bool
}

// MemoryLimiter is the process-local implementation. Entries are swept
// lazily on each check; it is not safe for multi-process deployment.
type MemoryLimiter struct {
	mu      sync.Mutex
	entries map[string][]time.Time
	now     func() time.Time
}

func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{
		entries: make(map[string][]time.Time),
		now:     time.Now,
	}
}

// Allow checks and consumes one slot for key. The check and the append
// happen under one lock so concurrent callers cannot both take the
// last slot.
func (l *MemoryLimiter) Allow(key string, limit int, window time.Duration) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-window)

	recent := l.entries[key]
	filtered := recent[:0]
	for _, t := range recent {
		if t.After(cutoff) {
			filtered = append(filtered, t)
		}
	}

	if len(filtered) >= limit {
		l.entries[key] = filtered
		return false
	}

	l.entries[key] = append(filtered, now)
	return true
}
