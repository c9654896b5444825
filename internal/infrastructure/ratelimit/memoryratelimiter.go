package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryRateLimiter is the single-instance RateLimiter used when Redis is
// not configured.
type MemoryRateLimiter struct {
	mu       sync.Mutex
	config   RateLimitConfig
	attempts map[string][]time.Time
	now      func() time.Time
}

func NewMemoryRateLimiter(config RateLimitConfig) *MemoryRateLimiter {
	return NewMemoryRateLimiterWithClock(config, time.Now)
}

func NewMemoryRateLimiterWithClock(config RateLimitConfig, now func() time.Time) *MemoryRateLimiter {
	return &MemoryRateLimiter{config: config, attempts: make(map[string][]time.Time), now: now}
}

func (l *MemoryRateLimiter) Allow(_ context.Context, key string) (bool, error) {
	if l.config.Requests <= 0 {
		return true, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.config.Window)
	kept := l.attempts[key][:0]
	for _, at := range l.attempts[key] {
		if at.After(cutoff) {
			kept = append(kept, at)
		}
	}
	allowed := len(kept) < l.config.Requests
	l.attempts[key] = append(kept, now)
	return allowed, nil
}

func (l *MemoryRateLimiter) Reset(_ context.Context, key string) error {
	l.mu.Lock()
	delete(l.attempts, key)
	l.mu.Unlock()
	return nil
}
