// Package ratelimit counts attempts per key inside a sliding window.
package ratelimit

import (
	"context"
	"time"
)

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

// RateLimiter records one attempt for key and reports whether it stays
// within the configured budget.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	Reset(ctx context.Context, key string) error
}
