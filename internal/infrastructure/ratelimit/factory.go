package ratelimit

import (
	"context"

	"github.com/synerjet/bendesk/internal/infrastructure/cache"
	"github.com/synerjet/bendesk/internal/shared/config"
)

// NewLoginLimiter shares attempts through Redis when it is enabled. The
// close func is never nil.
func NewLoginLimiter(ctx context.Context, rl config.RateLimitConfig, rc config.RedisConfig) (RateLimiter, func() error, error) {
	limits := RateLimitConfig{Requests: rl.Requests, Window: rl.Window}
	if !rc.Enabled {
		return NewMemoryRateLimiter(limits), func() error { return nil }, nil
	}
	client, err := cache.NewRedisClient(ctx, rc)
	if err != nil {
		return nil, nil, err
	}
	return NewRedisRateLimiter(client, "bendesk:", limits), client.Close, nil
}
