package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRateLimiter keeps one sorted set per key, scored by attempt time,
// so every instance sharing the Redis sees the same counts.
type RedisRateLimiter struct {
	client *redis.Client
	prefix string
	config RateLimitConfig
	now    func() time.Time
}

func NewRedisRateLimiter(client *redis.Client, prefix string, config RateLimitConfig) *RedisRateLimiter {
	return &RedisRateLimiter{client: client, prefix: prefix, config: config, now: time.Now}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if l.config.Requests <= 0 {
		return true, nil
	}

	now := l.now()
	redisKey := l.key(key)
	windowStart := now.Add(-l.config.Window).UnixNano()
	nowNano := now.UnixNano()

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", strconv.FormatInt(windowStart, 10))
	zcard := pipe.ZCard(ctx, redisKey)
	pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(nowNano), Member: nowNano})
	pipe.Expire(ctx, redisKey, l.config.Window+time.Minute)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to execute pipeline: %w", err)
	}

	return zcard.Val() < int64(l.config.Requests), nil
}

func (l *RedisRateLimiter) Reset(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, l.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", l.key(key), err)
	}
	return nil
}

func (l *RedisRateLimiter) key(identifier string) string {
	return fmt.Sprintf("%sratelimit:%s:%s", l.prefix, identifier, l.config.Window)
}
