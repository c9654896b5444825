package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisTokenCache shares cached values between the server and the worker.
// Expiry is delegated to the key TTL.
type RedisTokenCache struct {
	client *redis.Client
	prefix string // e.g. "bendesk:graph:"
}

func NewRedisTokenCache(client *redis.Client, prefix string) *RedisTokenCache {
	return &RedisTokenCache{client: client, prefix: prefix}
}

func (c *RedisTokenCache) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read cache key %s: %w", key, err)
	}
	return val, true, nil
}

func (c *RedisTokenCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := c.client.Set(ctx, c.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache key %s: %w", key, err)
	}
	return nil
}

func (c *RedisTokenCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, c.prefix+key).Err(); err != nil {
		return fmt.Errorf("failed to delete cache key %s: %w", key, err)
	}
	return nil
}
