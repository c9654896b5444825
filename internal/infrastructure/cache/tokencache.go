// Package cache provides short-lived key/value caches for the Graph access
// token and fetched avatars.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/synerjet/bendesk/internal/shared/config"
)

// TokenCache stores string values until they expire.
type TokenCache interface {
	// Get reports found=false for missing or expired keys.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryTokenCache is a process-local TokenCache.
type MemoryTokenCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryTokenCache() *MemoryTokenCache {
	return NewMemoryTokenCacheWithClock(time.Now)
}

func NewMemoryTokenCacheWithClock(now func() time.Time) *MemoryTokenCache {
	return &MemoryTokenCache{entries: make(map[string]memoryEntry), now: now}
}

func (c *MemoryTokenCache) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return "", false, nil
	}
	if !c.now().Before(e.expiresAt) {
		delete(c.entries, key)
		return "", false, nil
	}
	return e.value, true, nil
}

func (c *MemoryTokenCache) Set(_ context.Context, key, value string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	c.mu.Lock()
	c.entries[key] = memoryEntry{value: value, expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()
	return nil
}

func (c *MemoryTokenCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	return nil
}

// NewRedisClient opens and pings a client for cfg.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

// NewTokenCache picks the Redis cache when mail.token_cache is "redis" and
// Redis is enabled, and the process-local cache otherwise. The returned
// close func releases the Redis client and is never nil.
func NewTokenCache(ctx context.Context, mail config.MailConfig, rc config.RedisConfig) (TokenCache, func() error, error) {
	if mail.TokenCache != "redis" || !rc.Enabled {
		return NewMemoryTokenCache(), func() error { return nil }, nil
	}
	client, err := NewRedisClient(ctx, rc)
	if err != nil {
		return nil, nil, err
	}
	return NewRedisTokenCache(client, "bendesk:"), client.Close, nil
}
