package series

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheTTL = time.Hour

// Cache stores serialized snapshots keyed by generation parameters.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string) error
}

// MemoryCache is the default in-process cache.
type MemoryCache struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{data: make(map[string]string)}
}

func (c *MemoryCache) Get(ctx context.Context, key string) (string, bool) {
	_ = ctx
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.data[key]
	return v, ok
}

func (c *MemoryCache) Set(ctx context.Context, key, value string) error {
	_ = ctx
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

// RedisCache shares snapshots across processes when a redis address is
// configured.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(addr string) *RedisCache {
	return &RedisCache{client: redis.NewClient(&redis.Options{Addr: addr})}
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return value, true
}

func (c *RedisCache) Set(ctx context.Context, key, value string) error {
	return c.client.Set(ctx, key, value, cacheTTL).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
