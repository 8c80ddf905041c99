package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// EntityCache caches the full list of one entity type in Redis under "<prefix>:list".
// Single items are never cached; lookups by ID always reach the store.
type EntityCache[T any] struct {
	rdb    *redis.Client
	ttl    time.Duration
	prefix string
}

// NewEntityCache returns a cache storing entries under prefix.
func NewEntityCache[T any](rdb *redis.Client, prefix string, ttl time.Duration) *EntityCache[T] {
	return &EntityCache[T]{rdb: rdb, ttl: ttl, prefix: prefix}
}

func (c *EntityCache[T]) listKey() string { return c.prefix + ":list" }

// GetList returns the cached list; ok is false on a miss.
func (c *EntityCache[T]) GetList(ctx context.Context) ([]T, bool, error) {
	var list []T
	ok, err := c.get(ctx, c.listKey(), &list)
	return list, ok, err
}

// SetList stores the list in cache.
func (c *EntityCache[T]) SetList(ctx context.Context, list []T) error {
	return c.set(ctx, c.listKey(), list)
}

// Invalidate drops the cached list (cache invalidation on write).
func (c *EntityCache[T]) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, c.listKey()).Err()
}

func (c *EntityCache[T]) get(ctx context.Context, key string, dst any) (bool, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (c *EntityCache[T]) set(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, b, c.ttl).Err()
}
