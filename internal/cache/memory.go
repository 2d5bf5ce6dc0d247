package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const defaultMemoryCacheSize = 128

// MemoryCache is an in-process LRU cache with a fixed TTL per item.
type MemoryCache[T any] struct {
	lru *expirable.LRU[string, T]
}

var _ Cache[int] = (*MemoryCache[int])(nil)

// NewMemoryCache creates a cache holding at most maxSize items for ttl each.
// A non-positive ttl keeps items until they are evicted or deleted.
func NewMemoryCache[T any](maxSize int, ttl time.Duration) *MemoryCache[T] {
	if maxSize <= 0 {
		maxSize = defaultMemoryCacheSize
	}
	return &MemoryCache[T]{lru: expirable.NewLRU[string, T](maxSize, nil, ttl)}
}

func (c *MemoryCache[T]) Get(_ context.Context, key string) (T, bool) {
	return c.lru.Get(key)
}

func (c *MemoryCache[T]) Set(_ context.Context, key string, value T) {
	c.lru.Add(key, value)
}

func (c *MemoryCache[T]) Delete(_ context.Context, keys ...string) {
	for _, key := range keys {
		c.lru.Remove(key)
	}
}

// size returns the number of stored items, including expired ones not yet purged.
func (c *MemoryCache[T]) size() int {
	return c.lru.Len()
}
