// Package cache holds the read-through caches used for reference data.
package cache

import "context"

// Cache is a keyed store of T values with expiry. A failed lookup is reported as a miss.
type Cache[T any] interface {
	Get(ctx context.Context, key string) (T, bool)
	Set(ctx context.Context, key string, value T)
	Delete(ctx context.Context, keys ...string)
}
