package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to Redis at addr. It returns nil when addr is empty or the
// server does not answer a ping, in which case callers fall back to the memory cache.
func NewRedisClient(ctx context.Context, addr string, logger *slog.Logger) *redis.Client {
	if addr == "" {
		logger.Info("REDIS_ADDR not set, using in-process reference cache")
		return nil
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Failed to connect to Redis, using in-process reference cache",
			slog.String("addr", addr), slog.String("error", err.Error()))
		_ = client.Close()
		return nil
	}
	logger.Info("Connected to Redis", slog.String("addr", addr))
	return client
}

// RedisCache stores JSON encoded values in Redis under a common key prefix.
type RedisCache[T any] struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	logger *slog.Logger
}

var _ Cache[int] = (*RedisCache[int])(nil)

func NewRedisCache[T any](client *redis.Client, prefix string, ttl time.Duration, logger *slog.Logger) *RedisCache[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisCache[T]{client: client, prefix: prefix, ttl: ttl, logger: logger}
}

func (c *RedisCache[T]) key(k string) string {
	return c.prefix + k
}

func (c *RedisCache[T]) Get(ctx context.Context, key string) (T, bool) {
	var zero T
	raw, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return zero, false
	}
	if err != nil {
		c.logger.WarnContext(ctx, "Redis get failed", slog.String("key", c.key(key)), slog.String("error", err.Error()))
		return zero, false
	}
	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		c.logger.WarnContext(ctx, "Discarding undecodable cached value", slog.String("key", c.key(key)), slog.String("error", err.Error()))
		return zero, false
	}
	return value, true
}

func (c *RedisCache[T]) Set(ctx context.Context, key string, value T) {
	raw, err := json.Marshal(value)
	if err != nil {
		c.logger.WarnContext(ctx, "Failed to encode value for cache", slog.String("key", c.key(key)), slog.String("error", err.Error()))
		return
	}
	if err := c.client.Set(ctx, c.key(key), raw, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "Redis set failed", slog.String("key", c.key(key)), slog.String("error", err.Error()))
	}
}

func (c *RedisCache[T]) Delete(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = c.key(k)
	}
	if err := c.client.Del(ctx, full...).Err(); err != nil {
		c.logger.WarnContext(ctx, "Redis delete failed", slog.Any("keys", full), slog.String("error", err.Error()))
	}
}

// New returns a Redis backed cache when client is not nil and an in-process cache otherwise.
func New[T any](client *redis.Client, prefix string, ttl time.Duration, logger *slog.Logger) Cache[T] {
	if client == nil {
		return NewMemoryCache[T](128, ttl)
	}
	return NewRedisCache[T](client, prefix, ttl, logger)
}
