package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"lessonhub/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "cache:"
	tagPrefix = "cachetag:"
)

// RedisCache keys entries under cache:<key> and tracks membership per tag in
// a cachetag:<tag> set. Redis failures on the read or write path degrade to
// computing fresh; only Invalidate reports errors, because a missed
// invalidation could serve stale conflict data.
type RedisCache struct {
	client *redis.Client
	logger *slog.Logger
}

func NewRedisCache(client *redis.Client, logger *slog.Logger) *RedisCache {
	return &RedisCache{client: client, logger: logger}
}

func (c *RedisCache) GetOrCompute(ctx context.Context, key string, tags []string, ttl time.Duration, compute func(context.Context) ([]byte, error)) ([]byte, error) {
	fullKey := keyPrefix + key

	cached, err := c.client.Get(ctx, fullKey).Bytes()
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, redis.Nil) {
		c.logger.Warn("cache read failed, computing fresh", "key", key, "error", err)
	}

	value, err := compute(ctx)
	if err != nil {
		return nil, err
	}

	pipe := c.client.TxPipeline()
	pipe.Set(ctx, fullKey, value, ttl)
	for _, tag := range tags {
		pipe.SAdd(ctx, tagPrefix+tag, fullKey)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		c.logger.Warn("cache store failed", "key", key, "error", err)
	}

	return value, nil
}

func (c *RedisCache) Invalidate(ctx context.Context, tags ...string) error {
	for _, tag := range tags {
		tagKey := tagPrefix + tag

		members, err := c.client.SMembers(ctx, tagKey).Result()
		if err != nil {
			return errs.Wrap(err, "failed to read cache tag members")
		}

		keys := append(members, tagKey)
		if err := c.client.Del(ctx, keys...).Err(); err != nil {
			return errs.Wrap(err, "failed to delete tagged cache entries")
		}
	}
	return nil
}
