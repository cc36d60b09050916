package lock

import (
	"context"
	"log/slog"
	"time"

	"lessonhub/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const pollInterval = 50 * time.Millisecond

// releaseScript deletes the key only when it still carries our token, so an
// expired-then-reacquired lock is never released by the previous holder.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

type RedisLocker struct {
	client *redis.Client
	logger *slog.Logger
}

func NewRedisLocker(client *redis.Client, logger *slog.Logger) *RedisLocker {
	return &RedisLocker{client: client, logger: logger}
}

func (l *RedisLocker) Acquire(ctx context.Context, key string, ttl, wait time.Duration) (func(context.Context), error) {
	lockKey := "lock:" + key
	token := uuid.NewString()
	deadline := time.Now().Add(wait)

	for {
		ok, err := l.client.SetNX(ctx, lockKey, token, ttl).Result()
		if err != nil {
			return nil, errs.Wrap(err, "failed to acquire lock")
		}
		if ok {
			return l.releaseFunc(lockKey, token), nil
		}

		if time.Now().After(deadline) {
			return nil, ErrNotAcquired
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(pollInterval):
		}
	}
}

func (l *RedisLocker) releaseFunc(lockKey, token string) func(context.Context) {
	return func(ctx context.Context) {
		if err := releaseScript.Run(ctx, l.client, []string{lockKey}, token).Err(); err != nil {
			// The TTL reclaims the key; losing a release only delays that.
			l.logger.Warn("failed to release lock", "key", lockKey, "error", err)
		}
	}
}
