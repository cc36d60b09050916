package redis

import (
	"context"
	"time"

	"lessonhub/internal/pkg/config"
	"lessonhub/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// Connect opens a redis client and verifies connectivity. Redis backs the
// booking lock and the schedule cache; both degrade loudly, not silently,
// so a dead redis fails startup.
func Connect(cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, errs.Wrap(err, "failed to ping redis")
	}

	cleanup := func() {
		_ = client.Close()
	}

	return client, cleanup, nil
}
