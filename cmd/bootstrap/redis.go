package bootstrap

import (
	"context"

	"lessonhub/internal/infra/cache"
	"lessonhub/internal/infra/lock"
	infraredis "lessonhub/internal/infra/redis"
	"lessonhub/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		fx.Annotate(
			cache.NewRedisCache,
			fx.As(new(cache.TaggedCache)),
		),
		fx.Annotate(
			lock.NewRedisLocker,
			fx.As(new(lock.Locker)),
		),
	),
)

func NewRedisClient(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	client, cleanup, err := infraredis.Connect(cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return client, nil
}
