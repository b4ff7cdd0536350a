package bootstrap

import (
	"context"

	"consult-booking/internal/infra/cache"
	"consult-booking/internal/pkg/config"
	"consult-booking/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		NewAvailabilityCache,
	),
)

// NewRedisClient returns nil when the cache is disabled.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	client := cache.NewClient(cfg.Redis)
	if client == nil {
		return nil
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client
}

func NewAvailabilityCache(client *redis.Client, cfg config.Config) shared.AvailabilityCache {
	if client == nil {
		return shared.NoopAvailabilityCache{}
	}
	return cache.NewAvailabilityCache(client, cfg.Redis.CacheTTL)
}
