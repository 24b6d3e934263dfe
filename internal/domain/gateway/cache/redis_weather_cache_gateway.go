package cache

import (
	"context"
	"errors"

	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
	"go-weather/pkg/redis"

	"go.uber.org/zap"
)

type redisWeatherCacheGateway struct {
	cache   *redis.Cache
	checker *redis.HealthChecker
}

// NewRedisWeatherCacheGateway stores provider responses in Redis under the given cache name.
func NewRedisWeatherCacheGateway(client *redis.Client, cacheName string) WeatherCacheGateway {
	return &redisWeatherCacheGateway{
		cache:   redis.NewCache(client, redis.NewCacheOptions().WithCacheName(cacheName)),
		checker: redis.NewHealthChecker(client),
	}
}

func (r *redisWeatherCacheGateway) Get(ctx context.Context, key string) (*external.CurrentWeatherResponse, bool) {
	var response external.CurrentWeatherResponse
	if err := r.cache.Get(ctx, key, &response); err != nil {
		if !errors.Is(err, redis.ErrCacheMiss) {
			log.Warn(msg.GetMessage("weather.cache.error", key, err.Error()), zap.Error(err))
		}
		return nil, false
	}
	return &response, true
}

func (r *redisWeatherCacheGateway) Set(ctx context.Context, key string, value *external.CurrentWeatherResponse) {
	if value == nil {
		return
	}
	if err := r.cache.Set(ctx, key, value); err != nil {
		log.Warn(msg.GetMessage("weather.cache.error", key, err.Error()), zap.Error(err))
	}
}

func (r *redisWeatherCacheGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	check := r.checker.HealthCheck(ctx)
	details := map[string]string{"type": "redis"}
	for k, v := range check.Details {
		details[k] = v
	}
	return model.ComponentHealthStatus{
		Status:  model.HealthStatus(check.Status),
		Details: details,
	}
}
