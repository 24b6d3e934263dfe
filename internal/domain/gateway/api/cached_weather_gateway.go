package api

import (
	"context"

	"go-weather/internal/domain/gateway/cache"
	"go-weather/internal/domain/model/external"
)

// cachedWeatherGateway answers from the cache while an entry is fresh
type cachedWeatherGateway struct {
	gateway WeatherGateway
	cache   cache.WeatherCacheGateway
}

// NewCachedWeatherGateway wraps gateway so fresh responses are served from weatherCache.
func NewCachedWeatherGateway(gateway WeatherGateway, weatherCache cache.WeatherCacheGateway) WeatherGateway {
	return &cachedWeatherGateway{gateway: gateway, cache: weatherCache}
}

func (c *cachedWeatherGateway) GetCurrentWeather(ctx context.Context, lat, lon float64) (*external.CurrentWeatherResponse, error) {
	key := cache.Key(lat, lon)
	if cached, ok := c.cache.Get(ctx, key); ok {
		return cached, nil
	}

	response, err := c.gateway.GetCurrentWeather(ctx, lat, lon)
	if err != nil {
		return nil, err
	}

	c.cache.Set(ctx, key, response)
	return response, nil
}
