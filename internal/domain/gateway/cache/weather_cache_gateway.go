package cache

import (
	"context"
	"fmt"

	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"
)

// WeatherCacheGateway keeps provider responses fresh for a fixed window.
// Implementations never fail the caller: backend errors are logged and reported as misses.
type WeatherCacheGateway interface {
	// Get returns the cached response for key, or false on a miss.
	Get(ctx context.Context, key string) (*external.CurrentWeatherResponse, bool)
	// Set stores value under key for the configured freshness window.
	Set(ctx context.Context, key string, value *external.CurrentWeatherResponse)
	// Health reports the state of the cache backend.
	Health(ctx context.Context) model.ComponentHealthStatus
}

// Key builds the cache key of a coordinate pair.
func Key(lat, lon float64) string {
	return fmt.Sprintf("%.4f,%.4f", lat, lon)
}
