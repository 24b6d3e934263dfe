package api

import (
	"context"
	"fmt"

	"go-weather/internal/domain/model/external"

	"golang.org/x/time/rate"
)

// rateLimitedWeatherGateway wraps a WeatherGateway with a shared token bucket
type rateLimitedWeatherGateway struct {
	gateway WeatherGateway
	limiter *rate.Limiter
}

// NewRateLimitedWeatherGateway limits calls to rps requests per second with the given burst.
// A non-positive rps disables limiting.
func NewRateLimitedWeatherGateway(gateway WeatherGateway, rps float64, burst int) WeatherGateway {
	if rps <= 0 {
		return gateway
	}
	if burst < 1 {
		burst = 1
	}
	return &rateLimitedWeatherGateway{
		gateway: gateway,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (r *rateLimitedWeatherGateway) GetCurrentWeather(ctx context.Context, lat, lon float64) (*external.CurrentWeatherResponse, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.gateway.GetCurrentWeather(ctx, lat, lon)
}
