package api

import (
	"context"

	"go-weather/internal/domain/model/external"
)

// WeatherGateway defines the interface for weather-related external API calls
type WeatherGateway interface {
	// GetCurrentWeather returns the current conditions at the given coordinates, in metric units
	GetCurrentWeather(ctx context.Context, lat, lon float64) (*external.CurrentWeatherResponse, error)
}
