package api

import (
	"context"

	"go-weather/internal/domain/entity"
)

// AggregatorGateway calls the weather API served by this project
type AggregatorGateway interface {
	// GetAllCitiesWeather returns the records of every city, in catalog order
	GetAllCitiesWeather(ctx context.Context) ([]entity.WeatherRecord, error)
}
