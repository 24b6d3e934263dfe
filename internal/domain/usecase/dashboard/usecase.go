package dashboard

import (
	"context"

	"go-weather/internal/domain/entity"
)

type UseCase interface {
	// FetchWeather returns one record per catalog city. When the weather API cannot be
	// reached it returns synthesized records instead, so it never fails.
	FetchWeather(ctx context.Context) []entity.WeatherRecord
}
