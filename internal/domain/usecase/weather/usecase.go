package weather

import (
	"context"

	"go-weather/internal/domain/entity"
)

type UseCase interface {
	// GetAllCitiesWeather fetches every catalog city in parallel. A failing city is
	// replaced by its fallback record; an error is returned only when the fetch as a whole could not run.
	GetAllCitiesWeather(ctx context.Context) ([]entity.WeatherRecord, error)

	// RefreshAllCitiesScheduled runs the same fetch on behalf of the cache warm-up job
	RefreshAllCitiesScheduled(ctx context.Context, requestID string) (int, error)
}
