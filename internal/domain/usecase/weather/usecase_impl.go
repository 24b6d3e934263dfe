package weather

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go-weather/internal/domain/catalog"
	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/fallback"
	"go-weather/internal/domain/gateway/api"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"

	"go.uber.org/zap"
)

var errNoCities = errors.New("city catalog is empty")

type weatherUseCase struct {
	catalog    *catalog.Catalog
	apiGateway api.WeatherGateway
	now        func() time.Time
}

func NewWeatherUseCase(cityCatalog *catalog.Catalog, apiGateway api.WeatherGateway) UseCase {
	return &weatherUseCase{
		catalog:    cityCatalog,
		apiGateway: apiGateway,
		now:        time.Now,
	}
}

// GetAllCitiesWeather fans out one request per city and joins them in catalog order
func (uc *weatherUseCase) GetAllCitiesWeather(ctx context.Context) (records []entity.WeatherRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			records, err = nil, fmt.Errorf("weather aggregation aborted: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("weather aggregation cancelled: %w", err)
	}

	cities := uc.catalog.Cities()
	if len(cities) == 0 {
		return nil, errNoCities
	}

	start := uc.now()
	log.Debug(msg.GetMessage("weather.fetch.start", len(cities)))

	records = make([]entity.WeatherRecord, len(cities))
	var wg sync.WaitGroup
	for i, city := range cities {
		wg.Add(1)
		go func() {
			defer wg.Done()
			records[i] = uc.fetchCity(ctx, city)
		}()
	}
	wg.Wait()

	log.Info(msg.GetMessage("weather.fetch.done", len(records), uc.now().Sub(start).String()),
		zap.Int("cities", len(records)))
	return records, nil
}

// RefreshAllCitiesScheduled re-runs the aggregation so the provider cache stays warm
func (uc *weatherUseCase) RefreshAllCitiesScheduled(ctx context.Context, requestID string) (int, error) {
	records, err := uc.GetAllCitiesWeather(ctx)
	if err != nil {
		return 0, fmt.Errorf("scheduled refresh %s failed: %w", requestID, err)
	}
	return len(records), nil
}

// fetchCity never fails: any error or panic yields the city's fallback record
func (uc *weatherUseCase) fetchCity(ctx context.Context, city entity.City) (record entity.WeatherRecord) {
	defer func() {
		if r := recover(); r != nil {
			log.Warn(msg.GetMessage("weather.fetch.city-panic", city.Name, fmt.Sprint(r)),
				zap.String("city", city.ID()))
			record = fallback.ForCity(city, uc.now())
		}
	}()

	response, err := uc.apiGateway.GetCurrentWeather(ctx, city.Lat, city.Lon)
	if err != nil {
		log.Warn(msg.GetMessage("weather.fetch.city-failed", city.Name, err.Error()),
			zap.String("city", city.ID()), zap.Error(err))
		return fallback.ForCity(city, uc.now())
	}
	if response == nil {
		return fallback.ForCity(city, uc.now())
	}

	return toRecord(city, response, uc.now())
}
