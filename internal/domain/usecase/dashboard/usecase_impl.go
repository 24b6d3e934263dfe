package dashboard

import (
	"context"

	"go-weather/internal/domain/catalog"
	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/fallback"
	"go-weather/internal/domain/gateway/api"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"

	"go.uber.org/zap"
)

type dashboardUseCase struct {
	gateway   api.AggregatorGateway
	catalog   *catalog.Catalog
	generator *fallback.Generator
}

func NewDashboardUseCase(gateway api.AggregatorGateway, cityCatalog *catalog.Catalog, generator *fallback.Generator) UseCase {
	if generator == nil {
		generator = fallback.NewGenerator()
	}
	return &dashboardUseCase{
		gateway:   gateway,
		catalog:   cityCatalog,
		generator: generator,
	}
}

func (uc *dashboardUseCase) FetchWeather(ctx context.Context) []entity.WeatherRecord {
	records, err := uc.gateway.GetAllCitiesWeather(ctx)
	if err != nil {
		log.Error(msg.GetMessage("dashboard.fetch.fallback", err.Error()), zap.Error(err))
		return uc.generator.ForCatalog(uc.catalog.Cities())
	}
	return records
}
