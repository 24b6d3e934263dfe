package health

import (
	"context"
	"strconv"

	"go-weather/internal/domain/catalog"
	"go-weather/internal/domain/gateway/cache"
	"go-weather/internal/domain/model"
	"go-weather/pkg/msg"
)

type healthUseCase struct {
	cacheGateway     cache.WeatherCacheGateway
	catalog          *catalog.Catalog
	providerURL      string
	providerKeyIsSet bool
}

func NewHealthUseCase(cacheGateway cache.WeatherCacheGateway, cityCatalog *catalog.Catalog, providerURL string, providerKeyIsSet bool) UseCase {
	return &healthUseCase{
		cacheGateway:     cacheGateway,
		catalog:          cityCatalog,
		providerURL:      providerURL,
		providerKeyIsSet: providerKeyIsSet,
	}
}

// CheckHealth reports DOWN only when the cache backend is down. A missing provider key
// leaves the service UP since every city is then served from fallback data.
func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	cacheHealth := useCase.cacheGateway.Health(ctx)
	providerHealth := useCase.providerHealth()

	overallStatus := model.StatusUp
	if cacheHealth.Status == model.StatusDown {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:   overallStatus,
		Cache:    cacheHealth,
		Provider: providerHealth,
	}
}

func (useCase *healthUseCase) providerHealth() model.ComponentHealthStatus {
	details := map[string]string{
		"base_url": useCase.providerURL,
		"cities":   strconv.Itoa(useCase.catalog.Len()),
	}
	if !useCase.providerKeyIsSet {
		details["warning"] = msg.GetMessage("health.provider.missing-key")
		return model.ComponentHealthStatus{Status: model.StatusUnknown, Details: details}
	}
	return model.ComponentHealthStatus{Status: model.StatusUp, Details: details}
}
