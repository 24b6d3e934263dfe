package api

import (
	"context"
	"fmt"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model"
	"go-weather/pkg/http"
)

// freshnessHint asks intermediaries for responses at most five minutes old
const freshnessHint = "max-age=300"

type aggregatorGatewayImpl struct {
	httpClient *http.Client
}

// NewAggregatorGateway creates a gateway for the weather API rooted at baseUrl (including its context path)
func NewAggregatorGateway(baseUrl string, clientOptions http.ClientOptions) AggregatorGateway {
	return &aggregatorGatewayImpl{httpClient: http.NewHttpClient(baseUrl, clientOptions)}
}

func (a *aggregatorGatewayImpl) GetAllCitiesWeather(ctx context.Context) ([]entity.WeatherRecord, error) {
	successResp, errResp, status, err := a.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/weather").
		WithHeaders(map[string]string{
			"Accept":        "application/json",
			"Cache-Control": freshnessHint,
		}).
		WithSuccessResp(&[]entity.WeatherRecord{}).
		WithErrorResp(&model.ErrorResponse{}).
		Execute()

	if err == nil {
		return *successResp.(*[]entity.WeatherRecord), nil
	}

	if errResp != nil {
		if errorResponse := errResp.(*model.ErrorResponse); errorResponse.Error != "" {
			return nil, fmt.Errorf("weather api status %d: %s", status, errorResponse.Error)
		}
	}

	return nil, fmt.Errorf("weather api request failed: %w", err)
}
