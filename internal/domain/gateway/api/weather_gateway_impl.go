package api

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go-weather/internal/domain/model/external"
	"go-weather/pkg/http"
)

// ErrMissingAPIKey is returned before any request is made when no provider key is configured.
var ErrMissingAPIKey = errors.New("openweathermap api key is not configured")

// Response formats of the provider's mode parameter
const (
	ModeJSON = "json"
	ModeXML  = "xml"
)

// weatherGatewayImpl implements the WeatherGateway interface against OpenWeatherMap
type weatherGatewayImpl struct {
	httpClient *http.Client
	apiKey     string
	units      string
	mode       string
}

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP client.
// mode selects the provider payload format; anything but ModeXML means JSON.
func NewWeatherGateway(baseUrl, apiKey, units, mode string, clientOptions http.ClientOptions) WeatherGateway {
	if units == "" {
		units = "metric"
	}
	if mode != ModeXML {
		mode = ModeJSON
	}
	if mode == ModeXML && clientOptions.DefaultContentType == "" {
		clientOptions.DefaultContentType = "application/xml"
	}
	return &weatherGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
		apiKey:     apiKey,
		units:      units,
		mode:       mode,
	}
}

// GetCurrentWeather calls GET /weather?lat&lon&appid&units[&mode=xml]
func (w *weatherGatewayImpl) GetCurrentWeather(ctx context.Context, lat, lon float64) (*external.CurrentWeatherResponse, error) {
	if w.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	params := map[string]string{
		"lat":   strconv.FormatFloat(lat, 'f', -1, 64),
		"lon":   strconv.FormatFloat(lon, 'f', -1, 64),
		"appid": w.apiKey,
		"units": w.units,
	}

	var successResp any = &external.CurrentWeatherResponse{}
	if w.mode == ModeXML {
		params["mode"] = ModeXML
		successResp = &external.CurrentWeatherXML{}
	}

	decoded, errResp, status, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/weather").
		WithQueryParams(params).
		WithSuccessResp(successResp).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err == nil {
		switch resp := decoded.(type) {
		case *external.CurrentWeatherXML:
			return resp.ToResponse(), nil
		case *external.CurrentWeatherResponse:
			return resp, nil
		}
		return nil, fmt.Errorf("openweathermap returned an empty response with status %d", status)
	}

	if errResp != nil {
		if errorResponse := errResp.(*external.APIErrorResponse); errorResponse.Message != "" {
			return nil, fmt.Errorf("openweathermap status %d: %s", status, errorResponse.Message)
		}
	}

	return nil, fmt.Errorf("openweathermap request failed: %w", err)
}
