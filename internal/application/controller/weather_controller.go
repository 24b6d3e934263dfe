package controller

import (
	"net/http"

	"go-weather/internal/domain/model"
	"go-weather/internal/domain/usecase/weather"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const weatherCacheControl = "public, max-age=300"

type WeatherController struct {
	api     *echo.Group
	useCase weather.UseCase
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/weather", controller.GetAllCitiesWeather)
}

// GetAllCitiesWeather godoc
// @Summary Current weather of every monitored city
// @Description Fetches all cities in parallel from OpenWeatherMap. A city whose fetch fails is returned with placeholder values.
// @Tags weather
// @Produce json
// @Success 200 {array} entity.WeatherRecord "One record per city, in display order"
// @Failure 500 {object} model.ErrorResponse "The fetch could not run"
// @Router /weather [get]
func (controller *WeatherController) GetAllCitiesWeather(c echo.Context) error {
	records, err := controller.useCase.GetAllCitiesWeather(c.Request().Context())
	if err != nil {
		log.Error("weather aggregation failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: msg.GetMessage("weather.error.fetch-failed")})
	}

	c.Response().Header().Set(echo.HeaderCacheControl, weatherCacheControl)
	return c.JSON(http.StatusOK, records)
}
