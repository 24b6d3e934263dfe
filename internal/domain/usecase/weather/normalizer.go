package weather

import (
	"time"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model/external"
	"go-weather/pkg/util/numberutils"
)

const metersPerSecondToKmh = 3.6

// toRecord normalizes one provider response; now is used when the payload carries no observation time
func toRecord(city entity.City, response *external.CurrentWeatherResponse, now time.Time) entity.WeatherRecord {
	var main, description string
	if len(response.Weather) > 0 {
		main = response.Weather[0].Main
		description = response.Weather[0].Description
	}

	observedAt := now
	if response.Dt > 0 {
		observedAt = time.Unix(response.Dt, 0)
	}

	return entity.NewWeatherRecord(city, entity.Measurements{
		Temperature: numberutils.RoundToInt(response.Main.Temp),
		FeelsLike:   numberutils.RoundToInt(response.Main.FeelsLike),
		Humidity:    numberutils.RoundToInt(response.Main.Humidity),
		WindSpeed:   numberutils.RoundToInt(response.Wind.Speed * metersPerSecondToKmh),
		Pressure:    numberutils.RoundToInt(response.Main.Pressure),
		Visibility:  numberutils.RoundToInt(response.Visibility / 1000),
		// the current-weather endpoint does not report UV
		UVIndex:     0,
		Condition:   MapCondition(main, description),
		Description: description,
		ObservedAt:  observedAt,
	})
}
