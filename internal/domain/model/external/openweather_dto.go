package external

// CurrentWeatherResponse is the subset of the OpenWeatherMap current weather payload the dashboard uses
type CurrentWeatherResponse struct {
	Weather    []WeatherDescriptionDTO `json:"weather"`
	Main       MainDTO                 `json:"main"`
	Visibility float64                 `json:"visibility"`
	Wind       WindDTO                 `json:"wind"`
	Dt         int64                   `json:"dt"`
	Name       string                  `json:"name"`
}

// WeatherDescriptionDTO is one entry of the "weather" array
type WeatherDescriptionDTO struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// MainDTO holds temperatures in the requested units, pressure in hPa and humidity in percent
type MainDTO struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Pressure  float64 `json:"pressure"`
	Humidity  float64 `json:"humidity"`
}

// WindDTO holds wind speed in m/s for metric units
type WindDTO struct {
	Speed float64 `json:"speed"`
}

// APIErrorResponse represents an error payload from the provider
type APIErrorResponse struct {
	Message string `json:"message" xml:"message"`
}
