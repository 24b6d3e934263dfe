package entity

import "time"

// WeatherRecord is the normalized weather snapshot of one city.
type WeatherRecord struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Country      string    `json:"country"`
	Abbreviation string    `json:"abbreviation"`
	Temperature  int       `json:"temperature"`
	Condition    Condition `json:"condition"`
	Humidity     int       `json:"humidity"`
	WindSpeed    int       `json:"windSpeed"`
	Pressure     int       `json:"pressure"`
	FeelsLike    int       `json:"feelsLike"`
	UVIndex      int       `json:"uvIndex"`
	Visibility   int       `json:"visibility"`
	Description  string    `json:"description"`
	LastUpdated  time.Time `json:"lastUpdated"`
}

// Measurements holds the per-city values that vary between live and synthesized records.
type Measurements struct {
	Temperature int
	FeelsLike   int
	Humidity    int
	WindSpeed   int
	Pressure    int
	UVIndex     int
	Visibility  int
	Condition   Condition
	Description string
	ObservedAt  time.Time
}

// NewWeatherRecord builds the record for city. Live, per-city fallback and
// whole-set fallback records all go through here so their shape never diverges.
func NewWeatherRecord(city City, m Measurements) WeatherRecord {
	return WeatherRecord{
		ID:           city.ID(),
		Name:         city.Name,
		Country:      city.Country,
		Abbreviation: city.Abbreviation,
		Temperature:  m.Temperature,
		Condition:    m.Condition,
		Humidity:     m.Humidity,
		WindSpeed:    m.WindSpeed,
		Pressure:     m.Pressure,
		FeelsLike:    m.FeelsLike,
		UVIndex:      m.UVIndex,
		Visibility:   m.Visibility,
		Description:  m.Description,
		LastUpdated:  m.ObservedAt.UTC(),
	}
}
