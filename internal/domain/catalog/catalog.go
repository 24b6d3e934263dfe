package catalog

import (
	"fmt"

	"go-weather/internal/domain/entity"
	"go-weather/pkg/resource"
)

var defaultCities = []entity.City{
	{Name: "New York", Country: "US", Abbreviation: "NYC", Lat: 40.7128, Lon: -74.006},
	{Name: "London", Country: "GB", Abbreviation: "LON", Lat: 51.5074, Lon: -0.1278},
	{Name: "Tokyo", Country: "JP", Abbreviation: "TOK", Lat: 35.6762, Lon: 139.6503},
	{Name: "Sydney", Country: "AU", Abbreviation: "SYD", Lat: -33.8688, Lon: 151.2093},
	{Name: "Paris", Country: "FR", Abbreviation: "PAR", Lat: 48.8566, Lon: 2.3522},
	{Name: "Dubai", Country: "AE", Abbreviation: "DXB", Lat: 25.2048, Lon: 55.2708},
	{Name: "Singapore", Country: "SG", Abbreviation: "SIN", Lat: 1.3521, Lon: 103.8198},
	{Name: "Mumbai", Country: "IN", Abbreviation: "BOM", Lat: 19.076, Lon: 72.8777},
	{Name: "São Paulo", Country: "BR", Abbreviation: "SAO", Lat: -23.5505, Lon: -46.6333},
	{Name: "Cairo", Country: "EG", Abbreviation: "CAI", Lat: 30.0444, Lon: 31.2357},
	{Name: "Moscow", Country: "RU", Abbreviation: "MOW", Lat: 55.7558, Lon: 37.6176},
	{Name: "Bangkok", Country: "TH", Abbreviation: "BKK", Lat: 13.7563, Lon: 100.5018},
}

// Catalog is the fixed, ordered list of monitored cities. It never changes after construction.
type Catalog struct {
	cities []entity.City
}

// New builds a catalog from cities, rejecting duplicate ids and blank names.
func New(cities []entity.City) (*Catalog, error) {
	seen := make(map[string]struct{}, len(cities))
	for i, city := range cities {
		id := city.ID()
		if id == "" {
			return nil, fmt.Errorf("city at position %d has no name", i)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("duplicate city id %q", id)
		}
		seen[id] = struct{}{}
	}

	owned := make([]entity.City, len(cities))
	copy(owned, cities)
	return &Catalog{cities: owned}, nil
}

// Default returns the built-in twelve-city catalog.
func Default() *Catalog {
	c, _ := New(defaultCities)
	return c
}

// Load reads weather.cities from the application properties, falling back to Default when unset.
func Load() (*Catalog, error) {
	if !resource.IsSet("weather.cities") {
		return Default(), nil
	}

	var cities []entity.City
	if err := resource.UnmarshalKey("weather.cities", &cities); err != nil {
		return nil, fmt.Errorf("failed to read weather.cities: %w", err)
	}
	if len(cities) == 0 {
		return Default(), nil
	}
	return New(cities)
}

// Cities returns a copy of the cities in display order.
func (c *Catalog) Cities() []entity.City {
	out := make([]entity.City, len(c.cities))
	copy(out, c.cities)
	return out
}

// Len returns the number of cities.
func (c *Catalog) Len() int {
	return len(c.cities)
}
