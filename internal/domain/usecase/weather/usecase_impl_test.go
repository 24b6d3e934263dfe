package weather

import (
	"context"
	"errors"
	"math"
	"sync/atomic"
	"testing"
	"time"

	"go-weather/internal/domain/catalog"
	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/fallback"
	"go-weather/internal/domain/model/external"
)

var fixedNow = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

type fakeWeatherGateway struct {
	calls   atomic.Int32
	respond func(lat, lon float64) (*external.CurrentWeatherResponse, error)
}

func (f *fakeWeatherGateway) GetCurrentWeather(_ context.Context, lat, lon float64) (*external.CurrentWeatherResponse, error) {
	f.calls.Add(1)
	return f.respond(lat, lon)
}

func newTestUseCase(c *catalog.Catalog, gateway *fakeWeatherGateway) *weatherUseCase {
	uc := NewWeatherUseCase(c, gateway).(*weatherUseCase)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func sampleResponse(lat float64) *external.CurrentWeatherResponse {
	return &external.CurrentWeatherResponse{
		Weather:    []external.WeatherDescriptionDTO{{Main: "Clouds", Description: "broken clouds"}},
		Main:       external.MainDTO{Temp: lat, FeelsLike: 21.5, Pressure: 1012.4, Humidity: 64},
		Visibility: 10000,
		Wind:       external.WindDTO{Speed: 5},
		Dt:         1717225800,
	}
}

func TestGetAllCitiesWeatherOrderAndNormalization(t *testing.T) {
	cities := catalog.Default()
	gateway := &fakeWeatherGateway{respond: func(lat, _ float64) (*external.CurrentWeatherResponse, error) {
		return sampleResponse(lat), nil
	}}

	records, err := newTestUseCase(cities, gateway).GetAllCitiesWeather(context.Background())
	if err != nil {
		t.Fatalf("GetAllCitiesWeather() error = %v", err)
	}
	if len(records) != 12 {
		t.Fatalf("len(records) = %d, want 12", len(records))
	}
	if n := gateway.calls.Load(); n != 12 {
		t.Errorf("gateway calls = %d, want 12", n)
	}

	for i, city := range cities.Cities() {
		r := records[i]
		if r.ID != city.ID() || r.Name != city.Name {
			t.Errorf("records[%d] = %s, want %s", i, r.ID, city.ID())
		}
		if want := int(roundHalfUp(city.Lat)); r.Temperature != want {
			t.Errorf("records[%d].Temperature = %d, want %d", i, r.Temperature, want)
		}
	}

	r := records[0]
	if r.WindSpeed != 18 {
		t.Errorf("WindSpeed = %d, want 18 (5 m/s)", r.WindSpeed)
	}
	if r.Visibility != 10 || r.Pressure != 1012 || r.Humidity != 64 || r.FeelsLike != 22 {
		t.Errorf("visibility/pressure/humidity/feelsLike = %d/%d/%d/%d", r.Visibility, r.Pressure, r.Humidity, r.FeelsLike)
	}
	if r.UVIndex != 0 || r.Condition != entity.ConditionCloudy || r.Description != "broken clouds" {
		t.Errorf("uv/condition/description = %d/%s/%s", r.UVIndex, r.Condition, r.Description)
	}
	if !r.LastUpdated.Equal(time.Unix(1717225800, 0)) {
		t.Errorf("LastUpdated = %v", r.LastUpdated)
	}
}

func TestGetAllCitiesWeatherIsolatesFailures(t *testing.T) {
	cities := catalog.Default()
	london := cities.Cities()[1]
	tokyo := cities.Cities()[2]

	gateway := &fakeWeatherGateway{respond: func(lat, _ float64) (*external.CurrentWeatherResponse, error) {
		switch lat {
		case london.Lat:
			return nil, errors.New("503 service unavailable")
		case tokyo.Lat:
			panic("decoder exploded")
		}
		return sampleResponse(lat), nil
	}}

	records, err := newTestUseCase(cities, gateway).GetAllCitiesWeather(context.Background())
	if err != nil {
		t.Fatalf("GetAllCitiesWeather() error = %v", err)
	}
	if len(records) != 12 {
		t.Fatalf("len(records) = %d, want 12", len(records))
	}

	if want := fallback.ForCity(london, fixedNow); records[1] != want {
		t.Errorf("records[1] = %+v, want fallback %+v", records[1], want)
	}
	if want := fallback.ForCity(tokyo, fixedNow); records[2] != want {
		t.Errorf("records[2] = %+v, want fallback %+v", records[2], want)
	}
	for _, i := range []int{0, 3, 11} {
		if records[i].Description != "broken clouds" {
			t.Errorf("records[%d].Description = %q, want live data", i, records[i].Description)
		}
	}
}

func TestGetAllCitiesWeatherAllFailStillReturnsRecords(t *testing.T) {
	gateway := &fakeWeatherGateway{respond: func(float64, float64) (*external.CurrentWeatherResponse, error) {
		return nil, errors.New("dns failure")
	}}

	records, err := newTestUseCase(catalog.Default(), gateway).GetAllCitiesWeather(context.Background())
	if err != nil {
		t.Fatalf("GetAllCitiesWeather() error = %v", err)
	}
	for i, r := range records {
		if r.Description != fallback.CityDescription || r.Temperature != 20 {
			t.Errorf("records[%d] = %+v, want per-city fallback", i, r)
		}
	}
}

func TestGetAllCitiesWeatherIdempotentForSameUpstream(t *testing.T) {
	gateway := &fakeWeatherGateway{respond: func(lat, _ float64) (*external.CurrentWeatherResponse, error) {
		return sampleResponse(lat), nil
	}}
	uc := newTestUseCase(catalog.Default(), gateway)

	first, _ := uc.GetAllCitiesWeather(context.Background())
	second, _ := uc.GetAllCitiesWeather(context.Background())
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("records[%d] differ across identical fetches", i)
		}
	}
}

func TestGetAllCitiesWeatherOrchestrationErrors(t *testing.T) {
	gateway := &fakeWeatherGateway{respond: func(lat, _ float64) (*external.CurrentWeatherResponse, error) {
		return sampleResponse(lat), nil
	}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := newTestUseCase(catalog.Default(), gateway).GetAllCitiesWeather(ctx); err == nil {
		t.Error("GetAllCitiesWeather(cancelled) error = nil, want error")
	}

	empty, _ := catalog.New(nil)
	if _, err := newTestUseCase(empty, gateway).GetAllCitiesWeather(context.Background()); err == nil {
		t.Error("GetAllCitiesWeather(empty catalog) error = nil, want error")
	}
	if n := gateway.calls.Load(); n != 0 {
		t.Errorf("gateway calls = %d, want 0", n)
	}
}

func TestRefreshAllCitiesScheduled(t *testing.T) {
	gateway := &fakeWeatherGateway{respond: func(lat, _ float64) (*external.CurrentWeatherResponse, error) {
		return sampleResponse(lat), nil
	}}

	n, err := newTestUseCase(catalog.Default(), gateway).RefreshAllCitiesScheduled(context.Background(), "req-1")
	if err != nil || n != 12 {
		t.Errorf("RefreshAllCitiesScheduled() = %d, %v, want 12, nil", n, err)
	}
}

func TestToRecordWithoutWeatherEntries(t *testing.T) {
	city := entity.City{Name: "Cairo", Country: "EG", Abbreviation: "CAI"}
	r := toRecord(city, &external.CurrentWeatherResponse{Main: external.MainDTO{Temp: -0.4}}, fixedNow)

	if r.Condition != entity.ConditionSunny || r.Description != "" {
		t.Errorf("condition/description = %s/%q, want sunny/empty", r.Condition, r.Description)
	}
	if r.Temperature != 0 {
		t.Errorf("Temperature = %d, want 0", r.Temperature)
	}
	if !r.LastUpdated.Equal(fixedNow) {
		t.Errorf("LastUpdated = %v, want %v", r.LastUpdated, fixedNow)
	}
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

func TestToRecordNegativeHalfTemperatures(t *testing.T) {
	city := entity.City{Name: "Moscow", Country: "RU", Abbreviation: "MOW"}
	r := toRecord(city, &external.CurrentWeatherResponse{Main: external.MainDTO{Temp: -2.5, FeelsLike: -7.5}}, fixedNow)

	if r.Temperature != -2 || r.FeelsLike != -7 {
		t.Errorf("Temperature/FeelsLike = %d/%d, want -2/-7", r.Temperature, r.FeelsLike)
	}
}

func TestToRecordWindSpeedConversion(t *testing.T) {
	tests := []struct {
		mps  float64
		want int
	}{
		{2.78, 10},
		{0, 0},
		{5, 18},
		{13.89, 50},
	}

	city := entity.City{Name: "Moscow", Country: "RU", Abbreviation: "MOW"}
	for _, tt := range tests {
		r := toRecord(city, &external.CurrentWeatherResponse{Wind: external.WindDTO{Speed: tt.mps}}, fixedNow)
		if r.WindSpeed != tt.want {
			t.Errorf("WindSpeed for %v m/s = %d, want %d", tt.mps, r.WindSpeed, tt.want)
		}
	}
}
