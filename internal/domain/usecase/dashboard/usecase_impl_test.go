package dashboard

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"go-weather/internal/domain/catalog"
	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/fallback"
)

type stubAggregator struct {
	records []entity.WeatherRecord
	err     error
}

func (s stubAggregator) GetAllCitiesWeather(context.Context) ([]entity.WeatherRecord, error) {
	return s.records, s.err
}

func testGenerator() *fallback.Generator {
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	return fallback.NewGeneratorWith(rand.New(rand.NewPCG(3, 4)), func() time.Time { return now })
}

func TestFetchWeatherPassesThroughAPIRecords(t *testing.T) {
	live := []entity.WeatherRecord{{ID: "london", Description: "light rain"}}
	uc := NewDashboardUseCase(stubAggregator{records: live}, catalog.Default(), testGenerator())

	got := uc.FetchWeather(context.Background())
	if len(got) != 1 || got[0] != live[0] {
		t.Errorf("FetchWeather() = %+v, want %+v", got, live)
	}
}

func TestFetchWeatherFallsBackOnError(t *testing.T) {
	cities := catalog.Default()
	uc := NewDashboardUseCase(stubAggregator{err: errors.New("connection refused")}, cities, testGenerator())

	got := uc.FetchWeather(context.Background())
	if len(got) != cities.Len() {
		t.Fatalf("len(FetchWeather()) = %d, want %d", len(got), cities.Len())
	}
	for i, city := range cities.Cities() {
		if got[i].ID != city.ID() || got[i].Abbreviation != city.Abbreviation {
			t.Errorf("records[%d] = %s/%s, want %s/%s", i, got[i].ID, got[i].Abbreviation, city.ID(), city.Abbreviation)
		}
		if got[i].Description != fallback.SetDescription {
			t.Errorf("records[%d].Description = %q, want %q", i, got[i].Description, fallback.SetDescription)
		}
	}
}
