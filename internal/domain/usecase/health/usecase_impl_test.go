package health

import (
	"context"
	"testing"

	"go-weather/internal/domain/catalog"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"
)

type stubCache struct {
	status model.HealthStatus
}

func (s stubCache) Get(context.Context, string) (*external.CurrentWeatherResponse, bool) {
	return nil, false
}

func (s stubCache) Set(context.Context, string, *external.CurrentWeatherResponse) {}

func (s stubCache) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: s.status}
}

func TestCheckHealth(t *testing.T) {
	tests := []struct {
		name         string
		cacheStatus  model.HealthStatus
		keySet       bool
		wantOverall  model.HealthStatus
		wantProvider model.HealthStatus
	}{
		{"all up", model.StatusUp, true, model.StatusUp, model.StatusUp},
		{"cache down", model.StatusDown, true, model.StatusDown, model.StatusUp},
		{"missing key", model.StatusUp, false, model.StatusUp, model.StatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewHealthUseCase(stubCache{status: tt.cacheStatus}, catalog.Default(), "https://api.openweathermap.org/data/2.5", tt.keySet)
			got := uc.CheckHealth(context.Background())

			if got.Status != tt.wantOverall {
				t.Errorf("Status = %s, want %s", got.Status, tt.wantOverall)
			}
			if got.Provider.Status != tt.wantProvider {
				t.Errorf("Provider.Status = %s, want %s", got.Provider.Status, tt.wantProvider)
			}
			if got.Provider.Details["cities"] != "12" {
				t.Errorf("Provider.Details[cities] = %q, want 12", got.Provider.Details["cities"])
			}
		})
	}
}
