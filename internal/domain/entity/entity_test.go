package entity

import (
	"testing"
	"time"
)

func TestCityID(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"New York", "new-york"},
		{"São Paulo", "são-paulo"},
		{"London", "london"},
		{"  Rio   de\tJaneiro ", "rio-de-janeiro"},
	}

	for _, tt := range tests {
		if got := (City{Name: tt.name}).ID(); got != tt.want {
			t.Errorf("City{%q}.ID() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestConditionsOrderAndValid(t *testing.T) {
	got := Conditions()
	if len(got) != 8 {
		t.Fatalf("len(Conditions()) = %d, want 8", len(got))
	}
	if got[0] != ConditionSunny || got[7] != ConditionFoggy {
		t.Errorf("Conditions() = %v, want sunny first and foggy last", got)
	}

	got[0] = "mutated"
	if Conditions()[0] != ConditionSunny {
		t.Error("Conditions() exposes internal storage")
	}

	if Condition("hail").Valid() {
		t.Error(`Condition("hail").Valid() = true, want false`)
	}
	if !ConditionDrizzle.Valid() {
		t.Error("ConditionDrizzle.Valid() = false, want true")
	}
}

func TestNewWeatherRecord(t *testing.T) {
	city := City{Name: "New York", Country: "US", Abbreviation: "NYC", Lat: 40.7128, Lon: -74.006}
	observed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("EST", -5*3600))

	record := NewWeatherRecord(city, Measurements{Temperature: 3, Condition: ConditionSnowy, ObservedAt: observed})

	if record.ID != "new-york" || record.Abbreviation != "NYC" || record.Country != "US" {
		t.Errorf("identity = %q/%q/%q", record.ID, record.Abbreviation, record.Country)
	}
	if record.LastUpdated.Location() != time.UTC || !record.LastUpdated.Equal(observed) {
		t.Errorf("LastUpdated = %v, want %v in UTC", record.LastUpdated, observed)
	}
}
