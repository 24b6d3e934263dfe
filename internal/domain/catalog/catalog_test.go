package catalog

import (
	"testing"

	"go-weather/internal/domain/entity"
)

func TestDefault(t *testing.T) {
	c := Default()
	if c.Len() != 12 {
		t.Fatalf("Len() = %d, want 12", c.Len())
	}

	want := []string{"NYC", "LON", "TOK", "SYD", "PAR", "DXB", "SIN", "BOM", "SAO", "CAI", "MOW", "BKK"}
	for i, city := range c.Cities() {
		if city.Abbreviation != want[i] {
			t.Errorf("Cities()[%d].Abbreviation = %q, want %q", i, city.Abbreviation, want[i])
		}
	}
}

func TestCitiesReturnsCopy(t *testing.T) {
	c := Default()
	cities := c.Cities()
	cities[0].Name = "Gotham"

	if got := c.Cities()[0].Name; got != "New York" {
		t.Errorf("Cities()[0].Name = %q after caller mutation, want New York", got)
	}
}

func TestNewRejectsInvalidCities(t *testing.T) {
	if _, err := New([]entity.City{{Name: "Paris"}, {Name: "paris"}}); err == nil {
		t.Error("New() with duplicate ids returned nil error")
	}
	if _, err := New([]entity.City{{Name: "  "}}); err == nil {
		t.Error("New() with blank name returned nil error")
	}
}

func TestLoadMatchesDefault(t *testing.T) {
	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	got, want := loaded.Cities(), Default().Cities()
	if len(got) != len(want) {
		t.Fatalf("Load() returned %d cities, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Load()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}
