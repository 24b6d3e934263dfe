package theme

import (
	"strings"
	"testing"

	"go-weather/internal/domain/entity"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		condition entity.Condition
		name      string
		glyph     Glyph
		primary   string
		secondary string
	}{
		{entity.ConditionSunny, "Sunny", GlyphSun, "#FFA500", "#FFD700"},
		{entity.ConditionCloudy, "Cloudy", GlyphCloud, "#708090", "#B0C4DE"},
		{entity.ConditionRainy, "Rainy", GlyphCloudRain, "#4682B4", "#87CEEB"},
		{entity.ConditionSnowy, "Snowy", GlyphCloudSnow, "#E6E6FA", "#F0F8FF"},
		{entity.ConditionStormy, "Stormy", GlyphZap, "#2F4F4F", "#696969"},
		{entity.ConditionDrizzle, "Drizzle", GlyphCloudDrizzle, "#778899", "#B0C4DE"},
		{entity.ConditionWindy, "Windy", GlyphWind, "#87CEEB", "#E0F6FF"},
		{entity.ConditionFoggy, "Foggy", GlyphCloudFog, "#A9A9A9", "#D3D3D3"},
	}

	for _, tt := range tests {
		t.Run(string(tt.condition), func(t *testing.T) {
			e := Lookup(tt.condition)
			if e.Name != tt.name || e.Glyph != tt.glyph || e.Primary != tt.primary || e.Secondary != tt.secondary {
				t.Errorf("Lookup(%s) = %+v", tt.condition, e)
			}
			want := "linear-gradient(135deg, " + tt.primary + " 0%, " + tt.secondary + " 100%)"
			if got := e.Gradient.CSS(); got != want {
				t.Errorf("Gradient.CSS() = %q, want %q", got, want)
			}
		})
	}
}

func TestLookupUnknownIsSunny(t *testing.T) {
	if got := Lookup("hail"); got != Lookup(entity.ConditionSunny) {
		t.Errorf("Lookup(hail) = %+v, want sunny entry", got)
	}
}

func TestEveryConditionHasAnEntry(t *testing.T) {
	for _, c := range entity.Conditions() {
		if _, ok := entries[c]; !ok {
			t.Errorf("no theme entry for %s", c)
		}
	}
}

func TestTextContrast(t *testing.T) {
	light := map[entity.Condition]bool{
		entity.ConditionStormy: true,
		entity.ConditionCloudy: true,
		entity.ConditionRainy:  true,
	}
	for _, c := range append(entity.Conditions(), "hail") {
		got := TextContrast(c)
		if light[c] && (got != Light || got.Class() != "text-white") {
			t.Errorf("TextContrast(%s) = %s, want text-white", c, got.Class())
		}
		if !light[c] && (got != Dark || got.Class() != "text-black") {
			t.Errorf("TextContrast(%s) = %s, want text-black", c, got.Class())
		}
	}
}

func TestGradientAt(t *testing.T) {
	g := Lookup(entity.ConditionSunny).Gradient
	if got := strings.ToUpper(g.At(0)); got != "#FFA500" {
		t.Errorf("At(0) = %s, want #FFA500", got)
	}
	if got := strings.ToUpper(g.At(1)); got != "#FFD700" {
		t.Errorf("At(1) = %s, want #FFD700", got)
	}
	if got := strings.ToUpper(g.At(-3)); got != "#FFA500" {
		t.Errorf("At(-3) = %s, want clamped #FFA500", got)
	}
}

func TestTemperatureColor(t *testing.T) {
	tests := []struct {
		celsius int
		want    string
	}{
		{-10, "#87CEEB"}, {0, "#87CEEB"}, {1, "#4682B4"}, {10, "#4682B4"},
		{15, "#32CD32"}, {20, "#32CD32"}, {25, "#FFD700"}, {30, "#FFD700"}, {31, "#FF6347"},
	}
	for _, tt := range tests {
		if got := TemperatureColor(tt.celsius); got != tt.want {
			t.Errorf("TemperatureColor(%d) = %s, want %s", tt.celsius, got, tt.want)
		}
	}
}

func TestGlyph(t *testing.T) {
	if GlyphCloudFog.String() != "CloudFog" || GlyphZap.Symbol() != "⚡" {
		t.Errorf("glyph names = %s/%s", GlyphCloudFog, GlyphZap.Symbol())
	}
	if Glyph(42).String() != "Sun" {
		t.Errorf("Glyph(42).String() = %s, want Sun", Glyph(42))
	}
}
