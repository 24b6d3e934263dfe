package theme

import (
	"fmt"

	"go-weather/internal/domain/entity"
	"go-weather/pkg/util/numberutils"

	"github.com/lucasb-eyer/go-colorful"
)

// Gradient is a two-stop linear gradient.
type Gradient struct {
	Angle int
	From  string
	To    string
}

// CSS renders the gradient as a CSS linear-gradient value.
func (g Gradient) CSS() string {
	return fmt.Sprintf("linear-gradient(%ddeg, %s 0%%, %s 100%%)", g.Angle, g.From, g.To)
}

// At returns the hex colour at position t in [0, 1], blended in Lab space.
func (g Gradient) At(t float64) string {
	t = numberutils.ClampFloat(t, 0, 1)
	from, errFrom := colorful.Hex(g.From)
	to, errTo := colorful.Hex(g.To)
	if errFrom != nil || errTo != nil {
		return g.From
	}
	return from.BlendLab(to, t).Clamped().Hex()
}

// Entry is the visual treatment of one condition.
type Entry struct {
	Condition entity.Condition
	Name      string
	Glyph     Glyph
	Primary   string
	Secondary string
	Gradient  Gradient
}

// Contrast selects the text colour drawn over a condition's backdrop.
type Contrast int

const (
	Dark Contrast = iota
	Light
)

// Class returns the utility class name of the contrast.
func (c Contrast) Class() string {
	if c == Light {
		return "text-white"
	}
	return "text-black"
}

// Hex returns the text colour of the contrast.
func (c Contrast) Hex() string {
	if c == Light {
		return "#FFFFFF"
	}
	return "#000000"
}

var entries = buildEntries()

func buildEntries() map[entity.Condition]Entry {
	rows := []struct {
		condition          entity.Condition
		name               string
		glyph              Glyph
		primary, secondary string
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

	out := make(map[entity.Condition]Entry, len(rows))
	for _, r := range rows {
		out[r.condition] = Entry{
			Condition: r.condition,
			Name:      r.name,
			Glyph:     r.glyph,
			Primary:   r.primary,
			Secondary: r.secondary,
			Gradient:  Gradient{Angle: 135, From: r.primary, To: r.secondary},
		}
	}
	return out
}

// Lookup returns the entry of condition; unknown conditions get the sunny entry.
func Lookup(condition entity.Condition) Entry {
	if e, ok := entries[condition]; ok {
		return e
	}
	return entries[entity.ConditionSunny]
}

// TextContrast returns Light for the dark backdrops (stormy, cloudy, rainy) and Dark otherwise.
func TextContrast(condition entity.Condition) Contrast {
	switch condition {
	case entity.ConditionStormy, entity.ConditionCloudy, entity.ConditionRainy:
		return Light
	default:
		return Dark
	}
}

// TemperatureColor returns the accent colour of a temperature in °C.
func TemperatureColor(celsius int) string {
	switch {
	case celsius <= 0:
		return "#87CEEB"
	case celsius <= 10:
		return "#4682B4"
	case celsius <= 20:
		return "#32CD32"
	case celsius <= 30:
		return "#FFD700"
	default:
		return "#FF6347"
	}
}
