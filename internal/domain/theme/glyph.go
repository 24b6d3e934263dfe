package theme

// Glyph identifies the icon drawn for a condition.
type Glyph int

const (
	GlyphSun Glyph = iota
	GlyphCloud
	GlyphCloudRain
	GlyphCloudSnow
	GlyphZap
	GlyphCloudDrizzle
	GlyphWind
	GlyphCloudFog
)

var glyphNames = [...]string{"Sun", "Cloud", "CloudRain", "CloudSnow", "Zap", "CloudDrizzle", "Wind", "CloudFog"}

// terminal stand-ins for each icon
var glyphSymbols = [...]string{"☀", "☁", "☂", "❄", "⚡", "☔", "≋", "▒"}

func (g Glyph) String() string {
	if g < 0 || int(g) >= len(glyphNames) {
		return "Sun"
	}
	return glyphNames[g]
}

// Symbol returns the single-cell terminal symbol of the glyph.
func (g Glyph) Symbol() string {
	if g < 0 || int(g) >= len(glyphSymbols) {
		return glyphSymbols[GlyphSun]
	}
	return glyphSymbols[g]
}
