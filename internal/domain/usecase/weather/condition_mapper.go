package weather

import (
	"strings"

	"go-weather/internal/domain/entity"
)

// MapCondition converts the provider's primary keyword and free-text description
// into a dashboard category. Unknown keywords map to sunny.
func MapCondition(main, description string) entity.Condition {
	keyword := strings.ToLower(strings.TrimSpace(main))
	switch keyword {
	case "clear":
		return entity.ConditionSunny
	case "clouds":
		return entity.ConditionCloudy
	case "rain":
		desc := strings.ToLower(description)
		if strings.Contains(desc, "drizzle") || strings.Contains(desc, "light") {
			return entity.ConditionDrizzle
		}
		return entity.ConditionRainy
	case "drizzle":
		return entity.ConditionDrizzle
	case "thunderstorm":
		return entity.ConditionStormy
	case "snow":
		return entity.ConditionSnowy
	case "mist", "fog", "haze":
		return entity.ConditionFoggy
	case "dust", "sand", "ash", "squall", "tornado":
		return entity.ConditionWindy
	}

	// compound keywords such as "volcanic-ash"
	for _, token := range strings.FieldsFunc(keyword, isKeywordSeparator) {
		switch token {
		case "dust", "sand", "ash", "squall", "tornado":
			return entity.ConditionWindy
		}
	}
	return entity.ConditionSunny
}

func isKeywordSeparator(r rune) bool {
	return r == '-' || r == '_' || r == ' ' || r == '/'
}
