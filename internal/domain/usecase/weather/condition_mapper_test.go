package weather

import (
	"testing"

	"go-weather/internal/domain/entity"
)

func TestMapCondition(t *testing.T) {
	tests := []struct {
		main        string
		description string
		want        entity.Condition
	}{
		{"Clear", "clear sky", entity.ConditionSunny},
		{"Clouds", "overcast clouds", entity.ConditionCloudy},
		{"Rain", "light rain", entity.ConditionDrizzle},
		{"Rain", "light intensity drizzle rain", entity.ConditionDrizzle},
		{"Rain", "heavy intensity rain", entity.ConditionRainy},
		{"Rain", "", entity.ConditionRainy},
		{"Drizzle", "drizzle", entity.ConditionDrizzle},
		{"Thunderstorm", "thunderstorm with rain", entity.ConditionStormy},
		{"Snow", "light snow", entity.ConditionSnowy},
		{"Mist", "mist", entity.ConditionFoggy},
		{"Fog", "fog", entity.ConditionFoggy},
		{"Haze", "haze", entity.ConditionFoggy},
		{"Dust", "sand/dust whirls", entity.ConditionWindy},
		{"Sand", "sand", entity.ConditionWindy},
		{"Ash", "volcanic ash", entity.ConditionWindy},
		{"Squall", "squalls", entity.ConditionWindy},
		{"Tornado", "tornado", entity.ConditionWindy},
		{"CLEAR", "", entity.ConditionSunny},
		{"  rain ", "LIGHT RAIN", entity.ConditionDrizzle},
		{"volcanic-ash", "x", entity.ConditionWindy},
		{"wash", "x", entity.ConditionSunny},
		{"Smoke", "smoke", entity.ConditionSunny},
		{"", "", entity.ConditionSunny},
	}

	for _, tt := range tests {
		t.Run(tt.main+"/"+tt.description, func(t *testing.T) {
			if got := MapCondition(tt.main, tt.description); got != tt.want {
				t.Errorf("MapCondition(%q, %q) = %q, want %q", tt.main, tt.description, got, tt.want)
			}
		})
	}
}
