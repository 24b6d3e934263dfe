package entity

// Condition is the normalized weather category shown on the dashboard.
type Condition string

const (
	ConditionSunny   Condition = "sunny"
	ConditionCloudy  Condition = "cloudy"
	ConditionRainy   Condition = "rainy"
	ConditionSnowy   Condition = "snowy"
	ConditionStormy  Condition = "stormy"
	ConditionDrizzle Condition = "drizzle"
	ConditionWindy   Condition = "windy"
	ConditionFoggy   Condition = "foggy"
)

var conditions = [...]Condition{
	ConditionSunny,
	ConditionCloudy,
	ConditionRainy,
	ConditionSnowy,
	ConditionStormy,
	ConditionDrizzle,
	ConditionWindy,
	ConditionFoggy,
}

// Conditions returns every category in display order.
func Conditions() []Condition {
	out := make([]Condition, len(conditions))
	copy(out, conditions[:])
	return out
}

// Valid reports whether c is one of the known categories.
func (c Condition) Valid() bool {
	for _, known := range conditions {
		if c == known {
			return true
		}
	}
	return false
}
