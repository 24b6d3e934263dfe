package numberutils

import "math"

// ClampFloat limits v to the inclusive range [min, max].
func ClampFloat(v, min, max float64) float64 {
	return math.Max(min, math.Min(max, v))
}

// WrapUnit maps v into [0, 1) by dropping its integer part, so -0.2 becomes 0.8.
func WrapUnit(v float64) float64 {
	w := math.Mod(v, 1)
	if w < 0 {
		w++
	}
	return w
}
