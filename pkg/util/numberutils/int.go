package numberutils

import "math"

// RoundToInt rounds v to the nearest integer; halves round up, so -2.5 becomes -2.
func RoundToInt(v float64) int {
	return int(RoundHalfUp(v))
}

// RoundHalfUp rounds v to the nearest whole number with .5 ties toward positive infinity.
func RoundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

// ClampInt limits num to the inclusive range [min, max].
func ClampInt(num, min, max int) int {
	if num < min {
		return min
	}
	if num > max {
		return max
	}
	return num
}

// IsIntInRange checks if the given number is within the specified range (inclusive).
func IsIntInRange(num, min, max int) bool {
	return num >= min && num <= max
}
