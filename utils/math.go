// Package utils contains scalar math helpers shared across the module.
package utils

import "math"

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// Float64AlmostEqual compares two float64s and returns if their difference is less than epsilon.
func Float64AlmostEqual(v1, v2, epsilon float64) bool {
	return math.Abs(v1-v2) < epsilon
}

// Clamp returns min if value is lesser than min, max if value is greater than max, or value otherwise.
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
