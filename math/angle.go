package math

import "math"

// AngleMod changes an angle to be within 0-360 degrees
func AngleMod(a float64) float64 {
	return a - math.Floor(a/360)*360
}

// Radians converts an angle in degrees to radians
func Radians(deg float64) float64 {
	return deg / 180 * math.Pi
}

// Degrees converts an angle in radians to degrees
func Degrees(rad float64) float64 {
	return rad / math.Pi * 180
}
