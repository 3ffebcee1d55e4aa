package service

import "math"

// RoundingPrecision is the multiplier used to round monetary values to two
// decimal places in API responses.
const RoundingPrecision = 100

// round rounds a float64 value to two decimal places. Used throughout the
// service layer so monetary values in API responses compare cleanly.
func round(value float64) float64 {
	return math.Round(value*RoundingPrecision) / RoundingPrecision
}
