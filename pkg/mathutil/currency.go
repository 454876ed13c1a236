// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/fleet-forecast/pkg/constants"
)

// RoundWhole rounds a value to the nearest whole currency unit. Halves round
// away from zero.
func RoundWhole(val float64) float64 {
	return math.Round(val)
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// IsFinite reports whether val is neither NaN nor infinite.
func IsFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}

// Max returns the maximum of two float64 values
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// PercentToFraction converts a percentage such as 6.8 into 0.068.
func PercentToFraction(percentage float64) float64 {
	return percentage / constants.PercentageMultiplier
}

// SafeDivide divides value by divisor and returns 0 when divisor is zero.
func SafeDivide(value, divisor float64) float64 {
	if divisor == 0 {
		return 0
	}
	return value / divisor
}
