// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/khardy/pad-screen-model/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// RemainingYears returns the productive years left before retirement,
// never negative.
func RemainingYears(retirementAge, currentAge int) float64 {
	if currentAge >= retirementAge {
		return 0
	}
	return float64(retirementAge - currentAge)
}
