// Package money converts between minor currency units (paise) used for all
// internal arithmetic and major units (rupees) exposed at API boundaries.
package money

import "math"

const minorPerMajor = 100

// ToMajor converts an amount in minor units to major units for display.
func ToMajor(minor int64) float64 {
	return float64(minor) / minorPerMajor
}

// ToMinor converts a major-unit amount to minor units.
func ToMinor(major int64) int64 {
	return major * minorPerMajor
}

// ToMinorFromFloat converts a fractional major-unit amount to minor units.
// The product is rounded, not truncated, so a float artifact like
// 19.99*100 = 1998.9999... still stores 1999.
func ToMinorFromFloat(major float64) int64 {
	return int64(math.Round(major * minorPerMajor))
}
