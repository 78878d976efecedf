package greenops

import (
	"math"
	"strings"
)

// unitFactor returns the multiplier converting unit to metric tons.
func unitFactor(unit string) (float64, bool) {
	switch strings.ToLower(unit) {
	case "t", "tco2e", "ton", "tons":
		return TonsToTons, true
	case "kg", "kgco2e":
		return KgToTons, true
	case "g", "gco2e":
		return GramsToTons, true
	case "lb", "lbco2e":
		return PoundsToTons, true
	default:
		return 0, false
	}
}

// NormalizeToTons converts a carbon quantity to metric tons.
// Unit matching is case-insensitive.
//
// Returns ErrCalculationOverflow for Inf or NaN, ErrNegativeValue for a
// negative value and ErrInvalidUnit for an unknown unit.
func NormalizeToTons(value float64, unit string) (float64, error) {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, ErrCalculationOverflow
	}
	if value < 0 {
		return 0, ErrNegativeValue
	}

	factor, ok := unitFactor(unit)
	if !ok {
		return 0, ErrInvalidUnit
	}
	return value * factor, nil
}

// IsRecognizedUnit reports whether unit is accepted by NormalizeToTons.
func IsRecognizedUnit(unit string) bool {
	_, ok := unitFactor(unit)
	return ok
}
