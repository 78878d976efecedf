// Package greenops turns carbon totals into relatable equivalencies and
// formats carbon figures for display.
//
// Inputs are normalized to metric tons CO2e, the unit the campus emissions
// model reports in.
package greenops

import "fmt"

// EquivalencyType represents a category of carbon emission equivalency.
type EquivalencyType int

const (
	// EquivalencyTreesToOffset is the number of trees needed to absorb the input.
	EquivalencyTreesToOffset EquivalencyType = iota

	// EquivalencyPerCapita is the input divided across the campus population.
	EquivalencyPerCapita

	// EquivalencyMilesDriven is the distance an average passenger car covers
	// emitting the same carbon.
	EquivalencyMilesDriven
)

// String returns a human-readable representation of the EquivalencyType.
func (e EquivalencyType) String() string {
	switch e {
	case EquivalencyTreesToOffset:
		return "TreesToOffset"
	case EquivalencyPerCapita:
		return "PerCapita"
	case EquivalencyMilesDriven:
		return "MilesDriven"
	default:
		return fmt.Sprintf("EquivalencyType(%d)", e)
	}
}

// CarbonInput is a carbon quantity with its unit.
type CarbonInput struct {
	Value float64 `json:"value"`

	// Unit is one of t, kg, g, lb or their CO2e variants.
	Unit string `json:"unit"`
}

// Options tunes the campus-specific equivalencies.
type Options struct {
	// TreesPerTon is the number of trees offsetting one ton CO2e.
	TreesPerTon float64

	// Population is the head count for the per-capita figure.
	// Zero or less omits the per-capita result.
	Population int
}

// DefaultOptions returns the factors used when no campus config is given.
func DefaultOptions() Options {
	return Options{TreesPerTon: TreesPerTonFactor, Population: DefaultPopulation}
}

// EquivalencyResult represents a single calculated equivalency.
type EquivalencyResult struct {
	Type           EquivalencyType `json:"type"`
	Value          float64         `json:"value"`
	FormattedValue string          `json:"formatted_value"`
	Label          string          `json:"label"`
}

// EquivalencyOutput contains all equivalency results for display.
type EquivalencyOutput struct {
	// InputTons is the normalized input in metric tons CO2e.
	InputTons float64             `json:"input_tons"`
	Results   []EquivalencyResult `json:"results"`

	// DisplayText is the prose line shown under a carbon total, e.g.
	// "Equivalent to planting ~61,050 trees to offset".
	DisplayText string `json:"display_text"`

	IsEmpty bool `json:"is_empty"`
}

// Result returns the result of type t, if present.
func (o EquivalencyOutput) Result(t EquivalencyType) (EquivalencyResult, bool) {
	for _, r := range o.Results {
		if r.Type == t {
			return r, true
		}
	}
	return EquivalencyResult{}, false
}
