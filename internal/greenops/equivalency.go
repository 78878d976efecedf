package greenops

import (
	"fmt"
	"math"
	"strings"
)

// Calculate derives campus equivalencies for input.
//
// The input is normalized to tons first; normalization errors are returned
// with an empty output. Inputs below MinEquivalencyThresholdTons produce an
// empty output without error. The per-capita result is omitted when
// opts.Population is not positive.
func Calculate(input CarbonInput, opts Options) (EquivalencyOutput, error) {
	tons, err := NormalizeToTons(input.Value, input.Unit)
	if err != nil {
		return EquivalencyOutput{IsEmpty: true}, err
	}
	if tons < MinEquivalencyThresholdTons {
		return EquivalencyOutput{InputTons: tons, IsEmpty: true}, nil
	}

	trees := tons * opts.TreesPerTon
	miles := tons * 1000 / EPAMilesDrivenFactor //nolint:mnd // kg per ton.
	if math.IsInf(trees, 0) || math.IsNaN(trees) || math.IsInf(miles, 0) {
		return EquivalencyOutput{IsEmpty: true}, ErrCalculationOverflow
	}

	treesFormatted := formatEquivalencyValue(trees)
	results := []EquivalencyResult{
		{
			Type:           EquivalencyTreesToOffset,
			Value:          trees,
			FormattedValue: treesFormatted,
			Label:          "trees to offset",
		},
	}

	if opts.Population > 0 {
		perCapita := tons / float64(opts.Population)
		results = append(results, EquivalencyResult{
			Type:           EquivalencyPerCapita,
			Value:          perCapita,
			FormattedValue: FormatFloat(perCapita, 2), //nolint:mnd // Per-capita figures are fractional.
			Label:          "tons per person",
		})
	}

	results = append(results, EquivalencyResult{
		Type:           EquivalencyMilesDriven,
		Value:          miles,
		FormattedValue: formatEquivalencyValue(miles),
		Label:          "miles driven",
	})

	return EquivalencyOutput{
		InputTons:   tons,
		Results:     results,
		DisplayText: fmt.Sprintf("Equivalent to planting %s trees to offset", approximate(treesFormatted)),
	}, nil
}

// approximate prefixes s with "~" unless FormatLarge already did.
func approximate(s string) string {
	if strings.HasPrefix(s, "~") {
		return s
	}
	return "~" + s
}

// CalculateTons is Calculate for a whole-ton total.
func CalculateTons(tons int64, opts Options) (EquivalencyOutput, error) {
	return Calculate(CarbonInput{Value: float64(tons), Unit: "t"}, opts)
}
