// Package insights derives report figures from the emissions data model:
// per-resource summaries, building category averages and reduction plans.
package insights

import (
	"math"

	"github.com/rshade/carbonboard/internal/emissions"
)

// DaysPerMonth approximates a month when turning monthly peaks into daily ones.
const DaysPerMonth = 30

// ResourceSummary is the headline block for one utility.
type ResourceSummary struct {
	Name string `json:"name"`
	Unit string `json:"unit"`

	// Annual is the raw total over the history.
	Annual int64 `json:"annual"`

	// PeakMonth is the first month with the highest consumption.
	PeakMonth string `json:"peak_month"`

	// DailyPeak is the peak month spread over DaysPerMonth, rounded.
	DailyPeak int64 `json:"daily_peak"`

	// Carbon is the annual total converted to tons CO2e.
	Carbon int64 `json:"carbon"`

	// ShareOfTotal is Carbon as a whole percentage of all emissions.
	ShareOfTotal int64 `json:"share_of_total"`
}

// SummarizeResource builds the summary of r over history. yearly must be the
// totals of the same history.
func SummarizeResource(
	r emissions.Resource,
	history []emissions.MonthlyRecord,
	yearly emissions.YearlyTotals,
) ResourceSummary {
	s := ResourceSummary{
		Name:   r.String(),
		Unit:   r.Unit(),
		Annual: yearly.Of(r),
	}

	var peak int64 = -1
	for _, m := range history {
		if v := m.Consumption.Of(r); v > peak {
			peak = v
			s.PeakMonth = m.Month
		}
	}
	if peak > 0 {
		s.DailyPeak = int64(math.Round(float64(peak) / DaysPerMonth))
	}

	carbonKg := float64(s.Annual) * r.Coefficient()
	s.Carbon = int64(math.Round(carbonKg / emissions.KgPerTon))
	if yearly.TotalCarbon > 0 {
		// kg / 1000 for tons, * 100 for percent.
		s.ShareOfTotal = int64(math.Round(carbonKg / 10 / float64(yearly.TotalCarbon))) //nolint:mnd // See above.
	}
	return s
}

// SummarizeResources summarizes every resource in display order.
func SummarizeResources(history []emissions.MonthlyRecord, yearly emissions.YearlyTotals) []ResourceSummary {
	out := make([]ResourceSummary, 0, len(emissions.Resources))
	for _, r := range emissions.Resources {
		out = append(out, SummarizeResource(r, history, yearly))
	}
	return out
}

// NeutralityGap is the reduction needed to reach net zero, as a negative
// number of tons.
func NeutralityGap(yearly emissions.YearlyTotals) int64 {
	return -yearly.TotalCarbon
}
