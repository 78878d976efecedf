package emissions

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// YearlyTotalsOf sums consumption and total carbon across records.
// An empty or nil slice yields zero totals.
func YearlyTotalsOf(records []MonthlyRecord) YearlyTotals {
	return YearlyTotals{
		Electricity: lo.SumBy(records, func(r MonthlyRecord) int64 { return r.Electricity }),
		Water:       lo.SumBy(records, func(r MonthlyRecord) int64 { return r.Water }),
		Gas:         lo.SumBy(records, func(r MonthlyRecord) int64 { return r.Gas }),
		TotalCarbon: lo.SumBy(records, func(r MonthlyRecord) int64 { return r.TotalCarbon }),
	}
}

// percentPlaces is the precision of CarbonSourceShare.Percentage.
const percentPlaces = 1

// CarbonSources breaks the carbon of records down by source.
//
// The result always has three entries in the order Electricity, Water,
// Natural Gas. When the records carry no carbon at all every share is zero.
func CarbonSources(records []MonthlyRecord) []CarbonSourceShare {
	values := make([]int64, len(Resources))
	for i, r := range Resources {
		values[i] = lo.SumBy(records, func(m MonthlyRecord) int64 { return m.Emissions.Of(r) })
	}
	total := lo.Sum(values)

	shares := make([]CarbonSourceShare, len(Resources))
	for i, r := range Resources {
		shares[i] = CarbonSourceShare{
			Name:       r.String(),
			Value:      values[i],
			Percentage: sharePercentage(values[i], total),
		}
	}
	return shares
}

// sharePercentage returns value/total*100 rounded to one decimal, or 0 when
// total is not positive.
func sharePercentage(value, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return decimal.NewFromInt(value).
		Mul(decimal.NewFromInt(100)). //nolint:mnd // Percentage.
		Div(decimal.NewFromInt(total)).
		Round(percentPlaces).
		InexactFloat64()
}
