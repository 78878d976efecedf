package emissions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(elec, water, gas int64) MonthlyRecord {
	return newMonthlyRecord("Jan", Consumption{Electricity: elec, Water: water, Gas: gas}, false)
}

func TestYearlyTotalsOf(t *testing.T) {
	tests := []struct {
		name    string
		records []MonthlyRecord
		want    YearlyTotals
	}{
		{name: "nil", records: nil, want: YearlyTotals{}},
		{name: "empty", records: []MonthlyRecord{}, want: YearlyTotals{}},
		{
			name:    "two months",
			records: []MonthlyRecord{record(100000, 40000, 10000), record(200000, 60000, 30000)},
			// carbon: (79+10+21) + (157+15+63)
			want: YearlyTotals{Electricity: 300000, Water: 100000, Gas: 40000, TotalCarbon: 345},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, YearlyTotalsOf(tc.records))
		})
	}
}

func TestCarbonSources(t *testing.T) {
	carbon := func(e, w, g int64) MonthlyRecord {
		return MonthlyRecord{Emissions: Emissions{CarbonElectricity: e, CarbonWater: w, CarbonGas: g, TotalCarbon: e + w + g}}
	}

	tests := []struct {
		name    string
		records []MonthlyRecord
		values  []int64
		pcts    []float64
	}{
		{name: "empty", records: nil, values: []int64{0, 0, 0}, pcts: []float64{0, 0, 0}},
		{name: "all zero", records: []MonthlyRecord{carbon(0, 0, 0)}, values: []int64{0, 0, 0}, pcts: []float64{0, 0, 0}},
		{
			name:    "even split",
			records: []MonthlyRecord{carbon(1, 1, 1)},
			values:  []int64{1, 1, 1},
			pcts:    []float64{33.3, 33.3, 33.3},
		},
		{
			name:    "summed across months",
			records: []MonthlyRecord{carbon(30, 10, 5), carbon(20, 20, 15)},
			values:  []int64{50, 30, 20},
			pcts:    []float64{50, 30, 20},
		},
		{
			name:    "rounds half away from zero",
			records: []MonthlyRecord{carbon(1, 0, 7)},
			values:  []int64{1, 0, 7},
			pcts:    []float64{12.5, 0, 87.5},
		},
		{
			name:    "two thirds",
			records: []MonthlyRecord{carbon(2, 1, 0)},
			values:  []int64{2, 1, 0},
			pcts:    []float64{66.7, 33.3, 0},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CarbonSources(tc.records)
			require.Len(t, got, 3)
			for i, name := range []string{"Electricity", "Water", "Natural Gas"} {
				assert.Equal(t, name, got[i].Name)
				assert.Equal(t, tc.values[i], got[i].Value, name)
				assert.InDelta(t, tc.pcts[i], got[i].Percentage, 1e-9, name)
			}
		})
	}
}

func TestCarbonSources_PercentagesSumToHundred(t *testing.T) {
	for seed := uint64(1); seed <= 50; seed++ {
		shares := CarbonSources(GenerateHistorical(NewSource(seed)))
		sum := 0.0
		for _, s := range shares {
			sum += s.Percentage
		}
		assert.InDelta(t, 100, sum, 0.2, "seed %d", seed)
	}
}
