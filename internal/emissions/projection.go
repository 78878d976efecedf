package emissions

import "fmt"

// GenerateProjection extends history by twelve predicted months.
//
// The calendar continues from where history ends, so a twelve-month history
// projects Jan..Dec of the following year. Each projected value is the last
// historical value plus the noise-free seasonal term for the target month,
// scaled by a linear trend of 0.5% per month ahead.
//
// Returns ErrInvalidInput if history is empty.
func GenerateProjection(history []MonthlyRecord) ([]MonthlyRecord, error) {
	if len(history) == 0 {
		return nil, fmt.Errorf("projection needs at least one historical month: %w", ErrInvalidInput)
	}

	last := history[len(history)-1].Consumption
	projected := make([]MonthlyRecord, 0, MonthsPerYear)
	for i := range MonthsPerYear {
		m := wrapMonth(len(history) + i)
		trend := 1 + monthlyTrend*float64(i)
		c := Consumption{
			Electricity: roundUnits((float64(last.Electricity) + seasonalElectricity(m)) * trend),
			Water:       roundUnits((float64(last.Water) + seasonalWater(m)) * trend),
			Gas:         roundUnits((float64(last.Gas) + seasonalGas(m)) * trend),
		}
		projected = append(projected, newMonthlyRecord(monthNames[m], c, true))
	}
	return projected, nil
}
