package emissions

import "math"

// roundUnits rounds a synthesized quantity to whole units.
func roundUnits(v float64) int64 {
	return int64(math.Round(v))
}

// CarbonTons converts a raw quantity of r to whole tons CO2e.
func CarbonTons(r Resource, raw int64) int64 {
	return roundUnits(float64(raw) * r.Coefficient() / KgPerTon)
}

// EmissionsOf derives the carbon figures for c.
func EmissionsOf(c Consumption) Emissions {
	e := Emissions{
		CarbonElectricity: CarbonTons(ResourceElectricity, c.Electricity),
		CarbonWater:       CarbonTons(ResourceWater, c.Water),
		CarbonGas:         CarbonTons(ResourceGas, c.Gas),
	}
	e.TotalCarbon = e.CarbonElectricity + e.CarbonWater + e.CarbonGas
	return e
}

func newMonthlyRecord(month string, c Consumption, prediction bool) MonthlyRecord {
	return MonthlyRecord{
		Month:        month,
		Consumption:  c,
		Emissions:    EmissionsOf(c),
		IsPrediction: prediction,
	}
}
