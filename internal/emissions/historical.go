package emissions

import "math"

func isSummer(month int) bool { return month >= 5 && month <= 7 }

func isWinter(month int) bool { return month <= 1 || month >= 10 }

// seasonalElectricity is the sinusoidal swing plus the summer cooling load.
func seasonalElectricity(month int) float64 {
	v := electricityAmplitude * math.Sin(float64(month)/2)
	if isSummer(month) {
		v += electricitySummer
	}
	return v
}

func seasonalWater(month int) float64 {
	return waterAmplitude * math.Cos(float64(month)/3)
}

// seasonalGas is the heating load, tripled in winter months.
func seasonalGas(month int) float64 {
	if isWinter(month) {
		return gasSeasonal * gasWinterFactor
	}
	return gasSeasonal * gasOtherFactor
}

// GenerateHistorical synthesizes twelve months of consumption, January first.
//
// Each month draws three values from src in the order electricity, water,
// gas. Electricity peaks in Jun-Aug and gas in Nov-Feb; the noise terms only
// ever add to the seasonal baseline.
func GenerateHistorical(src Source) []MonthlyRecord {
	records := make([]MonthlyRecord, 0, MonthsPerYear)
	for i := range MonthsPerYear {
		c := Consumption{
			Electricity: roundUnits(electricityBase + seasonalElectricity(i) + uniform(src, 0, electricityNoise)),
			Water:       roundUnits(waterBase + seasonalWater(i) + uniform(src, 0, waterNoise)),
			Gas:         roundUnits(gasBase + seasonalGas(i) + uniform(src, 0, gasNoise)),
		}
		records = append(records, newMonthlyRecord(monthNames[i], c, false))
	}
	return records
}
