package export

import (
	"github.com/rshade/carbonboard/internal/emissions"
)

// MonthlyCSV is one row of the historical and projection files.
type MonthlyCSV struct {
	Month             string `csv:"month"`
	Electricity       int64  `csv:"electricity_kwh"`
	Water             int64  `csv:"water_tons"`
	Gas               int64  `csv:"gas_m3"`
	CarbonElectricity int64  `csv:"carbon_electricity"`
	CarbonWater       int64  `csv:"carbon_water"`
	CarbonGas         int64  `csv:"carbon_gas"`
	TotalCarbon       int64  `csv:"total_carbon"`
	IsPrediction      bool   `csv:"is_prediction"`
}

// BuildingCSV is one row of the buildings file.
type BuildingCSV struct {
	Rank        int    `csv:"rank"`
	Name        string `csv:"name"`
	Category    string `csv:"category"`
	Electricity int64  `csv:"electricity_kwh"`
	Water       int64  `csv:"water_tons"`
	Gas         int64  `csv:"gas_m3"`
	TotalCarbon int64  `csv:"total_carbon"`
}

// MonthlyRows flattens monthly records for CSV encoding.
func MonthlyRows(months []emissions.MonthlyRecord) []*MonthlyCSV {
	records := make([]*MonthlyCSV, 0, len(months))
	for _, m := range months {
		records = append(records, &MonthlyCSV{
			Month:             m.Month,
			Electricity:       m.Electricity,
			Water:             m.Water,
			Gas:               m.Gas,
			CarbonElectricity: m.CarbonElectricity,
			CarbonWater:       m.CarbonWater,
			CarbonGas:         m.CarbonGas,
			TotalCarbon:       m.TotalCarbon,
			IsPrediction:      m.IsPrediction,
		})
	}
	return records
}

// BuildingRows flattens ranked buildings for CSV encoding, numbering ranks from 1.
func BuildingRows(buildings []emissions.BuildingRecord) []*BuildingCSV {
	records := make([]*BuildingCSV, 0, len(buildings))
	for i, b := range buildings {
		records = append(records, &BuildingCSV{
			Rank:        i + 1,
			Name:        b.Name,
			Category:    b.Category.String(),
			Electricity: b.Electricity,
			Water:       b.Water,
			Gas:         b.Gas,
			TotalCarbon: b.TotalCarbon,
		})
	}
	return records
}
