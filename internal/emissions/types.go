// Package emissions synthesizes campus utility consumption and derives
// carbon-equivalent figures from it.
//
// Every exported operation is a pure function over small in-memory slices.
// Randomness comes only from an injected Source, so a seeded generator
// reproduces the same series on every run.
package emissions

import "fmt"

// Resource identifies one of the metered utilities.
type Resource int

const (
	// ResourceElectricity is metered in kWh.
	ResourceElectricity Resource = iota

	// ResourceWater is metered in metric tons.
	ResourceWater

	// ResourceGas is natural gas, metered in cubic meters.
	ResourceGas
)

// Resources lists every Resource in display order.
//
//nolint:gochecknoglobals // Fixed lookup table.
var Resources = []Resource{ResourceElectricity, ResourceWater, ResourceGas}

// String returns the display name used in carbon source breakdowns.
func (r Resource) String() string {
	switch r {
	case ResourceElectricity:
		return "Electricity"
	case ResourceWater:
		return "Water"
	case ResourceGas:
		return "Natural Gas"
	default:
		return fmt.Sprintf("Resource(%d)", int(r))
	}
}

// Unit returns the metering unit of the resource.
func (r Resource) Unit() string {
	switch r {
	case ResourceElectricity:
		return "kWh"
	case ResourceWater:
		return "tons"
	case ResourceGas:
		return "m³"
	default:
		return ""
	}
}

// Coefficient returns the emission factor in kg CO2e per metered unit.
func (r Resource) Coefficient() float64 {
	switch r {
	case ResourceElectricity:
		return ElectricityKgPerKWh
	case ResourceWater:
		return WaterKgPerTon
	case ResourceGas:
		return GasKgPerCubicMeter
	default:
		return 0
	}
}

// Consumption holds raw metered quantities.
type Consumption struct {
	Electricity int64 `json:"electricity" csv:"electricity"`
	Water       int64 `json:"water"       csv:"water"`
	Gas         int64 `json:"gas"         csv:"gas"`
}

// Of returns the quantity metered for r.
func (c Consumption) Of(r Resource) int64 {
	switch r {
	case ResourceElectricity:
		return c.Electricity
	case ResourceWater:
		return c.Water
	case ResourceGas:
		return c.Gas
	default:
		return 0
	}
}

// Emissions holds carbon figures in metric tons CO2e.
// TotalCarbon is always the sum of the three per-source fields.
type Emissions struct {
	CarbonElectricity int64 `json:"carbon_electricity" csv:"carbon_electricity"`
	CarbonWater       int64 `json:"carbon_water"       csv:"carbon_water"`
	CarbonGas         int64 `json:"carbon_gas"         csv:"carbon_gas"`
	TotalCarbon       int64 `json:"total_carbon"       csv:"total_carbon"`
}

// Of returns the carbon attributed to r.
func (e Emissions) Of(r Resource) int64 {
	switch r {
	case ResourceElectricity:
		return e.CarbonElectricity
	case ResourceWater:
		return e.CarbonWater
	case ResourceGas:
		return e.CarbonGas
	default:
		return 0
	}
}

// MonthlyRecord is one month of campus consumption and its emissions.
type MonthlyRecord struct {
	Month string `json:"month" csv:"month"`
	Consumption
	Emissions
	// IsPrediction marks projected rows.
	IsPrediction bool `json:"is_prediction" csv:"is_prediction"`
}

// YearlyTotals sums a MonthlyRecord sequence.
type YearlyTotals struct {
	Electricity int64 `json:"electricity"  csv:"electricity"`
	Water       int64 `json:"water"        csv:"water"`
	Gas         int64 `json:"gas"          csv:"gas"`
	TotalCarbon int64 `json:"total_carbon" csv:"total_carbon"`
}

// Of returns the yearly raw total for r.
func (y YearlyTotals) Of(r Resource) int64 {
	return Consumption{Electricity: y.Electricity, Water: y.Water, Gas: y.Gas}.Of(r)
}

// CarbonSourceShare is one slice of the emissions-by-source breakdown.
type CarbonSourceShare struct {
	Name string `json:"name" csv:"name"`
	// Value is the summed carbon for the source in tons CO2e.
	Value int64 `json:"value" csv:"value"`
	// Percentage is rounded to one decimal place.
	Percentage float64 `json:"percentage" csv:"percentage"`
}

// BuildingRecord is the annual consumption and emissions of one building.
type BuildingRecord struct {
	Name     string   `json:"name"     csv:"name"`
	Category Category `json:"category" csv:"category"`
	Consumption
	Emissions
}
