package emissions

// Emission coefficients in kg CO2e per metered unit.
const (
	// ElectricityKgPerKWh is the grid factor for one kWh.
	ElectricityKgPerKWh = 0.785

	// WaterKgPerTon covers supply and treatment of one ton of water.
	WaterKgPerTon = 0.25

	// GasKgPerCubicMeter is the combustion factor for one m³ of natural gas.
	GasKgPerCubicMeter = 2.1

	// KgPerTon converts kilograms to metric tons.
	KgPerTon = 1000.0
)

// MonthsPerYear is the length of a generated series.
const MonthsPerYear = 12

// Historical series shape.
const (
	electricityBase      = 150000.0
	electricityAmplitude = 50000.0
	electricitySummer    = 80000.0
	electricityNoise     = 20000.0

	waterBase      = 80000.0
	waterAmplitude = 20000.0
	waterNoise     = 5000.0

	gasBase         = 30000.0
	gasSeasonal     = 40000.0
	gasWinterFactor = 1.5
	gasOtherFactor  = 0.5
	gasNoise        = 5000.0
)

// Projection trend: each forward month grows by half a percent.
const monthlyTrend = 0.005

// Building consumption ranges before the category multiplier.
const (
	buildingElectricityBase  = 70000.0
	buildingElectricityNoise = 50000.0
	buildingWaterBase        = 40000.0
	buildingWaterNoise       = 20000.0
	diningGasBase            = 20000.0
	diningGasNoise           = 10000.0
	buildingGasBase          = 5000.0
	buildingGasNoise         = 5000.0
)

// monthNames are the series labels in calendar order.
//
//nolint:gochecknoglobals // Fixed lookup table.
var monthNames = [MonthsPerYear]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// MonthName returns the label for a month index, wrapping past December.
func MonthName(index int) string {
	return monthNames[wrapMonth(index)]
}

func wrapMonth(index int) int {
	m := index % MonthsPerYear
	if m < 0 {
		m += MonthsPerYear
	}
	return m
}

// BuildingNames is the fixed campus building list in generation order.
//
//nolint:gochecknoglobals // Fixed lookup table.
var BuildingNames = []string{
	"Library",
	"Administration Building",
	"Teaching Building A",
	"Teaching Building B",
	"Student Dormitory Area 1",
	"Student Dormitory Area 2",
	"Cafeteria",
	"Laboratory A",
	"Laboratory B",
	"Gymnasium",
}
