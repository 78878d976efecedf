package greenops

// Equivalency factors.
const (
	// TreesPerTonFactor is the default number of trees that offset one
	// metric ton CO2e.
	TreesPerTonFactor = 16.5

	// DefaultPopulation is the default campus head count.
	DefaultPopulation = 8500

	// EPAMilesDrivenFactor is kg CO2e per mile for an average passenger vehicle.
	// Source: EPA GHG Equivalencies Calculator (2024 edition).
	EPAMilesDrivenFactor = 0.192
)

// Unit conversion factors to metric tons.
const (
	GramsToTons  = 0.000001
	KgToTons     = 0.001
	TonsToTons   = 1.0
	PoundsToTons = 0.000453592
)

// Display thresholds.
const (
	// MinEquivalencyThresholdTons is the smallest input that produces
	// equivalencies; below it they are meaninglessly small.
	MinEquivalencyThresholdTons = 0.001

	// LargeNumberThreshold switches FormatLarge to "~X.X million".
	LargeNumberThreshold = 1_000_000

	// BillionThreshold switches FormatLarge to "~X.X billion".
	BillionThreshold = 1_000_000_000

	// TenThousand is the "10K" display unit used for annual consumption.
	TenThousand = 10_000
)
