package insights

import (
	"math"

	"github.com/rshade/carbonboard/internal/emissions"
)

// Reduction is a recommended retrofit for one of the top emitters.
type Reduction struct {
	Rank     int    `json:"rank"`
	Building string `json:"building"`
	Measure  string `json:"measure"`

	// Rate is the expected fraction of the building's carbon removed.
	Rate float64 `json:"rate"`

	// EstimatedReduction is TotalCarbon * Rate in tons per year, rounded.
	EstimatedReduction int64 `json:"estimated_reduction"`

	// PaybackYears is the expected return-on-investment period.
	PaybackYears float64 `json:"payback_years"`
}

// retrofits are applied to the highest emitters in rank order.
//
//nolint:gochecknoglobals // Fixed lookup table.
var retrofits = []struct {
	measure string
	rate    float64
	payback float64
}{
	{"Upgrade energy management system, replace with efficient lighting", 0.18, 3.5},
	{"Install smart electricity systems, optimize water recycling", 0.15, 4.2},
	{"Improve building insulation, install solar water heating system", 0.22, 2.8},
}

// ReductionPlan pairs the top emitters with retrofit measures. buildings
// need not be ranked; the input slice is not modified. Fewer buildings than
// measures yields a shorter plan.
func ReductionPlan(buildings []emissions.BuildingRecord) []Reduction {
	ranked := append([]emissions.BuildingRecord(nil), buildings...)
	emissions.RankBuildings(ranked)

	n := min(len(ranked), len(retrofits))
	plan := make([]Reduction, 0, n)
	for i := range n {
		b, r := ranked[i], retrofits[i]
		plan = append(plan, Reduction{
			Rank:               i + 1,
			Building:           b.Name,
			Measure:            r.measure,
			Rate:               r.rate,
			EstimatedReduction: int64(math.Round(float64(b.TotalCarbon) * r.rate)),
			PaybackYears:       r.payback,
		})
	}
	return plan
}

// Measure is a campus-wide reduction opportunity.
type Measure struct {
	Description string `json:"description"`
	Resource    string `json:"resource"`

	// ReductionPercent is the expected saving on the resource.
	ReductionPercent int `json:"reduction_percent"`
}

// CampusMeasures returns the standard campus-wide recommendations.
func CampusMeasures() []Measure {
	return []Measure{
		{"Optimize air conditioning schedules and temperature settings", emissions.ResourceElectricity.String(), 15},
		{"Replace lighting with energy-efficient equipment", emissions.ResourceElectricity.String(), 8},
		{"Install water recycling systems", emissions.ResourceWater.String(), 20},
		{"Improve building insulation to cut winter heating", emissions.ResourceGas.String(), 12},
		{"Install campus solar panels to offset electricity emissions", emissions.ResourceElectricity.String(), 25},
	}
}
