package insights

import (
	"math"

	"github.com/samber/lo"

	"github.com/rshade/carbonboard/internal/emissions"
)

// CategoryAverage is the mean building emissions within one category.
type CategoryAverage struct {
	Category      emissions.Category `json:"category"`
	Label         string             `json:"label"`
	Buildings     int                `json:"buildings"`
	AverageCarbon int64              `json:"average_carbon"`
}

// categoryOrder fixes the display order and labels of CategoryAverages.
//
//nolint:gochecknoglobals // Fixed lookup table.
var categoryOrder = []struct {
	category emissions.Category
	label    string
}{
	{emissions.CategoryTeaching, "Teaching Buildings"},
	{emissions.CategoryLaboratory, "Laboratories"},
	{emissions.CategoryDormitory, "Dormitories"},
	{emissions.CategoryAdministration, "Administration"},
	{emissions.CategoryDining, "Dining Facilities"},
	{emissions.CategoryOther, "Other"},
}

// CategoryAverages returns the rounded mean TotalCarbon per building
// category. Categories without buildings are left out.
func CategoryAverages(buildings []emissions.BuildingRecord) []CategoryAverage {
	groups := lo.GroupBy(buildings, func(b emissions.BuildingRecord) emissions.Category { return b.Category })

	out := make([]CategoryAverage, 0, len(groups))
	for _, c := range categoryOrder {
		members := groups[c.category]
		if len(members) == 0 {
			continue
		}
		total := lo.SumBy(members, func(b emissions.BuildingRecord) int64 { return b.TotalCarbon })
		out = append(out, CategoryAverage{
			Category:      c.category,
			Label:         c.label,
			Buildings:     len(members),
			AverageCarbon: int64(math.Round(float64(total) / float64(len(members)))),
		})
	}
	return out
}
