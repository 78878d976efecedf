package emissions

import (
	"fmt"
	"sort"
	"strings"
)

// Category groups buildings that share a consumption profile.
type Category int

const (
	// CategoryOther covers buildings without a special profile.
	CategoryOther Category = iota
	CategoryLaboratory
	CategoryDining
	CategoryTeaching
	CategoryDormitory
	CategoryAdministration
)

// String returns the lower-case category name.
func (c Category) String() string {
	switch c {
	case CategoryOther:
		return "other"
	case CategoryLaboratory:
		return "laboratory"
	case CategoryDining:
		return "dining"
	case CategoryTeaching:
		return "teaching"
	case CategoryDormitory:
		return "dormitory"
	case CategoryAdministration:
		return "administration"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// MarshalText encodes the category by name for JSON and CSV output.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Multiplier scales electricity and water for buildings in the category.
func (c Category) Multiplier() float64 {
	switch c {
	case CategoryLaboratory:
		return 1.8 //nolint:mnd // Category profile.
	case CategoryDining:
		return 1.5 //nolint:mnd // Category profile.
	case CategoryTeaching:
		return 1.3 //nolint:mnd // Category profile.
	case CategoryDormitory:
		return 1.2 //nolint:mnd // Category profile.
	case CategoryOther, CategoryAdministration:
		return 1.0
	default:
		return 1.0
	}
}

// categoryRules maps name keywords to categories. Order is precedence:
// a name matching several keywords takes the first.
//
//nolint:gochecknoglobals // Fixed lookup table.
var categoryRules = []struct {
	keyword  string
	category Category
}{
	{"Laboratory", CategoryLaboratory},
	{"Cafeteria", CategoryDining},
	{"Dining", CategoryDining},
	{"Teaching", CategoryTeaching},
	{"Dormitory", CategoryDormitory},
	{"Administration", CategoryAdministration},
}

// ClassifyBuilding resolves the category of a building from its name.
func ClassifyBuilding(name string) Category {
	for _, rule := range categoryRules {
		if strings.Contains(name, rule.keyword) {
			return rule.category
		}
	}
	return CategoryOther
}

// GenerateBuildings synthesizes annual figures for every name in
// BuildingNames, ranked by total carbon.
func GenerateBuildings(src Source) []BuildingRecord {
	return GenerateBuildingsFor(src, BuildingNames)
}

// GenerateBuildingsFor synthesizes annual figures for the named buildings.
//
// Each building draws three values from src in the order electricity, water,
// gas. Electricity and water scale with the category multiplier; gas does
// not, but dining facilities use a higher gas range. The result is sorted by
// TotalCarbon descending and ties keep the order of names.
func GenerateBuildingsFor(src Source, names []string) []BuildingRecord {
	buildings := make([]BuildingRecord, 0, len(names))
	for _, name := range names {
		category := ClassifyBuilding(name)
		mult := category.Multiplier()

		c := Consumption{
			Electricity: roundUnits(uniform(src, buildingElectricityBase, buildingElectricityBase+buildingElectricityNoise) * mult),
			Water:       roundUnits(uniform(src, buildingWaterBase, buildingWaterBase+buildingWaterNoise) * mult),
		}
		if category == CategoryDining {
			c.Gas = roundUnits(uniform(src, diningGasBase, diningGasBase+diningGasNoise))
		} else {
			c.Gas = roundUnits(uniform(src, buildingGasBase, buildingGasBase+buildingGasNoise))
		}

		buildings = append(buildings, BuildingRecord{
			Name:        name,
			Category:    category,
			Consumption: c,
			Emissions:   EmissionsOf(c),
		})
	}

	RankBuildings(buildings)
	return buildings
}

// RankBuildings sorts buildings in place by TotalCarbon descending.
// The sort is stable.
func RankBuildings(buildings []BuildingRecord) {
	sort.SliceStable(buildings, func(i, j int) bool {
		return buildings[i].TotalCarbon > buildings[j].TotalCarbon
	})
}
