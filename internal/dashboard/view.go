package dashboard

import (
	"fmt"
	"strings"
)

// View is one report page.
type View string

// Report views.
const (
	ViewOverview    View = "overview"
	ViewElectricity View = "electricity"
	ViewWater       View = "water"
	ViewGas         View = "gas"
	ViewCarbon      View = "carbon"
	ViewBuildings   View = "buildings"
)

// Views lists every View in menu order.
//
//nolint:gochecknoglobals // Fixed lookup table.
var Views = []View{ViewOverview, ViewElectricity, ViewWater, ViewGas, ViewCarbon, ViewBuildings}

// ParseView resolves a view name, case-insensitively.
func ParseView(name string) (View, error) {
	v := View(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Views {
		if v == known {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w %q (valid: %s)", ErrUnknownView, name, joinViews())
}

// Title returns the heading shown for the view.
func (v View) Title() string {
	switch v {
	case ViewOverview:
		return "Overview"
	case ViewElectricity:
		return "Electricity"
	case ViewWater:
		return "Water"
	case ViewGas:
		return "Natural Gas"
	case ViewCarbon:
		return "Carbon Emissions"
	case ViewBuildings:
		return "Buildings"
	default:
		return string(v)
	}
}

func joinViews() string {
	names := make([]string, len(Views))
	for i, v := range Views {
		names[i] = string(v)
	}
	return strings.Join(names, ", ")
}
