package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/rshade/carbonboard/internal/config"
	"github.com/rshade/carbonboard/internal/dashboard"
	"github.com/rshade/carbonboard/internal/emissions"
	"github.com/rshade/carbonboard/internal/export"
	"github.com/rshade/carbonboard/internal/greenops"
	"github.com/rshade/carbonboard/internal/insights"
	"github.com/rshade/carbonboard/internal/tui"
)

// ViewReport is the structured form of a report view. Fields that do not
// apply to the view are omitted.
type ViewReport struct {
	View       dashboard.View `json:"view"`
	SnapshotID string         `json:"snapshot_id"`
	Seed       uint64         `json:"seed"`
	Campus     string         `json:"campus,omitempty"`

	Yearly        *emissions.YearlyTotals       `json:"yearly,omitempty"`
	NeutralityGap *int64                        `json:"neutrality_gap,omitempty"`
	Sources       []emissions.CarbonSourceShare `json:"sources,omitempty"`
	Equivalencies []greenops.EquivalencyResult  `json:"equivalencies,omitempty"`

	Resource *insights.ResourceSummary `json:"resource,omitempty"`
	Months   []emissions.MonthlyRecord `json:"months,omitempty"`

	Buildings        []emissions.BuildingRecord `json:"buildings,omitempty"`
	CategoryAverages []insights.CategoryAverage `json:"category_averages,omitempty"`
	ReductionPlan    []insights.Reduction       `json:"reduction_plan,omitempty"`
	Measures         []insights.Measure         `json:"measures,omitempty"`
}

// resourceOf maps the per-utility views to their resource.
func resourceOf(view dashboard.View) (emissions.Resource, bool) {
	switch view {
	case dashboard.ViewElectricity:
		return emissions.ResourceElectricity, true
	case dashboard.ViewWater:
		return emissions.ResourceWater, true
	case dashboard.ViewGas:
		return emissions.ResourceGas, true
	case dashboard.ViewOverview, dashboard.ViewCarbon, dashboard.ViewBuildings:
		return 0, false
	default:
		return 0, false
	}
}

// buildViewReport assembles the structured report for view.
func buildViewReport(
	cfg *config.Config,
	snap *dashboard.Snapshot,
	view dashboard.View,
	months int,
) ViewReport {
	report := ViewReport{View: view, SnapshotID: snap.ID, Seed: snap.Seed}
	yearly := snap.Yearly
	gap := insights.NeutralityGap(yearly)

	equivalencies := func() []greenops.EquivalencyResult {
		eq, err := greenops.CalculateTons(yearly.TotalCarbon, equivalencyOptions(cfg))
		if err != nil {
			return nil
		}
		return eq.Results
	}

	if res, ok := resourceOf(view); ok {
		summary := insights.SummarizeResource(res, snap.Historical, yearly)
		report.Resource = &summary
		report.Months = snap.Combined(months > 0, months)
		for _, m := range insights.CampusMeasures() {
			if m.Resource == summary.Name {
				report.Measures = append(report.Measures, m)
			}
		}
		return report
	}

	switch view {
	case dashboard.ViewOverview:
		report.Campus = cfg.Campus.Name
		report.Yearly = &yearly
		report.NeutralityGap = &gap
		report.Sources = snap.Sources
		report.Equivalencies = equivalencies()
		report.Buildings = snap.TopBuildings(overviewTopBuildings)
	case dashboard.ViewCarbon:
		report.Yearly = &yearly
		report.NeutralityGap = &gap
		report.Sources = snap.Sources
		report.Equivalencies = equivalencies()
		report.Months = snap.Combined(months > 0, months)
		report.Measures = insights.CampusMeasures()
	case dashboard.ViewBuildings:
		report.Buildings = snap.Buildings
		report.CategoryAverages = insights.CategoryAverages(snap.Buildings)
		report.ReductionPlan = insights.ReductionPlan(snap.Buildings)
	}
	return report
}

const overviewTopBuildings = 5

// rowSet names which list of a ViewReport is streamed as ndjson or csv rows.
type rowSet int

const (
	rowsSources rowSet = iota
	rowsMonths
	rowsBuildings
)

func (r ViewReport) rowSet() rowSet {
	switch {
	case r.Months != nil:
		return rowsMonths
	case r.View == dashboard.ViewBuildings:
		return rowsBuildings
	default:
		return rowsSources
	}
}

func equivalencyOptions(cfg *config.Config) greenops.Options {
	return greenops.Options{
		TreesPerTon: cfg.Campus.TreesPerTon,
		Population:  cfg.Campus.Population,
	}
}

// renderReport writes view in the configured output format.
func renderReport(
	ctx context.Context,
	w io.Writer,
	cfg *config.Config,
	snap *dashboard.Snapshot,
	view dashboard.View,
	months int,
) error {
	format := cfg.Output.DefaultFormat
	switch format {
	case config.FormatTable:
		r := tui.Renderer{
			Width:            terminalWidth(w),
			Plain:            !isTerminal(w),
			CampusName:       cfg.Campus.Name,
			PredictionMonths: months,
			Equivalency:      equivalencyOptions(cfg),
			Precision:        cfg.Output.Precision,
		}
		out, err := r.Render(ctx, snap, view)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(w, out)
		return err

	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(buildViewReport(cfg, snap, view, months))

	case config.FormatNDJSON:
		report := buildViewReport(cfg, snap, view, months)
		enc := json.NewEncoder(w)
		switch report.rowSet() {
		case rowsMonths:
			return encodeLines(enc, report.Months)
		case rowsBuildings:
			return encodeLines(enc, report.Buildings)
		default:
			return encodeLines(enc, report.Sources)
		}

	case config.FormatCSV:
		report := buildViewReport(cfg, snap, view, months)
		switch report.rowSet() {
		case rowsMonths:
			return gocsv.Marshal(export.MonthlyRows(report.Months), w)
		case rowsBuildings:
			return gocsv.Marshal(export.BuildingRows(report.Buildings), w)
		default:
			return gocsv.Marshal(report.Sources, w)
		}

	default:
		return fmt.Errorf("%w: unsupported output format %q", config.ErrInvalidValue, format)
	}
}

// encodeLines writes each row as one JSON line.
func encodeLines[T any](enc *json.Encoder, rows []T) error {
	for _, row := range rows {
		if err := enc.Encode(row); err != nil {
			return err
		}
	}
	return nil
}
