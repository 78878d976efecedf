package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/carbonboard/internal/dashboard"
	"github.com/rshade/carbonboard/internal/emissions"
	"github.com/rshade/carbonboard/internal/greenops"
	"github.com/rshade/carbonboard/internal/insights"
	"github.com/rshade/carbonboard/internal/logging"
)

// Layout constants.
const (
	defaultWidth     = 100
	borderPadding    = 2
	overviewTopCount = 5
)

// Renderer draws report views of a snapshot.
type Renderer struct {
	// Width is the total box width. Zero uses a default.
	Width int

	// Plain selects PlainTheme.
	Plain bool

	// CampusName titles the overview.
	CampusName string

	// PredictionMonths is how many projected months follow the history
	// in monthly tables. Zero or less shows history only.
	PredictionMonths int

	// Equivalency tunes the trees and per-capita figures.
	Equivalency greenops.Options

	// Precision is the decimals shown for per-capita tons.
	Precision int
}

func (r Renderer) theme() Theme {
	if r.Plain {
		return PlainTheme()
	}
	return ColorTheme()
}

func (r Renderer) width() int {
	if r.Width <= 0 {
		return defaultWidth
	}
	return r.Width
}

// Render draws view for snap.
func (r Renderer) Render(ctx context.Context, snap *dashboard.Snapshot, view dashboard.View) (string, error) {
	log := logging.FromContext(ctx)
	log.Debug().Ctx(ctx).
		Str("component", "tui").
		Str("view", string(view)).
		Bool("plain", r.Plain).
		Msg("rendering report")

	t := r.theme()
	switch view {
	case dashboard.ViewOverview:
		return r.renderOverview(t, snap), nil
	case dashboard.ViewElectricity:
		return r.renderResource(t, snap, emissions.ResourceElectricity), nil
	case dashboard.ViewWater:
		return r.renderResource(t, snap, emissions.ResourceWater), nil
	case dashboard.ViewGas:
		return r.renderResource(t, snap, emissions.ResourceGas), nil
	case dashboard.ViewCarbon:
		return r.renderCarbon(t, snap), nil
	case dashboard.ViewBuildings:
		return r.renderBuildings(t, snap), nil
	default:
		return "", fmt.Errorf("%w %q", dashboard.ErrUnknownView, view)
	}
}

func (r Renderer) box(t Theme, content string) string {
	if r.Plain {
		return strings.TrimRight(content, "\n")
	}
	return t.Box.Width(r.width() - borderPadding).Render(strings.TrimRight(content, "\n"))
}

func writeField(sb *strings.Builder, t Theme, label, value string) {
	sb.WriteString(t.Label.Render(fmt.Sprintf("%-16s", label+":")))
	sb.WriteString(t.Value.Render(value))
	sb.WriteString("\n")
}

func (r Renderer) renderOverview(t Theme, snap *dashboard.Snapshot) string {
	var content strings.Builder

	content.WriteString(t.Header.Render("CAMPUS OVERVIEW"))
	if r.CampusName != "" {
		content.WriteString(t.Subtle.Render("  " + r.CampusName))
	}
	content.WriteString("\n\n")

	for _, res := range emissions.Resources {
		writeField(&content, t, res.String(), greenops.FormatTenThousands(snap.Yearly.Of(res), res.Unit()))
	}
	writeField(&content, t, "Total Carbon", greenops.FormatTons(snap.Yearly.TotalCarbon))
	writeField(&content, t, "Neutrality Gap", greenops.FormatTons(insights.NeutralityGap(snap.Yearly)))
	r.writeEquivalency(&content, t, snap.Yearly.TotalCarbon)

	content.WriteString("\n")
	content.WriteString(t.Header.Render("CARBON SOURCES"))
	content.WriteString("\n")
	content.WriteString(t.Label.Render(sourcesLine(snap.Sources)))

	var out strings.Builder
	out.WriteString(r.box(t, content.String()))
	out.WriteString("\n\n")
	out.WriteString(t.Header.Render(fmt.Sprintf("TOP %d BUILDINGS", overviewTopCount)))
	out.WriteString("\n")
	out.WriteString(buildingTable(t, snap.TopBuildings(overviewTopCount), false).View())
	out.WriteString("\n\n")
	out.WriteString(t.Subtle.Render(fmt.Sprintf("snapshot %s  seed %d", snap.ID, snap.Seed)))
	out.WriteString("\n")
	return out.String()
}

func (r Renderer) writeEquivalency(sb *strings.Builder, t Theme, tons int64) {
	eq, err := greenops.CalculateTons(tons, r.Equivalency)
	if err != nil || eq.IsEmpty {
		return
	}
	if pc, ok := eq.Result(greenops.EquivalencyPerCapita); ok {
		writeField(sb, t, "Per Capita", greenops.FormatFloat(pc.Value, r.Precision)+" tons")
	}
	sb.WriteString(t.Subtle.Render(eq.DisplayText))
	sb.WriteString("\n")
}

func sourcesLine(sources []emissions.CarbonSourceShare) string {
	parts := make([]string, 0, len(sources))
	for _, s := range sources {
		parts = append(parts, fmt.Sprintf("%s: %s (%s)",
			s.Name, greenops.FormatTons(s.Value), greenops.FormatPercent(s.Percentage)))
	}
	return strings.Join(parts, "  ")
}

func (r Renderer) renderResource(t Theme, snap *dashboard.Snapshot, res emissions.Resource) string {
	summary := insights.SummarizeResource(res, snap.Historical, snap.Yearly)

	var content strings.Builder
	content.WriteString(t.Header.Render(strings.ToUpper(summary.Name)))
	content.WriteString("\n\n")
	writeField(&content, t, "Annual Total", greenops.FormatTenThousands(summary.Annual, summary.Unit))
	writeField(&content, t, "Peak Month", summary.PeakMonth)
	writeField(&content, t, "Daily Peak", greenops.FormatNumber(summary.DailyPeak)+" "+summary.Unit)
	writeField(&content, t, "Carbon", greenops.FormatTons(summary.Carbon))
	writeField(&content, t, "Share of Total", strconv.FormatInt(summary.ShareOfTotal, 10)+"%")

	var out strings.Builder
	out.WriteString(r.box(t, content.String()))
	out.WriteString("\n\n")
	out.WriteString(t.Header.Render("MONTHLY " + strings.ToUpper(summary.Name)))
	out.WriteString("\n")
	out.WriteString(r.monthlyResourceTable(t, snap, res).View())
	out.WriteString("\n\n")
	writeMeasures(&out, t, summary.Name)
	return out.String()
}

func (r Renderer) monthlyResourceTable(t Theme, snap *dashboard.Snapshot, res emissions.Resource) table.Model {
	columns := []table.Column{
		{Title: "Month", Width: 8},        //nolint:mnd // Column width.
		{Title: "Consumption", Width: 20}, //nolint:mnd // Column width.
		{Title: "Carbon (t)", Width: 12},  //nolint:mnd // Column width.
		{Title: "Type", Width: 10},        //nolint:mnd // Column width.
	}

	months := snap.Combined(r.PredictionMonths > 0, r.PredictionMonths)
	rows := make([]table.Row, len(months))
	for i, m := range months {
		rows[i] = table.Row{
			m.Month,
			greenops.FormatNumber(m.Consumption.Of(res)) + " " + res.Unit(),
			greenops.FormatNumber(m.Emissions.Of(res)),
			recordType(m),
		}
	}
	return staticTable(t, columns, rows)
}

func writeMeasures(sb *strings.Builder, t Theme, resource string) {
	var lines []string
	for _, m := range insights.CampusMeasures() {
		if resource != "" && m.Resource != resource {
			continue
		}
		lines = append(lines, fmt.Sprintf("- %s (-%d%%)", m.Description, m.ReductionPercent))
	}
	if len(lines) == 0 {
		return
	}
	sb.WriteString(t.Header.Render("RECOMMENDED MEASURES"))
	sb.WriteString("\n")
	sb.WriteString(strings.Join(lines, "\n"))
	sb.WriteString("\n")
}

func (r Renderer) renderCarbon(t Theme, snap *dashboard.Snapshot) string {
	var content strings.Builder
	content.WriteString(t.Header.Render("CARBON EMISSIONS"))
	content.WriteString("\n\n")
	writeField(&content, t, "Total Carbon", greenops.FormatTons(snap.Yearly.TotalCarbon))
	writeField(&content, t, "Neutrality Gap", greenops.FormatTons(insights.NeutralityGap(snap.Yearly)))
	if eq, err := greenops.CalculateTons(snap.Yearly.TotalCarbon, r.Equivalency); err == nil && !eq.IsEmpty {
		for _, res := range eq.Results {
			writeField(&content, t, res.Label, res.FormattedValue)
		}
	}

	var out strings.Builder
	out.WriteString(r.box(t, content.String()))
	out.WriteString("\n\n")
	out.WriteString(t.Header.Render("CARBON SOURCES"))
	out.WriteString("\n")
	out.WriteString(sourceTable(t, snap.Sources).View())
	out.WriteString("\n\n")
	out.WriteString(t.Header.Render("MONTHLY CARBON"))
	out.WriteString("\n")
	out.WriteString(r.monthlyCarbonTable(t, snap).View())
	out.WriteString("\n\n")
	writeMeasures(&out, t, "")
	return out.String()
}

func sourceTable(t Theme, sources []emissions.CarbonSourceShare) table.Model {
	columns := []table.Column{
		{Title: "Source", Width: 14},     //nolint:mnd // Column width.
		{Title: "Carbon (t)", Width: 12}, //nolint:mnd // Column width.
		{Title: "Share", Width: 8},       //nolint:mnd // Column width.
	}
	rows := make([]table.Row, len(sources))
	for i, s := range sources {
		rows[i] = table.Row{s.Name, greenops.FormatNumber(s.Value), greenops.FormatPercent(s.Percentage)}
	}
	return staticTable(t, columns, rows)
}

func (r Renderer) monthlyCarbonTable(t Theme, snap *dashboard.Snapshot) table.Model {
	columns := []table.Column{
		{Title: "Month", Width: 8},        //nolint:mnd // Column width.
		{Title: "Electricity", Width: 12}, //nolint:mnd // Column width.
		{Title: "Water", Width: 8},        //nolint:mnd // Column width.
		{Title: "Gas", Width: 8},          //nolint:mnd // Column width.
		{Title: "Total (t)", Width: 10},   //nolint:mnd // Column width.
		{Title: "Type", Width: 10},        //nolint:mnd // Column width.
	}

	months := snap.Combined(r.PredictionMonths > 0, r.PredictionMonths)
	rows := make([]table.Row, len(months))
	for i, m := range months {
		rows[i] = table.Row{
			m.Month,
			greenops.FormatNumber(m.CarbonElectricity),
			greenops.FormatNumber(m.CarbonWater),
			greenops.FormatNumber(m.CarbonGas),
			greenops.FormatNumber(m.TotalCarbon),
			recordType(m),
		}
	}
	return staticTable(t, columns, rows)
}

func (r Renderer) renderBuildings(t Theme, snap *dashboard.Snapshot) string {
	var out strings.Builder
	out.WriteString(t.Header.Render("BUILDING EMISSIONS RANKING"))
	out.WriteString("\n")
	out.WriteString(buildingTable(t, snap.Buildings, true).View())
	out.WriteString("\n\n")

	var content strings.Builder
	content.WriteString(t.Header.Render("CATEGORY AVERAGES"))
	content.WriteString("\n")
	for _, avg := range insights.CategoryAverages(snap.Buildings) {
		writeField(&content, t, avg.Label, greenops.FormatTons(avg.AverageCarbon))
	}

	plan := insights.ReductionPlan(snap.Buildings)
	if len(plan) > 0 {
		content.WriteString("\n")
		content.WriteString(t.Header.Render("REDUCTION PLAN"))
		content.WriteString("\n")
		for _, p := range plan {
			fmt.Fprintf(&content, "%d. %s: %s\n", p.Rank, p.Building, p.Measure)
			content.WriteString(t.Subtle.Render(fmt.Sprintf("   est. -%s/yr, payback %.1f years",
				greenops.FormatTons(p.EstimatedReduction), p.PaybackYears)))
			content.WriteString("\n")
		}
	}

	out.WriteString(r.box(t, content.String()))
	out.WriteString("\n")
	return out.String()
}

// buildingTable lists buildings in the order given, ranked from 1. detail
// adds the per-resource consumption columns.
func buildingTable(t Theme, buildings []emissions.BuildingRecord, detail bool) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},      //nolint:mnd // Column width.
		{Title: "Building", Width: 26}, //nolint:mnd // Column width.
		{Title: "Category", Width: 15}, //nolint:mnd // Column width.
	}
	if detail {
		columns = append(columns,
			table.Column{Title: "Electricity (kWh)", Width: 18}, //nolint:mnd // Column width.
			table.Column{Title: "Water (t)", Width: 10},         //nolint:mnd // Column width.
			table.Column{Title: "Gas (m³)", Width: 10},          //nolint:mnd // Column width.
		)
	}
	columns = append(columns, table.Column{Title: "Carbon (t)", Width: 12}) //nolint:mnd // Column width.

	rows := make([]table.Row, len(buildings))
	for i, b := range buildings {
		row := table.Row{strconv.Itoa(i + 1), b.Name, b.Category.String()}
		if detail {
			row = append(row,
				greenops.FormatNumber(b.Electricity),
				greenops.FormatNumber(b.Water),
				greenops.FormatNumber(b.Gas),
			)
		}
		rows[i] = append(row, greenops.FormatNumber(b.TotalCarbon))
	}
	return staticTable(t, columns, rows)
}

// staticTable builds an unfocused table tall enough to show every row.
func staticTable(t Theme, columns []table.Column, rows []table.Row) table.Model {
	m := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
	)
	m.SetStyles(t.Table)

	width := 0
	for _, c := range columns {
		width += c.Width + t.Table.Cell.GetHorizontalFrameSize()
	}
	m.SetWidth(width)
	m.SetHeight(len(rows) + lipgloss.Height(t.Table.Header.Render("x")))
	return m
}

func recordType(m emissions.MonthlyRecord) string {
	if m.IsPrediction {
		return "Projected"
	}
	return "Actual"
}
