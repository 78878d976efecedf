package tui

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbonboard/internal/dashboard"
	"github.com/rshade/carbonboard/internal/greenops"
)

func testSnapshot(t *testing.T) *dashboard.Snapshot {
	t.Helper()
	seed := uint64(2024)
	snap, err := dashboard.Load(context.Background(), dashboard.Options{Seed: &seed})
	require.NoError(t, err)
	return snap
}

func plainRenderer() Renderer {
	return Renderer{
		Plain:            true,
		CampusName:       "North Campus",
		PredictionMonths: 6,
		Equivalency:      greenops.DefaultOptions(),
	}
}

func TestRender_EveryView(t *testing.T) {
	snap := testSnapshot(t)
	r := plainRenderer()

	for _, v := range dashboard.Views {
		t.Run(string(v), func(t *testing.T) {
			out, err := r.Render(context.Background(), snap, v)
			require.NoError(t, err)
			assert.NotEmpty(t, out)
			assert.NotContains(t, out, "\x1b[", "plain output has no escape codes")
		})
	}
}

func TestRender_UnknownView(t *testing.T) {
	_, err := plainRenderer().Render(context.Background(), testSnapshot(t), dashboard.View("charts"))
	assert.ErrorIs(t, err, dashboard.ErrUnknownView)
}

func TestRender_Overview(t *testing.T) {
	snap := testSnapshot(t)
	out, err := plainRenderer().Render(context.Background(), snap, dashboard.ViewOverview)
	require.NoError(t, err)

	assert.Contains(t, out, "CAMPUS OVERVIEW")
	assert.Contains(t, out, "North Campus")
	assert.Contains(t, out, greenops.FormatTons(snap.Yearly.TotalCarbon))
	assert.Contains(t, out, "trees to offset")
	assert.Contains(t, out, snap.ID)
	for _, b := range snap.TopBuildings(overviewTopCount) {
		assert.Contains(t, out, b.Name)
	}
	for _, s := range snap.Sources {
		assert.Contains(t, out, greenops.FormatPercent(s.Percentage))
	}
}

func TestRender_ResourcePrediction(t *testing.T) {
	snap := testSnapshot(t)

	r := plainRenderer()
	out, err := r.Render(context.Background(), snap, dashboard.ViewWater)
	require.NoError(t, err)
	assert.Contains(t, out, "WATER")
	assert.Contains(t, out, "Projected")
	assert.Contains(t, out, "Install water recycling systems")
	assert.NotContains(t, out, "solar panels", "only water measures are listed")

	r.PredictionMonths = 0
	out, err = r.Render(context.Background(), snap, dashboard.ViewWater)
	require.NoError(t, err)
	assert.NotContains(t, out, "Projected")
	assert.Equal(t, 12, strings.Count(out, "Actual"))
}

func TestRender_Carbon(t *testing.T) {
	snap := testSnapshot(t)
	out, err := plainRenderer().Render(context.Background(), snap, dashboard.ViewCarbon)
	require.NoError(t, err)

	assert.Contains(t, out, "CARBON SOURCES")
	assert.Contains(t, out, "Natural Gas")
	assert.Contains(t, out, "tons per person")
	assert.Contains(t, out, "miles driven")
}

func TestRender_Buildings(t *testing.T) {
	snap := testSnapshot(t)
	out, err := plainRenderer().Render(context.Background(), snap, dashboard.ViewBuildings)
	require.NoError(t, err)

	for _, b := range snap.Buildings {
		assert.Contains(t, out, b.Name)
	}
	assert.Contains(t, out, "CATEGORY AVERAGES")
	assert.Contains(t, out, "REDUCTION PLAN")
	assert.Contains(t, out, "payback 3.5 years")

	// Ranking order is preserved top to bottom.
	first := strings.Index(out, snap.Buildings[0].Name)
	last := strings.Index(out, snap.Buildings[len(snap.Buildings)-1].Name)
	assert.Less(t, first, last)
}

func TestRender_ColorThemeBoxes(t *testing.T) {
	snap := testSnapshot(t)
	r := plainRenderer()
	r.Plain = false
	r.Width = 80

	out, err := r.Render(context.Background(), snap, dashboard.ViewOverview)
	require.NoError(t, err)
	assert.Contains(t, out, "╭")

	plain, err := plainRenderer().Render(context.Background(), snap, dashboard.ViewOverview)
	require.NoError(t, err)
	assert.NotContains(t, plain, "╭")
}
