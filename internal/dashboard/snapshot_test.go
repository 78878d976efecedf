package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbonboard/internal/emissions"
)

func fixedNow() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }

func loadSeeded(t *testing.T, seed uint64) *Snapshot {
	t.Helper()
	snap, err := Load(context.Background(), Options{Seed: &seed, Now: fixedNow})
	require.NoError(t, err)
	return snap
}

func TestLoad(t *testing.T) {
	snap := loadSeeded(t, 42)

	assert.NotEmpty(t, snap.ID)
	assert.Equal(t, uint64(42), snap.Seed)
	assert.Equal(t, fixedNow(), snap.GeneratedAt)
	assert.Len(t, snap.Historical, emissions.MonthsPerYear)
	assert.Len(t, snap.Projection, emissions.MonthsPerYear)
	assert.Len(t, snap.Buildings, len(emissions.BuildingNames))
	assert.Len(t, snap.Sources, 3)
	assert.Equal(t, emissions.YearlyTotalsOf(snap.Historical), snap.Yearly)

	for _, r := range snap.Projection {
		assert.True(t, r.IsPrediction)
	}
}

func TestLoad_SeedReproduces(t *testing.T) {
	a := loadSeeded(t, 7)
	b := loadSeeded(t, 7)

	assert.Equal(t, a.Historical, b.Historical)
	assert.Equal(t, a.Buildings, b.Buildings)
	assert.NotEqual(t, a.ID, b.ID, "every snapshot gets its own id")
}

func TestLoad_ClockSeed(t *testing.T) {
	snap, err := Load(context.Background(), Options{Now: fixedNow})
	require.NoError(t, err)
	assert.Equal(t, uint64(fixedNow().UnixNano()), snap.Seed)
}

func TestCombined(t *testing.T) {
	snap := loadSeeded(t, 1)

	hist := snap.Combined(false, 6)
	assert.Equal(t, snap.Historical, hist)

	combined := snap.Combined(true, 6)
	require.Len(t, combined, 18)
	assert.Equal(t, snap.Projection[:6], combined[12:])

	assert.Len(t, snap.Combined(true, 40), 24)
	assert.Len(t, snap.Combined(true, 0), 12)

	// The result never aliases the snapshot.
	combined[0].Month = "changed"
	assert.Equal(t, "Jan", snap.Historical[0].Month)
}

func TestTopBuildings(t *testing.T) {
	snap := loadSeeded(t, 1)

	top := snap.TopBuildings(5)
	require.Len(t, top, 5)
	assert.Equal(t, snap.Buildings[0], top[0])
	assert.Len(t, snap.TopBuildings(50), len(snap.Buildings))
	assert.Empty(t, snap.TopBuildings(-1))

	first := snap.Buildings[0]
	top[0].Name = "Renamed"
	top[0].TotalCarbon = -1
	assert.Equal(t, first, snap.Buildings[0], "callers cannot mutate the snapshot")
}

func TestParseView(t *testing.T) {
	for _, v := range Views {
		got, err := ParseView(string(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
		assert.NotEmpty(t, v.Title())
	}

	got, err := ParseView("  Carbon ")
	require.NoError(t, err)
	assert.Equal(t, ViewCarbon, got)

	_, err = ParseView("charts")
	assert.ErrorIs(t, err, ErrUnknownView)
}
