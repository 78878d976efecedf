package export

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbonboard/internal/dashboard"
	"github.com/rshade/carbonboard/internal/emissions"
)

func testSnapshot(t *testing.T) *dashboard.Snapshot {
	t.Helper()
	seed := uint64(99)
	snap, err := dashboard.Load(context.Background(), dashboard.Options{Seed: &seed})
	require.NoError(t, err)
	return snap
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("csv")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	_, err = ParseFormat("xlsx")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestWrite_CSV(t *testing.T) {
	snap := testSnapshot(t)
	dir := filepath.Join(t.TempDir(), "out")

	paths, err := Write(context.Background(), snap, Options{Dir: dir, Format: FormatCSV, Concurrency: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "buildings.csv"),
		filepath.Join(dir, "historical.csv"),
		filepath.Join(dir, "projection.csv"),
		filepath.Join(dir, "sources.csv"),
		filepath.Join(dir, "yearly.csv"),
	}, paths)

	var buildings []*BuildingCSV
	f, err := os.Open(filepath.Join(dir, "buildings.csv"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	require.NoError(t, gocsv.UnmarshalFile(f, &buildings))

	require.Len(t, buildings, len(snap.Buildings))
	for i, b := range buildings {
		assert.Equal(t, i+1, b.Rank)
		assert.Equal(t, snap.Buildings[i].Name, b.Name)
		assert.Equal(t, snap.Buildings[i].Category.String(), b.Category)
		assert.Equal(t, snap.Buildings[i].TotalCarbon, b.TotalCarbon)
	}

	var projection []*MonthlyCSV
	p, err := os.Open(filepath.Join(dir, "projection.csv"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })
	require.NoError(t, gocsv.UnmarshalFile(p, &projection))

	require.Len(t, projection, emissions.MonthsPerYear)
	assert.True(t, projection[0].IsPrediction)
	assert.Equal(t, snap.Projection[0].TotalCarbon, projection[0].TotalCarbon)
}

func TestWrite_JSON(t *testing.T) {
	snap := testSnapshot(t)
	dir := t.TempDir()

	paths, err := Write(context.Background(), snap, Options{Dir: dir, Format: FormatJSON})
	require.NoError(t, err)
	assert.Len(t, paths, 5)

	data, err := os.ReadFile(filepath.Join(dir, "historical.json"))
	require.NoError(t, err)
	var historical []emissions.MonthlyRecord
	require.NoError(t, json.Unmarshal(data, &historical))
	assert.Equal(t, snap.Historical, historical)

	data, err = os.ReadFile(filepath.Join(dir, "yearly.json"))
	require.NoError(t, err)
	var yearly emissions.YearlyTotals
	require.NoError(t, json.Unmarshal(data, &yearly))
	assert.Equal(t, snap.Yearly, yearly)

	data, err = os.ReadFile(filepath.Join(dir, "buildings.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"category": "laboratory"`)
}

func TestWrite_Errors(t *testing.T) {
	snap := testSnapshot(t)

	_, err := Write(context.Background(), snap, Options{Dir: t.TempDir(), Format: "xml"})
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Write(ctx, snap, Options{Dir: t.TempDir(), Format: FormatCSV})
	require.ErrorIs(t, err, context.Canceled)

	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0600))
	_, err = Write(context.Background(), snap, Options{Dir: filepath.Join(blocker, "sub"), Format: FormatCSV})
	assert.Error(t, err)
}
