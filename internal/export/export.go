// Package export writes a dashboard snapshot to disk as one file per dataset.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/gocarina/gocsv"
	"golang.org/x/sync/errgroup"

	"github.com/rshade/carbonboard/internal/dashboard"
	"github.com/rshade/carbonboard/internal/emissions"
	"github.com/rshade/carbonboard/internal/logging"
)

type constError string

func (e constError) Error() string { return string(e) }

// ErrUnsupportedFormat is returned for formats other than csv and json.
const ErrUnsupportedFormat = constError("unsupported export format")

// Format is a file encoding.
type Format string

// Export formats.
const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat validates an export format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatCSV, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// Dataset names, which are also the file base names.
const (
	DatasetHistorical = "historical"
	DatasetProjection = "projection"
	DatasetBuildings  = "buildings"
	DatasetSources    = "sources"
	DatasetYearly     = "yearly"
)

// Options controls Write.
type Options struct {
	Dir    string
	Format Format

	// Concurrency bounds parallel file writes. Zero uses the CPU count.
	Concurrency int
}

type dataset struct {
	name string
	csv  any
	json any
}

func datasets(snap *dashboard.Snapshot) []dataset {
	return []dataset{
		{DatasetHistorical, MonthlyRows(snap.Historical), snap.Historical},
		{DatasetProjection, MonthlyRows(snap.Projection), snap.Projection},
		{DatasetBuildings, BuildingRows(snap.Buildings), snap.Buildings},
		{DatasetSources, snap.Sources, snap.Sources},
		{DatasetYearly, []emissions.YearlyTotals{snap.Yearly}, snap.Yearly},
	}
}

// Write encodes every dataset of snap into opts.Dir, creating it if needed,
// and returns the written paths sorted. Files are written concurrently; the
// first failure cancels the writes not yet started.
func Write(ctx context.Context, snap *dashboard.Snapshot, opts Options) ([]string, error) {
	log := logging.FromContext(ctx)

	if _, err := ParseFormat(string(opts.Format)); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(opts.Dir, 0750); err != nil {
		return nil, fmt.Errorf("creating export directory %q: %w", opts.Dir, err)
	}

	limit := opts.Concurrency
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	sets := datasets(snap)
	paths := make([]string, len(sets))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, ds := range sets {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			path := filepath.Join(opts.Dir, ds.name+"."+string(opts.Format))
			if err := writeDataset(path, opts.Format, ds); err != nil {
				return fmt.Errorf("writing %s: %w", ds.name, err)
			}
			log.Debug().Ctx(gCtx).
				Str("component", "export").
				Str("dataset", ds.name).
				Str("path", path).
				Msg("dataset written")
			paths[i] = path
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Strings(paths)
	log.Info().Ctx(ctx).
		Str("component", "export").
		Str("dir", opts.Dir).
		Str("format", string(opts.Format)).
		Int("files", len(paths)).
		Msg("export complete")
	return paths, nil
}

func writeDataset(path string, format Format, ds dataset) error {
	var buf bytes.Buffer
	switch format {
	case FormatCSV:
		if err := gocsv.Marshal(ds.csv, &buf); err != nil {
			return err
		}
	case FormatJSON:
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(ds.json); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return os.WriteFile(path, buf.Bytes(), 0600)
}
