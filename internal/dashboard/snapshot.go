// Package dashboard assembles one session's worth of emissions data.
//
// Load runs every generator once and returns an immutable Snapshot; report
// views read from the snapshot and never regenerate data.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/rshade/carbonboard/internal/emissions"
	"github.com/rshade/carbonboard/internal/logging"
)

// Options controls snapshot generation.
type Options struct {
	// Seed fixes the random source. Nil seeds from the clock.
	Seed *uint64

	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Snapshot is the generated data for one session.
type Snapshot struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`

	// Seed reproduces this snapshot when passed back through Options.
	Seed uint64 `json:"seed"`

	Historical []emissions.MonthlyRecord     `json:"historical"`
	Projection []emissions.MonthlyRecord     `json:"projection"`
	Yearly     emissions.YearlyTotals        `json:"yearly"`
	Sources    []emissions.CarbonSourceShare `json:"sources"`
	Buildings  []emissions.BuildingRecord    `json:"buildings"`
}

// Load generates a Snapshot. The historical series is drawn before the
// buildings from a single source, so a seed fixes both.
func Load(ctx context.Context, opts Options) (*Snapshot, error) {
	logger := logging.FromContext(ctx).With().
		Str("component", "dashboard").
		Str("operation", "Load").
		Logger()

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	generatedAt := now().UTC()

	seed := uint64(generatedAt.UnixNano()) //nolint:gosec // Any bit pattern is a valid seed.
	if opts.Seed != nil {
		seed = *opts.Seed
	}
	src := emissions.NewSource(seed)

	historical := emissions.GenerateHistorical(src)
	projection, err := emissions.GenerateProjection(historical)
	if err != nil {
		return nil, fmt.Errorf("projecting emissions: %w", err)
	}

	snap := &Snapshot{
		ID:          ulid.MustNew(ulid.Timestamp(generatedAt), ulid.DefaultEntropy()).String(),
		GeneratedAt: generatedAt,
		Seed:        seed,
		Historical:  historical,
		Projection:  projection,
		Yearly:      emissions.YearlyTotalsOf(historical),
		Sources:     emissions.CarbonSources(historical),
		Buildings:   emissions.GenerateBuildings(src),
	}

	logger.Debug().Ctx(ctx).
		Str("snapshot_id", snap.ID).
		Uint64("seed", seed).
		Int64("total_carbon", snap.Yearly.TotalCarbon).
		Int("buildings", len(snap.Buildings)).
		Msg("snapshot generated")

	return snap, nil
}

// Combined returns the history, followed by the first months projected
// records when showPrediction is set. The result is a fresh slice.
func (s *Snapshot) Combined(showPrediction bool, months int) []emissions.MonthlyRecord {
	out := append([]emissions.MonthlyRecord(nil), s.Historical...)
	if !showPrediction || months <= 0 {
		return out
	}
	return append(out, s.Projection[:min(months, len(s.Projection))]...)
}

// TopBuildings returns up to n of the highest-emitting buildings as a
// fresh slice.
func (s *Snapshot) TopBuildings(n int) []emissions.BuildingRecord {
	if n <= 0 {
		return nil
	}
	return append([]emissions.BuildingRecord(nil), s.Buildings[:min(n, len(s.Buildings))]...)
}
