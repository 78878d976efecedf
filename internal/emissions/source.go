package emissions

import "math/rand/v2"

// Source supplies uniform pseudo-random numbers in [0, 1).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
}

// pcgStream is the fixed second PCG word; only the seed varies between runs.
const pcgStream = 0x9e3779b97f4a7c15

// NewSource returns a deterministic Source for seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, pcgStream)) //nolint:gosec // Synthetic data, not security sensitive.
}

// uniform draws from U(lo, hi).
func uniform(src Source, lo, hi float64) float64 {
	return lo + (hi-lo)*src.Float64()
}
