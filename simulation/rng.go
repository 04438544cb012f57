package simulation

import (
	"math/rand/v2"
	"sync"

	"github.com/maulepilot117/atbatsim/models"
)

// DrawKind distinguishes the two operations RandomSource records in its audit log.
type DrawKind string

const (
	DrawUniform        DrawKind = "uniform"
	DrawWeightedChoice DrawKind = "weighted_choice"
)

// DrawRecord is one append-only audit-log entry. Value is the uniform draw
// that decided the outcome; for a weighted choice, Index identifies which
// option was selected and Weights carries the sampled vector divided by the
// sum of its positive entries.
type DrawRecord struct {
	Kind    DrawKind
	Value   float64
	Index   int
	Weights []float64
}

// RandomSource is a seeded, audit-logged source of randomness. It pins
// math/rand/v2's PCG algorithm so that, given an identical seed and an
// identical sequence of calls, it reproduces identical results on any
// platform running the same Go implementation.
//
// Each method call is serialized by an internal mutex, so concurrent calls do
// not corrupt the generator or its history. The order of draws, and with it
// reproducibility, is only fixed when one goroutine owns the source; callers
// sharing one across goroutines must order their calls themselves.
type RandomSource struct {
	mu      sync.Mutex
	seed1   uint64
	seed2   uint64
	rng     *rand.Rand
	history []DrawRecord
}

// NewRandomSource creates a RandomSource seeded from system entropy.
func NewRandomSource() *RandomSource {
	return NewSeededRandomSource(rand.Uint64(), rand.Uint64())
}

// NewSeededRandomSource creates a RandomSource from an explicit two-word seed,
// the shape math/rand/v2's PCG source requires.
func NewSeededRandomSource(seed1, seed2 uint64) *RandomSource {
	r := &RandomSource{seed1: seed1, seed2: seed2}
	r.rng = rand.New(rand.NewPCG(seed1, seed2))
	return r
}

// Seed returns the two-word seed this source was constructed or last reset with.
func (r *RandomSource) Seed() (uint64, uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.seed1, r.seed2
}

// Reset restores the generator to its initial seed (or a new one, if
// provided) and clears the audit history.
func (r *RandomSource) Reset(seed1, seed2 *uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if seed1 != nil {
		r.seed1 = *seed1
	}
	if seed2 != nil {
		r.seed2 = *seed2
	}
	r.rng = rand.New(rand.NewPCG(r.seed1, r.seed2))
	r.history = nil
}

// Uniform draws a float64 in [0,1) and appends it to the audit history.
// Uniform never fails.
func (r *RandomSource) Uniform() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	v := r.rng.Float64()
	r.history = append(r.history, DrawRecord{Kind: DrawUniform, Value: v})
	return v
}

// WeightedChoice picks an index in [0, len(weights)) via inverse-CDF sampling.
// Weights need not sum to 1; they are normalized internally without mutating
// the caller's slice. Fails with EmptyWeightedChoiceError when every weight
// is non-positive.
func (r *RandomSource) WeightedChoice(weights []float64) (int, error) {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return 0, &models.EmptyWeightedChoiceError{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	u := r.rng.Float64()
	target := u * total
	cumulative := 0.0
	chosen := len(weights) - 1
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		cumulative += w
		if target < cumulative {
			chosen = i
			break
		}
	}

	normalized := make([]float64, len(weights))
	for i, w := range weights {
		normalized[i] = w / total
	}
	r.history = append(r.history, DrawRecord{Kind: DrawWeightedChoice, Value: u, Index: chosen, Weights: normalized})
	return chosen, nil
}

// History returns an immutable snapshot of every draw recorded so far.
func (r *RandomSource) History() []DrawRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]DrawRecord, len(r.history))
	copy(out, r.history)
	return out
}

// Len reports how many draws have been recorded, used by callers that want to
// slice out only the draws a single call contributed.
func (r *RandomSource) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.history)
}

// Since returns the draws recorded after the given history length, the slice
// a single SimulateAtBat call contributed.
func (r *RandomSource) Since(start int) []DrawRecord {
	full := r.History()
	if start >= len(full) {
		return nil
	}
	return full[start:]
}
