package scenario

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/veletrack/raillock/core"
)

// ErrInvalidUnits indicates a non-positive units-per-track bound.
var ErrInvalidUnits = errors.New("scenario: max units per track must be positive")

// RandomOption configures the Random generator.
type RandomOption func(*randomConfig)

type randomConfig struct {
	rng *rand.Rand
}

// WithSeed makes Random fully reproducible by deriving its RNG from seed.
func WithSeed(seed int64) RandomOption {
	return func(cfg *randomConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG for Random. Panics on nil; prefer
// WithSeed for reproducible fixtures.
func WithRand(r *rand.Rand) RandomOption {
	if r == nil {
		panic("scenario: WithRand(nil)")
	}

	return func(cfg *randomConfig) {
		cfg.rng = r
	}
}

// Random generates a state with trains × tracks matrices populated at
// random, bounded by maxUnits units per track draw. The result satisfies
// the core invariants by construction:
//
//   - every track keeps a free pool of at least one unit before
//     allocations are layered on top, so conservation holds trivially;
//   - Maximum is Allocation plus random headroom, so Allocation ≤ Maximum
//     and Need ≥ 0 everywhere.
//
// Without WithSeed/WithRand the generator seeds from the clock, so two
// unseeded calls produce different layouts.
// Complexity: O(n·m).
func Random(trains, tracks, maxUnits int, opts ...RandomOption) (*core.State, error) {
	if maxUnits < 1 {
		return nil, fmt.Errorf("scenario: Random(maxUnits=%d): %w", maxUnits, ErrInvalidUnits)
	}

	s, err := core.New(trains, tracks)
	if err != nil {
		return nil, err
	}

	cfg := randomConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	rng := cfg.rng

	// Free pool per track: at least one unit so no track is born dead.
	for j := 0; j < tracks; j++ {
		s.Available[j] = 1 + rng.Intn(maxUnits)
	}

	// Layer random allocations on top of the free pool. The distributed
	// total is drawn per track and split greedily across trains, so the
	// per-track capacity is exactly Available + Σ Allocation.
	for j := 0; j < tracks; j++ {
		remaining := rng.Intn(trains*maxUnits + 1)
		for i := 0; i < trains && remaining > 0; i++ {
			take := rng.Intn(remaining + 1)
			s.Allocation[i][j] = take
			remaining -= take
		}
	}

	// Maximum: whatever is held now plus random future headroom.
	for i := 0; i < trains; i++ {
		for j := 0; j < tracks; j++ {
			s.Maximum[i][j] = s.Allocation[i][j] + rng.Intn(maxUnits+1)
		}
	}
	s.RecomputeNeed()

	return s, nil
}
