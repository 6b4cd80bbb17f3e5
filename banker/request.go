package banker

import (
	"fmt"

	"github.com/veletrack/raillock/core"
)

// Request attempts to grant train an additional req units per track using
// the Banker's request protocol. Preconditions are checked in order and
// short-circuit on the first failure, in which case s is untouched:
//
//  1. train must be a valid index (core.ErrTrainIndex) and req must have
//     one entry per track (ErrDimensionMismatch);
//  2. req[j] ≤ Need[train][j] for every track j (ErrExceedsNeed) — a train
//     may never ask beyond its declared ceiling;
//  3. req[j] ≤ Available[j] for every track j (ErrExceedsAvailable).
//
// The request is then committed tentatively and the safety check runs on
// the mutated state. When the state is unsafe the exact inverse delta is
// applied, restoring s field-for-field, and ErrUnsafe is returned. A nil
// return means the grant is final and the state is provably safe.
// Complexity: O(n²·m), dominated by the safety check.
func Request(s *core.State, train int, req []int) error {
	if err := s.CheckTrain(train); err != nil {
		return err
	}
	if len(req) != s.Tracks() {
		return fmt.Errorf("banker: Request(train=%d): got %d entries for %d tracks: %w",
			train, len(req), s.Tracks(), ErrDimensionMismatch)
	}

	// Precondition: request stays within the declared ceiling.
	for j, units := range req {
		if units > s.Need[train][j] {
			return fmt.Errorf("banker: Request(train=%d, track=%d): %d > need %d: %w",
				train, j, units, s.Need[train][j], ErrExceedsNeed)
		}
	}

	// Precondition: request stays within the free supply.
	for j, units := range req {
		if units > s.Available[j] {
			return fmt.Errorf("banker: Request(train=%d, track=%d): %d > available %d: %w",
				train, j, units, s.Available[j], ErrExceedsAvailable)
		}
	}

	// Tentative commit, safety verification, and rollback share one delta
	// helper so the forward and inverse paths cannot drift apart.
	applyDelta(s, train, req, +1)
	if safe, _ := IsSafe(s); !safe {
		applyDelta(s, train, req, -1)

		return fmt.Errorf("banker: Request(train=%d): %w", train, ErrUnsafe)
	}

	return nil
}

// applyDelta moves sign*req units from Available into train's Allocation
// (and out of its Need). sign=+1 commits a request; sign=-1 is its exact
// inverse and undoes it.
func applyDelta(s *core.State, train int, req []int, sign int) {
	for j, units := range req {
		d := sign * units
		s.Available[j] -= d
		s.Allocation[train][j] += d
		s.Need[train][j] -= d
	}
}
