package recovery

import (
	"errors"
	"fmt"

	"github.com/veletrack/raillock/core"
)

// RemovedName marks a terminated train's slot. The slot keeps its index
// but takes no further part in allocation.
const RemovedName = "(REMOVED)"

// ErrDimensionMismatch indicates a preemption vector whose length differs
// from the state's track count.
var ErrDimensionMismatch = errors.New("recovery: preemption length must equal track count")

// Terminate releases 100% of train's holdings back into Available, zeroes
// its Maximum, Allocation, and Need rows, and renames it to RemovedName.
// The train's slot remains allocated and is not reusable as a new train.
// Terminate never consults the safety checker.
func Terminate(s *core.State, train int) error {
	if err := s.CheckTrain(train); err != nil {
		return err
	}

	for j := 0; j < s.Tracks(); j++ {
		s.Available[j] += s.Allocation[train][j]
		s.Allocation[train][j] = 0
		s.Maximum[train][j] = 0
		s.Need[train][j] = 0
	}
	s.TrainNames[train] = RemovedName

	return nil
}

// Preempt takes back take[j] units of each track j from train, clamping
// each entry to [0, Allocation[train][j]]: negative entries take nothing
// and oversized entries take everything the train holds. Reclaimed units
// return to Available and Need is recomputed, so the train may re-request
// them later. Preempt never consults the safety checker.
func Preempt(s *core.State, train int, take []int) error {
	if err := s.CheckTrain(train); err != nil {
		return err
	}
	if len(take) != s.Tracks() {
		return fmt.Errorf("recovery: Preempt(train=%d): got %d entries for %d tracks: %w",
			train, len(take), s.Tracks(), ErrDimensionMismatch)
	}

	for j, units := range take {
		if units < 0 {
			units = 0
		}
		if units > s.Allocation[train][j] {
			units = s.Allocation[train][j]
		}

		s.Allocation[train][j] -= units
		s.Available[j] += units
	}
	s.RecomputeNeed()

	return nil
}
