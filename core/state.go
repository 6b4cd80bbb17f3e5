package core

import "fmt"

// New constructs a State for the given number of trains and track sections.
// All matrices are zero-initialized and trains/tracks receive default
// display names ("Train0", "Track0", ...), after which opts are applied.
// Returns ErrInvalidSize when either count falls outside
// [1, MaxTrains] × [1, MaxTracks].
// Complexity: O(n·m) time and memory.
func New(trains, tracks int, opts ...Option) (*State, error) {
	// Validate requested dimensions against the hard capacity limits.
	if trains < 1 || trains > MaxTrains || tracks < 1 || tracks > MaxTracks {
		return nil, fmt.Errorf("core: New(%d,%d): %w", trains, tracks, ErrInvalidSize)
	}

	s := &State{
		TrainNames: make([]string, trains),
		TrackNames: make([]string, tracks),
		Available:  make([]int, tracks),
		Maximum:    newMatrix(trains, tracks),
		Allocation: newMatrix(trains, tracks),
		Need:       newMatrix(trains, tracks),
	}

	// Assign default display names; options may override them below.
	for i := 0; i < trains; i++ {
		s.TrainNames[i] = fmt.Sprintf("Train%d", i)
	}
	for j := 0; j < tracks; j++ {
		s.TrackNames[j] = fmt.Sprintf("Track%d", j)
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// newMatrix allocates a zeroed rows×cols integer matrix.
func newMatrix(rows, cols int) [][]int {
	m := make([][]int, rows)
	for i := range m {
		m[i] = make([]int, cols)
	}

	return m
}

// Trains returns the number of trains in the system.
func (s *State) Trains() int {
	return len(s.Maximum)
}

// Tracks returns the number of track sections in the system.
func (s *State) Tracks() int {
	return len(s.Available)
}

// CheckTrain validates a train index, returning ErrTrainIndex when it falls
// outside [0, Trains).
func (s *State) CheckTrain(train int) error {
	if train < 0 || train >= s.Trains() {
		return fmt.Errorf("core: train %d: %w", train, ErrTrainIndex)
	}

	return nil
}

// CheckTrack validates a track index, returning ErrTrackIndex when it falls
// outside [0, Tracks).
func (s *State) CheckTrack(track int) error {
	if track < 0 || track >= s.Tracks() {
		return fmt.Errorf("core: track %d: %w", track, ErrTrackIndex)
	}

	return nil
}

// RecomputeNeed rebuilds every Need entry from Maximum and Allocation.
// It is idempotent and must be called after any direct edit of Maximum or
// Allocation performed outside the banker/recovery mutation paths.
// Complexity: O(n·m).
func (s *State) RecomputeNeed() {
	for i := range s.Need {
		for j := range s.Need[i] {
			s.Need[i][j] = s.Maximum[i][j] - s.Allocation[i][j]
		}
	}
}

// Clone returns a deep copy of the State. The copy shares no backing
// storage with the receiver, so mutating one never affects the other.
// Complexity: O(n·m) time and memory.
func (s *State) Clone() *State {
	c := &State{
		TrainNames: append([]string(nil), s.TrainNames...),
		TrackNames: append([]string(nil), s.TrackNames...),
		Available:  append([]int(nil), s.Available...),
		Maximum:    cloneMatrix(s.Maximum),
		Allocation: cloneMatrix(s.Allocation),
		Need:       cloneMatrix(s.Need),
	}

	return c
}

// CopyFrom overwrites the receiver with a deep copy of src, reusing no
// storage from src. It is the restore half of the checkpoint round-trip.
func (s *State) CopyFrom(src *State) {
	s.TrainNames = append(s.TrainNames[:0], src.TrainNames...)
	s.TrackNames = append(s.TrackNames[:0], src.TrackNames...)
	s.Available = append(s.Available[:0], src.Available...)
	s.Maximum = cloneMatrix(src.Maximum)
	s.Allocation = cloneMatrix(src.Allocation)
	s.Need = cloneMatrix(src.Need)
}

// cloneMatrix deep-copies a rectangular integer matrix.
func cloneMatrix(m [][]int) [][]int {
	c := make([][]int, len(m))
	for i := range m {
		c[i] = append([]int(nil), m[i]...)
	}

	return c
}

// Equal reports whether two states are field-by-field identical: same
// dimensions, same names, and same matrix contents. Used by tests and by
// callers that must verify an exact rollback.
// Complexity: O(n·m).
func (s *State) Equal(o *State) bool {
	if o == nil {
		return false
	}
	if !equalStrings(s.TrainNames, o.TrainNames) || !equalStrings(s.TrackNames, o.TrackNames) {
		return false
	}
	if !equalInts(s.Available, o.Available) {
		return false
	}

	return equalMatrix(s.Maximum, o.Maximum) &&
		equalMatrix(s.Allocation, o.Allocation) &&
		equalMatrix(s.Need, o.Need)
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func equalMatrix(a, b [][]int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalInts(a[i], b[i]) {
			return false
		}
	}

	return true
}
