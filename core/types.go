// Package core: type declarations, capacity limits, sentinel errors, and
// functional options for State construction.
package core

import "errors"

// Capacity limits for State construction. They bound the matrix sizes the
// algorithms may be asked to handle; New rejects anything outside them.
const (
	// MaxTrains is the largest number of trains a State may hold.
	MaxTrains = 32
	// MaxTracks is the largest number of track sections a State may hold.
	MaxTracks = 64
)

// Sentinel errors for core state operations.
var (
	// ErrInvalidSize indicates a train or track count outside [1, MaxTrains|MaxTracks].
	ErrInvalidSize = errors.New("core: train/track counts must be within [1, MaxTrains] and [1, MaxTracks]")

	// ErrTrainIndex indicates a train index outside [0, Trains).
	ErrTrainIndex = errors.New("core: train index out of range")

	// ErrTrackIndex indicates a track index outside [0, Tracks).
	ErrTrackIndex = errors.New("core: track index out of range")
)

// State holds the full resource-allocation picture for one railway system:
// n trains competing for m track sections, each section allocatable in
// integer units.
//
// The fields are exported so scenario constructors can populate them
// directly; any such direct edit must be followed by RecomputeNeed to
// restore the Need invariant. The controlled mutation paths (banker,
// recovery, checkpoint) maintain the invariant themselves.
type State struct {
	// TrainNames holds one display name per train. Names are mutable and
	// carry no uniqueness constraint.
	TrainNames []string

	// TrackNames holds one display name per track section.
	TrackNames []string

	// Available[j] is the number of currently free units of track j.
	Available []int

	// Maximum[i][j] is the declared ceiling demand of train i on track j.
	Maximum [][]int

	// Allocation[i][j] is the number of units of track j train i holds.
	Allocation [][]int

	// Need[i][j] is the derived outstanding demand:
	// Maximum[i][j] − Allocation[i][j].
	Need [][]int
}

// Option configures optional State construction behavior.
// Use with New(trains, tracks, opts...).
type Option func(*State)

// WithTrainNames returns an Option that overrides the default train names.
// Extra names are ignored; missing names keep their defaults.
func WithTrainNames(names ...string) Option {
	return func(s *State) {
		for i, name := range names {
			if i >= len(s.TrainNames) {
				break
			}
			if name != "" {
				s.TrainNames[i] = name
			}
		}
	}
}

// WithTrackNames returns an Option that overrides the default track names.
// Extra names are ignored; missing names keep their defaults.
func WithTrackNames(names ...string) Option {
	return func(s *State) {
		for j, name := range names {
			if j >= len(s.TrackNames) {
				break
			}
			if name != "" {
				s.TrackNames[j] = name
			}
		}
	}
}
