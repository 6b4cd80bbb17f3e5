package checkpoint

import (
	"errors"
	"fmt"

	"github.com/veletrack/raillock/core"
)

// MaxSlots bounds the number of checkpoint slots a Store may be built with.
const MaxSlots = 16

// DefaultLabel is used when Save receives an empty label.
const DefaultLabel = "checkpoint"

// Sentinel errors for checkpoint operations.
var (
	// ErrInvalidCapacity indicates a slot count outside [1, MaxSlots].
	ErrInvalidCapacity = errors.New("checkpoint: capacity must be within [1, MaxSlots]")

	// ErrNoFreeSlot indicates Save found no empty slot; the caller must be
	// told rather than silently dropping the snapshot.
	ErrNoFreeSlot = errors.New("checkpoint: no free slot")

	// ErrInvalidSlot indicates a Restore against an out-of-range or empty slot.
	ErrInvalidSlot = errors.New("checkpoint: invalid or empty slot")
)

// slot is one checkpoint cell: a label and an owned deep copy, or empty.
type slot struct {
	label string
	state *core.State // nil when the slot is empty
}

// Slot describes an occupied slot for display purposes.
type Slot struct {
	ID    int
	Label string
}

// Store holds up to a fixed number of labeled state snapshots. The zero
// value is unusable; construct with NewStore.
type Store struct {
	slots []slot
}

// NewStore builds a Store with the given number of slots, all empty.
// Returns ErrInvalidCapacity outside [1, MaxSlots].
func NewStore(capacity int) (*Store, error) {
	if capacity < 1 || capacity > MaxSlots {
		return nil, fmt.Errorf("checkpoint: NewStore(%d): %w", capacity, ErrInvalidCapacity)
	}

	return &Store{slots: make([]slot, capacity)}, nil
}

// Capacity returns the total number of slots, empty or occupied.
func (st *Store) Capacity() int {
	return len(st.slots)
}

// Save deep-copies s into the first empty slot and returns its id. An
// empty label falls back to DefaultLabel. When every slot is occupied the
// snapshot is not stored and ErrNoFreeSlot is returned.
func (st *Store) Save(s *core.State, label string) (int, error) {
	if label == "" {
		label = DefaultLabel
	}

	for id := range st.slots {
		if st.slots[id].state != nil {
			continue
		}

		st.slots[id] = slot{label: label, state: s.Clone()}

		return id, nil
	}

	return -1, ErrNoFreeSlot
}

// Restore overwrites dst with the snapshot held in slot id and frees the
// slot. Restoring consumes the checkpoint: a second Restore of the same
// slot fails with ErrInvalidSlot until something is saved there again.
func (st *Store) Restore(id int, dst *core.State) error {
	if id < 0 || id >= len(st.slots) || st.slots[id].state == nil {
		return fmt.Errorf("checkpoint: Restore(%d): %w", id, ErrInvalidSlot)
	}

	dst.CopyFrom(st.slots[id].state)
	st.slots[id] = slot{}

	return nil
}

// Slots lists every occupied slot in id order.
func (st *Store) Slots() []Slot {
	var out []Slot
	for id := range st.slots {
		if st.slots[id].state != nil {
			out = append(out, Slot{ID: id, Label: st.slots[id].label})
		}
	}

	return out
}
