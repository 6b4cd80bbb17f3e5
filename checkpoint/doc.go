// Package checkpoint provides a fixed-capacity store of labeled, single-use
// snapshots of a raillock core.State, making any mutating operation
// reversible.
//
// What:
//
//   - Store: a bounded collection of slots, each empty or holding one deep
//     copy of a State plus a free-text label.
//   - Save: copies the live state into the first empty slot and returns
//     the slot id, or ErrNoFreeSlot when the store is full.
//   - Restore: overwrites the live state with a slot's copy and frees the
//     slot — a checkpoint is consumed by its restore and cannot be
//     replayed without being re-saved.
//   - Slots: enumerates occupied slots for display.
//
// Ownership: the store exclusively owns every snapshot it holds. Save
// clones the state on the way in and Restore copies on the way out, so the
// live state and the slots never share backing storage.
//
// Why:
//
//   - Termination and preemption are unconditional and may wreck the
//     state; bracketing them with Save gives the front-end a one-shot
//     undo without any persistence machinery.
//
// Complexity: O(n·m) per Save/Restore (deep copy), O(capacity) memory
// slots.
//
// Errors:
//
//   - ErrInvalidCapacity - capacity outside [1, MaxSlots] at construction
//   - ErrNoFreeSlot      - Save found every slot occupied
//   - ErrInvalidSlot     - Restore hit an out-of-range or empty slot
package checkpoint
