// Package recovery implements the corrective half of deadlock handling:
// once a cycle has been diagnosed, a victim train gives up some or all of
// its track sections so the rest of the system can move again.
//
// What:
//
//   - Terminate: releases every unit the train holds back to the free
//     supply, zeroes its Maximum/Allocation/Need rows, and renames it to
//     the inert RemovedName placeholder. The slot and index stay
//     allocated; a terminated train never comes back.
//   - Preempt: takes back a per-track number of units, clamped to
//     [0, Allocation], returns them to the free supply, and recomputes
//     Need so the train may legitimately re-request them later.
//
// Why:
//
//   - Both operations are deliberately unconditional: they never consult
//     the safety checker, because they are the response to a deadlock the
//     avoidance layer could not (or was not asked to) prevent. They can
//     themselves create or resolve unsafe states; bracketing them with a
//     checkpoint is the caller's job.
//
// Complexity: O(m) for Terminate, O(n·m) for Preempt (Need recompute).
//
// Errors:
//
//   - core.ErrTrainIndex   - train index out of range
//   - ErrDimensionMismatch - preemption vector length ≠ track count
package recovery
