// Package core defines the resource-allocation state shared by every
// raillock algorithm: which trains exist, which track sections exist, and
// the matrices the Banker's and wait-for-graph algorithms operate on.
//
// What:
//
//   - State: trains × tracks bookkeeping with the classic Banker's
//     matrices — Available, Maximum, Allocation, and the derived Need
//     (always Maximum − Allocation).
//   - New: validated construction with zero-initialized matrices and
//     default display names.
//   - RecomputeNeed: restores the Need invariant after direct matrix
//     edits (scenario loaders, manual setups).
//   - Clone / CopyFrom: deep copies for checkpoints and speculative
//     working sets.
//   - Equal: field-by-field comparison, used to verify exact rollback.
//
// Why:
//
//   - A single owned state object replaces process-global matrices, so
//     checkpointing, speculative mutation, and rollback have clear
//     ownership semantics.
//   - Every algorithm package (banker, wfg, recovery) reads or mutates
//     this one type; keeping it dependency-free keeps them composable.
//
// Invariants (maintained by the controlled mutation paths, restorable
// via RecomputeNeed after direct edits):
//
//   - Need[i][j] == Maximum[i][j] − Allocation[i][j]
//   - 0 ≤ Allocation[i][j] ≤ Maximum[i][j]
//   - Available[j] + Σ_i Allocation[i][j] is conserved per track section
//
// Complexity:
//
//   - New:           O(n·m) time and memory
//   - RecomputeNeed: O(n·m)
//   - Clone / Equal: O(n·m)
//
// Errors:
//
//   - ErrInvalidSize - train or track count outside [1, MaxTrains|MaxTracks]
//   - ErrTrainIndex  - train index out of range
//   - ErrTrackIndex  - track index out of range
package core
