// Package banker implements deadlock avoidance for a raillock core.State:
// the Banker's safety algorithm and the request protocol built on it.
//
// What:
//
//   - IsSafe: proves (or refutes) that some completion ordering exists in
//     which every train's outstanding Need can eventually be satisfied
//     using only units released by trains that finish before it. Returns
//     the discovered safe sequence of train indices.
//   - Request: the full Banker's request protocol — validate the request
//     against Need and Available, tentatively commit it, verify safety on
//     the mutated state, and roll back the exact inverse delta when the
//     resulting state is unsafe.
//
// Why:
//
//   - Avoidance beats recovery: a request that would make deadlock
//     reachable is denied before any train blocks, so the system never
//     has to pick a victim.
//   - The safe sequence doubles as a scheduling certificate the caller
//     can replay or display.
//
// Determinism: the safety scan always restarts from train index 0 after a
// grant, so ties break toward the lowest runnable index and the returned
// sequence is reproducible for identical states.
//
// Complexity:
//
//   - IsSafe:  O(n²·m) time, O(n+m) memory (working copy + finish flags)
//   - Request: O(n²·m) time (dominated by the safety check), O(n+m) memory
//
// Errors:
//
//   - core.ErrTrainIndex    - train index out of range
//   - ErrDimensionMismatch  - request vector length ≠ number of tracks
//   - ErrExceedsNeed        - request exceeds the train's declared Need
//   - ErrExceedsAvailable   - request exceeds current free supply
//   - ErrUnsafe             - granting would make the state unsafe
package banker
