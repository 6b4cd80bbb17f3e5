// Package scenario constructs valid raillock core.States: the fixed
// demonstration layout, a randomized generator, and a YAML file loader.
//
// What:
//
//   - Sample: the classic 5-train/5-track demonstration state (trains A–E
//     on sections T0–T4) used throughout the examples and tests.
//   - Random: a stochastic generator producing states that satisfy the
//     core invariants by construction (Allocation ≤ Maximum, Need derived,
//     per-track conservation). Seed explicitly via WithSeed/WithRand for
//     reproducible fixtures; the default seeds from the clock.
//   - Load / Parse: YAML scenario files with names, available units, and
//     the maximum/allocation matrices. The loader validates matrix shape
//     and the state invariants before handing anything to the core, so a
//     file that parses is a file the algorithms can trust.
//
// Why:
//
//   - The core validates indices, not plausibility; scenario constructors
//     are the boundary where untrusted input becomes a trusted State.
//
// Errors:
//
//   - core.ErrInvalidSize  - train/track counts out of range
//   - ErrInvalidUnits      - non-positive units-per-track bound for Random
//   - ErrBadShape          - ragged or mis-sized YAML matrices
//   - ErrNegativeEntry     - negative units anywhere in a YAML scenario
//   - ErrAllocOverMax      - allocation above declared maximum in YAML
package scenario
