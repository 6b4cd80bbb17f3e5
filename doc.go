// Package raillock is a deterministic simulator of resource contention on
// a railway: a fixed set of trains competes for multi-unit track sections,
// and the library provides both classic deadlock-handling strategies over
// the same live state.
//
// 🚂 What is raillock?
//
//	A single-threaded, fully reproducible model of a multi-actor resource
//	system, organized as small composable packages:
//		• core/       — the allocation state: Available, Maximum, Allocation, Need
//		• banker/     — avoidance: safety checking and the Banker's request protocol
//		• wfg/        — detection: wait-for graph derivation and cycle search
//		• recovery/   — correction: train termination and track preemption
//		• checkpoint/ — single-use labeled snapshots for undo
//		• scenario/   — sample, random, and YAML scenario constructors
//		• dot/        — Graphviz export of the resource-allocation graph
//
// ✨ Why raillock?
//
//   - Deterministic by construction - identical states yield identical
//     safe sequences, cycles, and allocator decisions
//   - Exact rollback guarantees - a denied request leaves the state
//     bit-for-bit untouched
//   - No real concurrency - trains are a modeling fiction, so every run
//     is replayable and testable
//
// Quick ASCII example (two trains, mutual hold-and-wait):
//
//	T0 ──needs──▶ [track B] ──held by──▶ T1
//	T1 ──needs──▶ [track A] ──held by──▶ T0
//
// wfg.DetectCycle reports the loop; recovery.Terminate or recovery.Preempt
// breaks it; a checkpoint saved beforehand undoes the whole affair.
//
// The interactive front-end lives in cmd/raillock.
package raillock
