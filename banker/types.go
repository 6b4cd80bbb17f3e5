// Package banker: sentinel errors for the request protocol.
package banker

import "errors"

// Sentinel errors for banker operations. Request reports the first failed
// precondition and guarantees the state is untouched unless it returns nil.
var (
	// ErrDimensionMismatch indicates a request vector whose length differs
	// from the state's track count.
	ErrDimensionMismatch = errors.New("banker: request length must equal track count")

	// ErrExceedsNeed indicates a request above the train's declared
	// outstanding need (Maximum − Allocation).
	ErrExceedsNeed = errors.New("banker: request exceeds declared need")

	// ErrExceedsAvailable indicates a request above the current free supply.
	ErrExceedsAvailable = errors.New("banker: request exceeds available units")

	// ErrUnsafe indicates the request was well-formed but granting it would
	// leave the system without any feasible completion ordering.
	ErrUnsafe = errors.New("banker: request would leave the system unsafe")
)
