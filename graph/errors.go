package graph

import "errors"

var (
	// ErrUnavailable indicates the graph store could not be reached.
	// Consumers treat this as a signal to degrade, never as a failure.
	ErrUnavailable = errors.New("graph store unavailable")

	// ErrNoStore indicates a constructor was called without a store.
	ErrNoStore = errors.New("graph store required")
)
