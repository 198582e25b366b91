package root

import "errors"

// Domain errors for root computations.
var (
	// ErrNegativeRadicand indicates a negative input to an even-degree root.
	ErrNegativeRadicand = errors.New("root: negative radicand for even-degree root")

	// ErrBadDegree indicates a root degree below 1.
	ErrBadDegree = errors.New("root: degree must be at least 1")

	// ErrBadSteps indicates an iteration count below 1.
	ErrBadSteps = errors.New("root: step count must be at least 1")
)
