// Package root computes n-th roots by fixed-point iteration, written
// generically over any type satisfying the scalar capability set.
//
// The update rule is
//
//	t ← t + (x/t^(n−1) − t)/n
//
// which for n = 2 reduces to the classical Babylonian step
// t ← (t + x/t)/2. The iteration runs a fixed number of steps with no
// early exit; the default count is ample for double precision on
// moderate inputs.
//
// Because [NthRoot] is generic, the identical code path serves plain
// floats, dual numbers (which then compute the derivative of the root as
// a side effect of the same arithmetic), and arbitrary-precision floats
// (used by the precision study).
//
// Errors:
//
//   - [ErrNegativeRadicand]: negative input to an even-degree root.
//   - [ErrBadDegree]: degree below 1.
//   - [ErrBadSteps]: step count below 1.
//
// Domain validation happens only in the float64-facing entry points; the
// generic loop itself is unchecked so every instantiation shares one
// arithmetic sequence.
package root
