// Package analysis studies how the root iteration converges.
//
// [Convergence] records the per-step error of both channels (value and
// derivative) against the closed-form references, and [PrecisionSweep]
// reruns the identical generic iteration over arbitrary-precision floats
// at a range of mantissa widths to show where each precision's error
// floor sits.
package analysis
