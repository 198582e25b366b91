// Package diff drives differentiation runs: it seeds the independent
// variable as a dual number, runs a function over dual arithmetic, and
// extracts the (value, derivative) pair.
//
// Two independent cross-checks live alongside the driver:
//
//   - [ShadowNthRoot]: the same root iteration with the tangent
//     propagated by hand as a second scalar variable, applying the
//     product and quotient rules manually. Dual and shadow results must
//     agree to high tolerance; this is the primary validation of the
//     chain-rule arithmetic.
//   - [FiniteDifference]: a central-difference estimate, used by the
//     comparison tooling as a third, approximate column.
package diff
