// Package scalar defines the arithmetic capability the generic numeric
// algorithms are written against, together with concrete number types
// implementing it:
//
//   - [Scalar]: the four field operations plus conversion to and from float64
//   - [Float64]: plain IEEE double precision
//   - [BigFloat]: arbitrary-precision floats backed by math/big
//
// Any type satisfying [Scalar] can be fed through the root-finding
// iteration unchanged; this is how the same code path serves ordinary
// floats, dual numbers, and high-precision convergence studies.
//
// All implementations are immutable value types: every operation returns
// a fresh value and never modifies an operand.
package scalar
