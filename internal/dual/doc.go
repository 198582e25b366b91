// Package dual implements forward-mode automatic differentiation over
// dual numbers.
//
// A [Number] carries a primal value together with a tangent value. The
// four elementary operations propagate both channels, applying the chain
// rule algebraically:
//
//	(a, a′) + (b, b′) = (a+b, a′+b′)
//	(a, a′) − (b, b′) = (a−b, a′−b′)
//	(a, a′) × (b, b′) = (ab, a′b + ab′)
//	(a, a′) ÷ (b, b′) = (a/b, (ba′ − ab′)/b²)
//
// Seeding the input with tangent 1 and constants with tangent 0 makes any
// arithmetic composition compute its own exact derivative alongside its
// value, with no symbolic manipulation and no finite differencing.
//
// Number satisfies the scalar capability set, so the generic root
// iteration runs over duals unchanged; the primal channel performs the
// exact same float64 operation sequence as a plain run and produces
// bit-identical values.
//
// # Example
//
//	y := root.NthRoot(dual.Var(2), 2, 10)
//	fmt.Println(y.Real, y.Tangent) // sqrt(2) and its derivative
package dual
