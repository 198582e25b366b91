package root

import (
	"fmt"

	"github.com/san-kum/dualgrad/internal/scalar"
)

// Default iteration parameters.
const (
	DefaultDegree = 2
	DefaultSteps  = 10
)

// Observer is called after every update with the step number (1-based)
// and the new estimate. Observers drive traces and live views.
type Observer[T any] func(step int, estimate T)

// NthRoot computes the degree-th root of x by fixed-point iteration,
// running exactly steps updates from the seed (1+x)/degree. It performs
// no domain checks; see [NthRootFloat] for the validated entry point.
func NthRoot[T scalar.Scalar[T]](x T, degree, steps int, observers ...Observer[T]) T {
	n := x.FromFloat(float64(degree))
	one := x.FromFloat(1)

	t := one.Add(x).Div(n)
	for i := 0; i < steps; i++ {
		t = t.Add(x.Div(ipow(t, degree-1)).Sub(t).Div(n))
		for _, obs := range observers {
			obs(i+1, t)
		}
	}
	return t
}

// Sqrt is NthRoot with degree 2.
func Sqrt[T scalar.Scalar[T]](x T, steps int, observers ...Observer[T]) T {
	return NthRoot(x, 2, steps, observers...)
}

// ipow raises t to a non-negative integer power by repeated
// multiplication, so the tangent channel of a dual operand sees the
// product rule applied exactly as the primal sequence implies.
func ipow[T scalar.Scalar[T]](t T, k int) T {
	p := t.FromFloat(1)
	for i := 0; i < k; i++ {
		p = p.Mul(t)
	}
	return p
}

// Validate checks the float64-facing domain: even-degree roots of
// negative numbers are rejected rather than silently producing NaN.
func Validate(x float64, degree, steps int) error {
	if degree < 1 {
		return fmt.Errorf("%w: got %d", ErrBadDegree, degree)
	}
	if steps < 1 {
		return fmt.Errorf("%w: got %d", ErrBadSteps, steps)
	}
	if x < 0 && degree%2 == 0 {
		return fmt.Errorf("%w: x=%g, degree=%d", ErrNegativeRadicand, x, degree)
	}
	return nil
}

// NthRootFloat validates the domain and runs the iteration over plain
// float64 arithmetic.
func NthRootFloat(x float64, degree, steps int) (float64, error) {
	if err := Validate(x, degree, steps); err != nil {
		return 0, err
	}
	return NthRoot(scalar.Float64(x), degree, steps).Float64(), nil
}
