package diff

import (
	"github.com/san-kum/dualgrad/internal/dual"
	"github.com/san-kum/dualgrad/internal/root"
)

// Result of a differentiation run at a single point.
type Result struct {
	Value      float64 `json:"value"`
	Derivative float64 `json:"derivative"`
}

// Differentiate evaluates f at x with the tangent channel seeded to 1
// and returns both channels of the result. The value channel performs
// the same float64 operation sequence a plain evaluation of f would,
// so the two agree bit for bit.
func Differentiate(f func(dual.Number) dual.Number, x float64) Result {
	y := f(dual.Var(x))
	return Result{Value: y.Real, Derivative: y.Tangent}
}

// NthRootAt differentiates the generic root iteration at x.
func NthRootAt(x float64, degree, steps int) (Result, error) {
	if err := root.Validate(x, degree, steps); err != nil {
		return Result{}, err
	}
	r := Differentiate(func(z dual.Number) dual.Number {
		return root.NthRoot(z, degree, steps)
	}, x)
	return r, nil
}

// SqrtAt is NthRootAt with degree 2.
func SqrtAt(x float64, steps int) (Result, error) {
	return NthRootAt(x, 2, steps)
}
