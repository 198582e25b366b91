package analysis

import (
	"math"

	"github.com/san-kum/dualgrad/internal/dual"
	"github.com/san-kum/dualgrad/internal/root"
)

// TrueRoot returns the closed-form degree-th root of x.
func TrueRoot(x float64, degree int) float64 {
	return math.Pow(x, 1/float64(degree))
}

// TrueDerivative returns the closed-form derivative of the degree-th
// root at x: x^(1/n − 1)/n. For degree 2 this is 0.5/sqrt(x).
func TrueDerivative(x float64, degree int) float64 {
	n := float64(degree)
	return math.Pow(x, 1/n-1) / n
}

// ConvergencePoint records the state of one iteration step.
type ConvergencePoint struct {
	Step       int
	Value      float64
	Tangent    float64
	ValueErr   float64
	TangentErr float64
}

// Convergence runs the dual-number iteration at x and reports the
// absolute error of both channels after each step.
func Convergence(x float64, degree, maxSteps int) ([]ConvergencePoint, error) {
	if err := root.Validate(x, degree, maxSteps); err != nil {
		return nil, err
	}

	wantV := TrueRoot(x, degree)
	wantD := TrueDerivative(x, degree)

	var tr root.Trace[dual.Number]
	root.NthRoot(dual.Var(x), degree, maxSteps, tr.Observer())

	points := make([]ConvergencePoint, 0, tr.Len())
	for i, est := range tr.Estimates {
		points = append(points, ConvergencePoint{
			Step:       i + 1,
			Value:      est.Real,
			Tangent:    est.Tangent,
			ValueErr:   math.Abs(est.Real - wantV),
			TangentErr: math.Abs(est.Tangent - wantD),
		})
	}
	return points, nil
}
