package dual

import "math"

// Inv returns 1/x.
func Inv(x Number) Number {
	return Number{
		Real:    1 / x.Real,
		Tangent: -x.Tangent / (x.Real * x.Real),
	}
}

// Abs returns the absolute value of x. The tangent flips sign with the
// primal; Abs is not differentiable at zero, where the tangent is passed
// through unchanged.
func Abs(x Number) Number {
	if x.Real < 0 {
		return x.Neg()
	}
	return x
}

// PowReal returns x**p for a constant real exponent.
func PowReal(x Number, p float64) Number {
	deriv := p * math.Pow(x.Real, p-1)
	return Number{
		Real:    math.Pow(x.Real, p),
		Tangent: deriv * x.Tangent,
	}
}

// Sqrt returns the square root of x.
//
// Special cases are:
//
//	Sqrt(0) = (0, +Infϵ)
//	Sqrt(x < 0) = (NaN, NaNϵ)
func Sqrt(x Number) Number {
	if x.Real <= 0 {
		if x.Real == 0 {
			return Number{Real: x.Real, Tangent: math.Inf(1)}
		}
		return Number{Real: math.NaN(), Tangent: math.NaN()}
	}
	return PowReal(x, 0.5)
}

// Exp returns e**x.
func Exp(x Number) Number {
	e := math.Exp(x.Real)
	return Number{Real: e, Tangent: e * x.Tangent}
}

// Log returns the natural logarithm of x.
func Log(x Number) Number {
	return Number{Real: math.Log(x.Real), Tangent: x.Tangent / x.Real}
}
