package dual

import "fmt"

// Number is a dual number: a primal value and the derivative of that
// value with respect to the seeded independent variable. It is an
// immutable value type; operations return new values and never mutate
// an operand.
type Number struct {
	Real    float64
	Tangent float64
}

// New returns the dual number (real, tangent).
func New(real, tangent float64) Number {
	return Number{Real: real, Tangent: tangent}
}

// FromReal promotes a plain number to a constant dual (zero tangent).
// Mixed real/dual arithmetic goes through this explicitly; there is no
// implicit coercion.
func FromReal(v float64) Number {
	return Number{Real: v}
}

// Var seeds an independent variable: tangent 1, so derivatives are taken
// with respect to it.
func Var(v float64) Number {
	return Number{Real: v, Tangent: 1}
}

func (x Number) Add(y Number) Number {
	return Number{Real: x.Real + y.Real, Tangent: x.Tangent + y.Tangent}
}

func (x Number) Sub(y Number) Number {
	return Number{Real: x.Real - y.Real, Tangent: x.Tangent - y.Tangent}
}

// Mul applies the product rule to the tangent channel.
func (x Number) Mul(y Number) Number {
	return Number{
		Real:    x.Real * y.Real,
		Tangent: x.Tangent*y.Real + x.Real*y.Tangent,
	}
}

// Div applies the quotient rule. A zero divisor yields ±Inf/NaN per IEEE
// division; it is not a distinct error.
func (x Number) Div(y Number) Number {
	return Number{
		Real:    x.Real / y.Real,
		Tangent: (y.Real*x.Tangent - x.Real*y.Tangent) / (y.Real * y.Real),
	}
}

// Neg returns -x.
func (x Number) Neg() Number {
	return Number{Real: -x.Real, Tangent: -x.Tangent}
}

// Scale returns x multiplied by the constant c.
func (x Number) Scale(c float64) Number {
	return Number{Real: c * x.Real, Tangent: c * x.Tangent}
}

// FromFloat satisfies the scalar capability: constants carry zero tangent.
func (x Number) FromFloat(v float64) Number { return FromReal(v) }

// Float64 returns the primal channel.
func (x Number) Float64() float64 { return x.Real }

// String renders the value as (a+bϵ) for diagnostics; it plays no part
// in the arithmetic.
func (x Number) String() string {
	return fmt.Sprintf("(%g%+gϵ)", x.Real, x.Tangent)
}
