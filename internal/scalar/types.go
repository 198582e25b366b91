package scalar

import "math"

// Scalar is the capability set a numeric type must provide to run through
// the generic algorithms. FromFloat builds a constant of the same kind as
// the receiver (for a dual number that means zero tangent; for a big float
// it means the receiver's precision), which replaces the implicit
// promotion a dynamically typed language would perform.
type Scalar[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	FromFloat(float64) T
	Float64() float64
}

// Float64 is plain double precision wrapped to satisfy [Scalar].
type Float64 float64

func (f Float64) Add(g Float64) Float64 { return f + g }
func (f Float64) Sub(g Float64) Float64 { return f - g }
func (f Float64) Mul(g Float64) Float64 { return f * g }
func (f Float64) Div(g Float64) Float64 { return f / g }

func (f Float64) FromFloat(v float64) Float64 { return Float64(v) }
func (f Float64) Float64() float64            { return float64(f) }

// IsFinite reports whether v is neither NaN nor infinite. Non-finite
// values are not errors anywhere in the arithmetic; callers use this only
// to label diverged output.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
