package scalar

import "math/big"

// BigFloat is an immutable arbitrary-precision float satisfying [Scalar].
// Every operation allocates its result at the receiver's precision, so a
// value threaded through an iteration keeps the precision it was seeded
// with.
type BigFloat struct {
	v *big.Float
}

// NewBigFloat returns v represented with prec mantissa bits.
func NewBigFloat(v float64, prec uint) BigFloat {
	return BigFloat{v: new(big.Float).SetPrec(prec).SetFloat64(v)}
}

func (b BigFloat) newAtPrec() *big.Float {
	return new(big.Float).SetPrec(b.v.Prec())
}

func (b BigFloat) Add(o BigFloat) BigFloat { return BigFloat{v: b.newAtPrec().Add(b.v, o.v)} }
func (b BigFloat) Sub(o BigFloat) BigFloat { return BigFloat{v: b.newAtPrec().Sub(b.v, o.v)} }
func (b BigFloat) Mul(o BigFloat) BigFloat { return BigFloat{v: b.newAtPrec().Mul(b.v, o.v)} }
func (b BigFloat) Div(o BigFloat) BigFloat { return BigFloat{v: b.newAtPrec().Quo(b.v, o.v)} }

func (b BigFloat) FromFloat(v float64) BigFloat {
	return NewBigFloat(v, b.v.Prec())
}

func (b BigFloat) Float64() float64 {
	f, _ := b.v.Float64()
	return f
}

// Prec returns the mantissa width in bits.
func (b BigFloat) Prec() uint { return b.v.Prec() }

// Big exposes the underlying value for high-precision comparisons. The
// returned pointer must not be mutated.
func (b BigFloat) Big() *big.Float { return b.v }

func (b BigFloat) String() string {
	return b.v.Text('g', 20)
}
