package analysis

import (
	"math/big"

	"github.com/san-kum/dualgrad/internal/root"
	"github.com/san-kum/dualgrad/internal/scalar"
)

// PrecisionPoint is the result of one precision level in a sweep.
type PrecisionPoint struct {
	Bits     uint
	Value    float64
	AbsError float64
}

// refGuardBits is the extra mantissa width the reference run carries
// beyond the widest precision under test.
const refGuardBits = 64

// PrecisionSweep runs the same iteration over big floats at each
// mantissa width and measures the error against a reference computed at
// a comfortably higher precision with extra steps. The point of the
// study is that the algorithm itself never changes: only the scalar
// type does.
func PrecisionSweep(x float64, degree, steps int, bits []uint) ([]PrecisionPoint, error) {
	if err := root.Validate(x, degree, steps); err != nil {
		return nil, err
	}
	if len(bits) == 0 {
		return nil, nil
	}

	maxBits := bits[0]
	for _, b := range bits {
		if b > maxBits {
			maxBits = b
		}
	}

	refPrec := maxBits + refGuardBits
	ref := root.NthRoot(scalar.NewBigFloat(x, refPrec), degree, steps*4).Big()

	points := make([]PrecisionPoint, 0, len(bits))
	for _, b := range bits {
		est := root.NthRoot(scalar.NewBigFloat(x, b), degree, steps)

		diff := new(big.Float).SetPrec(refPrec).Sub(est.Big(), ref)
		diff.Abs(diff)
		absErr, _ := diff.Float64()

		points = append(points, PrecisionPoint{
			Bits:     b,
			Value:    est.Float64(),
			AbsError: absErr,
		})
	}
	return points, nil
}
