package root

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/dualgrad/internal/scalar"
)

func TestSqrtOfTwo(t *testing.T) {
	got, err := NthRootFloat(2, 2, 10)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(got-math.Sqrt2) > 1e-12 {
		t.Errorf("sqrt(2): got %.15f, expected %.15f", got, math.Sqrt2)
	}
}

func TestCubeRootOfTwo(t *testing.T) {
	got, err := NthRootFloat(2, 3, DefaultSteps)
	if err != nil {
		t.Fatal(err)
	}

	want := math.Cbrt(2)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("cbrt(2): got %.15f, expected %.15f", got, want)
	}
}

func TestNthRootSpread(t *testing.T) {
	tests := []struct {
		x      float64
		degree int
		steps  int
	}{
		{0.5, 2, 10},
		{1, 2, 10},
		{math.Pi, 2, 10},
		{100, 2, 15},
		{8, 3, 15},
		{2, 4, 20},
		{-8, 3, 25}, // odd degree admits negative radicands
	}

	for _, tt := range tests {
		got, err := NthRootFloat(tt.x, tt.degree, tt.steps)
		if err != nil {
			t.Fatalf("NthRootFloat(%g, %d, %d): %v", tt.x, tt.degree, tt.steps, err)
		}

		want := math.Copysign(math.Pow(math.Abs(tt.x), 1/float64(tt.degree)), tt.x)
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("root(%g, n=%d): got %.12f, expected %.12f", tt.x, tt.degree, got, want)
		}
	}
}

func TestConvergenceMonotone(t *testing.T) {
	prev := math.Inf(1)
	for steps := 1; steps <= 10; steps++ {
		got, err := NthRootFloat(2, 2, steps)
		if err != nil {
			t.Fatal(err)
		}

		errNow := math.Abs(got - math.Sqrt2)
		if errNow > prev+1e-15 {
			t.Errorf("error grew at steps=%d: %.3e -> %.3e", steps, prev, errNow)
		}
		prev = errNow
	}
}

func TestZeroInputApproximation(t *testing.T) {
	// With a fixed step count the estimate decays geometrically toward
	// zero; it is an approximation, not an error.
	got, err := NthRootFloat(0, 2, 10)
	if err != nil {
		t.Fatal(err)
	}

	if got <= 0 || got > 1e-3 {
		t.Errorf("sqrt(0) after 10 steps: got %g, expected a small positive approximation", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		degree int
		steps  int
		want   error
	}{
		{"negative even root", -2, 2, 10, ErrNegativeRadicand},
		{"negative quartic root", -1, 4, 10, ErrNegativeRadicand},
		{"zero degree", 2, 0, 10, ErrBadDegree},
		{"zero steps", 2, 2, 0, ErrBadSteps},
		{"negative odd root ok", -8, 3, 10, nil},
		{"happy path", 2, 2, 10, nil},
	}

	for _, tt := range tests {
		err := Validate(tt.x, tt.degree, tt.steps)
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: got %v, expected %v", tt.name, err, tt.want)
		}
	}
}

func TestObserverSeesEveryStep(t *testing.T) {
	var tr Trace[scalar.Float64]
	NthRoot(scalar.Float64(2), 2, 7, tr.Observer())

	if tr.Len() != 7 {
		t.Fatalf("trace length: got %d, expected 7", tr.Len())
	}

	final := tr.Estimates[len(tr.Estimates)-1].Float64()
	direct, _ := NthRootFloat(2, 2, 7)
	if final != direct {
		t.Errorf("last observed estimate %v differs from returned value %v", final, direct)
	}
}

func TestBigFloatInstantiation(t *testing.T) {
	est := NthRoot(scalar.NewBigFloat(2, 256), 2, 30)

	if math.Abs(est.Float64()-math.Sqrt2) > 1e-15 {
		t.Errorf("big-float sqrt(2): got %.15f, expected %.15f", est.Float64(), math.Sqrt2)
	}
	if est.Prec() != 256 {
		t.Errorf("result precision: got %d, expected 256", est.Prec())
	}
}
