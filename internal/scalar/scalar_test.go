package scalar

import (
	"math"
	"testing"
)

func TestFloat64Ops(t *testing.T) {
	a, b := Float64(6), Float64(4)

	if got := a.Add(b); got != 10 {
		t.Errorf("Add: got %v, expected 10", got)
	}
	if got := a.Sub(b); got != 2 {
		t.Errorf("Sub: got %v, expected 2", got)
	}
	if got := a.Mul(b); got != 24 {
		t.Errorf("Mul: got %v, expected 24", got)
	}
	if got := a.Div(b); got != 1.5 {
		t.Errorf("Div: got %v, expected 1.5", got)
	}
	if got := a.FromFloat(7); got != 7 {
		t.Errorf("FromFloat: got %v, expected 7", got)
	}
	if got := a.Float64(); got != 6 {
		t.Errorf("Float64: got %v, expected 6", got)
	}
}

func TestBigFloatPrecisionPreserved(t *testing.T) {
	a := NewBigFloat(2, 128)
	b := a.FromFloat(3)

	if b.Prec() != 128 {
		t.Errorf("FromFloat should keep precision: got %d, expected 128", b.Prec())
	}
	if got := a.Add(b).Prec(); got != 128 {
		t.Errorf("Add result precision: got %d, expected 128", got)
	}
}

func TestBigFloatImmutable(t *testing.T) {
	a := NewBigFloat(2, 64)
	before := a.Float64()

	_ = a.Add(a.FromFloat(5))
	_ = a.Mul(a.FromFloat(3))

	if a.Float64() != before {
		t.Errorf("operations mutated the operand: got %v, expected %v", a.Float64(), before)
	}
}

func TestBigFloatMatchesFloat64AtDoublePrecision(t *testing.T) {
	// 53 mantissa bits with correct rounding reproduces IEEE doubles.
	a := NewBigFloat(1, 53).Add(NewBigFloat(2, 53)).Div(NewBigFloat(3, 53))
	want := (1.0 + 2.0) / 3.0

	if a.Float64() != want {
		t.Errorf("got %v, expected %v", a.Float64(), want)
	}
}

func TestIsFinite(t *testing.T) {
	tests := []struct {
		v        float64
		expected bool
	}{
		{1.5, true},
		{0, true},
		{math.Inf(1), false},
		{math.Inf(-1), false},
		{math.NaN(), false},
	}

	for _, tt := range tests {
		if got := IsFinite(tt.v); got != tt.expected {
			t.Errorf("IsFinite(%v): got %v, expected %v", tt.v, got, tt.expected)
		}
	}
}
