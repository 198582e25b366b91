package diff

// ShadowNthRoot runs the root iteration with the derivative carried as
// an explicit second scalar, applying the product and quotient rules by
// hand at each operation. It shares no code with the dual arithmetic;
// agreement between the two validates the chain-rule overloads.
func ShadowNthRoot(x float64, degree, steps int) Result {
	n := float64(degree)

	t := (1 + x) / n
	dt := 1 / n // d/dx of the seed (1+x)/n

	for i := 0; i < steps; i++ {
		// p = t^(degree-1) by repeated multiplication, product rule in step.
		p, dp := 1.0, 0.0
		for k := 0; k < degree-1; k++ {
			dp = dp*t + p*dt
			p = p * t
		}

		// u = x/p, quotient rule with dx/dx = 1.
		u := x / p
		du := (p - x*dp) / (p * p)

		t = t + (u-t)/n
		dt = dt + (du-dt)/n
	}

	return Result{Value: t, Derivative: dt}
}

// FiniteDifference estimates f'(x) by central differencing with step h.
// It is an approximation with truncation error O(h²); the study tooling
// uses it as a sanity column, never as ground truth.
func FiniteDifference(f func(float64) float64, x, h float64) float64 {
	return (f(x+h) - f(x-h)) / (2 * h)
}
