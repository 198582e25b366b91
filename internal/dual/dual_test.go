package dual_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/dualgrad/internal/dual"
)

var _ = Describe("Number", func() {
	Describe("elementary operations", func() {
		x := dual.New(3, 2)
		y := dual.New(5, 7)

		It("adds both channels", func() {
			z := x.Add(y)
			Expect(z.Real).To(Equal(8.0))
			Expect(z.Tangent).To(Equal(9.0))
		})

		It("subtracts both channels", func() {
			z := x.Sub(y)
			Expect(z.Real).To(Equal(-2.0))
			Expect(z.Tangent).To(Equal(-5.0))
		})

		It("multiplies with the product rule", func() {
			z := x.Mul(y)
			Expect(z.Real).To(Equal(15.0))
			// a'b + ab' = 2*5 + 3*7
			Expect(z.Tangent).To(Equal(31.0))
		})

		It("divides with the quotient rule", func() {
			z := x.Div(y)
			Expect(z.Real).To(Equal(0.6))
			// (ba' - ab')/b² = (5*2 - 3*7)/25
			Expect(z.Tangent).To(Equal(-11.0 / 25.0))
		})
	})

	Describe("promotion", func() {
		It("treats plain reals as zero-tangent constants", func() {
			c := dual.FromReal(4)
			Expect(c.Real).To(Equal(4.0))
			Expect(c.Tangent).To(BeZero())
		})

		It("seeds variables with tangent one", func() {
			v := dual.Var(4)
			Expect(v.Tangent).To(Equal(1.0))
		})

		It("leaves constants inert under the chain rule", func() {
			// d/dx (x * 3) = 3
			z := dual.Var(5).Mul(dual.FromReal(3))
			Expect(z.Real).To(Equal(15.0))
			Expect(z.Tangent).To(Equal(3.0))
		})
	})

	Describe("composition", func() {
		It("differentiates x² + 1/x through pure arithmetic", func() {
			x := dual.Var(2)
			z := x.Mul(x).Add(dual.FromReal(1).Div(x))
			Expect(z.Real).To(BeNumerically("~", 4.5, 1e-15))
			// d/dx = 2x - 1/x² = 4 - 0.25
			Expect(z.Tangent).To(BeNumerically("~", 3.75, 1e-15))
		})

		It("never mutates operands", func() {
			x := dual.Var(2)
			_ = x.Mul(x).Add(x)
			Expect(x).To(Equal(dual.Var(2)))
		})
	})

	Describe("IEEE semantics", func() {
		It("propagates division by zero as Inf, not an error", func() {
			z := dual.New(1, 1).Div(dual.FromReal(0))
			Expect(math.IsInf(z.Real, 1)).To(BeTrue())
		})

		It("propagates NaN through arithmetic", func() {
			z := dual.New(math.NaN(), 1).Add(dual.FromReal(1))
			Expect(math.IsNaN(z.Real)).To(BeTrue())
		})
	})

	Describe("elementary functions", func() {
		It("computes Sqrt with its derivative", func() {
			z := dual.Sqrt(dual.Var(2))
			Expect(z.Real).To(BeNumerically("~", math.Sqrt2, 1e-15))
			Expect(z.Tangent).To(BeNumerically("~", 0.5/math.Sqrt2, 1e-15))
		})

		It("returns (0, +Infϵ) for Sqrt(0)", func() {
			z := dual.Sqrt(dual.Var(0))
			Expect(z.Real).To(BeZero())
			Expect(math.IsInf(z.Tangent, 1)).To(BeTrue())
		})

		It("returns NaN for Sqrt of a negative", func() {
			z := dual.Sqrt(dual.Var(-1))
			Expect(math.IsNaN(z.Real)).To(BeTrue())
			Expect(math.IsNaN(z.Tangent)).To(BeTrue())
		})

		It("computes Exp with tangent e^x·x′", func() {
			z := dual.Exp(dual.New(1, 2))
			Expect(z.Real).To(BeNumerically("~", math.E, 1e-15))
			Expect(z.Tangent).To(BeNumerically("~", 2*math.E, 1e-14))
		})

		It("inverts via Inv with tangent -x′/x²", func() {
			z := dual.Inv(dual.Var(4))
			Expect(z.Real).To(Equal(0.25))
			Expect(z.Tangent).To(Equal(-1.0 / 16.0))
		})
	})

	It("prints as (a+bϵ)", func() {
		Expect(dual.New(1.5, -2).String()).To(Equal("(1.5-2ϵ)"))
	})
})
