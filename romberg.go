package curvemath

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// MaxRombergOrder is the largest order accepted by [Romberg]. An order n
// evaluates the integrand 2ⁿ⁻¹ + 1 times.
const MaxRombergOrder = 24

// Differentiable is a curve over [0, 1] whose derivative can be evaluated.
type Differentiable interface {
	Deriv(t float64) Vec2
}

// Romberg integrates f over [a, b] using Romberg's method, which applies
// Richardson extrapolation to successively refined trapezoid rule estimates.
// The result is exact for polynomials of degree less than 2·order.
//
// The order must be in the range (2, MaxRombergOrder]; other values cause a
// panic. No heap allocations are made beyond what f does.
func Romberg[T constraints.Float](a, b T, order int, f func(T) T) T {
	if order <= 2 || order > MaxRombergOrder {
		panic(fmt.Sprintf("Romberg order %d out of range (2, %d]", order, MaxRombergOrder))
	}
	var rom [2][MaxRombergOrder]T
	h := b - a

	rom[0][0] = 0.5 * h * (f(a) + f(b))
	for i0, p0 := 2, 1; i0 <= order; i0, p0, h = i0+1, p0*2, h*0.5 {
		// Trapezoid rule over the midpoints of the previous subdivision.
		var sum T
		for i1 := 1; i1 <= p0; i1++ {
			sum += f(a + h*(T(i1)-0.5))
		}

		// Richardson extrapolation.
		rom[1][0] = 0.5 * (rom[0][0] + h*sum)
		p2 := T(4)
		for i2 := 1; i2 < i0; i2++ {
			rom[1][i2] = (p2*rom[1][i2-1] - rom[0][i2-1]) / (p2 - 1)
			p2 *= 4
		}
		rom[0] = rom[1]
	}
	return rom[0][order-1]
}

// RombergArclen approximates the arc length of c over [0, 1] by integrating
// its speed with [Romberg].
func RombergArclen(c Differentiable, order int) float64 {
	return Romberg(0, 1, order, func(t float64) float64 {
		return c.Deriv(t).Hypot()
	})
}
