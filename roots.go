package curvemath

import (
	"math"
	"slices"
)

// RootsKind classifies the solution set of a polynomial equation.
type RootsKind uint8

const (
	// NoRoots means that no real x satisfies the equation.
	NoRoots RootsKind = iota
	// FiniteRoots means that the equation has between one and three real
	// roots, stored in [Roots.X].
	FiniteRoots
	// AllReals means that every x satisfies the equation, which happens when
	// all coefficients are zero.
	AllReals
)

func (k RootsKind) String() string {
	switch k {
	case NoRoots:
		return "NoRoots"
	case FiniteRoots:
		return "FiniteRoots"
	case AllReals:
		return "AllReals"
	default:
		return "RootsKind(?)"
	}
}

// Roots is the result of solving a polynomial equation of degree three or
// less.
//
// When Kind is [FiniteRoots], X[:N] holds the distinct real roots in ascending
// order. None of them are NaN or infinite. For the other kinds, N is zero.
type Roots struct {
	Kind RootsKind
	N    int
	X    [3]float64
}

// Slice returns the roots as a slice aliasing r.X.
func (r *Roots) Slice() []float64 {
	return r.X[:r.N:r.N]
}

// Len returns the number of roots, which is zero for [NoRoots] and [AllReals].
func (r Roots) Len() int {
	return r.N
}

// Infinite reports whether every x is a solution.
func (r Roots) Infinite() bool {
	return r.Kind == AllReals
}

// push appends x unless it is non-finite. It doesn't sort.
func (r *Roots) push(x float64) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return
	}
	r.X[r.N] = x
	r.N++
	r.Kind = FiniteRoots
}

// normalize sorts the roots and removes exact duplicates.
func (r *Roots) normalize() {
	if r.N == 0 {
		r.Kind = NoRoots
		return
	}
	slices.Sort(r.X[:r.N])
	n := 1
	for i := 1; i < r.N; i++ {
		if r.X[i] != r.X[n-1] {
			r.X[n] = r.X[i]
			n++
		}
	}
	for i := n; i < len(r.X); i++ {
		r.X[i] = 0
	}
	r.N = n
}

// SolveLinear finds the root of a x + b = 0.
//
// If a is zero, the result is [AllReals] when b is also zero and [NoRoots]
// otherwise.
func SolveLinear(a, b float64) Roots {
	if a == 0 {
		if b == 0 {
			return Roots{Kind: AllReals}
		}
		return Roots{Kind: NoRoots}
	}
	var r Roots
	r.push(-b / a)
	r.normalize()
	return r
}

// SolveQuadratic finds the real roots of a x² + b x + c = 0.
//
// If a is zero, the equation is solved as the linear equation b x + c = 0.
//
// The roots of a proper quadratic are computed using the cancellation-free
// form of the quadratic formula: one root is q / a and the other c / q, where
// q = -(b + sign(b) √(b² - 4ac)) / 2. For inputs where b² is much larger than
// 4ac, this is considerably more accurate than [SolveQuadraticNaive].
//
// A double root is reported once.
func SolveQuadratic(a, b, c float64) Roots {
	if a == 0 {
		return SolveLinear(b, c)
	}
	disc := b*b - 4*a*c
	if math.IsInf(disc, 0) {
		// b² or 4ac overflowed. Rescale the equation so that its largest
		// coefficient is one; this doesn't change the roots.
		s := max(math.Abs(a), math.Abs(b), math.Abs(c))
		a, b, c = a/s, b/s, c/s
		if a == 0 {
			// a underflowed; the quadratic term is negligible.
			return SolveLinear(b, c)
		}
		disc = b*b - 4*a*c
	}

	var r Roots
	switch {
	case disc < 0:
		return Roots{Kind: NoRoots}
	case disc == 0:
		r.push(-b / (2 * a))
	default:
		// See https://math.stackexchange.com/questions/866331
		//
		// q can't be zero here: that would require b == 0 and disc == 0.
		q := -0.5 * (b + math.Copysign(math.Sqrt(disc), b))
		r.push(q / a)
		r.push(c / q)
	}
	r.normalize()
	return r
}

// SolveQuadraticNaive finds the real roots of a x² + b x + c = 0 using the
// textbook quadratic formula.
//
// The result is bit-compatible with a literal (-b ± √(b² - 4ac)) / 2a
// evaluation. It suffers from catastrophic cancellation when b² is much larger
// than 4ac; prefer [SolveQuadratic] unless bit-compatibility is required.
func SolveQuadraticNaive(a, b, c float64) Roots {
	if a == 0 {
		return SolveLinear(b, c)
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return Roots{Kind: NoRoots}
	}
	var r Roots
	if disc == 0 {
		r.push(-b / (2 * a))
		r.normalize()
		return r
	}
	srad := math.Sqrt(disc)
	x0 := (-b - srad) / (2 * a)
	x1 := (-b + srad) / (2 * a)
	if a < 0 {
		x0, x1 = x1, x0
	}
	r.push(x0)
	r.push(x1)
	r.normalize()
	return r
}

// SolveCubic finds the real roots of a x³ + b x² + c x + d = 0.
//
// If a is zero, or so small relative to the other coefficients that dividing
// by it overflows, the equation is solved as a quadratic.
//
// See: https://momentsingraphics.de/CubicRoots.html
//
// That implementation is in turn based on Jim Blinn's "How to Solve a Cubic
// Equation", which is masterful.
//
// Repeated roots are reported once, so a triple root yields a single value
// and a double root yields two values.
func SolveCubic(a, b, c, d float64) Roots {
	if a == 0 {
		return SolveQuadratic(b, c, d)
	}
	aRecip := 1.0 / a
	c2 := b * (1.0 / 3.0 * aRecip)
	c1 := c * (1.0 / 3.0 * aRecip)
	c0 := d * aRecip
	if math.IsInf(c0, 0) || math.IsInf(c1, 0) || math.IsInf(c2, 0) {
		// cubic coefficient is nearly zero.
		return SolveQuadratic(b, c, d)
	}
	// (d0, d1, d2) is called "Delta" in article
	d0 := math.FMA(-c2, c2, c1)
	d1 := math.FMA(-c1, c2, c0)
	d2 := c2*c0 - c1*c1
	// disc is called "Discriminant"
	disc := 4.0*d0*d2 - d1*d1
	// de is called "Depressed.x", Depressed.y = d0
	de := math.FMA(-2.0*c2, d0, d1)
	// TODO: handle the cases where these intermediate results overflow. For
	// now, the non-finite roots they produce are discarded by push.

	var r Roots
	switch {
	case disc < 0.0:
		sq := math.Sqrt(-0.25 * disc)
		rr := -0.5 * de
		t1 := math.Cbrt(rr+sq) + math.Cbrt(rr-sq)
		r.push(t1 - c2)
	case disc == 0.0:
		t1 := math.Copysign(math.Sqrt(max(-d0, 0)), de)
		r.push(t1 - c2)
		r.push(-2.0*t1 - c2)
	default:
		th := math.Atan2(math.Sqrt(disc), -de) * (1.0 / 3.0)
		// (thCos, thSin) is called "CubicRoot"
		thSin, thCos := math.Sincos(th)
		// (r0, r1, r2) is called "Root"
		r0 := thCos
		ss3 := thSin * math.Sqrt(3.0)
		r1 := 0.5 * (-thCos + ss3)
		r2 := 0.5 * (-thCos - ss3)
		t := 2.0 * math.Sqrt(-d0)

		r.push(math.FMA(t, r0, -c2))
		r.push(math.FMA(t, r1, -c2))
		r.push(math.FMA(t, r2, -c2))
	}
	r.normalize()
	return r
}
