package curvemath

var _ NearestCurve = CubicBez{}
var _ Differentiable = CubicBez{}

// CubicBez is a cubic Bézier segment.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec2(c.P0).Add(Vec2(c.P1).Mul(2.0)).Add(Vec2(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec2(c.P1).Add(Vec2(c.P2).Mul(2.0)).Add(Vec2(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)
	d := c.Differentiate()
	scale := (t1 - t0) * (1.0 / 3.0)
	p1 := p0.Translate(Vec2(d.Eval(t0)).Mul(scale))
	p2 := p3.Translate(Vec2(d.Eval(t1)).Mul(scale).Negate())
	return CubicBez{p0, p1, p2, p3}
}

// Differentiate returns the derivative of the curve, which is a quadratic
// Bézier.
func (c CubicBez) Differentiate() QuadBez {
	return QuadBez{
		Point(c.P1.Sub(c.P0).Mul(3)),
		Point(c.P2.Sub(c.P1).Mul(3)),
		Point(c.P3.Sub(c.P2).Mul(3)),
	}
}

// Deriv returns the derivative of the curve at t.
func (c CubicBez) Deriv(t float64) Vec2 {
	return Vec2(c.Differentiate().Eval(t))
}

func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		P0: c.P0.Transform(aff),
		P1: c.P1.Transform(aff),
		P2: c.P2.Transform(aff),
		P3: c.P3.Transform(aff),
	}
}

// Nearest finds the point on the curve closest to pt and returns its squared
// distance and parameter.
//
// This uses Philip J. Schneider's algorithm from "Solving the Nearest-Point-
// On-Curve Problem" (Graphics Gems, 1990). The derivative of the squared
// distance is converted to a quintic in Bernstein form, whose roots are
// isolated by recursive subdivision of its control polygon. The candidates are
// compared against both endpoints; on ties, the endpoints win, followed by the
// smaller parameter.
//
// Far apart inputs are rescaled, so the parameter is accurate even when the
// squared distance overflows to +Inf. No heap allocations are made.
func (c CubicBez) Nearest(pt Point) (distSq, t float64) {
	if f, ok := newNearestFrame(c.P0, c.P1, c.P2, c.P3, pt); ok {
		d, t := CubicBez{f.apply(c.P0), f.apply(c.P1), f.apply(c.P2), f.apply(c.P3)}.nearest(f.apply(pt))
		return f.distSq(d), t
	}
	return c.nearest(pt)
}

func (c CubicBez) nearest(pt Point) (distSq, t float64) {
	w := nearestPolynomial(c, pt)
	var roots [5]float64
	n := w.findRoots(0, &roots, 0)

	var best nearestCandidate
	best.try(pt.Sub(c.P0).Hypot2(), 0.0)
	best.try(pt.Sub(c.P3).Hypot2(), 1.0)
	for _, t := range roots[:n] {
		t = min(max(t, 0), 1)
		best.try(pt.Sub(c.Eval(t)).Hypot2(), t)
	}
	return best.distSq.value, best.t
}
