package curvemath

// Line is a line segment from P0 to P1, parameterized over [0, 1].
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

var _ NearestCurve = Line{}
var _ Differentiable = Line{}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line) Translate(v Vec2) Line {
	return Line{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Deriv returns the derivative of the line, which is constant.
func (l Line) Deriv(t float64) Vec2 {
	return l.P1.Sub(l.P0)
}

// Nearest finds the point on the segment closest to pt by projecting pt onto
// the line and clamping the projection to the segment. It returns the squared
// distance and the parameter of that point.
//
// A zero-length segment yields P0 and t = 0. Far apart inputs are rescaled, so
// t is accurate even when the squared distance overflows to +Inf.
func (l Line) Nearest(pt Point) (distSq, t float64) {
	if f, ok := newNearestFrame(l.P0, l.P1, pt); ok {
		d, t := Line{f.apply(l.P0), f.apply(l.P1)}.nearest(f.apply(pt))
		return f.distSq(d), t
	}
	return l.nearest(pt)
}

func (l Line) nearest(pt Point) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	dotp := d.Dot(pt.Sub(l.P0))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		return pt.Sub(l.P0).Hypot2(), 0.0
	} else if dotp >= dSquared {
		return pt.Sub(l.P1).Hypot2(), 1.0
	} else {
		t := dotp / dSquared
		dist := pt.Sub(l.Eval(t)).Hypot2()
		return dist, t
	}
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

func (l Line) Subsegment(start, end float64) Line {
	return Line{l.Eval(start), l.Eval(end)}
}
