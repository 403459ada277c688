package curvemath

import (
	"math"
)

// NearestCurve is a parametric curve over [0, 1] that can find the parameter of
// its point closest to a query point.
type NearestCurve interface {
	// Nearest returns the squared distance from pt to the closest point on
	// the curve and that point's parameter.
	Nearest(pt Point) (distSq, t float64)
	Eval(t float64) Point
	Start() Point
	End() Point
}

// ClosestPoint returns the point on c closest to pt.
//
// When the closest point is an endpoint, that control point is returned
// verbatim instead of evaluating the curve at 0 or 1.
func ClosestPoint(c NearestCurve, pt Point) Point {
	_, t := c.Nearest(pt)
	switch t {
	case 0:
		return c.Start()
	case 1:
		return c.End()
	default:
		return c.Eval(t)
	}
}

// ClosestPointOnLine returns the point on the segment ctrl[0]–ctrl[1] closest
// to pt.
func ClosestPointOnLine(ctrl [2]Point, pt Point) Point {
	return ClosestPoint(Line{ctrl[0], ctrl[1]}, pt)
}

// ClosestPointOnQuadratic returns the point on the quadratic Bézier with
// control points ctrl closest to pt.
func ClosestPointOnQuadratic(ctrl [3]Point, pt Point) Point {
	return ClosestPoint(QuadBez{ctrl[0], ctrl[1], ctrl[2]}, pt)
}

// ClosestPointOnCubic returns the point on the cubic Bézier with control points
// ctrl closest to pt.
func ClosestPointOnCubic(ctrl [4]Point, pt Point) Point {
	return ClosestPoint(CubicBez{ctrl[0], ctrl[1], ctrl[2], ctrl[3]}, pt)
}

// ClosestPointOnEllipse returns the point on the boundary of the ellipse
// {center + cos(θ) axisA + sin(θ) axisB} closest to pt. See
// [NewEllipseFromAxes] and [Ellipse.ClosestPoint].
func ClosestPointOnEllipse(center Point, axisA, axisB Vec2, pt Point) Point {
	return NewEllipseFromAxes(center, axisA, axisB).ClosestPoint(pt)
}

type option[T any] struct {
	isSet bool
	value T
}

func (opt *option[T]) set(v T) {
	opt.isSet = true
	opt.value = v
}

// nearestCandidate tracks the closest of a sequence of candidate parameters.
// Earlier candidates win ties.
type nearestCandidate struct {
	distSq option[float64]
	t      float64
}

func (c *nearestCandidate) try(distSq, t float64) {
	if !c.distSq.isSet || distSq < c.distSq.value {
		c.distSq.set(distSq)
		c.t = t
	}
}

// Coordinate differences outside of this range are rescaled before a nearest
// point query, as their squares would overflow or lose precision.
const (
	nearestMinExtent = 0x1p-256
	nearestMaxExtent = 0x1p256
)

// nearestFrame maps points into a coordinate system with its origin at the
// start of a curve, scaled by a power of two.
type nearestFrame struct {
	origin Point
	exp    int
}

// newNearestFrame returns the frame for a query against a curve starting at
// origin. The frame brings the largest coordinate difference between pts and
// origin close to one. If that difference is already in a safe range, or is
// zero or infinite, ok is false and the query should run as is.
func newNearestFrame(origin Point, pts ...Point) (f nearestFrame, ok bool) {
	var m float64
	for _, p := range pts {
		d := p.Sub(origin)
		m = max(m, math.Abs(d.X), math.Abs(d.Y))
	}
	if !(m > 0) || math.IsInf(m, 0) || (m >= nearestMinExtent && m <= nearestMaxExtent) {
		return nearestFrame{}, false
	}
	return nearestFrame{origin, math.Ilogb(m)}, true
}

func (f nearestFrame) apply(p Point) Point {
	d := p.Sub(f.origin)
	return Point{math.Ldexp(d.X, -f.exp), math.Ldexp(d.Y, -f.exp)}
}

// distSq maps a squared distance measured in the frame back to the original
// coordinates. The result may overflow to +Inf or underflow to zero.
func (f nearestFrame) distSq(d float64) float64 {
	return math.Ldexp(d, 2*f.exp)
}
