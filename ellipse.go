package curvemath

import (
	"math"
)

// Ellipse is an affine image of the unit circle.
type Ellipse struct {
	inner Affine
}

// NewEllipse creates a new ellipse with a given center, radii, and rotation.
//
// The returned ellipse will be the result of taking a circle, stretching it by
// the radii along the x and y axes, then rotating it from the x axis by
// xRotation radians, before finally translating the center to center.
//
// Rotation is clockwise in a y-down coordinate system. For more on rotation,
// see [Rotate].
func NewEllipse(center Point, radii Vec2, xRotation float64) Ellipse {
	// Since the circle is symmetric about the x and y axes, using absolute values for the
	// radii results in the same ellipse. For simplicity we make this change here.
	return Ellipse{
		inner: Translate(Vec2(center)).
			Mul(Rotate(xRotation)).
			Mul(Scale(math.Abs(radii.X), math.Abs(radii.Y))),
	}
}

// NewEllipseFromAxes creates the ellipse {center + cos(θ) a + sin(θ) b}.
//
// The axis vectors don't have to be perpendicular or non-zero. Conjugate
// diameters describe the same ellipse as the principal axes they correspond to,
// and zero-length or parallel axes produce a degenerate ellipse, which is a
// line segment or a single point.
func NewEllipseFromAxes(center Point, a, b Vec2) Ellipse {
	return Ellipse{inner: Affine{a.X, a.Y, b.X, b.Y, center.X, center.Y}}
}

// NewEllipseFromAffine creates an ellipse from an affine transformation of the unit
// circle.
func NewEllipseFromAffine(aff Affine) Ellipse {
	return Ellipse{inner: aff}
}

// Contains reports whether pt lies strictly inside the ellipse.
func (e Ellipse) Contains(pt Point) bool {
	// Apply the inverse map to the point and see if it is in the unit circle.
	inv := e.inner.Invert()
	return Vec2(pt.Transform(inv)).Hypot2() < 1.0
}

func (e Ellipse) IsInf() bool {
	return e.inner.IsInf()
}

func (e Ellipse) IsNaN() bool {
	return e.inner.IsNaN()
}

// Area returns the area of the ellipse.
func (e Ellipse) Area() float64 {
	x, y := e.Radii().Splat()
	return math.Pi * x * y
}

// Center returns the center of the ellipse.
func (e Ellipse) Center() Point {
	return Point(e.inner.Translation())
}

// Radii returns the two radii of the ellipse, major radius first.
func (e Ellipse) Radii() Vec2 {
	radii, _ := e.inner.svd()
	return radii
}

// Rotation returns the angle of the major axis, in radians.
func (e Ellipse) Rotation() float64 {
	_, rot := e.inner.svd()
	return rot
}

// RadiiRotation returns the radii and the rotation of this ellipse.
//
// This is equivalent to, but more efficient than, using [Ellipse.Radii] and
// [Ellipse.Rotation].
func (e Ellipse) RadiiRotation() (Vec2, float64) {
	return e.inner.svd()
}

// PointAt returns the image of the unit circle's point at angle th.
func (e Ellipse) PointAt(th float64) Point {
	sin, cos := math.Sincos(th)
	return Point{cos, sin}.Transform(e.inner)
}

func (e Ellipse) Translate(v Vec2) Ellipse {
	return Ellipse{
		inner: Translate(v).Mul(e.inner),
	}
}

func (e Ellipse) Transform(aff Affine) Ellipse {
	return Ellipse{
		inner: aff.Mul(e.inner),
	}
}

// ClosestPoint returns the point on the ellipse's boundary closest to pt.
//
// It uses David Eberly's robust algorithm from "Distance from a Point to an
// Ellipse, an Ellipsoid, or a Hyperellipsoid". The query point is moved into
// the ellipse's principal frame and reflected into the first quadrant, where
// the problem reduces to a monotonic function of one variable, whose root is
// found by bisection.
//
// Degenerate ellipses are handled: if both radii are zero, the center is
// returned; if only one is, the closest point on the resulting line segment is.
func (e Ellipse) ClosestPoint(pt Point) Point {
	radii, th := e.inner.svd()
	center := e.Center()
	if radii.X == 0 {
		return center
	}
	sin, cos := math.Sincos(th)
	v := pt.Sub(center)

	// Work in units of the major radius, rounded to a power of two, so that
	// the squares in the quadrant solve stay in range.
	exp := math.Ilogb(radii.X)
	e0 := math.Ldexp(radii.X, -exp)
	e1 := math.Ldexp(radii.Y, -exp)
	// Coordinates in the principal frame, major axis along x.
	y0 := math.Ldexp(cos*v.X+sin*v.Y, -exp)
	y1 := math.Ldexp(-sin*v.X+cos*v.Y, -exp)

	var x0, x1 float64
	if e1 == 0 {
		x0 = min(max(y0, -e0), e0)
	} else {
		x0, x1 = closestOnEllipseQuadrant(e0, e1, math.Abs(y0), math.Abs(y1))
		x0 = math.Copysign(x0, y0)
		x1 = math.Copysign(x1, y1)
	}
	x0 = math.Ldexp(x0, exp)
	x1 = math.Ldexp(x1, exp)

	return Point{
		X: center.X + cos*x0 - sin*x1,
		Y: center.Y + sin*x0 + cos*x1,
	}
}

// closestOnEllipseQuadrant finds the point closest to (y0, y1) on the
// axis-aligned ellipse with radii e0 ≥ e1 > 0, for y0, y1 ≥ 0.
func closestOnEllipseQuadrant(e0, e1, y0, y1 float64) (x0, x1 float64) {
	if y1 > 0 {
		if y0 > 0 {
			z0 := y0 / e0
			z1 := y1 / e1
			g := z0*z0 + z1*z1 - 1
			if g == 0 {
				// Already on the ellipse.
				return y0, y1
			}
			r0 := (e0 / e1) * (e0 / e1)
			sbar := ellipseRoot(r0, z0, z1, g)
			return r0 * y0 / (sbar + r0), y1 / (sbar + 1)
		}
		return 0, e1
	}

	// On the major axis. Inside the evolute, the closest point is off the
	// axis; outside it, it's the vertex.
	numer0 := e0 * y0
	denom0 := e0*e0 - e1*e1
	if numer0 < denom0 {
		xde0 := numer0 / denom0
		return e0 * xde0, e1 * math.Sqrt(1-xde0*xde0)
	}
	return e0, 0
}

// maxEllipseIterations bounds the bisection in ellipseRoot. Halving an
// interval of doubles can't make progress more often than there are bits in
// the exponent and mantissa combined.
const maxEllipseIterations = 1074

// ellipseRoot finds the root s of
//
//	(r0 z0 / (s + r0))² + (z1 / (s + 1))² - 1
//
// which is monotonically decreasing for s > -1. g is the function's value
// at s = 0.
func ellipseRoot(r0, z0, z1, g float64) float64 {
	n0 := r0 * z0
	s0 := z1 - 1
	var s1 float64
	if g >= 0 {
		s1 = math.Hypot(n0, z1) - 1
	}
	s := 0.0
	for range maxEllipseIterations {
		s = 0.5 * (s0 + s1)
		if s == s0 || s == s1 {
			break
		}
		ratio0 := n0 / (s + r0)
		ratio1 := z1 / (s + 1)
		g = ratio0*ratio0 + ratio1*ratio1 - 1
		if g > 0 {
			s0 = s
		} else if g < 0 {
			s1 = s
		} else {
			break
		}
	}
	return s
}
