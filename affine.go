package curvemath

import (
	"math"
)

// Affine describes an affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// The idea is that (A * B) * v == A * (B * v). The first column is the image
// of the x unit vector and the second column the image of the y unit vector,
// which is how [NewEllipseFromAxes] builds an ellipse out of two axis vectors.
type Affine struct {
	// Kept as a struct rather than an array so the compiler can scalarize it.

	N0, N1, N2, N3, N4, N5 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x and y
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Translate creates an affine transform representing translation.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// Rotate creates an affine transform representing rotation.
//
// The convention for rotation is that a positive angle rotates a
// positive X direction into positive Y. Thus, in a Y-down coordinate
// system (as is common for graphics), it is a clockwise rotation, and
// in Y-up (traditional for math), it is anti-clockwise.
//
// The angle th is expressed in radians.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// Coefficients returns the the coefficients of the transform.
func (aff Affine) Coefficients() [6]float64 {
	return [6]float64{aff.N0, aff.N1, aff.N2, aff.N3, aff.N4, aff.N5}
}

func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// Determinant computes the determinant.
func (aff Affine) Determinant() float64 {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

// Invert computes the inverse transform.
//
// Produces NaN values when the determinant is zero.
func (aff Affine) Invert() Affine {
	invDet := 1 / aff.Determinant()
	return Affine{
		+invDet * aff.N3,
		-invDet * aff.N1,
		-invDet * aff.N2,
		+invDet * aff.N0,
		+invDet * (aff.N2*aff.N5 - aff.N3*aff.N4),
		+invDet * (aff.N1*aff.N4 - aff.N0*aff.N5),
	}
}

// Linear returns the transform with its translation removed.
func (aff Affine) Linear() Affine {
	aff.N4 = 0
	aff.N5 = 0
	return aff
}

func (aff Affine) IsInf() bool {
	return math.IsInf(aff.N0, 0) ||
		math.IsInf(aff.N1, 0) ||
		math.IsInf(aff.N2, 0) ||
		math.IsInf(aff.N3, 0) ||
		math.IsInf(aff.N4, 0) ||
		math.IsInf(aff.N5, 0)
}

func (aff Affine) IsNaN() bool {
	return math.IsNaN(aff.N0) ||
		math.IsNaN(aff.N1) ||
		math.IsNaN(aff.N2) ||
		math.IsNaN(aff.N3) ||
		math.IsNaN(aff.N4) ||
		math.IsNaN(aff.N5)
}

// svd computes the singular value decomposition of the linear part of the
// transformation, ignoring the translation.
//
// Every 2x2 matrix can be written as U Σ Vᵀ, a rotation, an axis-aligned
// scaling and another rotation. Applied to the unit circle, Vᵀ has no visible
// effect, so only the scaling (the ellipse radii, major radius first) and the
// angle of U are returned.
//
// Unlike a textbook formulation, singular matrices are fine: the minor radius
// is clamped to zero instead of becoming NaN when rounding makes the
// discriminant slightly exceed the sum of squares. The coefficients are scaled
// by a power of two so that their squares can neither overflow nor underflow.
func (aff Affine) svd() (scale Vec2, th float64) {
	m := max(math.Abs(aff.N0), math.Abs(aff.N1), math.Abs(aff.N2), math.Abs(aff.N3))
	if !(m > 0) || math.IsInf(m, 0) {
		m = 1
	}
	exp := math.Ilogb(m)

	a := math.Ldexp(aff.N0, -exp)
	a2 := a * a
	b := math.Ldexp(aff.N1, -exp)
	b2 := b * b
	c := math.Ldexp(aff.N2, -exp)
	c2 := c * c
	d := math.Ldexp(aff.N3, -exp)
	d2 := d * d
	ab := a * b
	cd := c * d
	th = 0.5 * math.Atan2(2.0*(ab+cd), a2-b2+c2-d2)
	s1 := a2 + b2 + c2 + d2
	s2 := math.Hypot(a2-b2+c2-d2, 2.0*(ab+cd))
	return Vec2{
		X: math.Ldexp(math.Sqrt(0.5*(s1+s2)), exp),
		Y: math.Ldexp(math.Sqrt(max(0.5*(s1-s2), 0)), exp),
	}, th
}

// Translation returns the translation component of this affine transformation.
func (aff Affine) Translation() Vec2 {
	return Vec2{
		X: aff.N4,
		Y: aff.N5,
	}
}
