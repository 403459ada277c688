package curvemath

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestEllipseAreaSign(t *testing.T) {
	approxEqual := func(x, y float64) bool {
		return math.Abs(x-y) < 1e-7
	}

	center := Pt(5.0, 5.0)
	e := NewEllipse(center, Vec(5.0, 5.0), 1.0)
	if a := e.Area(); !approxEqual(a, 25.0*math.Pi) {
		t.Errorf("got area %v, expected %v", a, 25.0*math.Pi)
	}
	e = NewEllipse(center, Vec(5.0, 10.0), 1.0)
	if a := e.Area(); !approxEqual(a, 50.0*math.Pi) {
		t.Errorf("got area %v, expected %v", a, 50.0*math.Pi)
	}
	if !e.Contains(center) {
		t.Errorf("ellipse doesn't contain its center")
	}

	eNegRadius := NewEllipse(center, Vec(-5.0, 10.0), 1.0)
	if a := eNegRadius.Area(); !approxEqual(a, 50.0*math.Pi) {
		t.Errorf("got area %v, expected %v", a, 50.0*math.Pi)
	}
	if !eNegRadius.Contains(center) {
		t.Errorf("ellipse doesn't contain its center")
	}
}

func TestEllipseRadiiRotation(t *testing.T) {
	e := NewEllipse(Pt(1, 2), Vec(2, 5), 0.3)
	radii, rot := e.RadiiRotation()
	opt := cmpopts.EquateApprox(0, 1e-12)
	// The major radius comes first, so the rotation is that of the y axis.
	diff(t, Vec(5, 2), radii, opt)
	diff(t, 0.3-math.Pi/2, rot, opt)
	diff(t, Pt(1, 2), e.Center())

	moved := e.Translate(Vec(1, 1))
	diff(t, Pt(2, 3), moved.Center())
	scaled := e.Transform(Scale(2, 2))
	diff(t, Vec(10, 4), scaled.Radii(), opt)
	diff(t, Pt(2, 4), scaled.Center())
}

func TestEllipseFromAxes(t *testing.T) {
	e := NewEllipseFromAxes(Pt(1, 1), Vec(3, 0), Vec(0, 2))
	opt := cmpopts.EquateApprox(0, 1e-12)
	diff(t, Pt(4, 1), e.PointAt(0), opt)
	diff(t, Pt(1, 3), e.PointAt(math.Pi/2), opt)
	diff(t, Pt(-2, 1), e.PointAt(math.Pi), opt)
}

func TestEllipseFromAffine(t *testing.T) {
	e := NewEllipseFromAffine(Translate(Vec(1, 2)).Mul(Scale(3, 2)))
	diff(t, Vec(3, 2), e.Radii())
	diff(t, Pt(1, 2), e.Center())
	assertNear(t, e.ClosestPoint(Pt(10, 2)), Pt(4, 2), 1e-12)

	want := NewEllipse(Pt(1, 2), Vec(3, 2), 0)
	assertNear(t, e.PointAt(1), want.PointAt(1), 1e-12)
}

func TestClosestPointOnEllipse(t *testing.T) {
	const epsilon = 1e-12
	tests := []struct {
		name         string
		center       Point
		axisA, axisB Vec2
		pt           Point
		want         Point
	}{
		{"circle", Pt(0, 0), Vec(2, 0), Vec(0, 2), Pt(3, 4), Pt(1.2, 1.6)},
		{"major axis outside", Pt(0, 0), Vec(3, 0), Vec(0, 2), Pt(5, 0), Pt(3, 0)},
		{"negative major axis", Pt(0, 0), Vec(3, 0), Vec(0, 2), Pt(-5, 0), Pt(-3, 0)},
		{"minor axis", Pt(0, 0), Vec(3, 0), Vec(0, 2), Pt(0, 5), Pt(0, 2)},
		{"negative minor axis", Pt(0, 0), Vec(3, 0), Vec(0, 2), Pt(0, -5), Pt(0, -2)},
		{"minor axis inside", Pt(0, 0), Vec(3, 0), Vec(0, 2), Pt(0, 1), Pt(0, 2)},
		{"major axis inside", Pt(0, 0), Vec(3, 0), Vec(0, 2), Pt(1, 0), Pt(1.8, 1.6)},
		{"translated", Pt(10, -10), Vec(3, 0), Vec(0, 2), Pt(15, -10), Pt(13, -10)},
		{"swapped axes", Pt(0, 0), Vec(2, 0), Vec(0, 3), Pt(0, 5), Pt(0, 3)},
		{"point", Pt(1, 1), Vec(0, 0), Vec(0, 0), Pt(4, 5), Pt(1, 1)},
		{"segment outside", Pt(0, 0), Vec(3, 0), Vec(0, 0), Pt(5, 1), Pt(3, 0)},
		{"segment inside", Pt(0, 0), Vec(3, 0), Vec(0, 0), Pt(1, 2), Pt(1, 0)},
		{"parallel axes", Pt(0, 0), Vec(1, 0), Vec(2, 0), Pt(5, 1), Pt(math.Sqrt(5), 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClosestPointOnEllipse(tt.center, tt.axisA, tt.axisB, tt.pt)
			if got.IsNaN() {
				t.Fatalf("got NaN")
			}
			if tt.name == "major axis inside" {
				// There are two equally close points, mirrored across the axis.
				got.Y = math.Abs(got.Y)
			}
			if d := got.Distance(tt.want); d > epsilon {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClosestPointOnEllipseExtremeMagnitudes(t *testing.T) {
	want := ClosestPointOnEllipse(Pt(0, 0), Vec(2, 0), Vec(0, 1), Pt(3, 1))
	for _, s := range []float64{1e155, 1e200, 1e300, 1e-160, 1e-300} {
		got := ClosestPointOnEllipse(Pt(0, 0), Vec(2*s, 0), Vec(0, s), Pt(3*s, s))
		if math.Abs(got.X/s-want.X) > 1e-9 || math.Abs(got.Y/s-want.Y) > 1e-9 {
			t.Errorf("scale %g: got %v, want %v scaled", s, got, want)
		}

		radii := NewEllipseFromAxes(Pt(0, 0), Vec(2*s, 0), Vec(0, s)).Radii()
		diff(t, Vec(2, 1), Vec(radii.X/s, radii.Y/s), cmpopts.EquateApprox(1e-12, 0))
	}
}

func TestClosestPointOnEllipseOnCurve(t *testing.T) {
	e := NewEllipse(Pt(1, -2), Vec(4, 1.5), 0.7)
	for i := range 64 {
		p := e.PointAt(float64(i) * math.Pi / 32)
		assertNear(t, e.ClosestPoint(p), p, 1e-9)
	}
}

func TestClosestPointOnEllipseSampling(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 10))
	vec := func() Vec2 { return Vec(rng.Float64()*6-3, rng.Float64()*6-3) }
	for range 100 {
		center := Point(vec())
		a, b := vec(), vec()
		e := NewEllipseFromAxes(center, a, b)
		p := center.Translate(vec().Mul(2))
		got := e.ClosestPoint(p)
		if got.IsNaN() {
			t.Fatalf("got NaN for %v", p)
		}

		// The result lies on the ellipse. The inverse is too inaccurate to
		// check this for nearly degenerate ellipses.
		if r := Vec2(got.Transform(e.inner.Invert())).Hypot(); math.Abs(a.Cross(b)) > 0.1 && math.Abs(r-1) > 1e-9 {
			t.Fatalf("%v is at radius %v of the ellipse", got, r)
		}
		// And no sampled point is closer.
		d := got.Distance(p)
		const n = 4096
		for i := range n {
			s := e.PointAt(float64(i) * 2 * math.Pi / n).Distance(p)
			if d > s+1e-9 {
				t.Fatalf("axes %v, %v: got distance %v for %v, but sample %d has %v", a, b, d, p, i, s)
			}
		}
	}
}

func TestClosestPointOnEllipseRotationInvariance(t *testing.T) {
	center := Pt(0, 0)
	a, b := Vec(3, 0), Vec(0, 1)
	p := Pt(2, 2)
	want := ClosestPointOnEllipse(center, a, b, p)
	for i := range 12 {
		rot := Rotate(float64(i) * math.Pi / 6)
		got := ClosestPointOnEllipse(
			center,
			Vec2(Point(a).Transform(rot)),
			Vec2(Point(b).Transform(rot)),
			p.Transform(rot))
		assertNear(t, got, want.Transform(rot), 1e-9)
	}
}

func BenchmarkClosestPointOnEllipse(b *testing.B) {
	e := NewEllipse(Pt(1, -2), Vec(4, 1.5), 0.7)
	for range b.N {
		e.ClosestPoint(Pt(3, 3))
	}
}
