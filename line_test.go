package curvemath

import (
	"math"
	"testing"
)

func TestLineLength(t *testing.T) {
	l := Line{Pt(0.0, 0.0), Pt(1.0, 1.0)}
	want := math.Sqrt(2.0)
	const epsilon = 1e-12
	if d := math.Abs(l.Length() - want); d > epsilon {
		t.Errorf("%g > %g", d, epsilon)
	}
	if d := math.Abs(RombergArclen(l, 3) - want); d > epsilon {
		t.Errorf("%g > %g", d, epsilon)
	}
}

func TestLineIsInf(t *testing.T) {
	if (Line{Pt(0.0, 0.0), Pt(1.0, 1.0)}).IsInf() {
		t.Error("line is infinite but shouldn't be")
	}

	if !(Line{Pt(0.0, 0.0), Pt(math.Inf(1), 1.0)}).IsInf() {
		t.Errorf("line is finite but shouldn't be")
	}

	if !(Line{Pt(0.0, 0.0), Pt(0.0, math.Inf(1))}).IsInf() {
		t.Errorf("line is finite but shouldn't be")
	}
}

func TestLineNearest(t *testing.T) {
	verify := func(l Line, pt Point, wantT, wantDistSq float64) {
		t.Helper()
		distSq, got := l.Nearest(pt)
		if math.Abs(got-wantT) > 1e-12 {
			t.Errorf("got t = %v, want %v", got, wantT)
		}
		if math.Abs(distSq-wantDistSq) > 1e-9 {
			t.Errorf("got squared distance %v, want %v", distSq, wantDistSq)
		}
	}

	l := Line{Pt(0, 0), Pt(10, 0)}
	verify(l, Pt(5, 5), 0.5, 25)
	verify(l, Pt(15, 5), 1, 50)
	verify(l, Pt(-3, -4), 0, 25)
	verify(l, Pt(2.5, 0), 0.25, 0)

	// Zero-length segments return their start point.
	p := Pt(1, 2)
	verify(Line{p, p}, Pt(4, 6), 0, 25)
}

func TestLineNearestExtremeMagnitudes(t *testing.T) {
	for _, s := range []float64{1e155, 1e200, 1e300, 1e-160, 1e-300} {
		l := Line{Pt(0, 0), Pt(s, s)}
		distSq, got := l.Nearest(Pt(s, 0))
		if got != 0.5 || math.IsNaN(distSq) {
			t.Errorf("scale %g: got t = %v, squared distance %v", s, got, distSq)
		}
		diff(t, Pt(s/2, s/2), ClosestPointOnLine([2]Point{l.P0, l.P1}, Pt(s, 0)))
	}

	l := Line{Pt(1e200, -1e200), Pt(3e200, -1e200)}
	if _, got := l.Nearest(Pt(2.5e200, 5e199)); math.Abs(got-0.75) > 1e-12 {
		t.Errorf("got t = %v, want 0.75", got)
	}
}

func TestLineSubsegment(t *testing.T) {
	l := Line{Pt(1, 1), Pt(5, 3)}
	s := l.Subsegment(0.25, 0.75)
	diff(t, s, Line{Pt(2, 1.5), Pt(4, 2.5)})
	diff(t, l.Deriv(0.3), Vec(4, 2))
}
