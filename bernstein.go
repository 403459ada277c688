package curvemath

// MaxNearestDepth bounds the recursion depth of the root isolation used by
// [CubicBez.Nearest]. At this depth, the parameter interval of a subdivided
// polynomial is 2⁻⁶⁴ wide, which is below the resolution of float64 on [0, 1].
const MaxNearestDepth = 64

// Polygons whose flatness error falls below this are treated as straight.
const flatnessEpsilon = 1.0 / (1 << (MaxNearestDepth + 1))

// Binomial co-efficient, but returning zeros for values outside of domain
func choose(n, k int) uint32 {
	if k > n {
		return 0
	}
	p := 1
	bound := n - k
	for i := 1; i <= bound; i++ {
		p *= n
		p /= i
		n -= 1
	}
	return uint32(p)
}

// quinticBernstein is a polynomial of degree 5 on [0, 1] in Bernstein form,
// stored as its control polygon. The X coordinate of each control point is
// its parameter and the Y coordinate its value, so that the polygon's
// crossings of the x axis bracket the polynomial's roots.
type quinticBernstein [6]Vec2

// nearestPolynomial returns (c(t) - pt) · c'(t) for the cubic c, which is zero
// wherever the distance from pt to the curve is locally extremal.
func nearestPolynomial(c CubicBez, pt Point) quinticBernstein {
	v := [4]Point{c.P0, c.P1, c.P2, c.P3}
	var cv [4]Vec2
	for i := range cv {
		cv[i] = v[i].Sub(pt)
	}
	var d [3]Vec2
	for i := range d {
		d[i] = v[i+1].Sub(v[i]).Mul(3)
	}

	var w quinticBernstein
	for i := range w {
		w[i].X = float64(i) / 5
	}
	// The product of a cubic and a quadratic in Bernstein form is a quintic
	// whose coefficients are weighted sums of the pairwise products.
	for j := range d {
		for i := range cv {
			z := float64(choose(3, i)*choose(2, j)) / float64(choose(5, i+j))
			w[i+j].Y += d[j].Dot(cv[i]) * z
		}
	}
	return w
}

// crossings returns the number of sign changes in the control polygon. Zero
// counts as positive.
func (w *quinticBernstein) crossings() int {
	n := 0
	neg := w[0].Y < 0
	for _, p := range w[1:] {
		if (p.Y < 0) != neg {
			n++
			neg = !neg
		}
	}
	return n
}

// flatEnough reports whether the control polygon is close enough to the line
// through its endpoints that the line's x intercept is an accurate root.
func (w *quinticBernstein) flatEnough() bool {
	first, last := w[0], w[len(w)-1]
	// Implicit equation of the line through the endpoints.
	a := first.Y - last.Y
	b := last.X - first.X
	c := first.X*last.Y - last.X*first.Y

	var above, below float64
	for _, p := range w[1 : len(w)-1] {
		v := a*p.X + b*p.Y + c
		if v > above {
			above = v
		} else if v < below {
			below = v
		}
	}

	// Intersect the x axis with the two lines parallel to the chord that
	// enclose the polygon.
	det := -a
	i1 := (c - above) / det
	i2 := (c - below) / det
	left, right := min(i1, i2), max(i1, i2)
	// NaN, from a horizontal chord, compares false and forces another split.
	return right-left < flatnessEpsilon
}

// xIntercept returns where the line through the first and last control points
// crosses the x axis.
func (w *quinticBernstein) xIntercept() float64 {
	first, last := w[0], w[len(w)-1]
	dx := last.X - first.X
	dy := last.Y - first.Y
	return (dx*first.Y - dy*first.X) / -dy
}

// split subdivides the polynomial at t = 0.5 using de Casteljau's algorithm.
func (w *quinticBernstein) split() (left, right quinticBernstein) {
	var tri [len(w)]quinticBernstein
	tri[0] = *w
	for i := 1; i < len(w); i++ {
		for j := 0; j < len(w)-i; j++ {
			tri[i][j] = tri[i-1][j].Add(tri[i-1][j+1]).Mul(0.5)
		}
	}
	for j := range w {
		left[j] = tri[j][0]
		right[j] = tri[len(w)-1-j][j]
	}
	return left, right
}

// findRoots appends the roots of w on its parameter interval to out[:n], in
// ascending order, and returns the new count.
func (w *quinticBernstein) findRoots(depth int, out *[5]float64, n int) int {
	cross := w.crossings()
	if cross == 0 {
		return n
	}
	if depth >= MaxNearestDepth {
		return pushRoot(out, n, 0.5*(w[0].X+w[len(w)-1].X))
	}
	if cross == 1 && w.flatEnough() {
		return pushRoot(out, n, w.xIntercept())
	}
	left, right := w.split()
	n = left.findRoots(depth+1, out, n)
	return right.findRoots(depth+1, out, n)
}

func pushRoot(out *[5]float64, n int, t float64) int {
	if n == len(out) {
		return n
	}
	out[n] = t
	return n + 1
}
