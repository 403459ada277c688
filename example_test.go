package curvemath_test

import (
	"fmt"
	"math"

	"honnef.co/go/curvemath"
)

func ExampleSolveQuadratic() {
	// x² - 3x + 2 = (x - 1)(x - 2)
	r := curvemath.SolveQuadratic(1, -3, 2)
	fmt.Println(r.Kind, r.Slice())

	// x² + 1 has no real roots.
	fmt.Println(curvemath.SolveQuadratic(1, 0, 1).Kind)

	// Every x satisfies 0 = 0.
	fmt.Println(curvemath.SolveQuadratic(0, 0, 0).Kind)

	// Output:
	// FiniteRoots [1 2]
	// NoRoots
	// AllReals
}

func ExampleSolveCubic() {
	// (x - 1)(x - 2)(x - 3) = x³ - 6x² + 11x - 6
	r := curvemath.SolveCubic(1, -6, 11, -6)
	for _, x := range r.Slice() {
		fmt.Printf("%.6f\n", x)
	}

	// Output:
	// 1.000000
	// 2.000000
	// 3.000000
}

func ExampleClosestPointOnLine() {
	line := [2]curvemath.Point{curvemath.Pt(0, 0), curvemath.Pt(10, 0)}
	fmt.Println(curvemath.ClosestPointOnLine(line, curvemath.Pt(5, 5)))
	// Beyond the end of the segment, the end point itself is returned.
	fmt.Println(curvemath.ClosestPointOnLine(line, curvemath.Pt(15, 5)))

	// Output:
	// (5, 0)
	// (10, 0)
}

func ExampleClosestPointOnCubic() {
	arch := [4]curvemath.Point{
		curvemath.Pt(0, 0),
		curvemath.Pt(0, 1),
		curvemath.Pt(1, 1),
		curvemath.Pt(1, 0),
	}
	p := curvemath.ClosestPointOnCubic(arch, curvemath.Pt(0.5, 2))
	fmt.Printf("(%.3f, %.3f)\n", p.X, p.Y)

	// Output:
	// (0.500, 0.750)
}

func ExampleClosestPointOnEllipse() {
	// A circle of radius 2 around the origin.
	p := curvemath.ClosestPointOnEllipse(
		curvemath.Pt(0, 0),
		curvemath.Vec(2, 0),
		curvemath.Vec(0, 2),
		curvemath.Pt(3, 4),
	)
	fmt.Printf("(%.3f, %.3f)\n", p.X, p.Y)

	// Output:
	// (1.200, 1.600)
}

func ExampleRomberg() {
	area := curvemath.Romberg(0, 1, 4, func(x float64) float64 { return x * x })
	fmt.Printf("%.6f\n", area)

	half := curvemath.Romberg(0, math.Pi, 10, math.Sin)
	fmt.Printf("%.6f\n", half)

	// Output:
	// 0.333333
	// 2.000000
}

func ExampleFloatToHalf() {
	h := curvemath.FloatToHalf(math.Pi)
	fmt.Printf("%#04x %v\n", uint16(h), h)
	fmt.Println(curvemath.FloatToHalf(1e6))
	fmt.Println(curvemath.HalfMax.Float32())

	// Output:
	// 0x4248 3.140625
	// +Inf
	// 65504
}
