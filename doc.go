// Package curvemath provides the numerical kernel of a 2D graphics toolkit:
// closest-point queries on curves, closed-form polynomial root finding,
// numerical integration, a 16-bit floating-point codec and a handful of scalar
// helpers.
//
// All functions are pure and deterministic, and none of the hot paths allocate.
// Degenerate input produces a documented fallback value rather than an error;
// the only panics are for violated preconditions, such as an out of range
// Romberg order.
//
// # Closest points
//
// [ClosestPointOnLine], [ClosestPointOnQuadratic], [ClosestPointOnCubic] and
// [ClosestPointOnEllipse] return the point on a curve closest to a query point.
// The Bézier types [Line], [QuadBez] and [CubicBez] additionally expose the
// squared distance and parameter of that point through their Nearest methods,
// and [ClosestPoint] works with any [NearestCurve].
//
// Queries never return NaN for finite input, even for degenerate curves, such
// as Béziers whose control points coincide or ellipses with a zero radius.
// Very large and very small coordinates are rescaled internally, so the
// returned points stay accurate where squared distances would overflow or
// underflow.
//
// # Polynomial roots
//
// [SolveLinear], [SolveQuadratic] and [SolveCubic] find the real roots of
// polynomials of degree three or less, taking coefficients in descending
// order. The result, [Roots], distinguishes between no solution, finitely
// many, and every real number being a solution.
//
// # Integration
//
// [Romberg] integrates a function over an interval with Richardson
// extrapolation of the trapezoid rule, and [RombergArclen] uses it to compute
// the arc length of a [Differentiable] curve.
//
// # Half floats
//
// [Half] is an IEEE 754 binary16 value. [FloatToHalf] rounds to nearest even,
// producing subnormals and infinities as needed, and [HalfToFloat] is exact.
//
// # Literature
//
// This package makes use of the following ideas:
//   - [How to solve a cubic equation, revisited] by Christoph Peters
//   - [Distance from a Point to an Ellipse, an Ellipsoid, or a Hyperellipsoid] by David Eberly
//   - Solving the Nearest-Point-On-Curve Problem, by Philip J. Schneider, in Graphics Gems (1990)
//   - [Closest point on a quadratic Bézier] by Olivier Besson
//
// [How to solve a cubic equation, revisited]: https://momentsingraphics.de/CubicRoots.html
// [Distance from a Point to an Ellipse, an Ellipsoid, or a Hyperellipsoid]: https://www.geometrictools.com/Documentation/DistancePointEllipseEllipsoid.pdf
// [Closest point on a quadratic Bézier]: https://blog.gludion.com/2009/08/distance-to-quadratic-bezier-curve.html
package curvemath
