package curvemath

import (
	"math"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Epsilon is a reasonable tolerance for the approximate comparisons, for
// values of magnitude around one.
const Epsilon = 4.37114e-05

// ApproxZero reports whether |n| < epsilon.
func ApproxZero[T constraints.Float](n, epsilon T) bool {
	return abs(n) < epsilon
}

// RoundToZero returns 0 if n is approximately zero, and n otherwise.
func RoundToZero[T constraints.Float](n, epsilon T) T {
	if ApproxZero(n, epsilon) {
		return 0
	}
	return n
}

// ApproxEqual reports whether a and b differ by less than epsilon.
func ApproxEqual[T constraints.Float](a, b, epsilon T) bool {
	return abs(b-a) < epsilon
}

// ApproxEqualRelative reports whether a and b differ by no more than
// maxRelDiff times the larger of their magnitudes.
//
// See https://randomascii.wordpress.com/2012/02/25/comparing-floating-point-numbers-2012-edition/
func ApproxEqualRelative[T constraints.Float](a, b, maxRelDiff T) bool {
	diff := abs(a - b)
	largest := max(abs(a), abs(b))
	return diff <= largest*maxRelDiff
}

// ToRadians converts degrees to radians.
func ToRadians[T constraints.Float](x T) T {
	return x * (math.Pi / 180)
}

// ToDegrees converts radians to degrees.
func ToDegrees[T constraints.Float](x T) T {
	return x * (180 / math.Pi)
}

// Lerp linearly interpolates between a and b.
func Lerp[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}

// Lmap maps val from the range [inMin, inMax] to [outMin, outMax]. Values
// outside of the input range are extrapolated.
func Lmap[T constraints.Float](val, inMin, inMax, outMin, outMax T) T {
	return outMin + ((outMax-outMin)*(val-inMin))/(inMax-inMin)
}

// BezierInterp evaluates the one-dimensional cubic Bézier with control values
// a, b, c and d at t.
func BezierInterp[T constraints.Float](a, b, c, d, t T) T {
	t1 := 1 - t
	return a*(t1*t1*t1) + b*(3*t*t1*t1) + c*(3*t*t*t1) + d*(t*t*t)
}

// Constrain clamps val to [minVal, maxVal].
func Constrain[T constraints.Ordered](val, minVal, maxVal T) T {
	if val < minVal {
		return minVal
	} else if val > maxVal {
		return maxVal
	}
	return val
}

// Fract returns the fractional part of x, calculated as x - ⌊x⌋. The result is
// in [0, 1) for finite x, including negative x.
func Fract[T constraints.Float](x T) T {
	return x - T(math.Floor(float64(x)))
}

// Signum returns 1 for positive x, -1 for negative x, and 0 otherwise.
func Signum[T constraints.Float](x T) T {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// SinXOverX returns sin(x)/x, which is 1 at x = 0.
//
// Below the point where x² is smaller than float32's machine epsilon, the
// function is indistinguishable from 1 and the division is skipped, avoiding
// the loss of accuracy for tiny x.
func SinXOverX[T constraints.Float](x T) T {
	if x*x < 1.19209290e-07 {
		return 1
	}
	return T(math.Sin(float64(x))) / x
}

// Log2Floor returns ⌊log₂ x⌋, and 0 for x = 0.
func Log2Floor(x uint32) uint32 {
	if x == 0 {
		return 0
	}
	return uint32(bits.Len32(x) - 1)
}

// Log2Ceil returns ⌈log₂ x⌉, and 0 for x = 0.
func Log2Ceil(x uint32) uint32 {
	if IsPowerOf2(x) {
		return Log2Floor(x)
	}
	return Log2Floor(x) + 1
}

// NextPowerOf2 returns the smallest power of two strictly greater than x. For x
// ≥ 2³¹, the result wraps around to 0.
func NextPowerOf2(x uint32) uint32 {
	return 1 << bits.Len32(x)
}

// IsPowerOf2 reports whether x is a power of two. As a special case, it reports
// true for x = 0.
func IsPowerOf2[T constraints.Unsigned](x T) bool {
	return x&(x-1) == 0
}

func abs[T constraints.Float](x T) T {
	return T(math.Abs(float64(x)))
}
