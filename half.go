package curvemath

import (
	"math"
	"math/bits"
	"strconv"
)

// Half is an IEEE 754 binary16 floating-point number, stored as its bit
// pattern.
//
// Format: Sign (1 bit) | Exponent (5 bits, bias 15) | Mantissa (10 bits)
//
//	S | EEEEE | MMMMMMMMMM
//
// The largest finite value is 65504, the smallest positive normal value is
// 2⁻¹⁴ and the smallest positive subnormal value is 2⁻²⁴.
type Half uint16

const (
	HalfZero      Half = 0x0000 // +0
	HalfNegZero   Half = 0x8000 // -0
	HalfOne       Half = 0x3C00 // 1
	HalfNegOne    Half = 0xBC00 // -1
	HalfMax       Half = 0x7BFF // 65504
	HalfMinNormal Half = 0x0400 // 2⁻¹⁴
	HalfMinValue  Half = 0x0001 // 2⁻²⁴, the smallest subnormal
	HalfInf       Half = 0x7C00 // +Inf
	HalfNegInf    Half = 0xFC00 // -Inf
	HalfNaN       Half = 0x7E00 // canonical quiet NaN

	halfSignMask     = 0x8000
	halfExpMask      = 0x1F
	halfMantissaMask = 0x3FF

	// Difference between the float32 and binary16 exponent biases.
	halfRebias = 127 - 15
)

// HalfFromParts assembles a Half from its sign bit, biased exponent and
// mantissa. Excess bits in each part are discarded.
func HalfFromParts(sign, exponent, mantissa uint16) Half {
	return Half((sign&1)<<15 | (exponent&halfExpMask)<<10 | mantissa&halfMantissaMask)
}

// Sign returns the sign bit, 0 or 1.
func (h Half) Sign() uint16 { return uint16(h) >> 15 }

// Exponent returns the biased exponent, in the range [0, 31].
func (h Half) Exponent() uint16 { return uint16(h) >> 10 & halfExpMask }

// Mantissa returns the 10 explicit mantissa bits.
func (h Half) Mantissa() uint16 { return uint16(h) & halfMantissaMask }

// IsNaN reports whether h is a NaN.
func (h Half) IsNaN() bool {
	return h.Exponent() == halfExpMask && h.Mantissa() != 0
}

// IsInf reports whether h is positive or negative infinity.
func (h Half) IsInf() bool {
	return h.Exponent() == halfExpMask && h.Mantissa() == 0
}

// IsZero reports whether h is positive or negative zero.
func (h Half) IsZero() bool {
	return h&^halfSignMask == 0
}

// IsSubnormal reports whether h is a nonzero value with the minimum exponent.
func (h Half) IsSubnormal() bool {
	return h.Exponent() == 0 && h.Mantissa() != 0
}

// Signbit reports whether h is negative or negative zero.
func (h Half) Signbit() bool {
	return h&halfSignMask != 0
}

// Float32 converts h to float32. The conversion is exact.
func (h Half) Float32() float32 {
	return HalfToFloat(h)
}

// Float64 converts h to float64. The conversion is exact.
func (h Half) Float64() float64 {
	return float64(HalfToFloat(h))
}

func (h Half) String() string {
	return strconv.FormatFloat(h.Float64(), 'g', -1, 32)
}

// HalfToFloat converts a binary16 value to float32. Every Half, including
// subnormals, is exactly representable. NaNs keep their sign and payload.
func HalfToFloat(h Half) float32 {
	sign := uint32(h.Sign()) << 31
	exp := uint32(h.Exponent())
	mant := uint32(h.Mantissa())

	switch exp {
	case 0:
		if mant == 0 {
			return math.Float32frombits(sign)
		}
		// Subnormal. Normalize so that the leading one becomes the implicit
		// bit of the float32.
		shift := uint32(bits.LeadingZeros32(mant) - 21)
		mant = (mant << shift) & halfMantissaMask
		return math.Float32frombits(sign | (halfRebias+1-shift)<<23 | mant<<13)
	case halfExpMask:
		return math.Float32frombits(sign | 0x7F800000 | mant<<13)
	default:
		return math.Float32frombits(sign | (exp+halfRebias)<<23 | mant<<13)
	}
}

// FloatToHalf converts a float32 to binary16, rounding to nearest with ties to
// even.
//
// Values too large for binary16 become infinities of the same sign. Values too
// small for a normal binary16 become subnormals, and values below half the
// smallest subnormal become zero of the same sign. NaNs keep their sign and
// the top bits of their payload, and are always quiet.
func FloatToHalf(f float32) Half {
	b := math.Float32bits(f)
	sign := uint16(b>>16) & halfSignMask
	exp := int(b>>23) & 0xFF
	mant := b & 0x7FFFFF

	if exp == 0xFF {
		if mant != 0 {
			return Half(sign|uint16(mant>>13)) | HalfNaN
		}
		return Half(sign) | HalfInf
	}

	e := exp - halfRebias
	if e >= halfExpMask {
		return Half(sign) | HalfInf
	}
	if e <= 0 {
		if e < -10 {
			return Half(sign)
		}
		// Subnormal result, in units of 2⁻²⁴. Rounding up may produce the
		// smallest normal number, which has the correct encoding.
		m := mant | 0x800000
		shift := uint(14 - e)
		h := m >> shift
		rem := m & (1<<shift - 1)
		halfway := uint32(1) << (shift - 1)
		if rem > halfway || rem == halfway && h&1 == 1 {
			h++
		}
		return Half(sign | uint16(h))
	}

	// Rounding up carries into the exponent, and from the largest finite
	// value into infinity.
	h := uint32(e)<<10 | mant>>13
	rem := mant & 0x1FFF
	if rem > 0x1000 || rem == 0x1000 && h&1 == 1 {
		h++
	}
	return Half(sign | uint16(h))
}

// NewHalfFromFloat64 converts a float64 to binary16, rounding to nearest with
// ties to even.
//
// Unlike FloatToHalf(float32(f)), this rounds only once.
func NewHalfFromFloat64(f float64) Half {
	f32 := float32(f)
	if float64(f32) != f && !math.IsInf(float64(f32), 0) && !math.IsNaN(f) {
		// Round to odd instead: a float32 has enough extra precision that
		// rounding its odd neighbor to binary16 gives the same result as
		// rounding f directly.
		b := math.Float32bits(f32)
		if b&1 == 0 {
			if math.Abs(float64(f32)) > math.Abs(f) {
				b--
			} else {
				b++
			}
			f32 = math.Float32frombits(b)
		}
	}
	return FloatToHalf(f32)
}
