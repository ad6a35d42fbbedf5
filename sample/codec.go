// SPDX-License-Identifier: EPL-2.0

package sample

import (
	"math"
	"math/bits"
)

const (
	signBit      = 1 << 31
	exponentBias = 127
	mantissaBits = 23
)

// IntToFloat converts a signed 32-bit fixed-point sample into a normalized
// float sample.
//
// math.MaxInt32 maps to 1.0 and math.MinInt32 maps to -1.0. Zero is not
// represented exactly: 0 maps to 2^-31 and -1 maps to -2^-31, because the
// signed range has one more negative value than positive ones.
func IntToFloat(v int32) float32 {
	// Split sign and magnitude. -1 - v keeps MinInt32 representable.
	var mag, sign uint32
	if v < 0 {
		mag = uint32(-1 - v)
		sign = signBit
	} else {
		mag = uint32(v)
	}

	// Drop the sign position and add one so a leading bit always exists.
	fraction := mag<<1 + 1
	lz := uint32(bits.LeadingZeros32(fraction))

	// Remove the leading zeros and the implicit one.
	if lz >= 31 {
		fraction = 0
	} else {
		fraction <<= lz + 1
	}

	// 24 bits, round half up, then down to the 23 stored bits.
	fraction >>= 8
	fraction += fraction & 1
	fraction >>= 1
	fraction &^= 1 << mantissaBits

	exponent := (exponentBias - lz) << mantissaBits

	return math.Float32frombits(sign | exponent | fraction)
}

// FloatToInt converts a normalized float sample into a signed 32-bit
// fixed-point sample.
//
// 1.0 maps to math.MaxInt32, -1.0 to math.MinInt32 and 0.0 to 0. Magnitudes
// too small for the integer scale underflow to 0. Values outside [-1, 1]
// saturate instead of wrapping.
func FloatToInt(v float32) int32 {
	b := math.Float32bits(v)

	sign := b >> 31
	mantissa := (b<<9)>>9 | 1<<24
	exponent := (b << 1) >> 24

	var shift uint32
	if exponent < exponentBias {
		shift = exponentBias - exponent
	}

	if shift >= 32 {
		return 0
	}

	m := int64(mantissa)
	if sign != 0 {
		m = -m
	}

	return saturate32(m*128) >> shift
}

func saturate32(v int64) int32 {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}

	if v < math.MinInt32 {
		return math.MinInt32
	}

	return int32(v)
}
