// SPDX-License-Identifier: EPL-2.0

package sample

import "math"

const (
	scalePCM8  = 127.5
	scalePCM16 = 1 << 15
	scalePCM24 = 1 << 23
	scalePCM32 = 1 << 31
	maxPCM8    = 255
)

// Quantize converts a float sample into linear PCM at bitDepth (8, 16, 24 or
// 32). 8-bit output is unsigned, as stored in WAV files. The input is clamped
// to [-1, 1] and rounded to the nearest step. Unsupported bit depths yield 0.
func Quantize(v float32, bitDepth int) int {
	v = Clamp(v)

	if bitDepth == 8 {
		scaled := int(math.Round(float64(v+1) * scalePCM8))
		return min(max(scaled, 0), maxPCM8)
	}

	scale, ok := pcmScale(bitDepth)
	if !ok {
		return 0
	}

	scaled := int64(math.Round(float64(v) * scale))
	scaled = min(max(scaled, int64(-scale)), int64(scale)-1)

	return int(scaled)
}

// Dequantize converts a linear PCM value at bitDepth back into a float sample.
// It is the inverse of Quantize up to rounding. Unsupported bit depths yield 0.
func Dequantize(v int, bitDepth int) float32 {
	if bitDepth == 8 {
		return float32((float64(v) - scalePCM8) / scalePCM8)
	}

	scale, ok := pcmScale(bitDepth)
	if !ok {
		return 0
	}

	return float32(float64(v) / scale)
}

// Clamp limits v to the normalized sample range.
func Clamp(v float32) float32 {
	if v > 1 {
		return 1
	}

	if v < -1 {
		return -1
	}

	return v
}

func pcmScale(bitDepth int) (float64, bool) {
	switch bitDepth {
	case 16:
		return scalePCM16, true
	case 24:
		return scalePCM24, true
	case 32:
		return scalePCM32, true
	default:
		return 0, false
	}
}
