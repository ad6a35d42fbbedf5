// SPDX-License-Identifier: EPL-2.0

// Package sample converts between the integer and float sample
// representations used by twang.
//
// # Fixed-point codec
//
// IntToFloat and FloatToInt convert between a signed 32-bit fixed-point
// sample and a normalized float32 sample in [-1.0, 1.0]. Both are built from
// explicit IEEE-754 bit manipulation so that results are reproducible bit for
// bit on every platform:
//
//	f := sample.IntToFloat(math.MaxInt32) // 1.0
//	i := sample.FloatToInt(-1.0)          // math.MinInt32
//
// The conversion is exact at full scale and at power-of-two fractions of it
// (0.5, 0.25, ...). It is lossy near zero, where the two directions are not
// inverses of each other:
//
//	sample.IntToFloat(4)            // 4.1909516e-09
//	sample.FloatToInt(4.1909516e-9) // 7, not 4
//
// # Linear PCM
//
// Quantize and Dequantize scale float samples to and from linear PCM at 8,
// 16, 24 and 32 bits, with clamping and round-to-nearest. They are used by
// the file format packages.
package sample
