// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
//
// # Supported Formats
//
//   - PCM at 8, 16, 24 and 32 bits
//   - Mono and multi-channel
//   - Any sample rate
//
// # Decoding AIFF Files
//
//	source, err := aiff.Decoder{}.Decode(file)
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Samples come back as float32 in [-1.0, 1.0]. go-audio needs to seek, so
// readers that cannot are buffered in memory first.
//
// # Errors
//
//   - ErrNotAiffFile: the input is not a FORM/AIFF file
//   - ErrUnsupportedBitDepth: the sample size is not 8, 16, 24 or 32 bits
//   - ErrUnsupportedAiffLayout: the file has no usable channel layout
package aiff
