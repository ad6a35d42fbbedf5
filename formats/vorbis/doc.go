// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis decoding.
//
// This package uses github.com/jfreymuth/oggvorbis, a pure Go decoder.
//
// # Decoding
//
//	source, err := vorbis.Decoder{}.Decode(file)
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Vorbis decodes natively to float32, so samples are passed through
// without conversion. Reads always cover whole frames: a destination that
// is not a multiple of the channel count has its tail left untouched.
package vorbis
