// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files.
//
// # Decoding MP3 Files
//
//	source, err := mp3.Decoder{}.Decode(file)
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// # Output Format
//
//   - Sample format: float32 in range [-1.0, 1.0]
//   - Channels: always 2, mono files are duplicated by go-mp3
//   - Sample rate: that of the stream
//
// To use an MP3 clip as a wavetable, fold it to mono at the render rate:
//
//	mono := audio.NewMonoMixer(audio.NewResampler(source, 48000))
//
// Encoding is not supported.
package mp3
