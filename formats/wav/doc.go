// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes integer PCM WAV files on top of
// github.com/go-audio/wav.
//
// # Supported Formats
//
//   - PCM at 8 (unsigned), 16, 24 and 32 bits
//   - Any channel count and sample rate
//
// # Decoding
//
//	source, err := wav.Decoder{}.Decode(file)
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Samples come back as float32 in [-1.0, 1.0]. Readers that cannot seek
// are buffered in memory first.
//
// # Encoding
//
// Encode drains any audio.Source into a seekable writer:
//
//	file, _ := os.Create("out.wav")
//	err := wav.Encode(file, buffer, 16)
//
// # Errors
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE file
//   - ErrUnsupportedWavLayout: the file carries something other than integer PCM
//   - ErrUnsupportedBitDepth: the bit depth is not 8, 16, 24 or 32
package wav
