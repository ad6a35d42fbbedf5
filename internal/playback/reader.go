// SPDX-License-Identifier: EPL-2.0

// Package playback sends rendered audio to the system output device.
package playback

import (
	"encoding/binary"
	"math"

	"github.com/ik5/twang/audio"
)

const bytesPerSample = 4

// Reader serializes the samples of a source as interleaved float32
// little-endian bytes, the layout oto expects for FormatFloat32LE.
type Reader struct {
	src     audio.Source
	samples []float32
	encoded []byte
	pending []byte
	err     error
}

func NewReader(src audio.Source) *Reader {
	size := max(src.BufSize(), 1)

	return &Reader{
		src:     src,
		samples: make([]float32, size),
		encoded: make([]byte, size*bytesPerSample),
	}
}

// Read fills p with encoded samples. Samples split across calls are kept,
// so p need not be a multiple of four bytes. The source error, usually
// io.EOF, is returned once every decoded byte has been handed out.
func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	if len(r.pending) == 0 {
		if r.err != nil {
			return 0, r.err
		}

		want := min(max(len(p)/bytesPerSample, 1), len(r.samples))

		n, err := r.src.ReadSamples(r.samples[:want])
		for i, v := range r.samples[:n] {
			binary.LittleEndian.PutUint32(r.encoded[i*bytesPerSample:], math.Float32bits(v))
		}
		r.pending = r.encoded[:n*bytesPerSample]
		r.err = err

		if n == 0 {
			return 0, err
		}
	}

	n := copy(p, r.pending)
	r.pending = r.pending[n:]

	return n, nil
}
