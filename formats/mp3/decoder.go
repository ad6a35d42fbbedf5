// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/twang/audio"
	"github.com/ik5/twang/sample"
)

// go-mp3 always decodes to interleaved stereo 16-bit little-endian PCM.
const (
	channels       = 2
	bytesPerSample = 2
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
	// pending holds the low byte of a sample split across reads.
	pending    byte
	hasPending bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / bytesPerSample } // sample capacity, not bytes

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	bytesNeeded := len(dst) * bytesPerSample
	if cap(s.buf) < bytesNeeded {
		s.buf = make([]byte, bytesNeeded)
	}
	s.buf = s.buf[:bytesNeeded]

	offset := 0
	if s.hasPending {
		s.buf[0] = s.pending
		s.hasPending = false
		offset = 1
	}

	n, err := s.dec.Read(s.buf[offset:])
	n += offset

	if n%bytesPerSample != 0 {
		s.pending = s.buf[n-1]
		s.hasPending = true
		n--
	}

	samples := n / bytesPerSample
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(s.buf[bytesPerSample*i:]))
		dst[i] = sample.Dequantize(int(v), 16)
	}

	if errors.Is(err, io.EOF) {
		return samples, io.EOF
	}
	if err != nil {
		return samples, fmt.Errorf("reading mp3 frames: %w", err)
	}

	return samples, nil
}

// Decoder reads MPEG-1/2 Layer III streams.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("opening mp3 stream: %w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}
