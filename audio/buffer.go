// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"time"

	"github.com/ik5/twang/wave"
)

// Buffer is a mono block of float samples at a fixed sample rate. It is the
// target that wave graphs and synth expressions render into, and it is
// itself a Source so rendered audio can feed the rest of the pipeline.
//
// A Buffer keeps a read cursor and is not safe for concurrent use.
type Buffer struct {
	sampleRate int
	samples    []float32
	cursor     int
}

// NewSilence allocates frames samples of silence at sampleRate. A negative
// frame count is treated as zero.
func NewSilence(sampleRate, frames int) *Buffer {
	return &Buffer{
		sampleRate: sampleRate,
		samples:    make([]float32, max(frames, 0)),
	}
}

func (b *Buffer) SampleRate() int { return b.sampleRate }
func (b *Buffer) Channels() int   { return 1 }
func (b *Buffer) BufSize() int    { return defaultBufSize }
func (b *Buffer) Close() error    { return nil }

// Len returns the number of frames in the buffer.
func (b *Buffer) Len() int { return len(b.samples) }

// Samples returns the underlying samples. The slice is shared with the buffer.
func (b *Buffer) Samples() []float32 { return b.samples }

// Duration returns the playing time of the buffer.
func (b *Buffer) Duration() time.Duration {
	if b.sampleRate <= 0 {
		return 0
	}

	return time.Duration(len(b.samples)) * time.Second / time.Duration(b.sampleRate)
}

// Generate fills the buffer from w, starting at elapsed 0 and advancing one
// chunk at a time. The last chunk is truncated to fit.
func (b *Buffer) Generate(w wave.Wave, vars []float32) {
	for start := 0; start < len(b.samples); start += wave.ChunkSize {
		chunk := w.Synthesize(uint64(start), wave.ChunkSize, vars)
		copy(b.samples[start:], chunk[:])
	}
}

// Sink returns a write-only view of the buffer.
func (b *Buffer) Sink() *Sink {
	return &Sink{buf: b}
}

// ReadSamples copies samples from the read cursor into dst.
func (b *Buffer) ReadSamples(dst []float32) (int, error) {
	if b.cursor >= len(b.samples) {
		return 0, io.EOF
	}

	n := copy(dst, b.samples[b.cursor:])
	b.cursor += n

	if b.cursor >= len(b.samples) {
		return n, io.EOF
	}

	return n, nil
}

// Rewind moves the read cursor back to the first sample.
func (b *Buffer) Rewind() {
	b.cursor = 0
}

// Sink is a write-only view of a Buffer.
type Sink struct {
	buf *Buffer
}

// Len returns the number of writable samples.
func (s *Sink) Len() int { return len(s.buf.samples) }

// Set writes sample i. It panics if i is out of range.
func (s *Sink) Set(i int, v float32) {
	s.buf.samples[i] = v
}
