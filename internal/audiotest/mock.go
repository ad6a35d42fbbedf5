// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides sources and generators for tests.
package audiotest

import (
	"errors"
	"io"
	"math"

	"github.com/ik5/twang/wave"
)

// ErrMockRead is returned by sources built with NewFailingSource.
var ErrMockRead = errors.New("mock read failure")

// MockSource generates audio data for testing.
// It implements the audio.Source interface (without importing it to avoid cycles).
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // Total samples to generate (per channel)
	generated    int // Samples generated so far (per channel)
	waveform     func(sample int, channel int) float32
	fail         bool
	closed       bool
}

// NewMockSource creates a new mock audio source.
// totalSamples is the total number of samples per channel to generate.
// waveform is a function that generates sample values given sample index and channel.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

// NewSilentSource creates a mock source that generates silence (all zeros).
func NewSilentSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewConstantSource(sampleRate, channels, totalSamples, 0)
}

// NewSineSource creates a mock source that generates a sine wave.
func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, _ int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource creates a mock source with constant value.
func NewConstantSource(sampleRate, channels, totalSamples int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(int, int) float32 {
		return value
	})
}

// NewFailingSource creates a mock source whose reads fail with ErrMockRead.
func NewFailingSource(sampleRate, channels int) *MockSource {
	src := NewSilentSource(sampleRate, channels, math.MaxInt32)
	src.fail = true

	return src
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset resets the generated sample counter to allow re-reading
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.fail {
		return 0, ErrMockRead
	}

	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	if len(dst) > 0 && len(dst) < m.channels {
		return 0, io.ErrShortBuffer
	}

	frames := min(len(dst)/m.channels, m.totalSamples-m.generated)

	for frame := range frames {
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(m.generated+frame, ch)
		}
	}

	m.generated += frames

	if m.generated >= m.totalSamples {
		return frames * m.channels, io.EOF
	}

	return frames * m.channels, nil
}

// Ticks is a wave that writes the tick of every position, scaled by 1/scale,
// so tests can check which elapsed values a graph was driven with.
func Ticks(scale float64) wave.Wave {
	return wave.Func(func(elapsed, interval uint64, _ []float32) wave.Chunk {
		var c wave.Chunk
		for i := range c {
			c[i] = float32(wave.Tick(elapsed, interval, i) / scale)
		}
		return c
	})
}

// Constant is a wave that outputs v everywhere.
func Constant(v float32) wave.Wave {
	return wave.Func(func(uint64, uint64, []float32) wave.Chunk {
		var c wave.Chunk
		for i := range c {
			c[i] = v
		}
		return c
	})
}
