// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"math"
	"testing"

	"github.com/ik5/twang/internal/audiotest"
)

func TestMonoMixer_MonoPassthrough(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(8000, 1, 100, 0.5)
	mono := NewMonoMixer(src)

	buf := make([]float32, 100)
	n, err := mono.ReadSamples(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n != 100 {
		t.Fatalf("ReadSamples() n = %d, want 100", n)
	}

	for i := range n {
		if buf[i] != 0.5 {
			t.Errorf("buf[%d] = %v, want 0.5", i, buf[i])
		}
	}
}

func TestMonoMixer_Averages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		want     float32
	}{
		{name: "stereo", channels: 2, want: 0.5},
		{name: "quad", channels: 4, want: 1.5},
		{name: "5.1", channels: 6, want: 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// Channel c carries the value c.
			src := audiotest.NewMockSource(8000, tt.channels, 50, func(_ int, ch int) float32 {
				return float32(ch)
			})
			mono := NewMonoMixer(src)

			buf := make([]float32, 50)
			n, err := mono.ReadSamples(buf)
			if err != nil && err != io.EOF {
				t.Fatalf("ReadSamples() error = %v", err)
			}
			if n != 50 {
				t.Fatalf("ReadSamples() n = %d, want 50", n)
			}

			for i := range n {
				if math.Abs(float64(buf[i]-tt.want)) > 1e-6 {
					t.Errorf("buf[%d] = %v, want %v", i, buf[i], tt.want)
				}
			}
		})
	}
}

func TestMonoMixer_EOF(t *testing.T) {
	t.Parallel()

	mono := NewMonoMixer(audiotest.NewSilentSource(8000, 2, 10))

	buf := make([]float32, 100)
	n, err := mono.ReadSamples(buf)
	if n != 10 || err != io.EOF {
		t.Errorf("first read = %d, %v, want 10, EOF", n, err)
	}

	n, err = mono.ReadSamples(buf)
	if n != 0 || err != io.EOF {
		t.Errorf("second read = %d, %v, want 0, EOF", n, err)
	}
}

func TestMonoMixer_EmptyBuffer(t *testing.T) {
	t.Parallel()

	mono := NewMonoMixer(audiotest.NewSilentSource(8000, 2, 10))

	n, err := mono.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v, want 0, nil", n, err)
	}
}

func TestMonoMixer_LargeBuffer(t *testing.T) {
	t.Parallel()

	// Larger than the preallocated scratch space.
	mono := NewMonoMixer(audiotest.NewConstantSource(8000, 2, 20000, 0.25))

	buf := make([]float32, 20000)
	n, err := mono.ReadSamples(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 20000 {
		t.Errorf("ReadSamples() n = %d, want 20000", n)
	}
}

func TestMonoMixer_Metadata(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(22050, 2, 10)
	mono := NewMonoMixer(src)

	if mono.SampleRate() != 22050 {
		t.Errorf("SampleRate() = %d, want 22050", mono.SampleRate())
	}
	if mono.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", mono.Channels())
	}
	if mono.BufSize() != src.BufSize() {
		t.Errorf("BufSize() = %d, want %d", mono.BufSize(), src.BufSize())
	}

	if err := mono.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if !src.Closed() {
		t.Error("Close() did not close the source")
	}
}

func BenchmarkMonoMixer_StereoToMono(b *testing.B) {
	src := audiotest.NewSineSource(44100, 2, math.MaxInt32, 440)
	mono := NewMonoMixer(src)
	buf := make([]float32, 4096)

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		_, _ = mono.ReadSamples(buf)
	}
}
