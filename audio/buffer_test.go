// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"testing"
	"time"

	"github.com/ik5/twang/internal/audiotest"
	"github.com/ik5/twang/wave"
)

func TestNewSilence(t *testing.T) {
	t.Parallel()

	buf := NewSilence(48000, 1000)

	if buf.Len() != 1000 {
		t.Errorf("Len() = %d, want 1000", buf.Len())
	}
	if buf.SampleRate() != 48000 {
		t.Errorf("SampleRate() = %d, want 48000", buf.SampleRate())
	}
	if buf.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", buf.Channels())
	}

	for i, v := range buf.Samples() {
		if v != 0 {
			t.Fatalf("sample %d = %v, want silence", i, v)
		}
	}
}

func TestNewSilence_NegativeFrames(t *testing.T) {
	t.Parallel()

	if got := NewSilence(8000, -5).Len(); got != 0 {
		t.Errorf("Len() = %d, want 0", got)
	}
}

func TestBuffer_Duration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rate, frames int
		want         time.Duration
	}{
		{48000, 48000 * 5, 5 * time.Second},
		{8000, 4000, 500 * time.Millisecond},
		{0, 100, 0},
	}

	for _, tt := range tests {
		if got := NewSilence(tt.rate, tt.frames).Duration(); got != tt.want {
			t.Errorf("Duration() of %d frames at %d Hz = %v, want %v", tt.frames, tt.rate, got, tt.want)
		}
	}
}

// TestBuffer_Generate checks that every position receives the tick it was
// generated at, including the truncated last chunk.
func TestBuffer_Generate(t *testing.T) {
	t.Parallel()

	frames := 3*wave.ChunkSize + 5
	buf := NewSilence(48000, frames)
	buf.Generate(audiotest.Ticks(1), nil)

	for i, v := range buf.Samples() {
		if v != float32(i) {
			t.Errorf("sample %d = %v, want %d", i, v, i)
		}
	}
}

func TestBuffer_GeneratePassesVars(t *testing.T) {
	t.Parallel()

	buf := NewSilence(48000, wave.ChunkSize)
	buf.Generate(wave.NewVarGain(audiotest.Constant(1), 0), []float32{0.25})

	for i, v := range buf.Samples() {
		if v != 0.25 {
			t.Errorf("sample %d = %v, want 0.25", i, v)
		}
	}
}

func TestBuffer_Sink(t *testing.T) {
	t.Parallel()

	buf := NewSilence(8000, 4)
	sink := buf.Sink()

	if sink.Len() != 4 {
		t.Fatalf("Sink().Len() = %d, want 4", sink.Len())
	}

	sink.Set(2, 0.5)
	if buf.Samples()[2] != 0.5 {
		t.Errorf("sample 2 = %v, want 0.5", buf.Samples()[2])
	}
}

func TestBuffer_ReadSamples(t *testing.T) {
	t.Parallel()

	buf := NewSilence(8000, 10)
	for i := range buf.Len() {
		buf.Sink().Set(i, float32(i)/10)
	}

	dst := make([]float32, 4)
	var got []float32

	for {
		n, err := buf.ReadSamples(dst)
		got = append(got, dst[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if len(got) != 10 {
		t.Fatalf("read %d samples, want 10", len(got))
	}

	n, err := buf.ReadSamples(dst)
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after end = %d, %v, want 0, EOF", n, err)
	}

	buf.Rewind()
	n, err = buf.ReadSamples(dst)
	if n != 4 || err != nil || dst[3] != 0.3 {
		t.Errorf("ReadSamples() after Rewind = %d, %v, dst[3] = %v", n, err, dst[3])
	}

	if err := buf.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func BenchmarkBuffer_Generate(b *testing.B) {
	buf := NewSilence(48000, 48000)
	w := wave.NewSine(audiotest.Ticks(48000))

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		buf.Generate(w, nil)
	}
}
