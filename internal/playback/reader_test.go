// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/twang/internal/audiotest"
)

func decode(t *testing.T, data []byte) []float32 {
	t.Helper()

	if len(data)%bytesPerSample != 0 {
		t.Fatalf("got %d bytes, not a whole number of samples", len(data))
	}

	out := make([]float32, len(data)/bytesPerSample)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*bytesPerSample:]))
	}

	return out
}

func TestReader_EncodesFloat32LE(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(8000, 1, 100, func(i int, _ int) float32 {
		return float32(i)/100 - 0.5
	})

	data, err := io.ReadAll(NewReader(src))
	if err != nil {
		t.Fatalf("io.ReadAll() error = %v", err)
	}

	got := decode(t, data)
	if len(got) != 100 {
		t.Fatalf("decoded %d samples, want 100", len(got))
	}

	for i, v := range got {
		if want := float32(i)/100 - 0.5; v != want {
			t.Errorf("sample %d = %v, want %v", i, v, want)
		}
	}
}

// TestReader_OddReadSizes reads with buffers that split samples.
func TestReader_OddReadSizes(t *testing.T) {
	t.Parallel()

	for _, size := range []int{1, 3, 5, 7, 4097} {
		src := audiotest.NewConstantSource(8000, 1, 50, 0.25)
		r := NewReader(src)

		p := make([]byte, size)
		var data []byte

		for {
			n, err := r.Read(p)
			data = append(data, p[:n]...)

			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				t.Fatalf("size %d: Read() error = %v", size, err)
			}
		}

		got := decode(t, data)
		if len(got) != 50 {
			t.Fatalf("size %d: decoded %d samples, want 50", size, len(got))
		}

		for i, v := range got {
			if v != 0.25 {
				t.Fatalf("size %d: sample %d = %v, want 0.25", size, i, v)
			}
		}
	}
}

func TestReader_SourceError(t *testing.T) {
	t.Parallel()

	_, err := io.ReadAll(NewReader(audiotest.NewFailingSource(8000, 1)))
	if !errors.Is(err, audiotest.ErrMockRead) {
		t.Errorf("io.ReadAll() error = %v, want %v", err, audiotest.ErrMockRead)
	}
}

func TestReader_EmptyRead(t *testing.T) {
	t.Parallel()

	n, err := NewReader(audiotest.NewSilentSource(8000, 1, 10)).Read(nil)
	if n != 0 || err != nil {
		t.Errorf("Read(nil) = %d, %v, want 0, nil", n, err)
	}
}

func BenchmarkReader(b *testing.B) {
	p := make([]byte, 4096)

	b.ReportAllocs()

	for b.Loop() {
		r := NewReader(audiotest.NewSineSource(48000, 1, 48000, 440))
		for {
			if _, err := r.Read(p); err != nil {
				break
			}
		}
	}
}
