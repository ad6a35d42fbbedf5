// SPDX-License-Identifier: EPL-2.0

package osc

import (
	"math"

	"github.com/ik5/twang/sample"
	"github.com/ik5/twang/wave"
)

// Sampler loops a mono clip. Position i of a chunk reads the clip at
// wave.Tick(elapsed, interval, i) modulo the clip length, so playback is
// seekable like any other oscillator.
type Sampler struct {
	clip []float32
}

// NewSampler creates a sampler over samples. The slice is copied and every
// value is clamped to [-1, 1]. An empty clip produces silence.
func NewSampler(samples []float32) *Sampler {
	clip := make([]float32, len(samples))
	for i, v := range samples {
		clip[i] = sample.Clamp(v)
	}

	return &Sampler{clip: clip}
}

// Len returns the clip length in samples.
func (s *Sampler) Len() int { return len(s.clip) }

func (s *Sampler) Synthesize(elapsed, interval uint64, _ []float32) wave.Chunk {
	var chunk wave.Chunk

	n := len(s.clip)
	if n == 0 {
		return chunk
	}

	for i := range chunk {
		tick := math.Floor(wave.Tick(elapsed, interval, i))
		chunk[i] = s.clip[int(math.Mod(tick, float64(n)))]
	}

	return chunk
}
