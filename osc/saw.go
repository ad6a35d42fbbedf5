// SPDX-License-Identifier: EPL-2.0

// Package osc provides leaf generators for wave graphs.
package osc

import (
	"math"

	"github.com/ik5/twang/wave"
)

// Saw is a sawtooth oscillator. Its output is a phase-domain signal that
// rises from -1 to 1 once per cycle, ready to be shaped by wave.NewSine.
//
// The phase is recomputed from elapsed on every call and never accumulated,
// so any chunk can be reproduced by seeking. Frequencies at or below zero are
// not rejected; the output is whatever the arithmetic produces.
type Saw struct {
	hz         wave.Hz
	sampleRate int
}

// NewSaw creates a sawtooth at hz for a session running at sampleRate.
func NewSaw(sampleRate int, hz wave.Hz) *Saw {
	return &Saw{
		hz:         hz,
		sampleRate: sampleRate,
	}
}

// Frequency returns the oscillator frequency.
func (s *Saw) Frequency() wave.Hz { return s.hz }

// SampleRate returns the session sample rate the oscillator was built for.
func (s *Saw) SampleRate() int { return s.sampleRate }

func (s *Saw) Synthesize(elapsed, interval uint64, _ []float32) wave.Chunk {
	var chunk wave.Chunk

	for i := range chunk {
		chunk[i] = float32(Phase(wave.Tick(elapsed, interval, i), s.hz.Float(), s.sampleRate))
	}

	return chunk
}

// Phase returns the sawtooth phase in [-1, 1) of a hz oscillator at tick,
// for a session running at sampleRate.
func Phase(tick, hz float64, sampleRate int) float64 {
	_, frac := math.Modf(tick * hz / float64(sampleRate))
	if frac < 0 {
		frac++
	}

	return frac*2 - 1
}
