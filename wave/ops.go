// SPDX-License-Identifier: EPL-2.0

package wave

import "math"

// Sine shapes a phase-domain input, where one cycle spans [-1, 1], into a
// sine-shaped amplitude.
//
// The shaping is -cos(π·x). For a sawtooth phase x = 2p-1 this equals
// cos(2π·p), a sine wave leading by a quarter cycle.
type Sine struct {
	in Wave
}

// NewSine wraps in with sine shaping.
func NewSine(in Wave) *Sine {
	return &Sine{in: in}
}

func (s *Sine) Synthesize(elapsed, interval uint64, vars []float32) Chunk {
	chunk := s.in.Synthesize(elapsed, interval, vars)

	chunk.Amplify(math.Pi)
	chunk.Cosine()
	chunk.Invert()

	return chunk
}

// Abs folds its input into [0, 1]. A sawtooth phase becomes a triangle.
type Abs struct {
	in Wave
}

// NewAbs returns the absolute value of in.
func NewAbs(in Wave) *Abs {
	return &Abs{in: in}
}

func (a *Abs) Synthesize(elapsed, interval uint64, vars []float32) Chunk {
	chunk := a.in.Synthesize(elapsed, interval, vars)
	chunk.Abs()

	return chunk
}

// Gain scales its input, either by a fixed factor or by one of the control
// variables. The result is not clamped.
type Gain struct {
	in     Wave
	factor float32
	index  int
}

// NewGain scales in by a fixed factor.
func NewGain(in Wave, factor float32) *Gain {
	return &Gain{in: in, factor: factor, index: -1}
}

// NewVarGain scales in by vars[index], read on every call. A missing control
// variable silences the output.
func NewVarGain(in Wave, index int) *Gain {
	return &Gain{in: in, index: index}
}

func (g *Gain) Synthesize(elapsed, interval uint64, vars []float32) Chunk {
	chunk := g.in.Synthesize(elapsed, interval, vars)
	chunk.Amplify(g.amount(vars))

	return chunk
}

func (g *Gain) amount(vars []float32) float32 {
	if g.index < 0 {
		return g.factor
	}

	if g.index >= len(vars) {
		return 0
	}

	return vars[g.index]
}
