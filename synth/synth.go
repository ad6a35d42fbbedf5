// SPDX-License-Identifier: EPL-2.0

// Package synth evaluates per-sample signal expressions.
//
// An expression is an ordinary Go function that chains scalar operations on
// a Frame, the evaluation context of one output sample:
//
//	s := synth.New(48000)
//	s.Gen(buf.Sink(), func(fc *synth.Frame) synth.Signal {
//	    return fc.Freq(440).Abs().Gain(fc.Freq(440).Sine())
//	})
//
// Every operation is evaluated immediately against the frame's tick, which
// is shared by all operations of one evaluation.
package synth

import (
	"math"

	"github.com/ik5/twang/osc"
)

// Sink is a write-only view of an audio buffer.
type Sink interface {
	// Len is the number of samples the sink accepts.
	Len() int
	// Set writes sample i.
	Set(i int, v float32)
}

// Signal is the scalar value of an expression at one frame.
type Signal float64

// Abs returns |s|.
func (s Signal) Abs() Signal { return Signal(math.Abs(float64(s))) }

// Gain multiplies s by g.
func (s Signal) Gain(g Signal) Signal { return s * g }

// Invert negates s.
func (s Signal) Invert() Signal { return -s }

// Sine shapes a phase in [-1, 1] into a sine-shaped amplitude, the same
// -cos(π·x) shaping as wave.Sine.
func (s Signal) Sine() Signal {
	return Signal(-math.Cos(float64(float32(s) * math.Pi)))
}

// Frame is the evaluation context of one output sample.
type Frame struct {
	tick       uint64
	sampleRate int
	vars       []float32
}

// Tick returns the frame position in samples since the synthesizer started.
func (fc *Frame) Tick() uint64 { return fc.tick }

// Freq returns the sawtooth phase in [-1, 1) of a hz oscillator at the
// frame's tick.
func (fc *Frame) Freq(hz float64) Signal {
	return Signal(osc.Phase(float64(fc.tick), hz, fc.sampleRate))
}

// Var returns control variable i, or 0 if it is not set.
func (fc *Frame) Var(i int) Signal {
	if i < 0 || i >= len(fc.vars) {
		return 0
	}

	return Signal(fc.vars[i])
}

// Synth drives an expression at sample rate. It keeps a tick counter that
// only moves forward, so consecutive Gen calls continue where the previous
// one stopped. A Synth is not safe for concurrent use.
type Synth struct {
	sampleRate int
	elapsed    uint64
	vars       []float32
}

// New returns a Synth at sampleRate starting from tick zero.
func New(sampleRate int) *Synth {
	return &Synth{sampleRate: sampleRate}
}

// SetVars sets the control variables visible to later evaluations.
func (s *Synth) SetVars(vars []float32) { s.vars = vars }

// Elapsed returns the number of samples generated so far.
func (s *Synth) Elapsed() uint64 { return s.elapsed }

// SampleRate returns the rate the expression is evaluated at.
func (s *Synth) SampleRate() int { return s.sampleRate }

// Reset rewinds the tick counter to zero.
func (s *Synth) Reset() { s.elapsed = 0 }

// Gen evaluates expr once per sink slot and writes the results in order.
func (s *Synth) Gen(sink Sink, expr func(fc *Frame) Signal) {
	fc := Frame{sampleRate: s.sampleRate, vars: s.vars}

	for i := range sink.Len() {
		fc.tick = s.elapsed
		sink.Set(i, float32(expr(&fc)))
		s.elapsed++
	}
}
