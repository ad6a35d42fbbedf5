// SPDX-License-Identifier: EPL-2.0

package twang

import (
	"github.com/ik5/twang/audio"
	"github.com/ik5/twang/synth"
	"github.com/ik5/twang/wave"
)

// Render allocates frames samples at sampleRate and fills them from w,
// driving the graph from elapsed 0 one chunk at a time. vars is handed to
// every Synthesize call.
func Render(w wave.Wave, sampleRate, frames int, vars []float32) *audio.Buffer {
	buf := audio.NewSilence(sampleRate, frames)
	buf.Generate(w, vars)

	return buf
}

// RenderExpr allocates frames samples at sampleRate and evaluates expr once
// per sample, starting at tick 0.
func RenderExpr(sampleRate, frames int, expr func(fc *synth.Frame) synth.Signal) *audio.Buffer {
	buf := audio.NewSilence(sampleRate, frames)
	synth.New(sampleRate).Gen(buf.Sink(), expr)

	return buf
}
