// SPDX-License-Identifier: EPL-2.0

// Package twang renders audio from composable wave generators.
//
// A signal is described as a graph of generators from the wave and osc
// packages, or as a per-sample expression evaluated by the synth package,
// and rendered into an audio.Buffer. Buffers are ordinary audio sources, so
// they can be resampled, mixed, written with formats/wav or played back.
//
// # Rendering a Wave Graph
//
// Chunk-based generators produce wave.ChunkSize samples per call:
//
//	saw := osc.NewSaw(48000, 220)
//	buf := twang.Render(wave.NewSine(saw), 48000, 5*48000, nil)
//
// # Rendering an Expression
//
// The synth package evaluates a closure once per sample, with every
// operation of one evaluation sharing the same tick:
//
//	buf := twang.RenderExpr(48000, 5*48000, func(fc *synth.Frame) synth.Signal {
//	    return fc.Freq(220).Abs().Gain(fc.Freq(220).Sine())
//	})
//
// # Wavetables
//
// Recorded clips are decoded, folded to mono at the render rate and looped
// by an osc.Sampler:
//
//	f, _ := os.Open("pluck.wav")
//	table, err := twang.LoadWavetable(f, "wav", 48000)
//	buf := twang.Render(table, 48000, 48000, nil)
//
// NewRegistry returns a registry with every built-in decoder.
//
// # Writing WAV Files
//
//	out, _ := os.Create("tone.wav")
//	err := wav.Encode(out, buf, 16)
//
// # Sample Format
//
// Samples are float32 in [-1.0, 1.0]. Graphs may exceed that range; values
// are clamped when quantized to PCM.
package twang
