// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample pipeline that rendered and decoded audio
// flows through.
//
// The package contains:
//   - Source interface for audio input
//   - Buffer, a mono render target that is itself a Source
//   - Resampler for sample rate conversion
//   - MonoMixer for channel mixing
//   - Format registry for decoder registration
//
// # Source Interface
//
// The Source interface is the foundation of audio processing:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Decoders, buffers and processors all implement it and can be chained.
//
// # Rendering
//
// A Buffer receives the output of a wave graph, one chunk at a time:
//
//	buf := audio.NewSilence(48000, 48000*5)
//	buf.Generate(wave.NewSine(osc.NewSaw(48000, 220)), nil)
//
// Buffer.Sink exposes the same storage to per-sample expression evaluators.
//
// # Resampling
//
// The Resampler changes the sample rate using cubic interpolation, with a
// one-pole low-pass filter when downsampling:
//
//	resampler := audio.NewResampler(source, 16000)
//
// # Channel Mixing
//
// The MonoMixer converts multi-channel audio to mono by averaging:
//
//	mono := audio.NewMonoMixer(source)
//
// # Sample Format
//
// Samples are float32 in the range [-1.0, 1.0]. 0.0 is silence.
//
// # Error Handling
//
// ReadSamples returns io.EOF when no more data is available, possibly
// together with the last samples:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    process(buf[:n])
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
