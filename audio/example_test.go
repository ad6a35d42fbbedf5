// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"fmt"
	"io"

	"github.com/ik5/twang/audio"
	"github.com/ik5/twang/internal/audiotest"
)

// Example_resampler demonstrates how to use the Resampler to change sample rates.
func Example_resampler() {
	// One second of a 440 Hz tone at 48 kHz.
	source := audiotest.NewSineSource(48000, 1, 48000, 440.0)

	resampler := audio.NewResampler(source, 16000)

	fmt.Printf("Output sample rate: %d Hz\n", resampler.SampleRate())
	fmt.Printf("Channels: %d\n", resampler.Channels())

	buf := make([]float32, 4096)
	totalSamples := 0

	for {
		n, err := resampler.ReadSamples(buf)
		totalSamples += n

		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
	}

	fmt.Printf("Total samples read: %d\n", totalSamples)
	// Output:
	// Output sample rate: 16000 Hz
	// Channels: 1
	// Total samples read: 16000
}

// Example_monoMixer demonstrates converting stereo to mono.
func Example_monoMixer() {
	source := audiotest.NewSineSource(16000, 2, 16000, 440.0)

	mono := audio.NewMonoMixer(source)

	fmt.Printf("Input channels: %d\n", source.Channels())
	fmt.Printf("Output channels: %d\n", mono.Channels())
	// Output:
	// Input channels: 2
	// Output channels: 1
}

// Example_buffer renders a short constant signal and reads it back.
func Example_buffer() {
	buf := audio.NewSilence(8000, 4000)
	buf.Generate(audiotest.Constant(0.5), nil)

	fmt.Printf("Duration: %v\n", buf.Duration())
	fmt.Printf("First sample: %v\n", buf.Samples()[0])
	// Output:
	// Duration: 500ms
	// First sample: 0.5
}
