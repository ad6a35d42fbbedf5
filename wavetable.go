// SPDX-License-Identifier: EPL-2.0

package twang

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/twang/audio"
	"github.com/ik5/twang/osc"
)

// LoadWavetable decodes a clip in the given format ("wav", "aiff", "mp3" or
// "ogg"), converts it to mono at sampleRate and returns a sampler that loops
// it.
func LoadWavetable(r io.Reader, format string, sampleRate int) (*osc.Sampler, error) {
	dec, ok := NewRegistry().Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	src, err := dec.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding %s wavetable: %w", format, err)
	}
	defer src.Close()

	samples, err := ResampleToMono(src, sampleRate, src.BufSize())
	if err != nil {
		return nil, fmt.Errorf("converting %s wavetable: %w", format, err)
	}

	return osc.NewSampler(samples), nil
}

// ResampleToMono runs src through a resampler to targetRate and a mono
// mixer, and collects every resulting sample.
//
// bufferSize is the read block size. Larger blocks need fewer reads but
// more memory.
func ResampleToMono(src audio.Source, targetRate int, bufferSize int) ([]float32, error) {
	mono := audio.NewMonoMixer(audio.NewResampler(src, targetRate))

	bufferSize = max(bufferSize, 1)

	out := make([]float32, 0, bufferSize)
	buf := make([]float32, bufferSize)

	for {
		n, err := mono.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return out, nil
}
