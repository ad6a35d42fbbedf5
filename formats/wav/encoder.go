// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/twang/audio"
	"github.com/ik5/twang/sample"
)

// Encode drains src into w as an integer PCM WAV file at bitDepth (8, 16, 24
// or 32). Samples outside [-1, 1] are clamped. The channel layout and sample
// rate of src are kept. w must be seekable so the header sizes can be
// patched once the length is known.
func Encode(w io.WriteSeeker, src audio.Source, bitDepth int) error {
	if !supportedBitDepth(bitDepth) {
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	channels := max(src.Channels(), 1)
	enc := wav.NewEncoder(w, src.SampleRate(), bitDepth, channels, formatPCM)

	size := max(src.BufSize(), channels)
	size -= size % channels

	buf := make([]float32, size)
	intBuf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  src.SampleRate(),
		},
		Data:           make([]int, size),
		SourceBitDepth: bitDepth,
	}

	written := 0

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			intBuf.Data = intBuf.Data[:n]
			for i, v := range buf[:n] {
				intBuf.Data[i] = sample.Quantize(v, bitDepth)
			}

			if werr := enc.Write(intBuf); werr != nil {
				return fmt.Errorf("writing wav samples: %w", werr)
			}
			written += n
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("reading samples: %w", err)
		}
	}

	if written == 0 {
		// Forces the header out for an empty file.
		intBuf.Data = intBuf.Data[:0]
		if err := enc.Write(intBuf); err != nil {
			return fmt.Errorf("writing wav header: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}

	return nil
}
