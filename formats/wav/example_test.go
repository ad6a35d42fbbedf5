// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ik5/twang/audio"
	"github.com/ik5/twang/formats/wav"
)

// Example_roundTrip encodes a rendered buffer and decodes it again.
func Example_roundTrip() {
	dir, err := os.MkdirTemp("", "wav-example")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer os.RemoveAll(dir)

	buf := audio.NewSilence(8000, 5)
	sink := buf.Sink()
	for i, v := range []float32{-0.5, -0.25, 0, 0.25, 0.5} {
		sink.Set(i, v)
	}

	path := filepath.Join(dir, "tone.wav")
	f, err := os.Create(path)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	if err := wav.Encode(f, buf, 16); err != nil {
		fmt.Printf("Encode error: %v\n", err)
		return
	}
	f.Close()

	f, err = os.Open(path)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer f.Close()

	source, err := wav.Decoder{}.Decode(f)
	if err != nil {
		fmt.Printf("Decode error: %v\n", err)
		return
	}

	out := make([]float32, 10)
	n, err := source.ReadSamples(out)
	if err != nil && err != io.EOF {
		fmt.Printf("Read error: %v\n", err)
		return
	}

	fmt.Printf("Sample rate: %d Hz\n", source.SampleRate())
	fmt.Printf("Samples: %v\n", out[:n])
	// Output:
	// Sample rate: 8000 Hz
	// Samples: [-0.5 -0.25 0 0.25 0.5]
}

// Example_errorNotWAV shows handling of invalid WAV files.
func Example_errorNotWAV() {
	invalidData := bytes.NewReader([]byte("This is not a WAV file"))

	_, err := wav.Decoder{}.Decode(invalidData)

	if errors.Is(err, wav.ErrNotWavFile) {
		fmt.Println("Detected: Not a valid WAV file")
	} else if err != nil {
		fmt.Printf("Other error: %v\n", err)
	}
	// Output: Detected: Not a valid WAV file
}
