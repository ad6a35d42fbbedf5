// SPDX-License-Identifier: EPL-2.0

// Command twang renders a tone or a looped wavetable to a WAV file and can
// play it on the default output device.
//
// Usage:
//
//	twang -mode sine -frequency 220 -length 5 -output tone.wav
//	twang -mode wavetable -wavetable pluck.ogg -output loop.wav -play
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/ik5/twang"
	"github.com/ik5/twang/audio"
	"github.com/ik5/twang/formats/wav"
	"github.com/ik5/twang/internal/playback"
	"github.com/ik5/twang/osc"
	"github.com/ik5/twang/synth"
	"github.com/ik5/twang/wave"
)

var errUnknownMode = errors.New("unknown mode")

func main() {
	err := run(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	flagSet := flag.NewFlagSet("twang", flag.ContinueOnError)

	output := flagSet.String("output", "output.wav", "filename to write to, empty to skip writing")
	mode := flagSet.String("mode", "sine", "signal to render: saw, sine, voice or wavetable")
	frequency := flagSet.Float64("frequency", 220, "frequency in hertz of the oscillator")
	length := flagSet.Float64("length", 5, "length in seconds of the rendered audio")
	rate := flagSet.Int("rate", 48000, "sample rate in hertz")
	bits := flagSet.Int("bits", 16, "bit depth of the output file: 8, 16, 24 or 32")
	table := flagSet.String("wavetable", "", "audio clip to loop in wavetable mode (wav, aiff, mp3 or ogg)")
	play := flagSet.Bool("play", false, "play the rendered audio")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	if *rate <= 0 {
		return fmt.Errorf("%w: %d", audio.ErrInvalidSampleRate, *rate)
	}

	frames := int(float64(*rate) * *length)

	log.Printf("rendering %g sec of %s at %d hz", *length, *mode, *rate)

	buf, err := render(*mode, *rate, frames, wave.Hz(*frequency), *table)
	if err != nil {
		return err
	}

	if *output != "" {
		err = writeFile(*output, buf, *bits)
		if err != nil {
			return err
		}

		log.Printf("wrote %d samples to %s", buf.Len(), *output)
	}

	if *play {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		buf.Rewind()

		err = playback.Play(ctx, buf)
		if err != nil {
			return fmt.Errorf("playing: %w", err)
		}
	}

	return nil
}

func render(mode string, rate, frames int, hz wave.Hz, table string) (*audio.Buffer, error) {
	switch mode {
	case "saw":
		return twang.Render(osc.NewSaw(rate, hz), rate, frames, nil), nil
	case "sine":
		return twang.Render(wave.NewSine(osc.NewSaw(rate, hz)), rate, frames, nil), nil
	case "voice":
		f := hz.Float()
		return twang.RenderExpr(rate, frames, func(fc *synth.Frame) synth.Signal {
			return fc.Freq(f).Abs().Gain(fc.Freq(f).Sine())
		}), nil
	case "wavetable":
		sampler, err := loadWavetable(table, rate)
		if err != nil {
			return nil, err
		}
		return twang.Render(sampler, rate, frames, nil), nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownMode, mode)
	}
}

func loadWavetable(path string, rate int) (*osc.Sampler, error) {
	if path == "" {
		return nil, errors.New("wavetable mode needs -wavetable")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", path, err)
	}
	defer file.Close()

	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	sampler, err := twang.LoadWavetable(file, format, rate)
	if err != nil {
		return nil, err
	}

	log.Printf("loaded %d sample wavetable from %s", sampler.Len(), path)

	return sampler, nil
}

func writeFile(path string, buf *audio.Buffer, bits int) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", path, err)
	}
	defer file.Close()

	err = wav.Encode(file, buf, bits)
	if err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}

	return file.Close()
}
