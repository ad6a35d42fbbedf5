// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// maxEmptyReads bounds how many times a source may return no data without
// an error before the resampler gives up.
const maxEmptyReads = 100

// Resampler streams from src to target sample rate using cubic interpolation.
// Works on interleaved samples; preserves channel count.
// Includes basic anti-aliasing filtering when downsampling.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames per output frame
	channels int

	// Four frames of history for cubic interpolation:
	// window[0] = t-1, window[1] = t0, window[2] = t+1, window[3] = t+2.
	// real marks frames read from the source rather than padded.
	window [4][]float32
	real   [4]bool
	primed bool

	// Position between window[1] and window[2], in source frames.
	pos float64

	srcBuf []float32
	srcPos int
	srcLen int
	srcEOF bool

	// One-pole low-pass state, enabled when downsampling.
	lowpass      bool
	filterPrimed bool
	alpha        float32
	state        []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := max(src.Channels(), 1)

	var step float64
	if dstRate > 0 {
		step = float64(src.SampleRate()) / float64(dstRate)
	}

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		step:     step,
		channels: channels,
		srcBuf:   make([]float32, 1024*channels),
		lowpass:  step > 1.0,
		alpha:    0.5,
		state:    make([]float32, channels),
	}

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	err := r.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// readFrame copies the next source frame into frame. It reports false once
// the source is exhausted.
func (r *Resampler) readFrame(frame []float32) (bool, error) {
	for empty := 0; r.srcPos+r.channels > r.srcLen; {
		if r.srcEOF {
			return false, nil
		}

		if empty >= maxEmptyReads {
			return false, io.ErrNoProgress
		}

		// Keep a partial trailing frame so channels stay aligned.
		rest := copy(r.srcBuf, r.srcBuf[r.srcPos:r.srcLen])
		r.srcPos = 0

		n, err := r.src.ReadSamples(r.srcBuf[rest:])
		r.srcLen = rest + n
		if n == 0 {
			empty++
		}

		if err == io.EOF {
			r.srcEOF = true
		} else if err != nil {
			return false, fmt.Errorf("%w", err)
		}
	}

	copy(frame, r.srcBuf[r.srcPos:r.srcPos+r.channels])
	r.srcPos += r.channels

	if r.lowpass {
		if !r.filterPrimed {
			// Start the filter at the first frame to avoid a warm-up ramp.
			copy(r.state, frame)
			r.filterPrimed = true
		}

		for c := range frame {
			frame[c] = r.alpha*frame[c] + (1-r.alpha)*r.state[c]
			r.state[c] = frame[c]
		}
	}

	return true, nil
}

// advance shifts the window by one frame and reads a new t+2 frame, padding
// with the previous frame once the source is exhausted.
func (r *Resampler) advance() error {
	first := r.window[0]
	copy(r.window[:], r.window[1:])
	copy(r.real[:], r.real[1:])
	r.window[3] = first

	ok, err := r.readFrame(r.window[3])
	if err != nil {
		return err
	}

	if !ok {
		copy(r.window[3], r.window[2])
	}
	r.real[3] = ok

	return nil
}

func (r *Resampler) prime() error {
	ok, err := r.readFrame(r.window[1])
	if err != nil || !ok {
		return err
	}

	copy(r.window[0], r.window[1])
	r.real[0], r.real[1] = false, true

	for i := 2; i < 4; i++ {
		ok, err := r.readFrame(r.window[i])
		if err != nil {
			return err
		}

		if !ok {
			copy(r.window[i], r.window[i-1])
		}
		r.real[i] = ok
	}

	r.primed = true
	return nil
}

// ReadSamples produces dst samples at r.dstRate.
// dst length should be a multiple of r.channels.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if r.dstRate <= 0 || r.src.SampleRate() <= 0 {
		return 0, ErrInvalidSampleRate
	}

	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
		if !r.primed {
			return 0, io.EOF
		}
	}

	written := 0
	frames := len(dst) / r.channels

	for written < frames {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		// Stop once t0 runs past the last source frame.
		if !r.real[1] {
			return written * r.channels, io.EOF
		}

		x := float32(r.pos)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			out[c] = cubicInterpolate(r.window[0][c], r.window[1][c], r.window[2][c], r.window[3][c], x)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}

// cubicInterpolate evaluates a Catmull-Rom spline between y1 and y2 at
// x in [0, 1].
func cubicInterpolate(y0, y1, y2, y3, x float32) float32 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2
	a3 := y1

	return a0*x*x*x + a1*x*x + a2*x + a3
}
