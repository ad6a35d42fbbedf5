// SPDX-License-Identifier: EPL-2.0

//go:build !headless

package playback

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/ik5/twang/audio"
)

const pollInterval = 10 * time.Millisecond

// oto allows a single context per process, so the first Play fixes the
// device rate and later sources are resampled to it.
var (
	deviceMu   sync.Mutex
	device     *oto.Context
	deviceRate int
)

func openDevice(sampleRate int) (*oto.Context, int, error) {
	deviceMu.Lock()
	defer deviceMu.Unlock()

	if device != nil {
		return device, deviceRate, nil
	}

	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrNoAudioDevice, err)
	}
	<-ready

	device, deviceRate = ctx, sampleRate

	return device, deviceRate, nil
}

// Play plays src on the default output device and blocks until it has
// finished or ctx is done. Multi-channel sources are folded to mono.
func Play(ctx context.Context, src audio.Source) error {
	if src.SampleRate() <= 0 {
		return audio.ErrInvalidSampleRate
	}

	dev, rate, err := openDevice(src.SampleRate())
	if err != nil {
		return err
	}

	var out audio.Source = src
	if rate != src.SampleRate() {
		out = audio.NewResampler(out, rate)
	}
	if out.Channels() != 1 {
		out = audio.NewMonoMixer(out)
	}

	player := dev.NewPlayer(NewReader(out))
	defer player.Close()

	player.Play()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for player.IsPlaying() {
		select {
		case <-ctx.Done():
			player.Pause()
			return fmt.Errorf("playback interrupted: %w", ctx.Err())
		case <-ticker.C:
		}
	}

	if err := player.Err(); err != nil {
		return fmt.Errorf("playback: %w", err)
	}

	return nil
}
