// SPDX-License-Identifier: EPL-2.0

//go:build headless

package playback

import (
	"context"

	"github.com/ik5/twang/audio"
)

// Play always fails in headless builds.
func Play(_ context.Context, _ audio.Source) error {
	return ErrNoAudioDevice
}
