// SPDX-License-Identifier: EPL-2.0

package playback

import "errors"

// ErrNoAudioDevice is returned when no output device can be opened, or when
// the binary was built with the headless tag.
var ErrNoAudioDevice = errors.New("no audio output device")
