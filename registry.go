// SPDX-License-Identifier: EPL-2.0

package twang

import (
	"github.com/ik5/twang/audio"
	"github.com/ik5/twang/formats/aiff"
	"github.com/ik5/twang/formats/mp3"
	"github.com/ik5/twang/formats/vorbis"
	"github.com/ik5/twang/formats/wav"
)

// NewRegistry returns a registry holding every built-in decoder, keyed by
// file extension without the dot.
func NewRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})

	return r
}
