// SPDX-License-Identifier: EPL-2.0

// Package formats wires every bundled decoder into an audio.Registry.
package formats

import (
	"github.com/ik5/slicewave/audio"
	"github.com/ik5/slicewave/formats/aiff"
	"github.com/ik5/slicewave/formats/mp3"
	"github.com/ik5/slicewave/formats/vorbis"
	"github.com/ik5/slicewave/formats/wav"
)

// NewRegistry returns a registry keyed by the usual file extensions.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register(wav.Decoder{}, "wav", "wave")
	reg.Register(aiff.Decoder{}, "aif", "aiff")
	reg.Register(mp3.Decoder{}, "mp3")
	reg.Register(vorbis.Decoder{}, "ogg", "oga")

	return reg
}
