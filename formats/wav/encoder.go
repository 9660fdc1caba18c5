// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/slicewave/utils"
)

// WriteFloat encodes planar float32 channels as integer PCM. All channels
// must have the same length. bitDepth is 16, 24 or 32.
func WriteFloat(w io.WriteSeeker, sampleRate, bitDepth int, channels [][]float32) error {
	if len(channels) == 0 {
		return ErrNoChannels
	}

	switch bitDepth {
	case 16, 24, 32:
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	frames := len(channels[0])
	for _, ch := range channels[1:] {
		if len(ch) != frames {
			return ErrChannelLengthMismatch
		}
	}

	numChans := len(channels)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: numChans, SampleRate: sampleRate},
		Data:           make([]int, frames*numChans),
		SourceBitDepth: bitDepth,
	}

	for f := range frames {
		for c, ch := range channels {
			buf.Data[f*numChans+c] = utils.FloatToPCM(ch[f], bitDepth)
		}
	}

	enc := gowav.NewEncoder(w, sampleRate, bitDepth, numChans, formatPCM)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing wav pcm: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav header: %w", err)
	}

	return nil
}
