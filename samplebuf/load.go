// SPDX-License-Identifier: EPL-2.0

package samplebuf

import (
	"fmt"
	"io"

	"github.com/ik5/slicewave/audio"
	"github.com/ik5/slicewave/utils"
)

// DefaultBlockSize is the number of interleaved values read per call.
const DefaultBlockSize = 4096

// Load drains src into a planar buffer. Trailing values that do not make
// up a whole frame are dropped. src is not closed.
func Load(src audio.Source, blockSize int) (*Buffer, error) {
	numChans := src.Channels()
	if numChans <= 0 {
		return nil, audio.ErrNoChannels
	}

	if blockSize < numChans {
		blockSize = DefaultBlockSize
	}
	blockSize -= blockSize % numChans

	var hint int
	if l, ok := src.(audio.Lengther); ok {
		hint = max(int(l.Frames()), 0)
	}

	channels := make([][]float32, numChans)
	for c := range channels {
		channels[c] = make([]float32, 0, hint)
	}

	buf := make([]float32, blockSize)
	for {
		n, err := src.ReadSamples(buf)

		frames := n / numChans
		for f := range frames {
			for c := range numChans {
				channels[c] = append(channels[c], buf[f*numChans+c])
			}
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("loading samples: %w", err)
		}
	}

	return New(src.SampleRate(), channels)
}

// Resample converts b to rate with cubic interpolation. The result has
// round(frames * rate / oldRate) frames.
func (b *Buffer) Resample(rate int) (*Buffer, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, rate)
	}
	if rate == b.sampleRate {
		return b, nil
	}

	ratio := float64(b.sampleRate) / float64(rate)
	outFrames := int(float64(b.NumFrames())/ratio + 0.5)

	channels := make([][]float32, len(b.channels))
	for c, in := range b.channels {
		out := make([]float32, outFrames)
		for i := range out {
			out[i] = utils.CubicAt(in, float64(i)*ratio)
		}
		channels[c] = out
	}

	return &Buffer{sampleRate: rate, channels: channels}, nil
}

// MixDown averages all channels into one. Mono buffers are returned as is.
func (b *Buffer) MixDown() *Buffer {
	if len(b.channels) <= 1 {
		return b
	}

	inv := 1 / float32(len(b.channels))
	out := make([]float32, b.NumFrames())
	for _, ch := range b.channels {
		for i, v := range ch {
			out[i] += v
		}
	}
	for i := range out {
		out[i] *= inv
	}

	return &Buffer{sampleRate: b.sampleRate, channels: [][]float32{out}}
}
