// SPDX-License-Identifier: EPL-2.0

package samplebuf

import (
	"fmt"
	"time"
)

// Buffer holds planar float32 samples. It is treated as immutable once
// built: every accessor hands out views, never copies, and nothing in this
// module writes through them.
type Buffer struct {
	sampleRate int
	channels   [][]float32
}

// New wraps planar channel data. All channels must have the same length.
func New(sampleRate int, channels [][]float32) (*Buffer, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	if len(channels) > 0 {
		frames := len(channels[0])
		for _, ch := range channels[1:] {
			if len(ch) != frames {
				return nil, ErrChannelLengthMismatch
			}
		}
	}

	return &Buffer{sampleRate: sampleRate, channels: channels}, nil
}

// NewSilent allocates a zeroed buffer.
func NewSilent(sampleRate, numChannels, numFrames int) *Buffer {
	channels := make([][]float32, numChannels)
	for i := range channels {
		channels[i] = make([]float32, numFrames)
	}

	return &Buffer{sampleRate: sampleRate, channels: channels}
}

func (b *Buffer) SampleRate() int  { return b.sampleRate }
func (b *Buffer) NumChannels() int { return len(b.channels) }

func (b *Buffer) NumFrames() int {
	if len(b.channels) == 0 {
		return 0
	}
	return len(b.channels[0])
}

func (b *Buffer) Duration() time.Duration {
	if b.sampleRate <= 0 {
		return 0
	}
	return time.Duration(b.NumFrames()) * time.Second / time.Duration(b.sampleRate)
}

// Channel returns the samples of channel ch. Panics when ch is out of range.
func (b *Buffer) Channel(ch int) []float32 {
	return b.channels[ch]
}

// Channels returns all channels in order.
func (b *Buffer) Channels() [][]float32 {
	return b.channels
}

// Frames returns channel ch starting at frame start, the read pointer of
// the waveform collaborator contract.
func (b *Buffer) Frames(ch, start int) []float32 {
	return b.channels[ch][start:]
}

// FindMinMax scans n frames of channel ch starting at start. The range is
// clipped to the buffer; an empty range yields (0, 0).
func (b *Buffer) FindMinMax(ch, start, n int) (lo, hi float32) {
	data := b.channels[ch]

	start = max(start, 0)
	end := min(start+n, len(data))
	if start >= end {
		return 0, 0
	}

	lo, hi = data[start], data[start]
	for _, v := range data[start+1 : end] {
		if v < lo {
			lo = v
		} else if v > hi {
			hi = v
		}
	}

	return lo, hi
}

// Slice returns the frames [start, end) as a buffer sharing memory with b.
func (b *Buffer) Slice(start, end int) (*Buffer, error) {
	if start < 0 || end > b.NumFrames() || start > end {
		return nil, fmt.Errorf("%w: [%d, %d) of %d frames", ErrRangeOutOfBounds, start, end, b.NumFrames())
	}

	channels := make([][]float32, len(b.channels))
	for i, ch := range b.channels {
		channels[i] = ch[start:end:end]
	}

	return &Buffer{sampleRate: b.sampleRate, channels: channels}, nil
}

// Split cuts b into n slices of equal length; the last slice takes the
// remainder.
func (b *Buffer) Split(n int) ([]*Buffer, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d slices", ErrRangeOutOfBounds, n)
	}

	frames := b.NumFrames()
	step := frames / n
	out := make([]*Buffer, 0, n)

	for i := range n {
		end := (i + 1) * step
		if i == n-1 {
			end = frames
		}

		s, err := b.Slice(i*step, end)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}

// Concat joins buffers end to end. They must agree on rate and channels.
func Concat(bufs ...*Buffer) (*Buffer, error) {
	if len(bufs) == 0 {
		return nil, ErrNothingToJoin
	}

	rate, numChans, total := bufs[0].sampleRate, bufs[0].NumChannels(), 0
	for _, b := range bufs {
		if b.sampleRate != rate || b.NumChannels() != numChans {
			return nil, ErrFormatMismatch
		}
		total += b.NumFrames()
	}

	channels := make([][]float32, numChans)
	for c := range channels {
		channels[c] = make([]float32, 0, total)
		for _, b := range bufs {
			channels[c] = append(channels[c], b.channels[c]...)
		}
	}

	return &Buffer{sampleRate: rate, channels: channels}, nil
}
