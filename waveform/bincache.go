// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"fmt"
	"math"
)

const notSet = -1

// RangeSource answers min/max queries over frame ranges of a channel.
type RangeSource interface {
	NumChannels() int
	FindMinMax(ch, start, n int) (lo, hi float32)
}

// BinCache stores the min and max sample of every bin, per channel, for
// one zoom level. Only the contiguous window [first, last] holds valid
// values; EnsureRange grows it and computes nothing twice.
type BinCache struct {
	src     RangeSource
	binSize float64
	numBins int

	min [][]float32
	max [][]float32

	first int
	last  int

	computed int
}

// NewBinCache returns an empty cache reading ranges from src.
func NewBinCache(src RangeSource) *BinCache {
	n := src.NumChannels()
	return &BinCache{
		src:   src,
		min:   make([][]float32, n),
		max:   make([][]float32, n),
		first: notSet,
		last:  notSet,
	}
}

// Reset sizes the cache for numBins bins of binSize frames and empties
// the calculated window.
func (c *BinCache) Reset(numBins int, binSize float64) {
	c.numBins = max(numBins, 0)
	c.binSize = binSize
	c.first, c.last = notSet, notSet

	for ch := range c.min {
		c.min[ch] = resize(c.min[ch], c.numBins)
		c.max[ch] = resize(c.max[ch], c.numBins)
	}
}

func resize(s []float32, n int) []float32 {
	if cap(s) >= n {
		return s[:n]
	}
	return make([]float32, n)
}

// Len is the number of bins at the current zoom.
func (c *BinCache) Len() int { return c.numBins }

// BinSize is the number of source frames per bin.
func (c *BinCache) BinSize() float64 { return c.binSize }

// Window returns the calculated range; ok is false while it is empty.
func (c *BinCache) Window() (first, last int, ok bool) {
	if c.first == notSet {
		return 0, 0, false
	}
	return c.first, c.last, true
}

// Computed is the number of bins computed since the cache was created.
// Each bin counts once regardless of the channel count.
func (c *BinCache) Computed() int { return c.computed }

// EnsureRange makes every bin in [first, last] valid. Bins already inside
// the window are not recomputed. A request disjoint from the window also
// fills the gap so the window stays contiguous. Indices outside
// [0, Len()) or first > last are programming errors and panic.
func (c *BinCache) EnsureRange(first, last int) {
	if first < 0 || last >= c.numBins || first > last {
		panic(fmt.Sprintf("waveform: bin range [%d, %d] outside [0, %d)", first, last, c.numBins))
	}

	if c.first == notSet {
		c.compute(first, last)
		c.first, c.last = first, last
		return
	}

	if first < c.first {
		c.compute(first, c.first-1)
		c.first = first
	}

	if last > c.last {
		c.compute(c.last+1, last)
		c.last = last
	}
}

func (c *BinCache) compute(first, last int) {
	span := int(c.binSize)

	for ch := range c.min {
		mins, maxs := c.min[ch], c.max[ch]
		for bin := first; bin <= last; bin++ {
			start := int(math.Floor(float64(bin) * c.binSize))
			mins[bin], maxs[bin] = c.src.FindMinMax(ch, start, span)
		}
	}

	c.computed += last - first + 1
}

func (c *BinCache) check(ch, bin int) {
	if ch < 0 || ch >= len(c.min) {
		panic(fmt.Sprintf("waveform: channel %d outside [0, %d)", ch, len(c.min)))
	}
	if c.first == notSet || bin < c.first || bin > c.last {
		panic(fmt.Sprintf("waveform: bin %d outside calculated window [%d, %d]", bin, c.first, c.last))
	}
}

// Min returns the smallest sample of bin on channel ch.
func (c *BinCache) Min(ch, bin int) float32 {
	c.check(ch, bin)
	return c.min[ch][bin]
}

// Max returns the largest sample of bin on channel ch.
func (c *BinCache) Max(ch, bin int) float32 {
	c.check(ch, bin)
	return c.max[ch][bin]
}
