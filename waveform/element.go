// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"math"

	"github.com/ik5/slicewave/samplebuf"
)

const unsetScale = -1

// Samples is the read-only view of audio the element draws.
// *samplebuf.Buffer implements it.
type Samples interface {
	NumChannels() int
	NumFrames() int
	Frames(ch, start int) []float32
	FindMinMax(ch, start, n int) (lo, hi float32)
}

// Hooks are fired whenever the detail level is recomputed. Nil fields are
// skipped.
type Hooks struct {
	SampleDetailLevelReached    func()
	MaxDetailLevelReached       func()
	SampleBinDetailLevelReached func()
}

func call(f func()) {
	if f != nil {
		f()
	}
}

// Element is one audio slice on the timeline. It owns the bin cache for
// its current zoom and produces the geometry to paint for an exposed
// range.
type Element struct {
	samples Samples
	release func()

	orderPos int
	x, y     float64
	width    float64
	height   float64

	zoomScale    float64
	stretchRatio float64
	binSize      float64
	level        DetailLevel

	cutoffs Cutoffs
	cache   *BinCache
	hooks   Hooks
	style   Style

	selected   bool
	movable    bool
	selectable bool
}

// NewElement returns a movable, selectable element drawing samples in a
// width x height rectangle. The zoom scale stays unset until the first
// Paint.
func NewElement(samples Samples, orderPos int, width, height float64) *Element {
	return &Element{
		samples:      samples,
		orderPos:     orderPos,
		width:        width,
		height:       height,
		zoomScale:    unsetScale,
		stretchRatio: 1,
		level:        Low,
		cutoffs:      DefaultCutoffs(),
		cache:        NewBinCache(samples),
		style:        DefaultStyle(),
		movable:      true,
		selectable:   true,
	}
}

// NewSharedElement retains shared for the lifetime of the element; Close
// releases it.
func NewSharedElement(shared *samplebuf.Shared, orderPos int, width, height float64) *Element {
	shared.Retain()

	e := NewElement(shared.Buffer(), orderPos, width, height)
	e.release = func() { shared.Release() }

	return e
}

// Close drops the element's reference to its sample buffer. Calling it
// more than once is a no-op.
func (e *Element) Close() error {
	if e.release != nil {
		e.release()
		e.release = nil
	}
	return nil
}

// Samples returns the buffer the element draws.
func (e *Element) Samples() Samples { return e.samples }

func (e *Element) SetHooks(h Hooks)      { e.hooks = h }
func (e *Element) Style() Style          { return e.style }
func (e *Element) SetStyle(s Style)      { e.style = s }
func (e *Element) Cutoffs() Cutoffs      { return e.cutoffs }
func (e *Element) Cache() *BinCache      { return e.cache }
func (e *Element) Level() DetailLevel    { return e.level }
func (e *Element) BinSize() float64      { return e.binSize }
func (e *Element) StretchRatio() float64 { return e.stretchRatio }

// SetCutoffs replaces the level thresholds and re-evaluates the level if a
// zoom scale is known.
func (e *Element) SetCutoffs(c Cutoffs) {
	e.cutoffs = c
	if e.zoomScale != unsetScale {
		e.resetBins()
	}
}

// ZoomScale returns the horizontal scale of the last paint, and false
// while none has happened.
func (e *Element) ZoomScale() (float64, bool) {
	return e.zoomScale, e.zoomScale != unsetScale
}

func (e *Element) OrderPos() int        { return e.orderPos }
func (e *Element) SetOrderPos(pos int)  { e.orderPos = pos }
func (e *Element) Width() float64       { return e.width }
func (e *Element) Height() float64      { return e.height }
func (e *Element) Pos() (x, y float64)  { return e.x, e.y }
func (e *Element) SetPos(x, y float64)  { e.x, e.y = x, y }
func (e *Element) Selected() bool       { return e.selected }
func (e *Element) SetSelected(s bool)   { e.selected = s }
func (e *Element) Movable() bool        { return e.movable }
func (e *Element) SetMovable(m bool)    { e.movable = m }
func (e *Element) Selectable() bool     { return e.selectable }
func (e *Element) SetSelectable(s bool) { e.selectable = s }

// Z is the stacking order: selected elements are drawn above the rest.
func (e *Element) Z() int {
	if e.selected {
		return 1
	}
	return 0
}

// SetRect resizes the element. Once a zoom scale is known the bins are
// recomputed for the new width.
func (e *Element) SetRect(width, height float64) {
	e.width, e.height = width, height
	if e.zoomScale != unsetScale {
		e.resetBins()
	}
}

// Paint prepares the element for the given horizontal zoom scale and
// returns the geometry covering the exposed local range [left, right].
func (e *Element) Paint(zoomScale, left, right float64) Geometry {
	if zoomScale != e.zoomScale {
		e.zoomScale = zoomScale
		e.resetBins()
	}

	return e.Rasterize(left, right)
}

func (e *Element) resetBins() {
	frames := float64(e.samples.NumFrames())
	span := e.width * e.zoomScale

	numBins := 0
	switch {
	case span > 0:
		e.binSize = frames / span
		numBins = max(int(math.Floor(span)), 1)
	default:
		e.binSize = math.Inf(1)
	}

	level, maxReached := e.cutoffs.Level(e.binSize)
	e.level = level

	if level.Binned() {
		e.cache.Reset(numBins, e.binSize)
		call(e.hooks.SampleBinDetailLevelReached)
		return
	}

	e.cache.Reset(0, e.binSize)
	call(e.hooks.SampleDetailLevelReached)
	if maxReached {
		call(e.hooks.MaxDetailLevelReached)
	}
}

// VerticalScale is the y scale the painter applies so that every channel
// lane, two units tall, fills its share of the height.
func (e *Element) VerticalScale() float64 {
	n := e.samples.NumChannels()
	if n == 0 {
		return 0
	}
	return e.height / float64(2*n)
}

// LaneOffset is the vertical offset, in transform units, of the centre of
// channel ch.
func LaneOffset(ch int) float64 {
	return float64(1 + 2*ch)
}

// LessByOrderPos orders elements by sequence position.
func LessByOrderPos(a, b *Element) bool {
	return a.orderPos < b.orderPos
}
