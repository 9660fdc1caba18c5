// SPDX-License-Identifier: EPL-2.0

package waveform

import "math"

// Point is a position in channel-local coordinates: x in element pixels,
// y in sample units where -1 is the top of the lane.
type Point struct {
	X, Y float64
}

// Segment is a straight line between two points.
type Segment struct {
	From, To Point
}

// ChannelGeometry is the drawing for one channel. Only one of Polyline or
// Ticks is set, depending on the level.
type ChannelGeometry struct {
	// Lane is the vertical translation applied before drawing.
	Lane     float64
	Polyline []Point
	Ticks    []Segment
}

// Geometry is what an element draws for an exposed range.
type Geometry struct {
	Level    DetailLevel
	Channels []ChannelGeometry
}

// Empty reports whether there is nothing to draw.
func (g Geometry) Empty() bool {
	for _, c := range g.Channels {
		if len(c.Polyline) > 0 || len(c.Ticks) > 0 {
			return false
		}
	}
	return true
}

// Rasterize produces the geometry for the exposed local range
// [left, right] at the current level. Nothing outside the range, widened
// to whole frames or bins, is produced.
func (e *Element) Rasterize(left, right float64) Geometry {
	g := Geometry{Level: e.level}

	nch := e.samples.NumChannels()
	if nch == 0 || e.zoomScale == unsetScale {
		return g
	}

	g.Channels = make([]ChannelGeometry, nch)
	for ch := range g.Channels {
		g.Channels[ch].Lane = LaneOffset(ch)
	}

	switch e.level {
	case VeryHigh:
		e.rasterizeFrames(g.Channels, left, right)
	case High:
		e.rasterizeBins(g.Channels, left, right, false)
	case Low:
		e.rasterizeBins(g.Channels, left, right, true)
	}

	return g
}

func (e *Element) rasterizeFrames(out []ChannelGeometry, left, right float64) {
	frames := e.samples.NumFrames()
	if frames == 0 || e.width <= 0 {
		return
	}

	left, right = e.clampExposed(left, right)
	step := e.width / float64(frames)
	first := max(int(math.Floor(left/step)), 0)
	last := min(int(math.Ceil(right/step)), frames-1)
	if first > last {
		return
	}

	for ch := range out {
		data := e.samples.Frames(ch, first)[:last-first+1]
		pts := make([]Point, len(data))
		for i, v := range data {
			pts[i] = Point{X: float64(first+i) * step, Y: -float64(v)}
		}
		out[ch].Polyline = pts
	}
}

func (e *Element) rasterizeBins(out []ChannelGeometry, left, right float64, ticks bool) {
	numBins := e.cache.Len()
	if numBins == 0 {
		return
	}

	left, right = e.clampExposed(left, right)
	s := e.zoomScale
	first := max(int(math.Floor(left*s)), 0)
	last := min(int(math.Ceil(right*s)), numBins-1)
	if first > last {
		return
	}

	e.cache.EnsureRange(first, last)

	step := 1 / s
	n := last - first + 1

	for ch := range out {
		if ticks {
			segs := make([]Segment, 0, n)
			for bin := first; bin <= last; bin++ {
				x := float64(bin) * step
				segs = append(segs, Segment{
					From: Point{X: x, Y: -float64(e.cache.Min(ch, bin))},
					To:   Point{X: x, Y: -float64(e.cache.Max(ch, bin))},
				})
			}
			out[ch].Ticks = segs
			continue
		}

		pts := make([]Point, 0, 2*n)
		for bin := first; bin <= last; bin++ {
			x := float64(bin) * step
			pts = append(pts,
				Point{X: x, Y: -float64(e.cache.Min(ch, bin))},
				Point{X: x, Y: -float64(e.cache.Max(ch, bin))},
			)
		}
		out[ch].Polyline = pts
	}
}

// clampExposed limits the exposed range to the element so unbounded
// rects from the host stay finite.
func (e *Element) clampExposed(left, right float64) (float64, float64) {
	return max(left, 0), min(right, e.width)
}
