// SPDX-License-Identifier: EPL-2.0

// Package waveform turns sample data into drawable geometry at an
// adaptive level of detail.
//
// The zoom scale decides how many source frames fall into one horizontal
// unit (the bin size). Small bin sizes draw every sample, medium ones a
// min/max polyline, and large ones a vertical tick per bin. Bin values
// live in a BinCache that only computes what has been exposed:
//
//	el := waveform.NewElement(buf, 0, 200, 80)
//	el.SetHooks(waveform.Hooks{
//		MaxDetailLevelReached: func() { disableZoomIn() },
//	})
//	g := el.Paint(1.0, 0, 200)
//
// Geometry is expressed in channel lanes; see Element.VerticalScale and
// LaneOffset for the transform a painter applies.
package waveform
