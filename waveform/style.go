// SPDX-License-Identifier: EPL-2.0

package waveform

import "image/color"

// GradientStop is one colour stop of the horizontal background gradient,
// Offset running from 0 at the left edge to 1 at the right edge.
type GradientStop struct {
	Offset float64
	Color  color.NRGBA
}

// Style holds the colours used to paint an element.
type Style struct {
	Background []GradientStop
	Wave       color.NRGBA
	CentreLine color.NRGBA
	Highlight  color.NRGBA
}

func DefaultStyle() Style {
	edge := color.NRGBA{R: 236, G: 236, B: 249, A: 255}
	return Style{
		Background: []GradientStop{
			{Offset: 0, Color: color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
			{Offset: 0.125, Color: edge},
			{Offset: 0.875, Color: edge},
			{Offset: 1, Color: color.NRGBA{R: 204, G: 204, B: 230, A: 255}},
		},
		Wave:       color.NRGBA{R: 23, G: 23, B: 135, A: 191},
		CentreLine: color.NRGBA{R: 127, G: 127, B: 127, A: 191},
		Highlight:  color.NRGBA{R: 255, G: 127, B: 127, A: 70},
	}
}
