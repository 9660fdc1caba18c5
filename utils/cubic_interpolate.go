// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// CubicInterpolate performs Catmull-Rom interpolation between y1 and y2.
// x is the fractional position between y1 and y2 (0 <= x <= 1).
func CubicInterpolate(y0, y1, y2, y3, x float32) float32 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2
	a3 := y1

	return a0*x*x*x + a1*x*x + a2*x + a3
}

// CubicAt samples a planar signal at a fractional frame position.
// Neighbours outside the signal repeat the edge value.
func CubicAt(samples []float32, pos float64) float32 {
	n := len(samples)
	if n == 0 {
		return 0
	}

	i := int(math.Floor(pos))
	at := func(k int) float32 {
		return samples[min(max(k, 0), n-1)]
	}

	return CubicInterpolate(at(i-1), at(i), at(i+1), at(i+2), float32(pos-float64(i)))
}
