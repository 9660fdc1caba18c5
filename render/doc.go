// SPDX-License-Identifier: EPL-2.0

// Package render paints timeline slices with github.com/fogleman/gg.
//
// Each element is drawn in its own coordinate space: the painter scales
// x by the zoom, translates to the element position, fills the gradient
// background, then for each channel applies the element's vertical scale
// and lane offset before stroking the geometry.
package render
