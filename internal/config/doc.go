// SPDX-License-Identifier: EPL-2.0

// Package config loads slicewave settings from YAML and the environment.
//
// Recognised variables: SLICEWAVE_MAX_CUTOFF, SLICEWAVE_VERY_HIGH_CUTOFF,
// SLICEWAVE_HIGH_CUTOFF, SLICEWAVE_ZOOM, SLICEWAVE_PIXELS_PER_SECOND and
// SLICEWAVE_SAMPLE_RATE. Unparsable values are ignored.
package config
