// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files through github.com/go-audio/aiff.
//
//	src, err := aiff.Decoder{}.Decode(file)
//
// Signed PCM at 8, 16, 24 and 32 bits is normalised to float32 in [-1, 1).
// The go-audio parser needs to seek, so non-seekable inputs are buffered
// in memory first.
package aiff
