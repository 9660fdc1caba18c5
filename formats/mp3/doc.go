// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III through github.com/hajimehoshi/go-mp3.
//
// go-mp3 always outputs 16-bit stereo, so every source reports two
// channels even for mono files. The decoded length is known up front and
// exposed through Frames.
package mp3
