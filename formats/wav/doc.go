// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes RIFF/WAVE integer PCM using
// github.com/go-audio/wav.
//
// # Decoding
//
//	src, err := wav.Decoder{}.Decode(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    // not a WAV file
//	}
//
// 16, 24 and 32-bit PCM are supported. Samples come out as float32 in
// [-1, 1). Sources implement audio.Lengther, so loaders can preallocate.
// Inputs that cannot seek are buffered in memory first.
//
// # Encoding
//
// WriteFloat writes planar channels, typically the slices of a timeline in
// their current order:
//
//	f, _ := os.Create("out.wav")
//	err := wav.WriteFloat(f, 44100, 16, [][]float32{left, right})
//
// The writer must be seekable because the RIFF sizes are patched on close.
package wav
