// SPDX-License-Identifier: EPL-2.0

// Package samplebuf holds decoded audio in memory for waveform drawing.
//
// A Buffer is planar (one []float32 per channel) and read-only once
// built. It answers the queries the waveform package needs: channel and
// frame counts, a read pointer at a frame, and min/max over a frame range.
//
//	src, _ := wav.Decoder{}.Decode(file)
//	buf, err := samplebuf.Load(src, samplebuf.DefaultBlockSize)
//	slices, _ := buf.Split(8)
//
// Several waveform elements usually reference the same buffer, so it is
// passed around through a Shared handle whose lifetime is that of the
// longest-lived holder:
//
//	shared := samplebuf.NewShared(buf, nil)
//	defer shared.Release()
package samplebuf
