// SPDX-License-Identifier: EPL-2.0

// Package slicewave draws audio slices as waveforms on a timeline and lets
// them be reordered by dragging.
//
// # Loading Audio
//
// LoadFile decodes any format with a registered decoder and prepares the
// samples for display:
//
//	buf, err := slicewave.LoadFile(nil, "break.wav", slicewave.LoadOptions{
//		SampleRate: 44100,
//		MixDown:    true,
//	})
//
// Decoders live in formats/wav, formats/aiff, formats/mp3 and
// formats/vorbis; formats.NewRegistry wires them all by file extension.
//
// # Waveforms
//
// The waveform package picks a detail level from the zoom scale. Close up,
// every sample is drawn; further out, a min/max polyline; further still,
// one vertical tick per bin. Bin values are cached per element and only
// computed for the part of the element that has been exposed:
//
//	el := waveform.NewElement(buf, 0, 400, 160)
//	geometry := el.Paint(zoom, 0, 400)
//
// # Reordering
//
// The timeline package turns pointer events into reorder notifications.
// timeline.Sequence keeps slices end to end and moves neighbours out of
// the way while a slice is dragged across them:
//
//	seq := timeline.NewSequence(width, logger)
//	seq.Append(a, b, c)
//	seq.Press(a, press)
//	seq.Move(move)
//	seq.Release(release)
//
// # Rendering
//
// The render package paints elements with github.com/fogleman/gg and
// writes PNG files. The cmd/slicewave command ties it all together.
package slicewave
