// SPDX-License-Identifier: EPL-2.0

package slicewave

import (
	"fmt"
	"os"

	"github.com/ik5/slicewave/audio"
	"github.com/ik5/slicewave/formats"
	"github.com/ik5/slicewave/samplebuf"
)

// LoadOptions control how decoded audio is prepared for display.
type LoadOptions struct {
	// SampleRate resamples to this rate when non-zero.
	SampleRate int
	// MixDown averages all channels into one.
	MixDown bool
	// BlockSize is the read size in samples; 0 uses samplebuf.DefaultBlockSize.
	BlockSize int
}

// Decode reads src to the end and prepares the samples for display.
//
// The pipeline is:
//  1. Read every block of src into a planar buffer
//  2. Resample with cubic interpolation when opts.SampleRate differs
//  3. Average the channels when opts.MixDown is set
//
// src is not closed.
func Decode(src audio.Source, opts LoadOptions) (*samplebuf.Buffer, error) {
	blockSize := opts.BlockSize
	if blockSize <= 0 {
		blockSize = samplebuf.DefaultBlockSize
	}

	buf, err := samplebuf.Load(src, blockSize)
	if err != nil {
		return nil, err
	}

	if opts.SampleRate > 0 && opts.SampleRate != buf.SampleRate() {
		if buf, err = buf.Resample(opts.SampleRate); err != nil {
			return nil, fmt.Errorf("resample to %d Hz: %w", opts.SampleRate, err)
		}
	}

	if opts.MixDown && buf.NumChannels() > 1 {
		buf = buf.MixDown()
	}

	return buf, nil
}

// LoadFile opens path, picks the decoder for its extension from reg and
// decodes it with Decode. A nil reg uses formats.NewRegistry.
func LoadFile(reg *audio.Registry, path string, opts LoadOptions) (*samplebuf.Buffer, error) {
	if reg == nil {
		reg = formats.NewRegistry()
	}

	dec, err := reg.ForPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer src.Close()

	buf, err := Decode(src, opts)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	return buf, nil
}
