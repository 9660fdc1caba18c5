// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/ik5/slicewave"
	"github.com/ik5/slicewave/formats/wav"
	"github.com/ik5/slicewave/render"
	"github.com/ik5/slicewave/samplebuf"
	"github.com/ik5/slicewave/timeline"
	"github.com/ik5/slicewave/waveform"
)

// loadFile decodes path. When prepared is set the configured resampling
// and mix-down are applied.
func (a *app) loadFile(path string, prepared bool) (*samplebuf.Buffer, error) {
	var opts slicewave.LoadOptions
	if prepared {
		opts.SampleRate = a.cfg.SampleRate
		opts.MixDown = a.cfg.MixDown
	}

	buf, err := slicewave.LoadFile(a.reg, path, opts)
	if err != nil {
		return nil, err
	}

	a.log.Debug("loaded", "path", path, "rate", buf.SampleRate(),
		"channels", buf.NumChannels(), "frames", buf.NumFrames())

	return buf, nil
}

// project is a sequence of equal slices cut from one buffer.
type project struct {
	seq      *timeline.Sequence
	elements []*waveform.Element
	// index maps an element to the slice number it was cut as.
	index map[*waveform.Element]int
}

func (a *app) newProject(buf *samplebuf.Buffer, slices int) (*project, error) {
	parts, err := buf.Split(slices)
	if err != nil {
		return nil, err
	}

	p := &project{
		seq:   timeline.NewSequence(0, a.log),
		index: make(map[*waveform.Element]int, len(parts)),
	}
	p.seq.SetRulerHeight(a.cfg.RulerHeight)

	for i, part := range parts {
		shared := samplebuf.NewShared(part, nil)
		width := part.Duration().Seconds() * a.cfg.PixelsPerSecond

		el := waveform.NewSharedElement(shared, i, width, a.cfg.ElementHeight)
		shared.Release()

		el.SetCutoffs(a.cfg.Cutoffs)
		el.SetHooks(levelHooks(a.log, i))

		p.elements = append(p.elements, el)
		p.index[el] = i
		p.seq.Append(el)
	}
	p.seq.SetWidth(p.seq.ContentWidth())

	return p, nil
}

func levelHooks(log *slog.Logger, slice int) waveform.Hooks {
	return waveform.Hooks{
		SampleDetailLevelReached: func() {
			log.Debug("sample detail level reached", "slice", slice)
		},
		MaxDetailLevelReached: func() {
			log.Debug("max detail level reached", "slice", slice)
		},
		SampleBinDetailLevelReached: func() {
			log.Debug("sample bin detail level reached", "slice", slice)
		},
	}
}

func (p *project) Close() {
	for _, el := range p.elements {
		el.Close()
	}
}

// order lists the original slice numbers in sequence order.
func (p *project) order() []int {
	out := make([]int, 0, p.seq.Len())
	for _, s := range p.seq.Slices() {
		out = append(out, p.index[s.(*waveform.Element)])
	}
	return out
}

func (p *project) renderPNG(path string, zoom, height, ruler float64) error {
	width := int(math.Ceil(p.seq.Width() * zoom))
	painter, err := render.NewPainter(max(width, 1), int(math.Ceil(height)), zoom, 0)
	if err != nil {
		return err
	}

	ordered := p.seq.Slices()
	items := make([]timeline.Item, len(ordered))
	paintables := make([]render.Paintable, len(ordered))
	for i, s := range ordered {
		items[i] = s
		paintables[i] = s.(*waveform.Element)
	}

	painter.Clear(render.Backdrop)
	painter.DrawRuler(ruler, items)
	painter.DrawScene(paintables)

	return painter.SavePNG(path)
}

// exportWAV writes the slices in sequence order as one WAV file.
func (p *project) exportWAV(path string, bitDepth int) error {
	var bufs []*samplebuf.Buffer
	for _, s := range p.seq.Slices() {
		bufs = append(bufs, s.(*waveform.Element).Samples().(*samplebuf.Buffer))
	}

	joined, err := samplebuf.Concat(bufs...)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := wav.WriteFloat(f, joined.SampleRate(), bitDepth, joined.Channels()); err != nil {
		f.Close()
		return fmt.Errorf("export %s: %w", path, err)
	}

	return f.Close()
}
