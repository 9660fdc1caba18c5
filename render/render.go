// SPDX-License-Identifier: EPL-2.0

package render

import (
	"cmp"
	"fmt"
	"image"
	"image/color"
	"io"
	"slices"

	"github.com/fogleman/gg"

	"github.com/ik5/slicewave/timeline"
	"github.com/ik5/slicewave/waveform"
)

// Paintable is a timeline item that can produce waveform geometry.
// *waveform.Element implements it.
type Paintable interface {
	timeline.Item
	Paint(zoomScale, left, right float64) waveform.Geometry
	VerticalScale() float64
	Style() waveform.Style
	Z() int
}

var (
	// Backdrop is the colour behind the scene.
	Backdrop = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	rulerFill = color.NRGBA{R: 245, G: 245, B: 245, A: 255}
	rulerMark = color.NRGBA{R: 90, G: 90, B: 90, A: 255}
)

// Painter draws a horizontal window of the timeline into an image. Scene
// x coordinates are multiplied by the zoom; y is not scaled.
type Painter struct {
	dc    *gg.Context
	zoom  float64
	viewX float64
}

// NewPainter returns a width x height painter showing the scene from
// viewX onwards at the given zoom.
func NewPainter(width, height int, zoom, viewX float64) (*Painter, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if zoom <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidZoom, zoom)
	}

	return &Painter{dc: gg.NewContext(width, height), zoom: zoom, viewX: viewX}, nil
}

// Clear fills the whole image.
func (p *Painter) Clear(c color.Color) {
	p.dc.SetColor(c)
	p.dc.Clear()
}

// viewWidth is the visible width in scene units.
func (p *Painter) viewWidth() float64 {
	return float64(p.dc.Width()) / p.zoom
}

// DrawRuler fills the ruler strip and marks where each item starts.
func (p *Painter) DrawRuler(height float64, items []timeline.Item) {
	dc := p.dc
	dc.Push()
	defer dc.Pop()

	dc.SetColor(rulerFill)
	dc.DrawRectangle(0, 0, float64(dc.Width()), height)
	dc.Fill()

	dc.SetColor(rulerMark)
	dc.SetLineWidth(1)
	for _, it := range items {
		x, _ := it.Pos()
		sx := (x - p.viewX) * p.zoom
		dc.DrawLine(sx, height/2, sx, height)
	}
	dc.Stroke()
}

// DrawScene draws items bottom to top by Z, keeping the given order among
// equals.
func (p *Painter) DrawScene(items []Paintable) {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b Paintable) int {
		return cmp.Compare(a.Z(), b.Z())
	})

	for _, it := range sorted {
		p.DrawElement(it)
	}
}

// DrawElement paints one item. Only the part inside the view is
// rasterized.
func (p *Painter) DrawElement(el Paintable) {
	x, y := el.Pos()
	w, h := el.Width(), el.Height()

	left := max(0, p.viewX-x)
	right := min(w, p.viewX+p.viewWidth()-x)
	if right < left {
		return
	}

	g := el.Paint(p.zoom, left, right)
	st := el.Style()

	dc := p.dc
	dc.Push()
	defer dc.Pop()

	dc.Scale(p.zoom, 1)
	dc.Translate(x-p.viewX, y)

	p.background(w, h, st.Background)

	vs := el.VerticalScale()
	dc.SetLineWidth(1)
	dc.SetColor(st.CentreLine)
	for _, c := range g.Channels {
		cy := c.Lane * vs
		dc.DrawLine(left, cy, right, cy)
	}
	dc.Stroke()

	dc.SetColor(st.Wave)
	for _, c := range g.Channels {
		drawChannel(dc, c, vs)
	}

	if el.Selected() {
		dc.SetColor(st.Highlight)
		dc.DrawRectangle(0, 0, w, h)
		dc.Fill()
	}
}

func (p *Painter) background(w, h float64, stops []waveform.GradientStop) {
	dc := p.dc

	// Gradients are evaluated in device space.
	x0, y0 := dc.TransformPoint(0, 0)
	x1, _ := dc.TransformPoint(w, 0)

	grad := gg.NewLinearGradient(x0, y0, x1, y0)
	for _, s := range stops {
		grad.AddColorStop(s.Offset, s.Color)
	}

	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()
}

func drawChannel(dc *gg.Context, c waveform.ChannelGeometry, vs float64) {
	dc.Push()
	defer dc.Pop()

	dc.Scale(1, vs)
	dc.Translate(0, c.Lane)

	if len(c.Polyline) > 1 {
		dc.MoveTo(c.Polyline[0].X, c.Polyline[0].Y)
		for _, pt := range c.Polyline[1:] {
			dc.LineTo(pt.X, pt.Y)
		}
		dc.Stroke()
	}

	if len(c.Ticks) > 0 {
		for _, s := range c.Ticks {
			dc.DrawLine(s.From.X, s.From.Y, s.To.X, s.To.Y)
		}
		dc.Stroke()
	}
}

func (p *Painter) Image() image.Image { return p.dc.Image() }

func (p *Painter) EncodePNG(w io.Writer) error {
	if err := p.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func (p *Painter) SavePNG(path string) error {
	if err := p.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
