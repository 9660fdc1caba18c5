// SPDX-License-Identifier: EPL-2.0

package timeline

import (
	"fmt"
)

type fakeSlice struct {
	name     string
	order    int
	x, y     float64
	w, h     float64
	selected bool
	noSelect bool
	noMove   bool
}

func newFake(name string, w float64) *fakeSlice {
	return &fakeSlice{name: name, w: w, h: 80}
}

func (f *fakeSlice) OrderPos() int       { return f.order }
func (f *fakeSlice) SetOrderPos(p int)   { f.order = p }
func (f *fakeSlice) Width() float64      { return f.w }
func (f *fakeSlice) Height() float64     { return f.h }
func (f *fakeSlice) Pos() (x, y float64) { return f.x, f.y }
func (f *fakeSlice) SetPos(x, y float64) { f.x, f.y = x, y }
func (f *fakeSlice) Selected() bool      { return f.selected }
func (f *fakeSlice) SetSelected(s bool)  { f.selected = s }
func (f *fakeSlice) Selectable() bool    { return !f.noSelect }
func (f *fakeSlice) Movable() bool       { return !f.noMove }
func (f *fakeSlice) String() string      { return f.name }

// recorder captures hook calls as strings in arrival order.
type recorder struct {
	events []string
}

func (r *recorder) hooks() Hooks {
	return Hooks{
		OrderPosIsChanging: func(pos []int, n int) {
			r.events = append(r.events, fmt.Sprintf("changing %v %d", pos, n))
		},
		OrderPosHasChanged: func(old []int, n int) {
			r.events = append(r.events, fmt.Sprintf("changed %v %d", old, n))
		},
		FinishedMoving: func(pos int) {
			r.events = append(r.events, fmt.Sprintf("finished %d", pos))
		},
		Clicked: func(it Item, p Point) {
			r.events = append(r.events, fmt.Sprintf("clicked %d (%g,%g)", it.OrderPos(), p.X, p.Y))
		},
	}
}

func pressAt(x float64) PointerEvent {
	p := Point{X: x, Y: 30}
	return PointerEvent{ScenePos: p, ScreenPos: p, LastScreenPos: p}
}

func moveTo(from, to float64) PointerEvent {
	return PointerEvent{
		ScenePos:      Point{X: to, Y: 30},
		ScreenPos:     Point{X: to, Y: 30},
		LastScreenPos: Point{X: from, Y: 30},
	}
}

func release() PointerEvent {
	return PointerEvent{Button: ButtonPrimary}
}

// newSeq builds a sequence of equally wide slices named A, B, C...
func newSeq(sceneWidth float64, n int, w float64) (*Sequence, []*fakeSlice, *recorder) {
	seq := NewSequence(sceneWidth, nil)
	rec := &recorder{}
	seq.Observer = rec.hooks()

	fakes := make([]*fakeSlice, n)
	for i := range fakes {
		fakes[i] = newFake(string(rune('A'+i)), w)
		seq.Append(fakes[i])
	}

	return seq, fakes, rec
}
