// SPDX-License-Identifier: EPL-2.0

package timeline

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func assertEvents(t *testing.T, rec *recorder, want ...string) {
	t.Helper()

	if !slices.Equal(rec.events, want) {
		t.Errorf("events = %q, want %q", rec.events, want)
	}
}

func TestCoordinator_ReorderRight(t *testing.T) {
	t.Parallel()

	seq, s, rec := newSeq(300, 2, 100)
	a, b := s[0], s[1]

	if !seq.Press(a, pressAt(50)) {
		t.Fatal("Press() did not start a drag")
	}

	seq.Move(moveTo(50, 110))
	if a.x != 60 || a.y != RulerHeight {
		t.Errorf("A at (%g, %g), want (60, %g)", a.x, a.y, RulerHeight)
	}
	assertEvents(t, rec, "changing [0] 1")

	if a.order != 1 || b.order != 0 || b.x != 0 {
		t.Errorf("after intent: A=%d B=%d B.x=%g, want A=1 B=0 B.x=0", a.order, b.order, b.x)
	}

	seq.Move(moveTo(110, 120))
	assertEvents(t, rec, "changing [0] 1")

	seq.Release(release())
	assertEvents(t, rec, "changing [0] 1", "changed [0] 1", "finished 1")

	if a.x != 100 {
		t.Errorf("A.x after release = %g, want 100", a.x)
	}
	if seq.Coordinator().Dragging() {
		t.Error("still dragging after release")
	}
}

func TestCoordinator_BeforeMidpointNoIntent(t *testing.T) {
	t.Parallel()

	seq, _, rec := newSeq(300, 2, 100)
	seq.Press(seq.At(0), pressAt(50))

	// Right edge at 149 has not passed B's midpoint at 150.
	seq.Move(moveTo(50, 100))
	seq.Release(release())

	assertEvents(t, rec, "finished 0")
}

func TestCoordinator_ReorderLeft(t *testing.T) {
	t.Parallel()

	seq, s, rec := newSeq(300, 3, 100)
	b, c := s[1], s[2]

	seq.Press(c, pressAt(250))
	seq.Move(moveTo(250, 190))

	assertEvents(t, rec, "changing [2] -1")
	if c.order != 1 || b.order != 2 || b.x != 200 {
		t.Errorf("after intent: C=%d B=%d B.x=%g, want C=1 B=2 B.x=200", c.order, b.order, b.x)
	}

	seq.Release(release())
	assertEvents(t, rec, "changing [2] -1", "changed [2] -1", "finished 1")
	if c.x != 100 {
		t.Errorf("C.x after release = %g, want 100", c.x)
	}
}

func TestCoordinator_NoOpDrag(t *testing.T) {
	t.Parallel()

	t.Run("press and release", func(t *testing.T) {
		t.Parallel()

		seq, _, rec := newSeq(300, 2, 100)
		seq.Press(seq.At(0), pressAt(50))
		seq.Release(release())

		assertEvents(t, rec, "finished 0")
	})

	t.Run("there and back", func(t *testing.T) {
		t.Parallel()

		seq, s, rec := newSeq(300, 2, 100)
		seq.Press(s[0], pressAt(50))
		seq.Move(moveTo(50, 70))
		seq.Move(moveTo(70, 50))
		seq.Release(release())

		assertEvents(t, rec, "finished 0")
		if s[0].x != 0 {
			t.Errorf("A.x = %g, want 0", s[0].x)
		}
	})
}

func TestCoordinator_MultiSelectReorder(t *testing.T) {
	t.Parallel()

	seq, s, rec := newSeq(400, 3, 100)
	a, b, c := s[0], s[1], s[2]

	seq.Select(a, 0)
	if !seq.Press(b, PointerEvent{Modifiers: ModShift, ScenePos: Point{X: 150, Y: 30}}) {
		t.Fatal("Press() did not start a drag")
	}
	if !a.selected || !b.selected || c.selected {
		t.Fatalf("selection = A:%v B:%v C:%v, want A and B", a.selected, b.selected, c.selected)
	}

	seq.Move(moveTo(150, 210))
	assertEvents(t, rec, "changing [0 1] 1")
	if c.order != 0 || a.order != 1 || b.order != 2 {
		t.Errorf("order = C:%d A:%d B:%d, want 0 1 2", c.order, a.order, b.order)
	}

	seq.Release(release())
	assertEvents(t, rec, "changing [0 1] 1", "changed [0 1] 1", "finished 1", "finished 2")
	if a.x != 100 || b.x != 200 || c.x != 0 {
		t.Errorf("x = A:%g B:%g C:%g, want 100 200 0", a.x, b.x, c.x)
	}
}

func TestCoordinator_Cancel(t *testing.T) {
	t.Parallel()

	seq, s, rec := newSeq(300, 2, 100)
	a, b := s[0], s[1]

	seq.Press(a, pressAt(50))
	seq.Move(moveTo(50, 110))
	seq.Cancel()

	assertEvents(t, rec, "changing [0] 1", "changing [1] -1")
	if a.order != 0 || b.order != 1 {
		t.Errorf("order = A:%d B:%d, want 0 1", a.order, b.order)
	}
	if a.x != 0 || b.x != 100 {
		t.Errorf("x = A:%g B:%g, want 0 100", a.x, b.x)
	}

	seq.Release(release())
	assertEvents(t, rec, "changing [0] 1", "changing [1] -1")
}

func TestCoordinator_PressRules(t *testing.T) {
	t.Parallel()

	t.Run("not selectable reports click", func(t *testing.T) {
		t.Parallel()

		seq, s, rec := newSeq(300, 2, 100)
		s[1].noSelect = true

		if seq.Press(s[1], pressAt(120)) {
			t.Error("Press() started a drag on a non-selectable item")
		}
		assertEvents(t, rec, "clicked 1 (120,30)")
	})

	t.Run("secondary button ignored", func(t *testing.T) {
		t.Parallel()

		seq, s, rec := newSeq(300, 2, 100)
		ev := pressAt(50)
		ev.Button = ButtonSecondary

		if seq.Press(s[0], ev) {
			t.Error("secondary Press() started a drag")
		}
		if s[0].selected {
			t.Error("secondary Press() changed the selection")
		}
		assertEvents(t, rec)
	})

	t.Run("not movable ignored", func(t *testing.T) {
		t.Parallel()

		seq, s, rec := newSeq(300, 2, 100)
		s[0].noMove = true

		if seq.Press(s[0], pressAt(50)) {
			t.Error("Press() started a drag on an immovable item")
		}
		assertEvents(t, rec)
	})

	t.Run("second press while dragging", func(t *testing.T) {
		t.Parallel()

		seq, s, _ := newSeq(300, 2, 100)
		seq.Press(s[0], pressAt(50))
		if seq.Coordinator().Press(s[1], pressAt(150)) {
			t.Error("Press() during a drag started another one")
		}
	})
}

func TestCoordinator_IgnoresEventsWhenIdle(t *testing.T) {
	t.Parallel()

	seq, s, rec := newSeq(300, 2, 100)
	seq.Move(moveTo(0, 200))
	seq.Release(release())
	seq.Cancel()

	assertEvents(t, rec)
	if s[0].x != 0 || s[1].x != 100 {
		t.Errorf("positions changed while idle: %g %g", s[0].x, s[1].x)
	}

	seq.Press(s[0], pressAt(50))
	seq.Release(release())
	seq.Move(moveTo(50, 200))
	if s[0].x != 0 {
		t.Errorf("move after release changed A.x to %g", s[0].x)
	}
}

func TestCoordinator_SecondaryReleaseKeepsDragging(t *testing.T) {
	t.Parallel()

	seq, s, rec := newSeq(300, 2, 100)
	seq.Press(s[0], pressAt(50))
	seq.Release(PointerEvent{Button: ButtonSecondary})

	if !seq.Coordinator().Dragging() {
		t.Error("secondary release ended the drag")
	}
	assertEvents(t, rec)
}

func TestCoordinator_ClampSingle(t *testing.T) {
	t.Parallel()

	const sceneWidth = 400.0
	seq, s, _ := newSeq(sceneWidth, 1, 100)
	a := s[0]
	rng := rand.New(rand.NewPCG(1, 2))

	seq.Press(a, pressAt(50))
	last := 50.0
	for range 500 {
		next := last + (rng.Float64()-0.5)*300
		seq.Move(moveTo(last, next))
		last = next

		if a.x < 0 || a.x+a.w > sceneWidth {
			t.Fatalf("A spans [%g, %g] outside [0, %g]", a.x, a.x+a.w, sceneWidth)
		}
		if a.y != RulerHeight {
			t.Fatalf("A.y = %g, want %g", a.y, RulerHeight)
		}
	}
}

func TestCoordinator_GroupStaysContiguous(t *testing.T) {
	t.Parallel()

	seq, s, _ := newSeq(500, 3, 100)
	for _, f := range s {
		f.selected = true
	}
	rng := rand.New(rand.NewPCG(3, 4))

	seq.Press(s[1], pressAt(150))
	last := 150.0
	for range 500 {
		next := last + (rng.Float64()-0.5)*400
		seq.Move(moveTo(last, next))
		last = next

		for i := 1; i < len(s); i++ {
			if s[i].x < s[i-1].x+s[i-1].w {
				t.Fatalf("%s [%g] overlaps %s [%g]", s[i], s[i].x, s[i-1], s[i-1].x)
			}
		}
	}
}

func TestCoordinator_ConstrainRightEdge(t *testing.T) {
	t.Parallel()

	seq, s, _ := newSeq(400, 1, 100)
	c := seq.Coordinator()

	tests := []struct {
		x, want float64
	}{
		{299, 299},
		{300, 300},
		{300.5, 300},
		{301, 300},
		{350, 300},
	}

	for _, tt := range tests {
		got := c.Constrain(s[0], Point{X: tt.x})
		if got.X != tt.want {
			t.Errorf("Constrain(x=%g).X = %g, want %g", tt.x, got.X, tt.want)
		}
		if got.X+s[0].w > 400 {
			t.Errorf("Constrain(x=%g) right edge %g past the scene", tt.x, got.X+s[0].w)
		}
	}
}

func TestCoordinator_ConstrainNonContiguousSelection(t *testing.T) {
	t.Parallel()

	seq, s, _ := newSeq(500, 3, 100)
	s[0].selected = true
	s[2].selected = true

	got := seq.Coordinator().Constrain(s[2], Point{X: 50, Y: 0})
	want := Point{X: 100, Y: RulerHeight}
	if got != want {
		t.Errorf("Constrain() = %+v, want %+v", got, want)
	}

	got = seq.Coordinator().Constrain(s[0], Point{X: 450, Y: 0})
	want = Point{X: 300, Y: RulerHeight}
	if got != want {
		t.Errorf("Constrain() = %+v, want %+v", got, want)
	}

	// Unselected items only respect the scene edges.
	got = seq.Coordinator().Constrain(s[1], Point{X: -20, Y: 99})
	want = Point{X: 0, Y: RulerHeight}
	if got != want {
		t.Errorf("Constrain() = %+v, want %+v", got, want)
	}
}

func TestCoordinator_BareScene(t *testing.T) {
	t.Parallel()

	a, b := newFake("A", 100), newFake("B", 100)
	a.y, b.y = RulerHeight, RulerHeight
	b.order, b.x = 1, 100

	scene := &staticScene{width: 300, items: []Item{a, b}}
	rec := &recorder{}
	c := NewCoordinator(scene, rec.hooks())

	// Unselected press drags the item alone.
	c.Press(a, pressAt(50))
	c.Move(moveTo(50, 120))
	c.Release(release())

	assertEvents(t, rec, "changing [0] 1", "finished 0")
}

type staticScene struct {
	width float64
	items []Item
}

func (s *staticScene) Width() float64 { return s.width }

func (s *staticScene) Selected() []Item {
	var out []Item
	for _, it := range s.items {
		if it.Selected() {
			out = append(out, it)
		}
	}
	return out
}

func (s *staticScene) ItemsAt(p Point) []Item {
	var out []Item
	for _, it := range slices.Backward(s.items) {
		if contains(it, p) {
			out = append(out, it)
		}
	}
	return out
}
