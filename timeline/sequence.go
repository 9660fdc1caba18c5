// SPDX-License-Identifier: EPL-2.0

package timeline

import (
	"log/slog"
	"slices"
)

// Slice is an item whose selection the sequence can change.
type Slice interface {
	Item
	SetOrderPos(pos int)
	SetSelected(selected bool)
}

// Sequence lays slices end to end and keeps their order. It serves as the
// Scene for its Coordinator and applies the coordinator's notifications
// to the order before forwarding them to Observer.
type Sequence struct {
	// Observer receives every notification after the sequence applied it.
	Observer Hooks

	slices []Slice // insertion order, later ones stack on top
	width  float64
	coord  *Coordinator
	log    *slog.Logger
}

// NewSequence returns an empty sequence in a scene of the given width. A
// nil logger discards output.
func NewSequence(width float64, log *slog.Logger) *Sequence {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	s := &Sequence{width: width, log: log}
	s.coord = NewCoordinator(s, Hooks{
		OrderPosIsChanging: s.orderPosIsChanging,
		OrderPosHasChanged: s.orderPosHasChanged,
		FinishedMoving:     s.finishedMoving,
		Clicked:            s.clicked,
	})

	return s
}

func (s *Sequence) Coordinator() *Coordinator { return s.coord }

// SetRulerHeight moves the strip the slices sit on.
func (s *Sequence) SetRulerHeight(h float64) {
	s.coord.SetRulerHeight(h)
	s.Layout()
}

// Append adds slices at the end of the order and lays everything out.
func (s *Sequence) Append(items ...Slice) {
	for _, it := range items {
		it.SetOrderPos(len(s.slices))
		s.slices = append(s.slices, it)
	}
	s.Layout()
}

// Slices returns the slices in sequence order.
func (s *Sequence) Slices() []Slice {
	out := slices.Clone(s.slices)
	SortByOrderPos(out)
	return out
}

// Len is the number of slices.
func (s *Sequence) Len() int { return len(s.slices) }

// At returns the slice at order position pos, or nil.
func (s *Sequence) At(pos int) Slice {
	for _, it := range s.slices {
		if it.OrderPos() == pos {
			return it
		}
	}
	return nil
}

func (s *Sequence) Width() float64 { return s.width }

// SetWidth resizes the scene.
func (s *Sequence) SetWidth(w float64) { s.width = w }

// ContentWidth is the summed width of every slice.
func (s *Sequence) ContentWidth() float64 {
	var w float64
	for _, it := range s.slices {
		w += it.Width()
	}
	return w
}

// Layout places every slice at its slot in sequence order.
func (s *Sequence) Layout() {
	s.layout(nil)
}

// layout places the slices in sequence order, skipping those in keep.
func (s *Sequence) layout(keep []Item) {
	x := 0.0
	for _, it := range s.Slices() {
		if !slices.Contains(keep, Item(it)) {
			it.SetPos(x, s.coord.RulerHeight())
		}
		x += it.Width()
	}
}

func (s *Sequence) Selected() []Item {
	var out []Item
	for _, it := range s.slices {
		if it.Selected() {
			out = append(out, it)
		}
	}
	SortByOrderPos(out)
	return out
}

// ItemsAt returns the slices containing p, topmost first. Selected slices
// are raised above the rest.
func (s *Sequence) ItemsAt(p Point) []Item {
	var top, rest []Item
	for i := len(s.slices) - 1; i >= 0; i-- {
		it := s.slices[i]
		if !contains(it, p) {
			continue
		}
		if it.Selected() {
			top = append(top, it)
		} else {
			rest = append(rest, it)
		}
	}
	return append(top, rest...)
}

// Select updates the selection for a press on item. Control is ignored so
// the selection stays contiguous; Shift extends it up to item.
func (s *Sequence) Select(item Slice, mods Modifiers) {
	mods &^= ModControl

	if mods&ModShift != 0 {
		if sel := s.Selected(); len(sel) > 0 {
			lo := min(sel[0].OrderPos(), item.OrderPos())
			hi := max(sel[len(sel)-1].OrderPos(), item.OrderPos())
			for _, it := range s.slices {
				it.SetSelected(it.OrderPos() >= lo && it.OrderPos() <= hi)
			}
			return
		}
	}

	if item.Selected() {
		return
	}

	s.ClearSelection()
	item.SetSelected(true)
}

func (s *Sequence) ClearSelection() {
	for _, it := range s.slices {
		it.SetSelected(false)
	}
}

// Press selects item when it can be dragged and forwards the press to
// the coordinator.
func (s *Sequence) Press(item Slice, ev PointerEvent) bool {
	if item.Selectable() && item.Movable() && ev.Button == ButtonPrimary {
		s.Select(item, ev.Modifiers)
	}
	return s.coord.Press(item, ev)
}

func (s *Sequence) Move(ev PointerEvent)    { s.coord.Move(ev) }
func (s *Sequence) Release(ev PointerEvent) { s.coord.Release(ev) }
func (s *Sequence) Cancel()                 { s.coord.Cancel() }

// Reorder moves the slices at orderPositions by placesMoved and renumbers
// the whole sequence. The moved slices keep their current coordinates;
// the rest are laid out at their new slots.
func (s *Sequence) Reorder(orderPositions []int, placesMoved int) {
	if len(orderPositions) == 0 || placesMoved == 0 {
		return
	}

	ordered := s.Slices()
	var moving, others []Slice
	for _, it := range ordered {
		if slices.Contains(orderPositions, it.OrderPos()) {
			moving = append(moving, it)
		} else {
			others = append(others, it)
		}
	}
	if len(moving) == 0 {
		return
	}

	at := min(max(orderPositions[0]+placesMoved, 0), len(others))
	next := slices.Concat(others[:at], moving, others[at:])
	for i, it := range next {
		it.SetOrderPos(i)
	}

	keep := make([]Item, len(moving))
	for i, it := range moving {
		keep[i] = it
	}
	s.layout(keep)

	s.log.Debug("reorder", "positions", orderPositions, "places_moved", placesMoved, "insert_at", at)
}

func (s *Sequence) orderPosIsChanging(orderPositions []int, placesMoved int) {
	s.Reorder(orderPositions, placesMoved)
	if s.Observer.OrderPosIsChanging != nil {
		s.Observer.OrderPosIsChanging(orderPositions, placesMoved)
	}
}

func (s *Sequence) orderPosHasChanged(old []int, placesMoved int) {
	s.log.Info("order committed", "old_positions", old, "places_moved", placesMoved)
	if s.Observer.OrderPosHasChanged != nil {
		s.Observer.OrderPosHasChanged(old, placesMoved)
	}
}

func (s *Sequence) finishedMoving(orderPos int) {
	if it := s.At(orderPos); it != nil {
		x := 0.0
		for _, other := range s.Slices()[:orderPos] {
			x += other.Width()
		}
		it.SetPos(x, s.coord.RulerHeight())
	}

	if s.Observer.FinishedMoving != nil {
		s.Observer.FinishedMoving(orderPos)
	}
}

func (s *Sequence) clicked(item Item, p Point) {
	s.log.Debug("slice clicked", "order_pos", item.OrderPos(), "x", p.X, "y", p.Y)
	if s.Observer.Clicked != nil {
		s.Observer.Clicked(item, p)
	}
}
