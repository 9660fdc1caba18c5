// SPDX-License-Identifier: EPL-2.0

package timeline

import (
	"cmp"
	"slices"
)

// RulerHeight is the height of the ruler strip above the slices. Dragged
// items are pinned to it vertically.
const RulerHeight = 18.0

// Point is a position in scene coordinates.
type Point struct {
	X, Y float64
}

// Item is a draggable slice placed on the timeline.
// *waveform.Element implements it.
type Item interface {
	OrderPos() int
	Width() float64
	Height() float64
	Pos() (x, y float64)
	SetPos(x, y float64)
	Selected() bool
	Selectable() bool
	Movable() bool
}

// Scene is the canvas holding the items.
type Scene interface {
	// Selected returns the selected items ordered by OrderPos.
	Selected() []Item
	// Width is the width of the scene rectangle.
	Width() float64
	// ItemsAt returns the items containing p, topmost first.
	ItemsAt(p Point) []Item
}

// Button identifies the pointer button of an event.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
)

// Modifiers is a set of keyboard modifiers held during an event.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModControl
)

// PointerEvent is one press, move or release delivered by the host.
type PointerEvent struct {
	Button    Button
	Modifiers Modifiers
	ScenePos  Point
	// ScreenPos and LastScreenPos give the drag direction. Scene positions
	// are not used for it since clamping makes them drift.
	ScreenPos     Point
	LastScreenPos Point
}

// Hooks receive the notifications of a drag. Nil fields are skipped.
type Hooks struct {
	// OrderPosIsChanging is advisory and may fire many times per drag.
	OrderPosIsChanging func(orderPositions []int, placesMoved int)
	// OrderPosHasChanged fires at most once per drag, on net change only.
	OrderPosHasChanged func(oldOrderPositions []int, placesMoved int)
	// FinishedMoving fires once per dragged item on release.
	FinishedMoving func(orderPos int)
	// Clicked fires instead of a drag when the item is not selectable.
	Clicked func(item Item, scenePos Point)
}

// SortByOrderPos sorts items in sequence order.
func SortByOrderPos[T Item](items []T) {
	slices.SortStableFunc(items, func(a, b T) int {
		return cmp.Compare(a.OrderPos(), b.OrderPos())
	})
}

func orderPositions(items []Item) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.OrderPos()
	}
	return out
}

func contains(it Item, p Point) bool {
	x, y := it.Pos()
	return p.X >= x && p.X < x+it.Width() && p.Y >= y && p.Y < y+it.Height()
}
