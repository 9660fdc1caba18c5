// SPDX-License-Identifier: EPL-2.0

package timeline

import "slices"

type state int

const (
	idle state = iota
	dragging
)

// Coordinator runs the drag-to-reorder interaction for one scene. It only
// moves the dragged items; relocating the others is left to whoever
// listens to OrderPosIsChanging.
type Coordinator struct {
	scene       Scene
	hooks       Hooks
	rulerHeight float64

	state      state
	pressed    Item
	group      []Item
	origin     []Point
	pressScene Point
	// orderPosBeforeMove is the pressed item's OrderPos at press time.
	orderPosBeforeMove int
}

// NewCoordinator returns an idle coordinator for scene that reports to hooks.
func NewCoordinator(scene Scene, hooks Hooks) *Coordinator {
	return &Coordinator{
		scene:       scene,
		hooks:       hooks,
		rulerHeight: RulerHeight,
	}
}

// SetRulerHeight changes the vertical offset items are pinned to.
func (c *Coordinator) SetRulerHeight(h float64) { c.rulerHeight = h }

func (c *Coordinator) RulerHeight() float64 { return c.rulerHeight }

// Dragging reports whether a drag is in progress.
func (c *Coordinator) Dragging() bool { return c.state == dragging }

// Press handles a pointer press on item and reports whether a drag
// started. A non-selectable item reports a click instead.
func (c *Coordinator) Press(item Item, ev PointerEvent) bool {
	if c.state != idle {
		return false
	}

	if !item.Selectable() {
		if c.hooks.Clicked != nil {
			c.hooks.Clicked(item, ev.ScenePos)
		}
		return false
	}

	if !item.Movable() || ev.Button != ButtonPrimary {
		return false
	}

	group := []Item{item}
	if item.Selected() {
		group = c.scene.Selected()
	}

	c.origin = make([]Point, len(group))
	for i, it := range group {
		c.origin[i].X, c.origin[i].Y = it.Pos()
	}

	c.state = dragging
	c.pressed = item
	c.group = group
	c.pressScene = ev.ScenePos
	c.orderPosBeforeMove = item.OrderPos()

	return true
}

// Move drags the group by the scene delta since the press, then checks
// whether its leading edge has crossed the midpoint of a neighbour.
func (c *Coordinator) Move(ev PointerEvent) {
	if c.state != dragging {
		return
	}

	dx := ev.ScenePos.X - c.pressScene.X
	dy := ev.ScenePos.Y - c.pressScene.Y
	for i, it := range c.group {
		p := c.Constrain(it, Point{X: c.origin[i].X + dx, Y: c.origin[i].Y + dy})
		it.SetPos(p.X, p.Y)
	}

	// Order positions may have been renumbered by an earlier intent.
	group := slices.Clone(c.group)
	SortByOrderPos(group)

	switch {
	case ev.ScreenPos.X < ev.LastScreenPos.X:
		c.detectLeft(group)
	case ev.ScreenPos.X > ev.LastScreenPos.X:
		c.detectRight(group)
	}
}

func (c *Coordinator) detectLeft(group []Item) {
	lead := group[0]
	x, y := lead.Pos()

	other := c.neighbourAt(Point{X: x, Y: y})
	if other == nil || other.OrderPos() >= lead.OrderPos() {
		return
	}

	ox, _ := other.Pos()
	if x < ox+other.Width()/2 {
		c.intent(group, other.OrderPos()-lead.OrderPos())
	}
}

func (c *Coordinator) detectRight(group []Item) {
	lead := group[len(group)-1]
	x, _ := lead.Pos()
	edge := x + lead.Width() - 1

	other := c.neighbourAt(Point{X: edge, Y: c.rulerHeight})
	if other == nil || other.OrderPos() <= lead.OrderPos() {
		return
	}

	ox, _ := other.Pos()
	if edge > ox+other.Width()/2 {
		c.intent(group, other.OrderPos()-lead.OrderPos())
	}
}

func (c *Coordinator) intent(group []Item, placesMoved int) {
	if c.hooks.OrderPosIsChanging != nil {
		c.hooks.OrderPosIsChanging(orderPositions(group), placesMoved)
	}
}

// neighbourAt returns the bottom-most item at p that is not being dragged.
func (c *Coordinator) neighbourAt(p Point) Item {
	items := c.scene.ItemsAt(p)
	for i := len(items) - 1; i >= 0; i-- {
		if !slices.Contains(c.group, items[i]) && !items[i].Selected() {
			return items[i]
		}
	}
	return nil
}

// Release ends the drag. A net change of the pressed item's position is
// committed with OrderPosHasChanged; every dragged item then reports
// FinishedMoving. Releases of other buttons are ignored.
func (c *Coordinator) Release(ev PointerEvent) {
	if c.state != dragging || ev.Button != ButtonPrimary {
		return
	}

	group := slices.Clone(c.group)
	SortByOrderPos(group)
	moved := c.pressed.OrderPos() - c.orderPosBeforeMove
	c.reset()

	if moved != 0 && c.hooks.OrderPosHasChanged != nil {
		old := orderPositions(group)
		for i := range old {
			old[i] -= moved
		}
		c.hooks.OrderPosHasChanged(old, moved)
	}

	if c.hooks.FinishedMoving != nil {
		for _, it := range group {
			c.hooks.FinishedMoving(it.OrderPos())
		}
	}
}

// Cancel abandons the drag and puts the dragged items back where they
// were pressed. If the order already shifted, an intent reversing it is
// sent so the listener can restore the sequence. No commit is reported.
func (c *Coordinator) Cancel() {
	if c.state != dragging {
		return
	}

	group := slices.Clone(c.group)
	SortByOrderPos(group)
	moved := c.pressed.OrderPos() - c.orderPosBeforeMove

	for i, it := range c.group {
		it.SetPos(c.origin[i].X, c.origin[i].Y)
	}
	c.reset()

	if moved != 0 {
		c.intent(group, -moved)
	}
}

func (c *Coordinator) reset() {
	c.state = idle
	c.pressed = nil
	c.group = nil
	c.origin = nil
}

// Constrain clamps a proposed position for item so that it, and the rest
// of the selection around it, stays inside the scene. The vertical
// position is pinned to the ruler height.
func (c *Coordinator) Constrain(item Item, proposed Point) Point {
	var minLeft, minRight float64

	if item.Selected() {
		pos := item.OrderPos()
		for _, other := range c.scene.Selected() {
			switch {
			case other.OrderPos() < pos:
				minLeft += other.Width()
			case other.OrderPos() > pos:
				minRight += other.Width()
			}
		}
	}

	p := proposed
	width := c.scene.Width()

	// The right edge is x+w, so a clamped item ends exactly at the scene edge.
	if p.X < minLeft {
		p.X = minLeft
	} else if p.X+item.Width() > width-minRight {
		p.X = width - minRight - item.Width()
	}
	p.Y = c.rulerHeight

	return p
}
