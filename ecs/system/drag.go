package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/suibubbles/ecs"
	"github.com/milk9111/suibubbles/ecs/component"
)

const (
	DefaultDragDamping = 0.1

	// EventBubbleSelected is pushed when a bubble is clicked without being
	// moved. Data is the bubble entity.
	EventBubbleSelected = "bubble_selected"
)

// DragState is the single active-bubble latch shared by the drag and layout
// systems of one world. The zero value is idle.
type DragState struct {
	active       ecs.Entity
	engaged      bool
	startPointer cp.Vector
	startPos     cp.Vector
	moved        bool
}

// Active returns the bubble being dragged, if any.
func (d *DragState) Active() (ecs.Entity, bool) {
	if d == nil || !d.engaged {
		return 0, false
	}
	return d.active, true
}

// Clear releases the latch without emitting a click.
func (d *DragState) Clear() {
	if d == nil {
		return
	}
	*d = DragState{}
}

// DragSystem lets the pointer pick up one bubble at a time. The dragged
// bubble follows the pointer exactly and shoves its neighbours aside.
type DragSystem struct {
	Drag    *DragState
	Damping float64
	// ClickSlop is how far the pointer may travel before a press stops
	// counting as a click.
	ClickSlop float64
}

func NewDragSystem(drag *DragState, damping, clickSlop float64) *DragSystem {
	return &DragSystem{Drag: drag, Damping: damping, ClickSlop: clickSlop}
}

func (s *DragSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.Drag == nil {
		return
	}
	_, ptr, ok := ecs.First(w, component.PointerComponent.Kind())
	if !ok {
		return
	}

	if !ptr.Enabled {
		s.Drag.Clear()
		return
	}

	if _, dragging := s.Drag.Active(); !dragging {
		if ptr.Pressed && ptr.Inside {
			if e, hit := BubbleAt(w, ptr.Position); hit {
				s.Begin(w, e, ptr.Position)
			}
		}
		return
	}

	if ptr.Down || ptr.Released {
		s.Move(w, ptr.Position)
	}
	if ptr.Released || !ptr.Down {
		s.End(w)
	}
}

// Begin latches e as the active bubble. It fails while another bubble is
// active or when e is not a bubble.
func (s *DragSystem) Begin(w *ecs.World, e ecs.Entity, pointer cp.Vector) bool {
	if _, dragging := s.Drag.Active(); dragging {
		return false
	}
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || !ecs.Has(w, e, component.BubbleComponent.Kind()) {
		return false
	}
	*s.Drag = DragState{
		active:       e,
		engaged:      true,
		startPointer: pointer,
		startPos:     tr.Position,
	}
	return true
}

// Move places the active bubble at its start position plus the pointer
// delta and pushes overlapping bubbles away from it.
func (s *DragSystem) Move(w *ecs.World, pointer cp.Vector) {
	active, dragging := s.Drag.Active()
	if !dragging {
		return
	}
	if !ecs.IsAlive(w, active) {
		s.Drag.Clear()
		return
	}
	box, ok := bounds(w)
	if !ok {
		return
	}

	delta := pointer.Sub(s.Drag.startPointer)
	if delta.Length() > s.ClickSlop {
		s.Drag.moved = true
	}

	var held body
	list := bodies(w)
	for _, b := range list {
		if b.e == active {
			held = b
			break
		}
	}
	if held.b == nil {
		s.Drag.Clear()
		return
	}

	held.tr.Position = s.Drag.startPos.Add(delta)
	held.clamp(box)

	for _, other := range list {
		if other.e == active {
			continue
		}
		minDist := (held.b.Size + other.b.Size) * 0.5
		push, overlap := repel(other.center(), held.center(), minDist, s.Damping)
		if !overlap {
			continue
		}
		other.tr.Position = other.tr.Position.Add(push)
		other.clamp(box)
	}
}

// End releases the active bubble. A press that never moved is reported as
// a selection instead of a drag.
func (s *DragSystem) End(w *ecs.World) (clicked bool) {
	active, dragging := s.Drag.Active()
	if !dragging {
		return false
	}
	clicked = !s.Drag.moved && ecs.IsAlive(w, active)
	s.Drag.Clear()
	if clicked {
		w.Events().Push(ecs.Event{Type: EventBubbleSelected, Data: active})
	}
	return clicked
}

// BubbleAt returns the topmost bubble under p. Later bubbles are drawn over
// earlier ones, so the search runs back to front.
func BubbleAt(w *ecs.World, p cp.Vector) (ecs.Entity, bool) {
	list := bodies(w)
	for i := len(list) - 1; i >= 0; i-- {
		if list[i].b.Contains(list[i].tr.Position, p) {
			return list[i].e, true
		}
	}
	return 0, false
}
