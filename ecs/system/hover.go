package system

import (
	"github.com/milk9111/suibubbles/ecs"
	"github.com/milk9111/suibubbles/ecs/component"
)

// HoverSystem tags the bubble under the pointer. While a drag is in
// progress the dragged bubble keeps the highlight.
type HoverSystem struct {
	Drag *DragState
}

func NewHoverSystem(drag *DragState) *HoverSystem {
	return &HoverSystem{Drag: drag}
}

func (s *HoverSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	var target ecs.Entity
	if active, dragging := s.Drag.Active(); dragging {
		target = active
	} else if _, ptr, ok := ecs.First(w, component.PointerComponent.Kind()); ok && ptr.Enabled && ptr.Inside {
		target, _ = BubbleAt(w, ptr.Position)
	}

	ecs.ForEach(w, component.HoveredComponent.Kind(), func(e ecs.Entity, _ *component.Hovered) {
		if e != target {
			ecs.Remove(w, e, component.HoveredComponent.Kind())
		}
	})
	if target.Valid() && !ecs.Has(w, target, component.HoveredComponent.Kind()) {
		_ = ecs.Add(w, target, component.HoveredComponent.Kind(), &component.Hovered{})
	}
}
