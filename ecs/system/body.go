package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/suibubbles/common"
	"github.com/milk9111/suibubbles/ecs"
	"github.com/milk9111/suibubbles/ecs/component"
)

// body is one bubble gathered for a pass over the world.
type body struct {
	e   ecs.Entity
	tr  *component.Transform
	vel *component.Velocity
	b   *component.Bubble
}

func (b body) center() cp.Vector {
	return b.b.Center(b.tr.Position)
}

func (b body) clamp(bounds *component.Bounds) {
	b.tr.Position = common.ClampBox(b.tr.Position, b.b.Size, bounds.Width, bounds.Height)
}

// bodies returns every bubble in creation order.
func bodies(w *ecs.World) []body {
	var list []body
	ecs.ForEach3(w, component.BubbleComponent.Kind(), component.TransformComponent.Kind(), component.VelocityComponent.Kind(), func(e ecs.Entity, b *component.Bubble, tr *component.Transform, vel *component.Velocity) {
		list = append(list, body{e: e, tr: tr, vel: vel, b: b})
	})
	return list
}

func bounds(w *ecs.World) (*component.Bounds, bool) {
	_, b, ok := ecs.First(w, component.BoundsComponent.Kind())
	if !ok || b.Empty() {
		return nil, false
	}
	return b, true
}

// repel returns how far self must move away from other when their centers
// are closer than minDist. The push runs along the line through both
// centers and is proportional to the penetration depth.
func repel(self, other cp.Vector, minDist, damping float64) (cp.Vector, bool) {
	delta := self.Sub(other)
	dist := delta.Length()
	if dist >= minDist {
		return cp.Vector{}, false
	}
	angle := math.Atan2(delta.Y, delta.X)
	depth := (minDist - dist) * damping
	return cp.Vector{X: math.Cos(angle) * depth, Y: math.Sin(angle) * depth}, true
}
