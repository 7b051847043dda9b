package system

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/suibubbles/ecs"
	"github.com/milk9111/suibubbles/ecs/component"
)

func newTestWorld(t *testing.T, width, height float64) *ecs.World {
	t.Helper()
	w := ecs.NewWorld()
	if err := ecs.Add(w, ecs.CreateEntity(w), component.BoundsComponent.Kind(), &component.Bounds{Width: width, Height: height}); err != nil {
		t.Fatalf("add bounds: %v", err)
	}
	return w
}

func addBubble(t *testing.T, w *ecs.World, x, y, size, vx, vy float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.BubbleComponent.Kind(), &component.Bubble{Address: e.String(), Size: size}); err != nil {
		t.Fatalf("add bubble: %v", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: cp.Vector{X: x, Y: y}}); err != nil {
		t.Fatalf("add transform: %v", err)
	}
	if err := ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{Linear: cp.Vector{X: vx, Y: vy}}); err != nil {
		t.Fatalf("add velocity: %v", err)
	}
	return e
}

func setPointer(t *testing.T, w *ecs.World, p component.Pointer) {
	t.Helper()
	*pointerResource(w) = p
}

func position(t *testing.T, w *ecs.World, e ecs.Entity) cp.Vector {
	t.Helper()
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no transform", e)
	}
	return tr.Position
}

func velocity(t *testing.T, w *ecs.World, e ecs.Entity) cp.Vector {
	t.Helper()
	v, ok := ecs.Get(w, e, component.VelocityComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no velocity", e)
	}
	return v.Linear
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
