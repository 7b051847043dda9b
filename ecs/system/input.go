package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/suibubbles/ecs"
	"github.com/milk9111/suibubbles/ecs/component"
)

// InputSystem samples the mouse into the world's Pointer resource, in
// container coordinates.
type InputSystem struct {
	// Origin is the screen position of the container's top-left corner.
	Origin cp.Vector
	// Suspended hands the pointer to an overlay such as a modal dialog.
	Suspended bool
}

func NewInputSystem(origin cp.Vector) *InputSystem {
	return &InputSystem{Origin: origin}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || w == nil {
		return
	}

	x, y := ebiten.CursorPosition()
	pos := cp.Vector{X: float64(x), Y: float64(y)}.Sub(i.Origin)

	ptr := pointerResource(w)
	ptr.Position = pos
	ptr.Enabled = !i.Suspended
	ptr.Down = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	ptr.Pressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	ptr.Released = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	ptr.Inside = false
	if box, ok := bounds(w); ok {
		ptr.Inside = pos.X >= 0 && pos.Y >= 0 && pos.X < box.Width && pos.Y < box.Height
	}
}

func pointerResource(w *ecs.World) *component.Pointer {
	if _, ptr, ok := ecs.First(w, component.PointerComponent.Kind()); ok {
		return ptr
	}
	ptr := &component.Pointer{}
	_ = ecs.Add(w, ecs.CreateEntity(w), component.PointerComponent.Kind(), ptr)
	return ptr
}
