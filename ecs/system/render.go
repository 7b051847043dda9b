package system

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/suibubbles/ecs"
	"github.com/milk9111/suibubbles/ecs/component"
	"golang.org/x/image/colornames"
)

// gradientSteps is the number of rings used to fake a radial gradient.
const gradientSteps = 8

type RenderSystem struct {
	// Origin is the screen position of the container's top-left corner.
	Origin cp.Vector
	Face   text.Face
}

func NewRenderSystem(origin cp.Vector, face text.Face) *RenderSystem {
	return &RenderSystem{Origin: origin, Face: face}
}

// Update is a no-op; bubbles are only drawn.
func (r *RenderSystem) Update(*ecs.World) {}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	for _, b := range bodies(w) {
		c := b.center().Add(r.Origin)
		cx, cy := float32(c.X), float32(c.Y)
		radius := float32(b.b.Size / 2)
		rim := ChangeColor(b.b.Change)

		for i := 0; i < gradientSteps; i++ {
			t := float64(i) / gradientSteps
			ring := radius * float32(1-t)
			// Shift inner rings up-left so the highlight reads as a sphere.
			off := float32(t) * radius * 0.25
			vector.FillCircle(screen, cx-off, cy-off, ring, gradientStop(rim, t), true)
		}

		if ecs.Has(w, b.e, component.HoveredComponent.Kind()) {
			vector.StrokeCircle(screen, cx, cy, radius-1, 2, colornames.Yellow, true)
		}

		r.drawLabel(screen, b.b, cx, cy)
	}
}

func (r *RenderSystem) drawLabel(screen *ebiten.Image, b *component.Bubble, cx, cy float32) {
	if r.Face == nil || b.Label == "" || b.Size < 28 {
		return
	}
	lineHeight := r.Face.Metrics().HAscent + r.Face.Metrics().HDescent

	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignEnd
	op.GeoM.Translate(float64(cx), float64(cy))
	op.ColorScale.ScaleWithColor(colornames.White)
	text.Draw(screen, b.Label, r.Face, op)

	op = &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignStart
	op.GeoM.Translate(float64(cx), float64(cy)+lineHeight*0.1)
	op.ColorScale.ScaleWithColor(colornames.Whitesmoke)
	text.Draw(screen, fmt.Sprintf("%+.2f%%", b.Change), r.Face, op)
}
