package system

import (
	"time"

	"github.com/milk9111/suibubbles/ecs"
)

const (
	DefaultLayoutPeriod     = 48 * time.Millisecond
	DefaultOverlapTolerance = 0.1
	DefaultLayoutDamping    = 0.3
)

// LayoutParams tunes the drift and soft-collision step.
type LayoutParams struct {
	Period time.Duration
	// OverlapTolerance is the fraction of the combined radii two bubbles
	// may interpenetrate before they push apart.
	OverlapTolerance float64
	Damping          float64
}

func DefaultLayoutParams() LayoutParams {
	return LayoutParams{
		Period:           DefaultLayoutPeriod,
		OverlapTolerance: DefaultOverlapTolerance,
		Damping:          DefaultLayoutDamping,
	}
}

// LayoutSystem advances bubbles on a fixed period: drift, bounce off the
// container walls, then relax overlaps. The dragged bubble is skipped.
type LayoutSystem struct {
	Params LayoutParams
	// Frame is the wall time covered by one Update call.
	Frame time.Duration
	Drag  *DragState

	elapsed time.Duration
}

func NewLayoutSystem(params LayoutParams, frame time.Duration, drag *DragState) *LayoutSystem {
	return &LayoutSystem{Params: params, Frame: frame, Drag: drag}
}

func (s *LayoutSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	period := s.Params.Period
	if period <= 0 {
		period = DefaultLayoutPeriod
	}

	s.elapsed += s.Frame
	if s.elapsed < period {
		return
	}
	// One step per frame at most; a stalled frame must not replay a burst.
	s.elapsed -= period
	if s.elapsed >= period {
		s.elapsed = 0
	}
	s.Step(w)
}

// Step runs one layout tick immediately. Bodies are updated in place and in
// creation order, so later bodies see the moves of earlier ones.
func (s *LayoutSystem) Step(w *ecs.World) {
	box, ok := bounds(w)
	if !ok {
		return
	}
	active, dragging := s.Drag.Active()

	list := bodies(w)
	for i, cur := range list {
		if dragging && cur.e == active {
			continue
		}

		next := cur.tr.Position.Add(cur.vel.Linear)
		if next.X < 0 || next.X > box.Width-cur.b.Size {
			cur.vel.Linear.X = -cur.vel.Linear.X
		}
		if next.Y < 0 || next.Y > box.Height-cur.b.Size {
			cur.vel.Linear.Y = -cur.vel.Linear.Y
		}
		cur.tr.Position = next
		cur.clamp(box)

		for j, other := range list {
			if i == j {
				continue
			}
			minDist := (cur.b.Size + other.b.Size) * (1 - s.Params.OverlapTolerance) / 2
			push, overlap := repel(cur.center(), other.center(), minDist, s.Params.Damping)
			if !overlap {
				continue
			}
			cur.tr.Position = cur.tr.Position.Add(push)
			cur.clamp(box)
		}
	}
}
