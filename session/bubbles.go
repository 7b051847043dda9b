package session

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/suibubbles/common"
	"github.com/milk9111/suibubbles/ecs"
	"github.com/milk9111/suibubbles/ecs/component"
	"github.com/milk9111/suibubbles/script"
	"go.uber.org/zap"
)

// SetBounds resizes the container. Bubbles are rebuilt when the size
// changes or when a token list arrived before the container had any area.
func (s *Session) SetBounds(width, height float64) {
	_, b, ok := ecs.First(s.world, component.BoundsComponent.Kind())
	if !ok {
		b = &component.Bounds{}
		if err := ecs.Add(s.world, ecs.CreateEntity(s.world), component.BoundsComponent.Kind(), b); err != nil {
			s.logger.Error("add bounds", zap.Error(err))
			return
		}
	}
	if b.Width == width && b.Height == height && !s.dirty {
		return
	}
	b.Width, b.Height = width, height
	s.Rebuild()
}

// Rebuild syncs the bubble bodies with the latest token list. Tokens that
// stay keep their position and drift; new ones start at a random spot with
// a random drift.
func (s *Session) Rebuild() {
	_, box, ok := ecs.First(s.world, component.BoundsComponent.Kind())
	if !ok || box.Empty() {
		s.dirty = true
		return
	}
	s.dirty = false

	top := topByMarketCap(s.tokens, s.opts.Count)
	keep := make(map[string]bool, len(top))
	for _, t := range top {
		keep[t.Address] = true
	}

	active, dragging := s.drag.Active()
	for addr, e := range s.bubbles {
		if keep[addr] && ecs.IsAlive(s.world, e) {
			continue
		}
		if dragging && e == active {
			s.drag.Clear()
		}
		ecs.DestroyEntity(s.world, e)
		delete(s.bubbles, addr)
	}

	minSize, maxSize := script.Bounds(box.Width, box.Height, s.opts.Count, s.opts.MinSizeRatio)
	var maxCap float64
	if len(top) > 0 {
		maxCap = top[0].MarketCapSUI
	}

	for rank, t := range top {
		size, err := s.deps.Sizer.Size(script.Input{
			MarketCap:    t.MarketCapSUI,
			MaxMarketCap: maxCap,
			MinSize:      minSize,
			MaxSize:      maxSize,
			Rank:         rank,
			Count:        len(top),
		})
		if err != nil {
			s.logger.Warn("size script failed", zap.String("address", t.Address), zap.Error(err))
		}

		bubble := component.Bubble{
			Address:   t.Address,
			Size:      size,
			Label:     t.DisplaySymbol(),
			Change:    s.change[t.Address],
			MarketCap: t.MarketCapSUI,
		}

		if e, ok := s.bubbles[t.Address]; ok {
			if b, ok := ecs.Get(s.world, e, component.BubbleComponent.Kind()); ok {
				*b = bubble
			}
			if tr, ok := ecs.Get(s.world, e, component.TransformComponent.Kind()); ok {
				tr.Position = common.ClampBox(tr.Position, size, box.Width, box.Height)
			}
			continue
		}

		e, err := s.spawn(bubble, box)
		if err != nil {
			s.logger.Error("spawn bubble", zap.String("address", t.Address), zap.Error(err))
			continue
		}
		s.bubbles[t.Address] = e
	}
}

func (s *Session) spawn(bubble component.Bubble, box *component.Bounds) (ecs.Entity, error) {
	r := s.deps.Rand
	pos := cp.Vector{
		X: r.Float64() * max(box.Width-bubble.Size, 0),
		Y: r.Float64() * max(box.Height-bubble.Size, 0),
	}
	speed := s.opts.MaxSpeed
	vel := cp.Vector{
		X: (r.Float64()*2 - 1) * speed,
		Y: (r.Float64()*2 - 1) * speed,
	}

	e := ecs.CreateEntity(s.world)
	if err := ecs.Add(s.world, e, component.BubbleComponent.Kind(), &bubble); err != nil {
		ecs.DestroyEntity(s.world, e)
		return 0, err
	}
	if err := ecs.Add(s.world, e, component.TransformComponent.Kind(), &component.Transform{Position: pos}); err != nil {
		ecs.DestroyEntity(s.world, e)
		return 0, err
	}
	if err := ecs.Add(s.world, e, component.VelocityComponent.Kind(), &component.Velocity{Linear: vel}); err != nil {
		ecs.DestroyEntity(s.world, e)
		return 0, err
	}
	return e, nil
}

// BubbleFor returns the entity drawn for address.
func (s *Session) BubbleFor(address string) (ecs.Entity, bool) {
	e, ok := s.bubbles[address]
	return e, ok && ecs.IsAlive(s.world, e)
}
