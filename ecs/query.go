package ecs

import "github.com/milk9111/suibubbles/ecs/component"

// ForEach visits every entity with a component of kind in dense order.
// The visited list is captured up front so fn may add or remove components.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	s := w.store(kind.ID(), false)
	if s == nil || fn == nil {
		return
	}
	for _, e := range snapshot(s) {
		if v, ok := s.Get(e).(*T); ok && v != nil {
			fn(e, v)
		}
	}
}

// ForEach2 visits entities carrying both kinds, in the dense order of a.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa := w.store(ka.ID(), false)
	sb := w.store(kb.ID(), false)
	if sa == nil || sb == nil || fn == nil {
		return
	}
	for _, e := range snapshot(sa) {
		a, ok := sa.Get(e).(*A)
		if !ok || a == nil {
			continue
		}
		b, ok := sb.Get(e).(*B)
		if !ok || b == nil {
			continue
		}
		fn(e, a, b)
	}
}

// ForEach3 visits entities carrying all three kinds, in the dense order of a.
func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	sa := w.store(ka.ID(), false)
	sb := w.store(kb.ID(), false)
	sc := w.store(kc.ID(), false)
	if sa == nil || sb == nil || sc == nil || fn == nil {
		return
	}
	for _, e := range snapshot(sa) {
		a, ok := sa.Get(e).(*A)
		if !ok || a == nil {
			continue
		}
		b, ok := sb.Get(e).(*B)
		if !ok || b == nil {
			continue
		}
		c, ok := sc.Get(e).(*C)
		if !ok || c == nil {
			continue
		}
		fn(e, a, b, c)
	}
}

func snapshot(s *SparseSet) []Entity {
	ents := s.Entities()
	out := make([]Entity, len(ents))
	copy(out, ents)
	return out
}
