package system

import (
	"math/rand"
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/suibubbles/ecs"
	"github.com/milk9111/suibubbles/ecs/component"
)

func TestLayoutStepKeepsBubblesInBounds(t *testing.T) {
	const width, height = 800.0, 600.0
	rnd := rand.New(rand.NewSource(7))
	w := newTestWorld(t, width, height)

	var ents []ecs.Entity
	for i := 0; i < 30; i++ {
		size := 60 + rnd.Float64()*80
		ents = append(ents, addBubble(t, w,
			rnd.Float64()*(width-size), rnd.Float64()*(height-size), size,
			(rnd.Float64()*2-1)*4, (rnd.Float64()*2-1)*4))
	}

	s := NewLayoutSystem(DefaultLayoutParams(), DefaultLayoutPeriod, &DragState{})
	for step := 0; step < 500; step++ {
		s.Step(w)
		for _, e := range ents {
			b, _ := ecs.Get(w, e, component.BubbleComponent.Kind())
			p := position(t, w, e)
			if p.X < 0 || p.Y < 0 || p.X > width-b.Size || p.Y > height-b.Size {
				t.Fatalf("step %d: bubble %v escaped to %v (size %v)", step, e, p, b.Size)
			}
		}
	}
}

func TestLayoutStepSeparatedBubblesUntouched(t *testing.T) {
	w := newTestWorld(t, 800, 600)
	a := addBubble(t, w, 0, 0, 100, 0, 0)
	b := addBubble(t, w, 300, 300, 100, 0, 0)

	NewLayoutSystem(DefaultLayoutParams(), DefaultLayoutPeriod, &DragState{}).Step(w)

	if got := position(t, w, a); got != (cp.Vector{}) {
		t.Fatalf("a moved to %v", got)
	}
	if got := position(t, w, b); got != (cp.Vector{X: 300, Y: 300}) {
		t.Fatalf("b moved to %v", got)
	}
}

func TestLayoutStepToleratesSmallOverlap(t *testing.T) {
	w := newTestWorld(t, 800, 600)
	// Centers 95 apart: overlapping by 5 but inside the 10% tolerance (min 90).
	a := addBubble(t, w, 100, 100, 100, 0, 0)
	b := addBubble(t, w, 195, 100, 100, 0, 0)

	NewLayoutSystem(DefaultLayoutParams(), DefaultLayoutPeriod, &DragState{}).Step(w)

	if got := position(t, w, a); got != (cp.Vector{X: 100, Y: 100}) {
		t.Fatalf("a moved to %v", got)
	}
	if got := position(t, w, b); got != (cp.Vector{X: 195, Y: 100}) {
		t.Fatalf("b moved to %v", got)
	}
}

func TestLayoutStepWallBounce(t *testing.T) {
	cases := []struct {
		name    string
		pos     cp.Vector
		vel     cp.Vector
		wantVel cp.Vector
		wantPos cp.Vector
	}{
		{"right_wall", cp.Vector{X: 699, Y: 300}, cp.Vector{X: 2, Y: 1}, cp.Vector{X: -2, Y: 1}, cp.Vector{X: 700, Y: 301}},
		{"left_wall", cp.Vector{X: 1, Y: 300}, cp.Vector{X: -2, Y: 1}, cp.Vector{X: 2, Y: 1}, cp.Vector{X: 0, Y: 301}},
		{"bottom_wall", cp.Vector{X: 300, Y: 499}, cp.Vector{X: 1, Y: 2}, cp.Vector{X: 1, Y: -2}, cp.Vector{X: 301, Y: 500}},
		{"corner", cp.Vector{X: 699, Y: 499}, cp.Vector{X: 2, Y: 2}, cp.Vector{X: -2, Y: -2}, cp.Vector{X: 700, Y: 500}},
		{"touching_not_crossing", cp.Vector{X: 698, Y: 300}, cp.Vector{X: 2, Y: 0}, cp.Vector{X: 2, Y: 0}, cp.Vector{X: 700, Y: 300}},
		{"free", cp.Vector{X: 300, Y: 300}, cp.Vector{X: -1, Y: 1}, cp.Vector{X: -1, Y: 1}, cp.Vector{X: 299, Y: 301}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newTestWorld(t, 800, 600)
			e := addBubble(t, w, c.pos.X, c.pos.Y, 100, c.vel.X, c.vel.Y)

			NewLayoutSystem(DefaultLayoutParams(), DefaultLayoutPeriod, &DragState{}).Step(w)

			if got := velocity(t, w, e); got != c.wantVel {
				t.Fatalf("velocity = %v, want %v", got, c.wantVel)
			}
			if got := position(t, w, e); got != c.wantPos {
				t.Fatalf("position = %v, want %v", got, c.wantPos)
			}
		})
	}
}

func TestLayoutStepPushesOverlappingApart(t *testing.T) {
	w := newTestWorld(t, 800, 600)
	a := addBubble(t, w, 0, 0, 100, 0, 0)
	b := addBubble(t, w, 10, 10, 100, 0, 0)

	before := position(t, w, a).Distance(position(t, w, b))
	NewLayoutSystem(DefaultLayoutParams(), DefaultLayoutPeriod, &DragState{}).Step(w)
	after := position(t, w, a).Distance(position(t, w, b))

	if after <= before {
		t.Fatalf("expected separation to grow, before=%v after=%v", before, after)
	}
	// a is pinned in the corner, so b takes the whole push along the diagonal.
	pb := position(t, w, b)
	if !near(pb.X, pb.Y) || pb.X <= 10 {
		t.Fatalf("expected b pushed down-right along the diagonal, got %v", pb)
	}
}

func TestLayoutSkipsActiveBubble(t *testing.T) {
	w := newTestWorld(t, 800, 600)
	a := addBubble(t, w, 100, 100, 100, 3, 3)
	addBubble(t, w, 120, 120, 100, 0, 0)

	drag := &DragState{}
	ds := NewDragSystem(drag, DefaultDragDamping, 0)
	if !ds.Begin(w, a, cp.Vector{X: 150, Y: 150}) {
		t.Fatalf("begin drag failed")
	}

	s := NewLayoutSystem(DefaultLayoutParams(), DefaultLayoutPeriod, drag)
	for i := 0; i < 5; i++ {
		s.Step(w)
	}
	if got := position(t, w, a); got != (cp.Vector{X: 100, Y: 100}) {
		t.Fatalf("active bubble moved to %v", got)
	}

	ds.End(w)
	s.Step(w)
	if got := position(t, w, a); got == (cp.Vector{X: 100, Y: 100}) {
		t.Fatalf("released bubble should move on the next tick")
	}
}

func TestLayoutUpdateRunsOnPeriod(t *testing.T) {
	w := newTestWorld(t, 800, 600)
	e := addBubble(t, w, 100, 100, 50, 1, 0)

	s := NewLayoutSystem(DefaultLayoutParams(), 16*time.Millisecond, &DragState{})
	s.Update(w)
	s.Update(w)
	if got := position(t, w, e); got.X != 100 {
		t.Fatalf("stepped too early: %v", got)
	}
	s.Update(w)
	if got := position(t, w, e); got.X != 101 {
		t.Fatalf("expected one step after 48ms, got %v", got)
	}

	// A single long frame still steps only once.
	s.Frame = time.Second
	s.Update(w)
	if got := position(t, w, e); got.X != 102 {
		t.Fatalf("expected exactly one more step, got %v", got)
	}
}

func TestLayoutWithoutBoundsIsNoop(t *testing.T) {
	w := ecs.NewWorld()
	e := addBubble(t, w, 10, 10, 50, 1, 1)
	NewLayoutSystem(DefaultLayoutParams(), DefaultLayoutPeriod, &DragState{}).Step(w)
	if got := position(t, w, e); got != (cp.Vector{X: 10, Y: 10}) {
		t.Fatalf("expected no movement without bounds, got %v", got)
	}
}
