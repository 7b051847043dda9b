package component

import "github.com/jakecoffman/cp"

// Bubble is the circular body that represents one token.
type Bubble struct {
	// Address is the token address and stays stable for the session.
	Address string
	// Size is the diameter in pixels.
	Size float64
	// Label is drawn in the middle of the bubble, usually the symbol.
	Label string
	// Change is the percent price change over the selected period.
	Change    float64
	MarketCap float64
}

// Center returns the center of a bubble whose top-left corner is at pos.
func (b *Bubble) Center(pos cp.Vector) cp.Vector {
	r := b.Size / 2
	return cp.Vector{X: pos.X + r, Y: pos.Y + r}
}

// Contains reports whether p lies inside the bubble placed at pos.
func (b *Bubble) Contains(pos, p cp.Vector) bool {
	r := b.Size / 2
	return b.Center(pos).DistanceSq(p) <= r*r
}

var BubbleComponent = NewComponent[Bubble]()
