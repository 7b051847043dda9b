package component

// Bounds is the size of the bubble container. One instance lives in each
// world and is refreshed whenever the window is laid out.
type Bounds struct {
	Width  float64
	Height float64
}

// Empty reports whether the container has no usable area yet.
func (b *Bounds) Empty() bool {
	return b == nil || b.Width <= 0 || b.Height <= 0
}

var BoundsComponent = NewComponent[Bounds]()
