package common

import "github.com/jakecoffman/cp"

// Default window size.
const (
	BaseWidth  = 1280
	BaseHeight = 720
)

// Clamp limits v to [lo, hi]. When hi < lo the range collapses to lo.
func Clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampBox keeps a square of the given size whose top-left corner is pos
// inside a width x height area.
func ClampBox(pos cp.Vector, size, width, height float64) cp.Vector {
	return cp.Vector{
		X: Clamp(pos.X, 0, width-size),
		Y: Clamp(pos.Y, 0, height-size),
	}
}
