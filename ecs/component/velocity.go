package component

import "github.com/jakecoffman/cp"

// Velocity is the drift of a body in pixels per layout tick.
type Velocity struct {
	Linear cp.Vector
}

var VelocityComponent = NewComponent[Velocity]()
