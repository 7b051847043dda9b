package component

import "github.com/jakecoffman/cp"

// Transform is the top-left corner of a body in container space, in pixels.
type Transform struct {
	Position cp.Vector
}

var TransformComponent = NewComponent[Transform]()
