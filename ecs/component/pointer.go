package component

import "github.com/jakecoffman/cp"

// Pointer is the mouse state for this frame in container space.
type Pointer struct {
	Position cp.Vector
	// Inside is true while the pointer is over the container.
	Inside bool
	// Down is true while the primary button is held.
	Down bool
	// Pressed and Released are edge flags for this frame only.
	Pressed  bool
	Released bool
	// Enabled is false while a modal owns the input.
	Enabled bool
}

var PointerComponent = NewComponent[Pointer]()
