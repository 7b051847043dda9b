package component

// Hovered tags the bubble currently under the pointer.
type Hovered struct{}

var HoveredComponent = NewComponent[Hovered]()
