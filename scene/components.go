// Package scene mirrors the live layout bodies into an ECS world for rendering
// and hit testing.
package scene

// Position is a node's location in layout coordinates.
type Position struct {
	X, Y float32
}

// Node holds the static display data of a body.
type Node struct {
	Label  string
	Hue    float32 // degrees in [0, 360)
	Radius float32
}

// Highlight marks transient interaction state.
type Highlight struct {
	Hovered bool
	Dragged bool
}
