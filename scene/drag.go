package scene

import "github.com/pthm-cable/constellation/layout"

// Drag forwards a pointer drag to the simulation. While active it re-pins the
// grabbed node every frame so the simulation never moves it away from the cursor.
type Drag struct {
	scene            *Scene
	label            string
	offsetX, offsetY float32
}

// NewDrag creates a drag tracker picking nodes from s.
func NewDrag(s *Scene) *Drag {
	return &Drag{scene: s}
}

// Press grabs the node under (x, y), keeping the grab offset so the node does
// not jump to the cursor. It returns false when nothing was hit.
func (d *Drag) Press(sim *layout.Simulation, x, y float32) bool {
	label, ok := d.scene.Pick(x, y)
	if !ok {
		return false
	}
	pos, _ := d.scene.Position(label)
	d.label = label
	d.offsetX = pos.X - x
	d.offsetY = pos.Y - y
	return d.Move(sim, x, y)
}

// Move pins the grabbed node at the cursor. A node that no longer exists ends the drag.
func (d *Drag) Move(sim *layout.Simulation, x, y float32) bool {
	if d.label == "" {
		return false
	}
	if !sim.Pin(d.label, float64(x+d.offsetX), float64(y+d.offsetY)) {
		d.Cancel()
		return false
	}
	return true
}

// Release ends the drag and hands the node back to the physics.
func (d *Drag) Release(sim *layout.Simulation) {
	if d.label == "" {
		return
	}
	sim.Unpin()
	d.Cancel()
}

// Cancel forgets the drag without touching the simulation, e.g. after a Reset.
func (d *Drag) Cancel() {
	d.label = ""
	d.offsetX, d.offsetY = 0, 0
}

// Active reports whether a node is being dragged.
func (d *Drag) Active() bool {
	return d.label != ""
}

// Label returns the dragged node, or "".
func (d *Drag) Label() string {
	return d.label
}
