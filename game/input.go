package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/constellation/ui"
)

// keyBinding maps a key press to a viewer action.
type keyBinding struct {
	key    int32
	action func(g *Game)
}

var keyBindings = []keyBinding{
	{rl.KeyF11, func(*Game) { rl.ToggleFullscreen() }},
	{rl.KeySpace, func(g *Game) { g.paused = !g.paused }},
	{rl.KeyD, (*Game).Disrupt},
	{rl.KeyR, (*Game).Reset},
	{rl.KeyF3, func(g *Game) { g.showPerf = !g.showPerf }},
	{rl.KeyTab, func(g *Game) { g.controls.Toggle() }},
	{rl.KeyComma, func(g *Game) { g.stepsPerUpdate = max(g.stepsPerUpdate-1, 1) }},
	{rl.KeyPeriod, func(g *Game) { g.stepsPerUpdate = min(g.stepsPerUpdate+1, ui.MaxStepsPerUpdate) }},
}

// handleInput processes keyboard and mouse input.
func (g *Game) handleInput() {
	g.handleResize()

	for _, b := range keyBindings {
		if rl.IsKeyPressed(b.key) {
			b.action(g)
		}
	}
	g.overlays.HandleKeyPress(rl.IsKeyPressed)

	g.handleCameraInput()
	g.handlePointer()
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	g.Resize(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
}

// handleCameraInput processes camera pan/zoom controls.
func (g *Game) handleCameraInput() {
	// Pan speed scales inversely with zoom for natural feel
	panSpeed := float32(8.0) / g.camera.Zoom

	if rl.IsKeyDown(rl.KeyRight) {
		g.camera.Pan(panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		g.camera.Pan(-panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		g.camera.Pan(0, panSpeed)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		g.camera.Pan(0, -panSpeed)
	}

	// Zoom toward the cursor with the mouse wheel
	if wheelMove := rl.GetMouseWheelMove(); wheelMove != 0 {
		mouse := rl.GetMousePosition()
		g.camera.ZoomAt(mouse.X, mouse.Y, 1+wheelMove*0.1)
	}

	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		g.camera.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		g.camera.ZoomBy(0.8)
	}
	if rl.IsKeyPressed(rl.KeyHome) {
		g.camera.Reset()
	}
}

// handlePointer turns mouse gestures into hover, Pin and Unpin.
func (g *Game) handlePointer() {
	mouse := rl.GetMousePosition()
	wx, wy := g.camera.ScreenToWorld(mouse.X, mouse.Y)

	switch {
	case rl.IsMouseButtonPressed(rl.MouseButtonLeft):
		if !g.controls.Contains(mouse.X, mouse.Y) {
			g.drag.Press(g.sim, wx, wy)
		}
	case rl.IsMouseButtonReleased(rl.MouseButtonLeft):
		g.drag.Release(g.sim)
	case g.drag.Active():
		g.drag.Move(g.sim, wx, wy)
	}

	hovered := g.drag.Label()
	if hovered == "" {
		hovered, _ = g.scene.Pick(wx, wy)
	}
	if hovered != g.hovered {
		g.hovered = hovered
		g.scene.SetHovered(hovered)
	}
}

// reapplyDrag pins the held node at the current cursor before a tick.
func (g *Game) reapplyDrag() {
	if g.camera == nil || !g.drag.Active() {
		return
	}
	mouse := rl.GetMousePosition()
	wx, wy := g.camera.ScreenToWorld(mouse.X, mouse.Y)
	g.drag.Move(g.sim, wx, wy)
}
