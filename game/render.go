package game

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/constellation/layout"
	"github.com/pthm-cable/constellation/scene"
	"github.com/pthm-cable/constellation/ui"
)

var backgroundColor = rl.Color{R: 14, G: 17, B: 22, A: 255}

// Draw renders the layout and the UI.
func (g *Game) Draw() {
	g.perfCollector.RecordFrame()

	rl.BeginDrawing()
	rl.ClearBackground(backgroundColor)

	if g.overlays.IsEnabled(ui.OverlayDeadZone) {
		g.drawDeadZone()
	}

	edges := g.sim.Edges(g.cfg.Display.EdgeThreshold)
	g.drawEdges(edges)
	g.drawNodes()
	g.drawUI(len(edges))

	rl.EndDrawing()
}

// drawEdges strokes every visible relationship; color follows the sign and
// width follows the magnitude.
func (g *Game) drawEdges(edges []layout.Edge) {
	threshold := g.cfg.Display.EdgeThreshold
	maxWidth := g.cfg.Display.MaxEdgeWidth

	for _, e := range edges {
		if !g.overlays.ShowEdge(e.Weight) {
			continue
		}
		a, okA := g.scene.Position(e.A)
		b, okB := g.scene.Position(e.B)
		if !okA || !okB {
			continue
		}
		ax, ay := g.camera.WorldToScreen(a.X, a.Y)
		bx, by := g.camera.WorldToScreen(b.X, b.Y)

		width := edgeWidth(e.Weight, threshold, maxWidth) * g.camera.Zoom
		rl.DrawLineEx(rl.Vector2{X: ax, Y: ay}, rl.Vector2{X: bx, Y: by}, width, ui.WeightColor(e.Weight))
	}
}

// edgeWidth maps |w| in (threshold, 1] linearly onto [1, maxWidth].
func edgeWidth(w, threshold, maxWidth float64) float32 {
	span := 1 - threshold
	if span <= 0 || maxWidth <= 1 {
		return 1
	}
	t := (math.Abs(w) - threshold) / span
	t = math.Max(0, math.Min(1, t))
	return float32(1 + t*(maxWidth-1))
}

// drawNodes renders every node as a filled circle with an optional label.
func (g *Game) drawNodes() {
	showLabels := g.overlays.IsEnabled(ui.OverlayLabels)
	showVelocity := g.overlays.IsEnabled(ui.OverlayVelocity)
	showOverlap := g.overlays.IsEnabled(ui.OverlayOverlap)
	fontSize := int32(g.cfg.Display.LabelFontSize)
	overlap := float32(g.sim.Params().Force.OverlapDistance())

	g.scene.Each(func(pos scene.Position, node scene.Node, hl scene.Highlight) {
		if !g.camera.IsVisible(pos.X, pos.Y, node.Radius) {
			return
		}
		sx, sy := g.camera.WorldToScreen(pos.X, pos.Y)
		r := node.Radius * g.camera.Zoom
		center := rl.Vector2{X: sx, Y: sy}

		if showOverlap {
			rl.DrawCircleLines(int32(sx), int32(sy), overlap*g.camera.Zoom, rl.Color{R: 120, G: 120, B: 160, A: 90})
		}

		rl.DrawCircleV(center, r, ui.NodeColor(node.Hue))
		switch {
		case hl.Dragged:
			rl.DrawRing(center, r, r+3, 0, 360, 32, rl.Yellow)
		case hl.Hovered:
			rl.DrawRing(center, r, r+2, 0, 360, 32, rl.White)
		}

		if showVelocity {
			if b, ok := g.sim.Body(node.Label); ok {
				// Scaled up so typical speeds are visible
				ex := sx + float32(b.Vel.X)*4*g.camera.Zoom
				ey := sy + float32(b.Vel.Y)*4*g.camera.Zoom
				rl.DrawLineEx(center, rl.Vector2{X: ex, Y: ey}, 2, rl.SkyBlue)
			}
		}

		if showLabels {
			w := rl.MeasureText(node.Label, fontSize)
			rl.DrawText(node.Label, int32(sx)-w/2, int32(sy+r)+2, fontSize, rl.RayWhite)
		}
	})
}

// drawDeadZone outlines the region where centering does not pull.
func (g *Game) drawDeadZone() {
	c := g.sim.Bounds().Center()
	sx, sy := g.camera.WorldToScreen(float32(c.X), float32(c.Y))
	radius := float32(g.sim.Params().Force.CenterDeadZone) * g.camera.Zoom
	rl.DrawCircleLines(int32(sx), int32(sy), radius, rl.Color{R: 200, G: 200, B: 80, A: 120})
	rl.DrawLine(int32(sx)-6, int32(sy), int32(sx)+6, int32(sy), rl.Color{R: 200, G: 200, B: 80, A: 160})
	rl.DrawLine(int32(sx), int32(sy)-6, int32(sx), int32(sy)+6, rl.Color{R: 200, G: 200, B: 80, A: 160})
}

// drawUI renders the HUD and the panels and applies button actions.
func (g *Game) drawUI(edgeCount int) {
	g.hud.Draw(ui.HUDData{
		Title:              "Constellation",
		Bodies:             len(g.sim.Bodies()),
		Edges:              edgeCount,
		Tick:               g.sim.TickCount(),
		Temperature:        g.sim.Temperature(),
		InitialTemperature: g.sim.Params().Anneal.InitialTemperature,
		Stress:             g.sim.Stress(),
		KineticEnergy:      g.sim.KineticEnergy(),
		StepsPerUpdate:     g.stepsPerUpdate,
		FPS:                rl.GetFPS(),
		Paused:             g.paused,
		Dragged:            g.sim.Dragged(),
	})
	g.hud.DrawControls(int32(g.screenHeight), "Drag: move node | D: disrupt | R: reset | Space: pause | </>: speed | Wheel: zoom | Tab: panel | F3: perf")

	if g.showPerf {
		g.perfPanel.Draw(g.perfCollector.Stats())
	}

	if g.hovered != "" {
		if data, ok := g.nodePanelData(g.hovered); ok {
			g.nodePanel.Draw(data)
		}
	}

	actions := g.controls.Draw(g.paused, g.stepsPerUpdate)
	if actions.Disrupt {
		g.Disrupt()
	}
	if actions.Reset {
		g.Reset()
	}
	if actions.TogglePause {
		g.paused = !g.paused
	}
	g.stepsPerUpdate = max(1, min(ui.MaxStepsPerUpdate, actions.StepsPerUpdate))
}
