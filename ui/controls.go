package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// MaxStepsPerUpdate is the top of the steps-per-frame slider.
const MaxStepsPerUpdate = 10

// ControlActions reports which controls were activated this frame.
type ControlActions struct {
	Disrupt        bool
	Reset          bool
	TogglePause    bool
	StepsPerUpdate int
}

// ControlsPanel renders the buttons and overlay toggles in the top-right corner.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool
	overlays *OverlayRegistry
}

// NewControlsPanel creates a new controls panel listing the given overlays.
func NewControlsPanel(x, y, width int32, overlays *OverlayRegistry) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		visible:  true,
		overlays: overlays,
	}
}

// SetPosition updates the panel position.
func (c *ControlsPanel) SetPosition(x, y int32) {
	c.x = x
	c.y = y
}

// Toggle switches panel visibility.
func (c *ControlsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// Contains reports whether a screen point falls on the panel, so clicks on
// it are not treated as drags.
func (c *ControlsPanel) Contains(x, y float32) bool {
	if !c.visible {
		return false
	}
	return x >= float32(c.x) && x <= float32(c.x+c.width) &&
		y >= float32(c.y) && y <= float32(c.y+c.height())
}

func (c *ControlsPanel) height() int32 {
	lineHeight := c.renderer.Theme.LineHeight
	padding := c.renderer.Theme.Padding
	h := padding*2 + 30*2 + 40
	for _, cat := range c.overlays.Categories() {
		h += int32(len(c.overlays.ByCategory(cat))+1)*lineHeight + 4
	}
	return h
}

// Draw renders the panel and returns the actions taken this frame.
func (c *ControlsPanel) Draw(paused bool, stepsPerUpdate int) ControlActions {
	actions := ControlActions{StepsPerUpdate: stepsPerUpdate}
	if !c.visible {
		return actions
	}

	r := c.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight

	overlays := c.overlays
	r.DrawPanel(c.x, c.y, c.width, c.height())

	x := float32(c.x + padding)
	y := float32(c.y + padding)
	inner := float32(c.width - padding*2)
	half := (inner - 8) / 2

	if gui.Button(rl.Rectangle{X: x, Y: y, Width: half, Height: 24}, "Disrupt [D]") {
		actions.Disrupt = true
	}
	if gui.Button(rl.Rectangle{X: x + half + 8, Y: y, Width: half, Height: 24}, "Reset [R]") {
		actions.Reset = true
	}
	y += 30

	pauseText := "Pause [Space]"
	if paused {
		pauseText = "Resume [Space]"
	}
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: inner, Height: 24}, pauseText) {
		actions.TogglePause = true
	}
	y += 30

	rl.DrawText(fmt.Sprintf("Steps/frame: %d", stepsPerUpdate), int32(x), int32(y), r.Theme.FontSize, r.Theme.LabelColor)
	y += 14
	steps := gui.SliderBar(
		rl.Rectangle{X: x + 12, Y: y, Width: inner - 24, Height: 14},
		"1", fmt.Sprint(MaxStepsPerUpdate),
		float32(stepsPerUpdate), 1, MaxStepsPerUpdate,
	)
	actions.StepsPerUpdate = int(steps + 0.5)
	y += 26

	yi := int32(y)
	for _, category := range overlays.Categories() {
		rl.DrawText(categoryLabel(category), c.x+padding, yi, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
		yi += lineHeight
		for _, desc := range overlays.ByCategory(category) {
			c.drawToggle(c.x+padding, yi, desc, overlays.IsEnabled(desc.ID), c.width-padding*2)
			yi += lineHeight
		}
		yi += 4
	}

	return actions
}

// drawToggle draws a single overlay toggle line.
func (c *ControlsPanel) drawToggle(x, y int32, desc OverlayDescriptor, enabled bool, width int32) {
	r := c.renderer

	statusColor := rl.Color{R: 80, G: 80, B: 80, A: 255}
	if enabled {
		statusColor = rl.Color{R: 100, G: 200, B: 100, A: 255}
	}
	rl.DrawRectangle(x, y+2, 8, 8, statusColor)

	nameColor := r.Theme.LabelColor
	if enabled {
		nameColor = rl.White
	}
	rl.DrawText(desc.Name, x+14, y, r.Theme.FontSize, nameColor)

	if desc.KeyLabel != "" {
		keyText := fmt.Sprintf("[%s]", desc.KeyLabel)
		keyWidth := rl.MeasureText(keyText, r.Theme.FontSize)
		rl.DrawText(keyText, x+width-keyWidth, y, r.Theme.FontSize, rl.Color{R: 150, G: 150, B: 150, A: 255})
	}
}

// categoryLabel returns a display label for a category.
func categoryLabel(cat string) string {
	switch cat {
	case "visual":
		return "Visual"
	case "debug":
		return "Debug"
	default:
		return cat
	}
}
