package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer draws themed panel primitives. Every Draw* helper that lays out a
// row returns the y coordinate of the next row.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel fills a bordered panel background.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawSectionHeader draws a section title.
func (r *Renderer) DrawSectionHeader(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
	return y + r.Theme.LineHeight
}

// DrawLabelValue draws "label: value" with the value in its own column.
func (r *Renderer) DrawLabelValue(x, y int32, label, value string) int32 {
	r.drawLabel(x, y, label)
	rl.DrawText(value, x+r.Theme.LabelWidth, y, r.Theme.FontSize, r.Theme.ValueColor)
	return y + r.Theme.LineHeight
}

// DrawBar draws a fill bar for a value in [0, 1].
func (r *Renderer) DrawBar(x, y int32, label string, value float32, width int32) int32 {
	value = min(max(value, 0), 1)
	barX, barW := r.barTrack(x, y, label, width)
	rl.DrawRectangle(barX, y+2, int32(float32(barW)*value), r.Theme.BarHeight, r.Theme.BarFill)
	rl.DrawText(fmt.Sprintf("%.2f", value), barX+barW+5, y, r.Theme.FontSize, r.Theme.ValueColor)
	return y + r.Theme.LineHeight + 2
}

// DrawCenteredBar draws a bar that grows right for positive values and left
// for negative ones, full at |value| = limit.
func (r *Renderer) DrawCenteredBar(x, y int32, label string, value, limit float32, width int32) int32 {
	barX, barW := r.barTrack(x, y, label, width)
	mid := barX + barW/2
	rl.DrawLine(mid, y+2, mid, y+2+r.Theme.BarHeight, r.Theme.PanelBorder)

	frac := float32(0)
	if limit > 0 {
		frac = min(max(value/limit, -1), 1)
	}
	fill := int32(float32(barW/2) * frac)
	if fill >= 0 {
		rl.DrawRectangle(mid, y+2, fill, r.Theme.BarHeight, r.Theme.BarFillPositive)
	} else {
		rl.DrawRectangle(mid+fill, y+2, -fill, r.Theme.BarHeight, r.Theme.BarFillNegative)
	}

	rl.DrawText(fmt.Sprintf("%+.2f", value), barX+barW+5, y, r.Theme.FontSize, r.Theme.ValueColor)
	return y + r.Theme.LineHeight + 2
}

// DrawColorSwatch draws a label followed by a small filled square.
func (r *Renderer) DrawColorSwatch(x, y int32, label string, color rl.Color) int32 {
	r.drawLabel(x, y, label)
	rl.DrawRectangle(x+r.Theme.LabelWidth, y+1, 12, 12, color)
	return y + r.Theme.LineHeight
}

func (r *Renderer) drawLabel(x, y int32, label string) {
	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)
}

// barTrack draws the label and empty track, returning the track's x and width.
// 50px on the right are left for the value text.
func (r *Renderer) barTrack(x, y int32, label string, width int32) (int32, int32) {
	r.drawLabel(x, y, label)
	barX := x + r.Theme.LabelWidth
	barW := width - r.Theme.LabelWidth - 50
	rl.DrawRectangle(barX, y+2, barW, r.Theme.BarHeight, r.Theme.BarBg)
	return barX, barW
}
