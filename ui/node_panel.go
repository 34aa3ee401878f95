package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// maxRelated caps how many relationships the node panel lists.
const maxRelated = 8

// RelatedNode is one relationship of the inspected node.
type RelatedNode struct {
	Label    string
	Weight   float64
	Distance float64
	Ideal    float64
}

// NodePanelData holds all the data needed to render the node panel.
type NodePanelData struct {
	Label   string
	Hue     float32
	X, Y    float64
	Speed   float64
	Pinned  bool
	Related []RelatedNode // strongest first
}

// NodePanel renders details about the hovered or dragged node.
type NodePanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewNodePanel creates a new node panel.
func NewNodePanel(x, y, width int32) *NodePanel {
	return &NodePanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition updates the panel position.
func (n *NodePanel) SetPosition(x, y int32) {
	n.x = x
	n.y = y
}

// Draw renders the node panel.
func (n *NodePanel) Draw(data NodePanelData) {
	r := n.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight

	related := data.Related
	if len(related) > maxRelated {
		related = related[:maxRelated]
	}

	rows := int32(6 + 2*len(related))
	r.DrawPanel(n.x, n.y, n.width, rows*lineHeight+padding*2)

	x := n.x + padding
	y := n.y + padding
	contentWidth := n.width - padding*2

	title := data.Label
	if data.Pinned {
		title += " (pinned)"
	}
	rl.DrawText(title, x, y, 18, NodeColor(data.Hue))
	y += lineHeight + 6

	y = r.DrawColorSwatch(x, y, "Hue", NodeColor(data.Hue))
	y = r.DrawLabelValue(x, y, "Position", fmt.Sprintf("%.0f, %.0f", data.X, data.Y))
	y = r.DrawLabelValue(x, y, "Speed", fmt.Sprintf("%.2f", data.Speed))

	if len(related) == 0 {
		return
	}
	y = r.DrawSectionHeader(x, y+4, "Relationships")
	for _, rel := range related {
		y = r.DrawCenteredBar(x, y, rel.Label, float32(rel.Weight), 1, contentWidth)
		rl.DrawText(fmt.Sprintf("d=%.0f ideal=%.0f", rel.Distance, rel.Ideal), x+r.Theme.LabelWidth, y, 10, rl.Gray)
		y += lineHeight - 2
	}
}
