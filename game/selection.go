package game

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/constellation/layout"
	"github.com/pthm-cable/constellation/ui"
)

// nodePanelData collects the details shown for the labeled node.
func (g *Game) nodePanelData(label string) (ui.NodePanelData, bool) {
	body, ok := g.sim.Body(label)
	if !ok {
		return ui.NodePanelData{}, false
	}

	force := g.sim.Params().Force
	var related []ui.RelatedNode
	for _, other := range g.sim.Bodies() {
		if other.Label == label {
			continue
		}
		w := g.table.Weight(label, other.Label)
		if w == 0 {
			continue
		}
		related = append(related, ui.RelatedNode{
			Label:    other.Label,
			Weight:   w,
			Distance: r2.Norm(r2.Sub(other.Pos, body.Pos)),
			Ideal:    layout.IdealDistance(w, force),
		})
	}
	sort.Slice(related, func(i, j int) bool {
		return math.Abs(related[i].Weight) > math.Abs(related[j].Weight)
	})

	return ui.NodePanelData{
		Label:   body.Label,
		Hue:     float32(body.Hue),
		X:       body.Pos.X,
		Y:       body.Pos.Y,
		Speed:   body.Speed(),
		Pinned:  g.sim.Dragged() == label,
		Related: related,
	}, true
}
