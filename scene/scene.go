package scene

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/constellation/layout"
)

// Scene is the render-side view of a simulation. It is rebuilt when the body
// set changes and synced from the simulation once per frame.
type Scene struct {
	world *ecs.World

	mapper *ecs.Map3[Position, Node, Highlight]
	filter *ecs.Filter3[Position, Node, Highlight]

	posMap       *ecs.Map[Position]
	nodeMap      *ecs.Map[Node]
	highlightMap *ecs.Map[Highlight]

	byLabel map[string]ecs.Entity
	radius  float32
	hovered string

	grid    *Grid
	scratch []Neighbor
}

// New creates an empty scene whose nodes are drawn and picked with the given radius.
func New(radius float32) *Scene {
	world := ecs.NewWorld()
	return &Scene{
		world:        world,
		mapper:       ecs.NewMap3[Position, Node, Highlight](world),
		filter:       ecs.NewFilter3[Position, Node, Highlight](world),
		posMap:       ecs.NewMap[Position](world),
		nodeMap:      ecs.NewMap[Node](world),
		highlightMap: ecs.NewMap[Highlight](world),
		byLabel:      make(map[string]ecs.Entity),
		radius:       radius,
		grid:         NewGrid(0, 0, pickCellSize(radius)),
	}
}

// pickCellSize sizes grid cells so a pick touches at most four cells.
func pickCellSize(radius float32) float32 {
	return max(2*radius, 1)
}

// Len returns the number of mirrored nodes.
func (s *Scene) Len() int {
	return len(s.byLabel)
}

// Rebuild replaces every entity with one per body.
func (s *Scene) Rebuild(bodies []layout.Body) {
	for _, e := range s.byLabel {
		s.world.RemoveEntity(e)
	}
	clear(s.byLabel)

	for i := range bodies {
		b := &bodies[i]
		pos := Position{X: float32(b.Pos.X), Y: float32(b.Pos.Y)}
		node := Node{Label: b.Label, Hue: float32(b.Hue), Radius: s.radius}
		hl := Highlight{Hovered: b.Label == s.hovered}
		s.byLabel[b.Label] = s.mapper.NewEntity(&pos, &node, &hl)
	}
	s.reindex()
}

// SetExtent sizes the pick grid for a layout area. Nodes outside the area
// remain pickable.
func (s *Scene) SetExtent(width, height float32) {
	if s.grid.Covers(width, height) {
		return
	}
	s.grid = NewGrid(width, height, pickCellSize(s.radius))
	s.reindex()
}

// reindex rebuckets every node by its current position.
func (s *Scene) reindex() {
	s.grid.Clear()
	query := s.filter.Query()
	for query.Next() {
		pos, _, _ := query.Get()
		s.grid.Insert(query.Entity(), pos.X, pos.Y)
	}
}

// Sync copies body positions and the drag marker from the simulation.
func (s *Scene) Sync(sim *layout.Simulation) {
	bounds := sim.Bounds()
	s.SetExtent(float32(bounds.Width), float32(bounds.Height))

	bodies := sim.Bodies()
	if !s.matches(bodies) {
		s.Rebuild(bodies)
	}

	for i := range bodies {
		b := &bodies[i]
		e := s.byLabel[b.Label]
		pos := s.posMap.Get(e)
		pos.X = float32(b.Pos.X)
		pos.Y = float32(b.Pos.Y)
		node := s.nodeMap.Get(e)
		node.Hue = float32(b.Hue)
	}
	s.reindex()

	dragged := sim.Dragged()
	query := s.filter.Query()
	for query.Next() {
		_, node, hl := query.Get()
		hl.Dragged = node.Label == dragged
	}
}

// matches reports whether the scene holds exactly the given labels.
func (s *Scene) matches(bodies []layout.Body) bool {
	if len(bodies) != len(s.byLabel) {
		return false
	}
	for i := range bodies {
		if _, ok := s.byLabel[bodies[i].Label]; !ok {
			return false
		}
	}
	return true
}

// Pick returns the label of the node closest to (x, y) within its radius.
func (s *Scene) Pick(x, y float32) (string, bool) {
	var label string
	best := float32(-1)

	s.scratch = s.grid.QueryRadiusInto(s.scratch[:0], x, y, s.radius, s.posMap)
	for _, n := range s.scratch {
		node := s.nodeMap.Get(n.E)
		if n.DistSq > node.Radius*node.Radius {
			continue
		}
		if best < 0 || n.DistSq < best {
			best = n.DistSq
			label = node.Label
		}
	}
	return label, best >= 0
}

// SetHovered marks the labeled node as hovered and clears the rest.
// An empty label clears the hover.
func (s *Scene) SetHovered(label string) {
	s.hovered = label
	query := s.filter.Query()
	for query.Next() {
		_, node, hl := query.Get()
		hl.Hovered = node.Label == label
	}
}

// Position returns the mirrored position of the labeled node.
func (s *Scene) Position(label string) (Position, bool) {
	e, ok := s.byLabel[label]
	if !ok || !s.world.Alive(e) {
		return Position{}, false
	}
	return *s.posMap.Get(e), true
}

// Each calls fn for every node. Highlighted nodes are visited last so they
// draw on top.
func (s *Scene) Each(fn func(pos Position, node Node, hl Highlight)) {
	type entry struct {
		pos  Position
		node Node
		hl   Highlight
	}
	var top []entry

	query := s.filter.Query()
	for query.Next() {
		pos, node, hl := query.Get()
		if hl.Hovered || hl.Dragged {
			top = append(top, entry{*pos, *node, *hl})
			continue
		}
		fn(*pos, *node, *hl)
	}
	for _, e := range top {
		fn(e.pos, e.node, e.hl)
	}
}
