package scene

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/constellation/layout"
	"github.com/pthm-cable/constellation/relations"
)

func newSim(labels ...string) *layout.Simulation {
	tbl := relations.NewTable()
	for i := 1; i < len(labels); i++ {
		tbl.Set(labels[i-1], labels[i], 0.5)
	}
	sim := layout.New(layout.DefaultParams(), tbl, layout.Bounds{Width: 800, Height: 600}, rand.New(rand.NewSource(1)))
	sim.Reset(relations.AllNodes(tbl))
	return sim
}

func TestRebuildAndPick(t *testing.T) {
	s := New(10)
	s.Rebuild([]layout.Body{
		{Label: "a", Pos: r2.Vec{X: 100, Y: 100}},
		{Label: "b", Pos: r2.Vec{X: 112, Y: 100}},
		{Label: "c", Pos: r2.Vec{X: 400, Y: 300}},
	})
	if s.Len() != 3 {
		t.Fatalf("expected 3 nodes, got %d", s.Len())
	}

	tests := []struct {
		name   string
		x, y   float32
		want   string
		wantOK bool
	}{
		{"exact hit", 400, 300, "c", true},
		{"closest of overlapping", 104, 100, "a", true},
		{"closest of overlapping other side", 109, 100, "b", true},
		{"miss", 250, 250, "", false},
		{"just outside radius", 400, 311, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := s.Pick(tt.x, tt.y)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Pick(%v, %v) = %q, %v; want %q, %v", tt.x, tt.y, got, ok, tt.want, tt.wantOK)
			}
		})
	}

	// A second rebuild replaces the previous entities.
	s.Rebuild([]layout.Body{{Label: "z"}})
	if s.Len() != 1 {
		t.Errorf("expected 1 node after rebuild, got %d", s.Len())
	}
	if _, ok := s.Position("a"); ok {
		t.Error("stale node survived rebuild")
	}
}

func TestSyncFollowsSimulation(t *testing.T) {
	sim := newSim("x", "y", "z")
	s := New(float32(sim.Params().Force.NodeRadius))

	s.Sync(sim)
	if s.Len() != 3 {
		t.Fatalf("expected 3 nodes, got %d", s.Len())
	}

	sim.Pin("y", 321, 123)
	for i := 0; i < 5; i++ {
		sim.Tick()
	}
	sim.Pin("y", 321, 123)
	s.Sync(sim)

	pos, ok := s.Position("y")
	if !ok || pos.X != 321 || pos.Y != 123 {
		t.Errorf("expected y mirrored at (321, 123), got %+v ok=%v", pos, ok)
	}
	for _, label := range []string{"x", "z"} {
		b, _ := sim.Body(label)
		p, _ := s.Position(label)
		if p.X != float32(b.Pos.X) || p.Y != float32(b.Pos.Y) {
			t.Errorf("%s not synced: scene %+v, sim %+v", label, p, b.Pos)
		}
	}

	dragged := 0
	s.Each(func(_ Position, node Node, hl Highlight) {
		if hl.Dragged {
			dragged++
			if node.Label != "y" {
				t.Errorf("unexpected dragged node %q", node.Label)
			}
		}
	})
	if dragged != 1 {
		t.Errorf("expected one dragged node, got %d", dragged)
	}

	sim.Unpin()
	s.Sync(sim)
	s.Each(func(_ Position, node Node, hl Highlight) {
		if hl.Dragged {
			t.Errorf("%q still marked dragged after Unpin", node.Label)
		}
	})
}

func TestSyncRebuildsOnNewBodySet(t *testing.T) {
	sim := newSim("a", "b")
	s := New(20)
	s.Sync(sim)

	s.Rebuild([]layout.Body{{Label: "ghost"}})
	s.Sync(sim)

	if s.Len() != 2 {
		t.Fatalf("expected 2 nodes, got %d", s.Len())
	}
	if _, ok := s.Position("ghost"); ok {
		t.Error("expected ghost node to be dropped")
	}
}

func TestHoveredDrawsLast(t *testing.T) {
	s := New(10)
	s.Rebuild([]layout.Body{{Label: "a"}, {Label: "b"}, {Label: "c"}})
	s.SetHovered("a")

	var order []string
	s.Each(func(_ Position, node Node, hl Highlight) {
		order = append(order, node.Label)
		if hl.Hovered != (node.Label == "a") {
			t.Errorf("unexpected hover state for %q: %v", node.Label, hl.Hovered)
		}
	})
	if len(order) != 3 || order[2] != "a" {
		t.Errorf("expected hovered node last, got %v", order)
	}

	// Hover survives a rebuild of the same labels.
	s.Rebuild([]layout.Body{{Label: "a"}, {Label: "b"}})
	found := false
	s.Each(func(_ Position, node Node, hl Highlight) {
		if hl.Hovered && node.Label == "a" {
			found = true
		}
	})
	if !found {
		t.Error("expected hover to persist across rebuild")
	}

	s.SetHovered("")
	s.Each(func(_ Position, node Node, hl Highlight) {
		if hl.Hovered {
			t.Errorf("%q still hovered", node.Label)
		}
	})
}
