package telemetry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pthm-cable/constellation/layout"
	"github.com/pthm-cable/constellation/relations"
)

func TestPercentile(t *testing.T) {
	tests := []struct {
		name   string
		sorted []float64
		p      float64
		want   float64
	}{
		{"empty slice", []float64{}, 0.5, 0},
		{"single element", []float64{5.0}, 0.5, 5.0},
		{"p0", []float64{1, 2, 3, 4, 5}, 0.0, 1.0},
		{"p100", []float64{1, 2, 3, 4, 5}, 1.0, 5.0},
		{"p50 even", []float64{1, 2, 3, 4}, 0.5, 2.5},
		{"p90", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.9, 9.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percentile(tt.sorted, tt.p)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("Percentile(%v, %v) = %v, want %v", tt.sorted, tt.p, got, tt.want)
			}
		})
	}
}

func TestComputeSpeedStats(t *testing.T) {
	s := ComputeSpeedStats([]float64{4, 2, 2, 4})
	if s.Mean != 3 || s.Std != 1 || s.Max != 4 || s.P50 != 3 {
		t.Errorf("unexpected stats: %+v", s)
	}

	if empty := ComputeSpeedStats(nil); empty != (SpeedStats{}) {
		t.Errorf("expected zero stats for no bodies, got %+v", empty)
	}
}

func newTestSim() *layout.Simulation {
	tbl := relations.NewTable()
	tbl.Set("a", "b", 0.8)
	tbl.Set("b", "c", -0.5)
	sim := layout.New(layout.DefaultParams(), tbl, layout.Bounds{Width: 800, Height: 600}, rand.New(rand.NewSource(3)))
	sim.Reset(relations.AllNodes(tbl))
	return sim
}

func TestCollectorWindows(t *testing.T) {
	sim := newTestSim()
	c := NewCollector(1.0, 1.0/60.0)
	if c.WindowDurationTicks() != 60 {
		t.Fatalf("expected 60 ticks per window, got %d", c.WindowDurationTicks())
	}

	for i := 0; i < 59; i++ {
		sim.Tick()
	}
	if c.ShouldFlush(sim.TickCount()) {
		t.Fatal("flushed before the window ended")
	}
	sim.Disrupt()
	sim.Tick()
	if !c.ShouldFlush(sim.TickCount()) {
		t.Fatal("expected flush at window end")
	}

	stats := c.Flush(sim)
	if stats.WindowStartTick != 0 || stats.WindowEndTick != 60 {
		t.Errorf("window = [%d, %d], want [0, 60]", stats.WindowStartTick, stats.WindowEndTick)
	}
	if math.Abs(stats.SimTimeSec-1.0) > 1e-9 {
		t.Errorf("sim time = %v, want 1", stats.SimTimeSec)
	}
	if stats.Bodies != 3 || stats.Disruptions != 1 {
		t.Errorf("unexpected counts: %+v", stats)
	}
	if stats.Temperature != sim.Temperature() || stats.SpeedMax > sim.Params().Integrator.MaxVelocity {
		t.Errorf("unexpected motion stats: %+v", stats)
	}
	if c.ShouldFlush(sim.TickCount()) {
		t.Error("expected a fresh window after flush")
	}

	next := c.Flush(sim)
	if next.Disruptions != 0 {
		t.Errorf("expected per-window disruption count, got %d", next.Disruptions)
	}
}
