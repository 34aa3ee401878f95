package telemetry

import (
	"math"

	"github.com/pthm-cable/constellation/layout"
)

// Collector tracks stats windows over a running simulation and produces WindowStats.
type Collector struct {
	windowDurationTicks int64
	dt                  float64

	// Current window tracking
	windowStartTick int64

	// Annealer counters at window start, used for per-window deltas
	jittersAtStart     int
	disruptionsAtStart int
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec float64, dt float64) *Collector {
	ticksPerWindow := int64(math.Round(windowDurationSec / dt))
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int64) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Restart begins a fresh window, e.g. after the simulation was reset.
func (c *Collector) Restart(sim *layout.Simulation) {
	c.windowStartTick = sim.TickCount()
	c.jittersAtStart = sim.Annealer().Jitters()
	c.disruptionsAtStart = sim.Annealer().Disruptions()
}

// Flush samples the simulation into a WindowStats and starts the next window.
func (c *Collector) Flush(sim *layout.Simulation) WindowStats {
	bodies := sim.Bodies()
	speeds := make([]float64, len(bodies))
	for i := range bodies {
		speeds[i] = bodies[i].Speed()
	}
	speed := ComputeSpeedStats(speeds)

	tick := sim.TickCount()
	annealer := sim.Annealer()

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   tick,
		SimTimeSec:      float64(tick) * c.dt,

		Bodies: len(bodies),

		Temperature: sim.Temperature(),
		Jitters:     annealer.Jitters() - c.jittersAtStart,
		Disruptions: annealer.Disruptions() - c.disruptionsAtStart,

		KineticEnergy: sim.KineticEnergy(),
		SpeedMean:     speed.Mean,
		SpeedStd:      speed.Std,
		SpeedP50:      speed.P50,
		SpeedP90:      speed.P90,
		SpeedMax:      speed.Max,

		Stress: sim.Stress(),
	}

	c.Restart(sim)
	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int64 {
	return c.windowDurationTicks
}
