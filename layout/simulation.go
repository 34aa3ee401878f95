package layout

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// State is the live body set. Order carries no physical meaning.
type State struct {
	Bodies []Body
	index  map[string]int
}

func newState(bodies []Body) State {
	index := make(map[string]int, len(bodies))
	for i, b := range bodies {
		index[b.Label] = i
	}
	return State{Bodies: bodies, index: index}
}

// Simulation drives the layout one tick at a time. It is not safe for concurrent
// use; Pin, Unpin, Disrupt and Reset must be serialized with Tick by the caller.
type Simulation struct {
	params   Params
	weights  Weigher
	bounds   Bounds
	rng      Rand
	annealer *Annealer

	state   State
	tick    int64
	dragged string
}

// New creates an empty simulation. Call Reset to populate it.
func New(params Params, weights Weigher, bounds Bounds, rng Rand) *Simulation {
	return &Simulation{
		params:   params,
		weights:  weights,
		bounds:   bounds,
		rng:      rng,
		annealer: NewAnnealer(params.Anneal, rng),
		state:    newState(nil),
	}
}

// Tick runs the force field, the annealer and the integrator once.
// An empty simulation does not tick, cool or count.
func (s *Simulation) Tick() {
	bodies := s.state.Bodies
	if len(bodies) == 0 {
		return
	}
	forces := ComputeForces(bodies, s.weights, s.bounds.Center(), s.params.Force)
	if jitter := s.annealer.Tick(len(bodies)); jitter != nil {
		for i := range forces {
			forces[i] = r2.Add(forces[i], jitter[i])
		}
	}
	for i := range bodies {
		Integrate(&bodies[i], forces[i], s.bounds, s.params.Integrator)
	}
	s.tick++
}

// Disrupt kicks every body with a large random impulse and reheats the layout.
// An empty simulation is left untouched.
func (s *Simulation) Disrupt() {
	if len(s.state.Bodies) == 0 {
		return
	}
	kicks := s.annealer.Disrupt(len(s.state.Bodies))
	for i := range kicks {
		b := &s.state.Bodies[i]
		b.Vel = r2.Add(b.Vel, kicks[i])
	}
}

// Reset discards the current layout and scatters the displayed nodes in a disc
// around the center. Later duplicates of a label are ignored.
func (s *Simulation) Reset(nodes []NodeSpec) {
	bodies := make([]Body, 0, len(nodes))
	seen := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		if !n.Display || seen[n.Label] {
			continue
		}
		seen[n.Label] = true
		bodies = append(bodies, Body{Label: n.Label})
	}

	center := s.bounds.Center()
	for i := range bodies {
		// sqrt keeps the scatter uniform over the disc area
		r := s.params.InitialRadius * math.Sqrt(s.rng.Float64())
		theta := s.rng.Float64() * 2 * math.Pi
		bodies[i].Pos = r2.Add(center, r2.Vec{X: r * math.Cos(theta), Y: r * math.Sin(theta)})
		bodies[i].Hue = math.Mod(float64(i)*137.508, 360)
	}

	s.state = newState(bodies)
	s.annealer.Reset()
	s.dragged = ""
	s.tick = 0
}

// Pin moves the labeled body to (x, y) and stops it. The override is one-shot:
// the next Tick moves the body normally. Unknown labels are ignored.
func (s *Simulation) Pin(label string, x, y float64) bool {
	i, ok := s.state.index[label]
	if !ok {
		return false
	}
	b := &s.state.Bodies[i]
	b.Pos = r2.Vec{X: x, Y: y}
	b.Vel = r2.Vec{}
	s.dragged = label
	return true
}

// Unpin releases the dragged body.
func (s *Simulation) Unpin() {
	s.dragged = ""
}

// Dragged returns the label of the body under external control, or "".
func (s *Simulation) Dragged() string {
	return s.dragged
}

// SetBounds changes the layout extent, e.g. after a window resize.
func (s *Simulation) SetBounds(width, height float64) {
	s.bounds = Bounds{Width: width, Height: height}
}

// Bounds returns the layout extent.
func (s *Simulation) Bounds() Bounds {
	return s.bounds
}

// Params returns the simulation parameters.
func (s *Simulation) Params() Params {
	return s.params
}

// Bodies returns the live bodies. The slice is owned by the simulation and is
// only valid until the next Reset.
func (s *Simulation) Bodies() []Body {
	return s.state.Bodies
}

// Body returns the labeled body.
func (s *Simulation) Body(label string) (Body, bool) {
	i, ok := s.state.index[label]
	if !ok {
		return Body{}, false
	}
	return s.state.Bodies[i], true
}

// Temperature returns the current annealing temperature.
func (s *Simulation) Temperature() float64 {
	return s.annealer.Temperature()
}

// Annealer exposes the scheduler for telemetry counters.
func (s *Simulation) Annealer() *Annealer {
	return s.annealer
}

// TickCount returns the number of ticks since the last Reset.
func (s *Simulation) TickCount() int64 {
	return s.tick
}

// Edges returns every pair of live bodies whose |weight| exceeds threshold.
func (s *Simulation) Edges(threshold float64) []Edge {
	var edges []Edge
	bodies := s.state.Bodies
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			w := s.weights.Weight(bodies[i].Label, bodies[j].Label)
			if math.Abs(w) > threshold {
				edges = append(edges, Edge{A: bodies[i].Label, B: bodies[j].Label, Weight: w})
			}
		}
	}
	return edges
}

// Stress returns how far the layout is from every pair sitting at its ideal distance.
func (s *Simulation) Stress() float64 {
	return Stress(s.state.Bodies, s.weights, s.params.Force)
}

// KineticEnergy returns the sum of 0.5*|v|^2 over all bodies.
func (s *Simulation) KineticEnergy() float64 {
	var e float64
	for i := range s.state.Bodies {
		e += 0.5 * r2.Norm2(s.state.Bodies[i].Vel)
	}
	return e
}

// Stress is the mean squared relative deviation of pair distances from their ideal
// distances. Zero means every pair sits exactly at its spring rest length.
func Stress(bodies []Body, w Weigher, p ForceParams) float64 {
	var sum float64
	var pairs int
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			ideal := IdealDistance(w.Weight(bodies[i].Label, bodies[j].Label), p)
			if ideal <= 0 {
				continue
			}
			d := r2.Norm(r2.Sub(bodies[i].Pos, bodies[j].Pos))
			rel := (d - ideal) / ideal
			sum += rel * rel
			pairs++
		}
	}
	if pairs == 0 {
		return 0
	}
	return sum / float64(pairs)
}
