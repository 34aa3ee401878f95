package layout

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Annealer owns the layout temperature. It cools geometrically every tick and
// occasionally shakes every body with an impulse proportional to the temperature.
type Annealer struct {
	params      AnnealParams
	rng         Rand
	temperature float64

	// Counters since construction, read by telemetry.
	jitters     int
	disruptions int
}

// NewAnnealer creates an annealer at its initial temperature.
func NewAnnealer(p AnnealParams, rng Rand) *Annealer {
	return &Annealer{
		params:      p,
		rng:         rng,
		temperature: p.InitialTemperature,
	}
}

// Temperature returns the current temperature.
func (a *Annealer) Temperature() float64 {
	return a.temperature
}

// Jitters returns how many ticks injected jitter.
func (a *Annealer) Jitters() int {
	return a.jitters
}

// Disruptions returns how many times Disrupt was called.
func (a *Annealer) Disruptions() int {
	return a.disruptions
}

// Reset restores the initial temperature.
func (a *Annealer) Reset() {
	a.temperature = a.params.InitialTemperature
}

// Tick cools the temperature and, with probability JitterFrequency * T/T0, returns a
// random impulse for each of n bodies. It returns nil when no jitter fires.
func (a *Annealer) Tick(n int) []r2.Vec {
	a.temperature *= a.params.CoolingRate
	if a.temperature < a.params.Epsilon {
		a.temperature = 0
	}
	if n == 0 || a.temperature == 0 || a.params.InitialTemperature <= 0 {
		return nil
	}

	prob := a.params.JitterFrequency * (a.temperature / a.params.InitialTemperature)
	if a.rng.Float64() >= prob {
		return nil
	}
	a.jitters++
	return a.impulses(n, a.temperature*a.params.JitterScale)
}

// Disrupt returns a large random impulse for each of n bodies and reheats,
// never above the initial temperature.
func (a *Annealer) Disrupt(n int) []r2.Vec {
	a.disruptions++
	a.temperature = math.Min(a.temperature+a.params.DisruptBump, a.params.InitialTemperature)
	if n == 0 {
		return nil
	}
	return a.impulses(n, a.params.DisruptImpulse)
}

func (a *Annealer) impulses(n int, scale float64) []r2.Vec {
	out := make([]r2.Vec, n)
	for i := range out {
		out[i] = r2.Vec{
			X: (a.rng.Float64() - 0.5) * scale,
			Y: (a.rng.Float64() - 0.5) * scale,
		}
	}
	return out
}
