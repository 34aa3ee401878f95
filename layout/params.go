// Package layout is the force-directed layout engine: pairwise force computation,
// the annealing perturbation scheduler, the integrator and the simulation controller
// that drives them once per tick.
package layout

// ForceParams controls the force field.
type ForceParams struct {
	MaxDistance    float64 // D_max: ideal distance for unrelated pairs
	Shaping        float64 // k: how strongly |w| moves the ideal distance away from D_max
	SpringConstant float64
	NodeRadius     float64
	OverlapFactor  float64 // anti-overlap kicks in below OverlapFactor * 2 * NodeRadius
	RepulsionBase  float64
	CenterStrength float64
	CenterDeadZone float64
}

// OverlapDistance returns the distance below which anti-overlap repulsion applies.
func (p ForceParams) OverlapDistance() float64 {
	return p.OverlapFactor * 2 * p.NodeRadius
}

// AnnealParams controls the annealing scheduler.
type AnnealParams struct {
	InitialTemperature float64
	CoolingRate        float64 // per-tick geometric decay, < 1
	JitterFrequency    float64 // jitter probability at full temperature
	JitterScale        float64 // jitter impulse = (u-0.5) * T * JitterScale
	DisruptImpulse     float64 // disrupt impulse = (u-0.5) * DisruptImpulse
	DisruptBump        float64 // temperature added by Disrupt, capped at InitialTemperature
	Epsilon            float64 // temperatures below this are treated as zero
}

// IntegratorParams controls velocity and position updates.
type IntegratorParams struct {
	Damping     float64
	MaxVelocity float64
	Bounce      float64 // fraction of velocity kept (and reversed) on wall contact
	Margin      float64 // distance kept from the bounds, usually the node radius
}

// Params bundles everything a Simulation needs.
type Params struct {
	Force         ForceParams
	Anneal        AnnealParams
	Integrator    IntegratorParams
	InitialRadius float64 // radius of the disc new bodies are scattered in
}

// DefaultParams returns the tuning used by the viewer.
func DefaultParams() Params {
	return Params{
		Force: ForceParams{
			MaxDistance:    300,
			Shaping:        0.64,
			SpringConstant: 0.001,
			NodeRadius:     20,
			OverlapFactor:  1.5,
			RepulsionBase:  500,
			CenterStrength: 0.0005,
			CenterDeadZone: 50,
		},
		Anneal: AnnealParams{
			InitialTemperature: 10,
			CoolingRate:        0.995,
			JitterFrequency:    0.1,
			JitterScale:        0.5,
			DisruptImpulse:     40,
			DisruptBump:        5,
			Epsilon:            1e-6,
		},
		Integrator: IntegratorParams{
			Damping:     0.85,
			MaxVelocity: 15,
			Bounce:      0.8,
			Margin:      20,
		},
		InitialRadius: 200,
	}
}
