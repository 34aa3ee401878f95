package layout

import "gonum.org/v1/gonum/spatial/r2"

// minPairDistance is the distance below which a pair is skipped for the tick.
// Jitter and centering separate such pairs again.
const minPairDistance = 1.0

// IdealDistance returns the rest length of the spring between two bodies with weight w.
// Positive weights pull the ideal below MaxDistance, negative weights push it beyond.
func IdealDistance(w float64, p ForceParams) float64 {
	if w > 0 {
		return p.MaxDistance * (1 - p.Shaping*w*w)
	}
	return p.MaxDistance * (1 + p.Shaping*w*w)
}

// SpringMagnitude returns the signed spring force for a pair at distance d.
// Positive values attract.
func SpringMagnitude(d, w float64, p ForceParams) float64 {
	return (d - IdealDistance(w, p)) * p.SpringConstant * (3*w*w + 0.5)
}

// PairForce returns the force on a from the pair (a, b). The force on b is its negation.
// ok is false when the pair is too close to have a defined direction.
func PairForce(a, b r2.Vec, w float64, p ForceParams) (f r2.Vec, ok bool) {
	delta := r2.Sub(b, a)
	d := r2.Norm(delta)
	if d < minPairDistance {
		return r2.Vec{}, false
	}
	unit := r2.Scale(1/d, delta)

	mag := SpringMagnitude(d, w, p)
	if d < p.OverlapDistance() {
		// Repulsion only: subtracting pushes a away from b.
		mag -= p.RepulsionBase / (d * d)
	}
	return r2.Scale(mag, unit), true
}

// CenteringForce returns the pull toward center, zero inside the dead zone.
func CenteringForce(pos, center r2.Vec, p ForceParams) r2.Vec {
	disp := r2.Sub(center, pos)
	if r2.Norm(disp) <= p.CenterDeadZone {
		return r2.Vec{}
	}
	return r2.Scale(p.CenterStrength, disp)
}

// ComputeForces returns the net force on every body from springs, anti-overlap
// repulsion and centering. The result is indexed like bodies.
func ComputeForces(bodies []Body, w Weigher, center r2.Vec, p ForceParams) []r2.Vec {
	forces := make([]r2.Vec, len(bodies))
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			weight := w.Weight(bodies[i].Label, bodies[j].Label)
			f, ok := PairForce(bodies[i].Pos, bodies[j].Pos, weight, p)
			if !ok {
				continue
			}
			forces[i] = r2.Add(forces[i], f)
			forces[j] = r2.Sub(forces[j], f)
		}
	}
	for i := range bodies {
		forces[i] = r2.Add(forces[i], CenteringForce(bodies[i].Pos, center, p))
	}
	return forces
}
