package layout

import "gonum.org/v1/gonum/spatial/r2"

// Integrate advances one body by a unit timestep with unit mass: the force is
// applied as a velocity delta, then damping, the speed ceiling, the position update
// and wall reflection follow in that order.
func Integrate(b *Body, force r2.Vec, bounds Bounds, p IntegratorParams) {
	b.Vel = r2.Scale(p.Damping, r2.Add(b.Vel, force))

	// Limit velocity
	if speed := r2.Norm(b.Vel); speed > p.MaxVelocity {
		b.Vel = r2.Scale(p.MaxVelocity/speed, b.Vel)
	}

	b.Pos = r2.Add(b.Pos, b.Vel)

	b.Pos.X, b.Vel.X = reflect(b.Pos.X, b.Vel.X, p.Margin, bounds.Width-p.Margin, p.Bounce)
	b.Pos.Y, b.Vel.Y = reflect(b.Pos.Y, b.Vel.Y, p.Margin, bounds.Height-p.Margin, p.Bounce)
}

// reflect clamps pos into [lo, hi] and bounces vel off whichever wall was crossed.
func reflect(pos, vel, lo, hi, bounce float64) (float64, float64) {
	if hi < lo {
		// Bounds smaller than two margins: park in the middle.
		return (lo + hi) / 2, 0
	}
	if pos < lo {
		return lo, -vel * bounce
	}
	if pos > hi {
		return hi, -vel * bounce
	}
	return pos, vel
}
