package layout

import "gonum.org/v1/gonum/spatial/r2"

// Body is one visualized entity.
type Body struct {
	Label string
	Pos   r2.Vec
	Vel   r2.Vec
	Hue   float64 // decoration token for the renderer, degrees in [0, 360)
}

// Speed returns the magnitude of the body's velocity.
func (b *Body) Speed() float64 {
	return r2.Norm(b.Vel)
}

// NodeSpec is an externally supplied entity description.
type NodeSpec struct {
	Label   string
	Display bool
}

// Bounds is the layout extent. Positions live in [0, Width] x [0, Height].
type Bounds struct {
	Width, Height float64
}

// Center returns the middle of the bounds.
func (b Bounds) Center() r2.Vec {
	return r2.Vec{X: b.Width / 2, Y: b.Height / 2}
}

// Weigher resolves the signed relationship weight between two labels.
// Implementations must be symmetric and return 0 for unknown pairs.
type Weigher interface {
	Weight(a, b string) float64
}

// Rand is the source of randomness for annealing and scattering.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Edge is a pair of live bodies whose relationship is strong enough to draw.
type Edge struct {
	A, B   string
	Weight float64
}
