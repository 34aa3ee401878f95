package layout

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestIntegrate(t *testing.T) {
	p := IntegratorParams{Damping: 0.5, MaxVelocity: 10, Bounce: 0.8, Margin: 20}
	bounds := Bounds{Width: 200, Height: 100}

	tests := []struct {
		name    string
		pos     r2.Vec
		vel     r2.Vec
		force   r2.Vec
		wantPos r2.Vec
		wantVel r2.Vec
	}{
		{
			name:    "force then damping",
			pos:     r2.Vec{X: 100, Y: 50},
			vel:     r2.Vec{X: 2, Y: 0},
			force:   r2.Vec{X: 2, Y: 4},
			wantPos: r2.Vec{X: 102, Y: 52},
			wantVel: r2.Vec{X: 2, Y: 2},
		},
		{
			name:    "speed clamped preserving direction",
			pos:     r2.Vec{X: 100, Y: 50},
			force:   r2.Vec{X: 0, Y: -60},
			wantPos: r2.Vec{X: 100, Y: 40},
			wantVel: r2.Vec{X: 0, Y: -10},
		},
		{
			name:    "bounce off right wall",
			pos:     r2.Vec{X: 175, Y: 50},
			vel:     r2.Vec{X: 20, Y: 0},
			wantPos: r2.Vec{X: 180, Y: 50},
			wantVel: r2.Vec{X: -8, Y: 0},
		},
		{
			name:    "bounce off top wall",
			pos:     r2.Vec{X: 100, Y: 22},
			vel:     r2.Vec{X: 0, Y: -10},
			wantPos: r2.Vec{X: 100, Y: 20},
			wantVel: r2.Vec{X: 0, Y: 4},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Body{Label: "n", Pos: tc.pos, Vel: tc.vel}
			Integrate(&b, tc.force, bounds, p)
			if !approxEqual(b.Pos.X, tc.wantPos.X, 1e-9) || !approxEqual(b.Pos.Y, tc.wantPos.Y, 1e-9) {
				t.Errorf("pos = %v, want %v", b.Pos, tc.wantPos)
			}
			if !approxEqual(b.Vel.X, tc.wantVel.X, 1e-9) || !approxEqual(b.Vel.Y, tc.wantVel.Y, 1e-9) {
				t.Errorf("vel = %v, want %v", b.Vel, tc.wantVel)
			}
		})
	}
}

func TestIntegrateTinyBounds(t *testing.T) {
	p := IntegratorParams{Damping: 0.85, MaxVelocity: 10, Bounce: 0.8, Margin: 20}
	b := Body{Pos: r2.Vec{X: 5, Y: 5}, Vel: r2.Vec{X: 3, Y: 3}}
	Integrate(&b, r2.Vec{}, Bounds{Width: 30, Height: 30}, p)
	if b.Pos != (r2.Vec{X: 15, Y: 15}) || b.Vel != (r2.Vec{}) {
		t.Errorf("expected body parked at the middle, got %v %v", b.Pos, b.Vel)
	}
}
