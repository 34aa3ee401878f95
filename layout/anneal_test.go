package layout

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func testAnnealParams() AnnealParams {
	return AnnealParams{
		InitialTemperature: 10,
		CoolingRate:        0.5,
		JitterFrequency:    1,
		JitterScale:        0.5,
		DisruptImpulse:     40,
		DisruptBump:        3,
		Epsilon:            1e-6,
	}
}

func TestAnnealerJitterVectors(t *testing.T) {
	rng := &seqRand{vals: []float64{0.1, 0.75, 0.25, 1.0, 0.0}}
	a := NewAnnealer(testAnnealParams(), rng)

	got := a.Tick(2)
	if a.Temperature() != 5 {
		t.Fatalf("expected temperature 5 after one tick, got %v", a.Temperature())
	}
	want := []r2.Vec{{X: 0.625, Y: -0.625}, {X: 1.25, Y: -1.25}}
	if len(got) != len(want) {
		t.Fatalf("expected %d impulses, got %v", len(want), got)
	}
	for i := range want {
		if !approxEqual(got[i].X, want[i].X, 1e-12) || !approxEqual(got[i].Y, want[i].Y, 1e-12) {
			t.Errorf("impulse %d = %v, want %v", i, got[i], want[i])
		}
	}
	if a.Jitters() != 1 {
		t.Errorf("expected 1 jitter event, got %d", a.Jitters())
	}
}

func TestAnnealerJitterProbabilityScalesWithTemperature(t *testing.T) {
	tests := []struct {
		name  string
		draw  float64
		fires bool
	}{
		{"draw below probability", 0.49, true},
		{"draw at probability", 0.5, false},
		{"draw above probability", 0.9, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// After one tick T/T0 = 0.5, so probability is 0.5.
			a := NewAnnealer(testAnnealParams(), &seqRand{vals: []float64{tc.draw}})
			got := a.Tick(3)
			if (got != nil) != tc.fires {
				t.Errorf("draw %v: fired=%v, want %v", tc.draw, got != nil, tc.fires)
			}
		})
	}
}

func TestAnnealerClampsToZero(t *testing.T) {
	a := NewAnnealer(testAnnealParams(), &seqRand{vals: []float64{0}})
	for i := 0; i < 40; i++ {
		a.Tick(1)
	}
	if a.Temperature() != 0 {
		t.Errorf("expected sub-epsilon temperature to clamp to 0, got %v", a.Temperature())
	}
	if got := a.Tick(1); got != nil {
		t.Errorf("expected no jitter at zero temperature, got %v", got)
	}
}

func TestAnnealerDisrupt(t *testing.T) {
	rng := &seqRand{vals: []float64{0.1, 0.9}}
	a := NewAnnealer(testAnnealParams(), rng)

	a.Tick(0) // T = 5
	kicks := a.Disrupt(1)
	if a.Temperature() != 8 {
		t.Errorf("expected reheat to 8, got %v", a.Temperature())
	}
	if len(kicks) != 1 {
		t.Fatalf("expected one impulse, got %v", kicks)
	}

	for i := 0; i < 5; i++ {
		a.Disrupt(1)
	}
	if a.Temperature() != 10 {
		t.Errorf("expected temperature capped at 10, got %v", a.Temperature())
	}
	if a.Disruptions() != 6 {
		t.Errorf("expected 6 disruptions, got %d", a.Disruptions())
	}

	a.Reset()
	if a.Temperature() != 10 {
		t.Errorf("expected reset to initial temperature, got %v", a.Temperature())
	}
}
