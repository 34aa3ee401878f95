package main

import (
	"math"
	"testing"

	"github.com/pthm-cable/constellation/config"
)

func TestNormalizeRoundTrip(t *testing.T) {
	pv := NewParamVector()
	raw := pv.DefaultVector()

	norm := pv.Normalize(raw)
	for i, v := range norm {
		if v < 0 || v > 1 {
			t.Errorf("%s: default normalizes outside [0,1]: %v", pv.Specs[i].Name, v)
		}
	}

	back := pv.Denormalize(norm)
	for i := range raw {
		if math.Abs(back[i]-raw[i]) > 1e-9 {
			t.Errorf("%s: round trip = %v, want %v", pv.Specs[i].Name, back[i], raw[i])
		}
	}
}

func TestClamp(t *testing.T) {
	pv := NewParamVector()
	v := make([]float64, pv.Dim())
	for i, spec := range pv.Specs {
		if i%2 == 0 {
			v[i] = spec.Min - 1
		} else {
			v[i] = spec.Max + 1
		}
	}

	clamped := pv.Clamp(v)
	for i, spec := range pv.Specs {
		want := spec.Max
		if i%2 == 0 {
			want = spec.Min
		}
		if clamped[i] != want {
			t.Errorf("%s: clamped = %v, want %v", spec.Name, clamped[i], want)
		}
	}
}

func TestDefaultsMatchEmbeddedConfig(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	pv := NewParamVector()
	got := pv.ExtractFromConfig(cfg)
	for i, spec := range pv.Specs {
		if got[i] != spec.Default {
			t.Errorf("%s: config has %v, spec default %v", spec.Path, got[i], spec.Default)
		}
	}
}

func TestApplyExtract(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	pv := NewParamVector()
	want := pv.Denormalize([]float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6})
	pv.ApplyToConfig(cfg, want)

	got := pv.ExtractFromConfig(cfg)
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("%s: extracted %v, want %v", pv.Specs[i].Name, got[i], want[i])
		}
	}
}
