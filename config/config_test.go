package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/pthm-cable/constellation/layout"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load defaults: %v", err)
	}

	if cfg.Layout.MaxDistance != 300 || cfg.Layout.Shaping != 0.64 {
		t.Errorf("unexpected layout defaults: %+v", cfg.Layout)
	}
	if cfg.Annealing.CoolingRate != 0.995 || cfg.Integrator.Damping != 0.85 {
		t.Errorf("unexpected motion defaults: %+v %+v", cfg.Annealing, cfg.Integrator)
	}
	// initial_radius 0 derives from the screen
	if want := 240.0; math.Abs(cfg.Derived.InitialRadius-want) > 1e-9 {
		t.Errorf("derived initial radius = %v, want %v", cfg.Derived.InitialRadius, want)
	}
	if cfg.Derived.ScreenW32 != 1280 || cfg.Derived.ScreenH32 != 800 {
		t.Errorf("derived screen = %vx%v, want 1280x800", cfg.Derived.ScreenW32, cfg.Derived.ScreenH32)
	}
	if want := 1.0 / 60; math.Abs(cfg.Derived.DT-want) > 1e-12 {
		t.Errorf("derived dt = %v, want %v", cfg.Derived.DT, want)
	}
}

func TestLoadOverridesOnlyPresentFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("layout:\n  spring_constant: 0.002\nintegrator:\n  max_velocity: 8\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Layout.SpringConstant != 0.002 || cfg.Integrator.MaxVelocity != 8 {
		t.Errorf("overrides not applied: %+v %+v", cfg.Layout, cfg.Integrator)
	}
	if cfg.Layout.MaxDistance != 300 {
		t.Errorf("expected untouched default max_distance, got %v", cfg.Layout.MaxDistance)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"cooling rate of one", "annealing:\n  cooling_rate: 1\n"},
		{"damping above one", "integrator:\n  damping: 1.2\n"},
		{"zero max velocity", "integrator:\n  max_velocity: 0\n"},
		{"zero screen", "screen:\n  width: 0\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tc.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLayoutParams(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	p := cfg.LayoutParams()
	def := layout.DefaultParams()

	if p.Force != def.Force {
		t.Errorf("force params = %+v, want %+v", p.Force, def.Force)
	}
	if p.Anneal != def.Anneal {
		t.Errorf("anneal params = %+v, want %+v", p.Anneal, def.Anneal)
	}
	if p.Integrator.Margin != cfg.Layout.NodeRadius {
		t.Errorf("margin = %v, want node radius %v", p.Integrator.Margin, cfg.Layout.NodeRadius)
	}
	if b := cfg.Bounds(); b.Width != 1280 || b.Height != 800 {
		t.Errorf("bounds = %+v", b)
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Layout.RepulsionBase = 750

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load written config: %v", err)
	}
	if loaded.Layout.RepulsionBase != 750 {
		t.Errorf("expected repulsion_base 750, got %v", loaded.Layout.RepulsionBase)
	}
}
