// Package config provides configuration loading and access for the layout viewer.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/constellation/layout"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Layout     LayoutConfig     `yaml:"layout"`
	Annealing  AnnealingConfig  `yaml:"annealing"`
	Integrator IntegratorConfig `yaml:"integrator"`
	Display    DisplayConfig    `yaml:"display"`
	Data       DataConfig       `yaml:"data"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// LayoutConfig holds force field parameters.
type LayoutConfig struct {
	MaxDistance    float64 `yaml:"max_distance"` // Ideal distance for unrelated pairs
	Shaping        float64 `yaml:"shaping"`      // How strongly |w| shifts the ideal distance
	SpringConstant float64 `yaml:"spring_constant"`
	NodeRadius     float64 `yaml:"node_radius"`
	OverlapFactor  float64 `yaml:"overlap_factor"` // Anti-overlap below factor * 2 * radius
	RepulsionBase  float64 `yaml:"repulsion_base"` // Inverse-square anti-overlap strength
	CenterStrength float64 `yaml:"center_strength"`
	CenterDeadZone float64 `yaml:"center_dead_zone"`
	InitialRadius  float64 `yaml:"initial_radius"` // Scatter disc radius on reset (0 = derived from screen)
}

// AnnealingConfig holds temperature schedule parameters.
type AnnealingConfig struct {
	InitialTemperature float64 `yaml:"initial_temperature"`
	CoolingRate        float64 `yaml:"cooling_rate"`
	JitterFrequency    float64 `yaml:"jitter_frequency"`
	JitterScale        float64 `yaml:"jitter_scale"`
	DisruptImpulse     float64 `yaml:"disrupt_impulse"`
	DisruptBump        float64 `yaml:"disrupt_bump"`
	Epsilon            float64 `yaml:"epsilon"`
}

// IntegratorConfig holds motion parameters.
type IntegratorConfig struct {
	Damping     float64 `yaml:"damping"`
	MaxVelocity float64 `yaml:"max_velocity"`
	Bounce      float64 `yaml:"bounce"`
}

// DisplayConfig holds renderer settings.
type DisplayConfig struct {
	EdgeThreshold float64 `yaml:"edge_threshold"` // Draw pairs with |w| above this
	LabelFontSize int     `yaml:"label_font_size"`
	MaxEdgeWidth  float64 `yaml:"max_edge_width"`
}

// DataConfig names the input files.
type DataConfig struct {
	Relations string `yaml:"relations"` // .csv matrix or .json document
	Nodes     string `yaml:"nodes"`     // Optional node list CSV (empty = show every label)
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"` // Seconds per stats window
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32     float32 // Screen.Width as float32
	ScreenH32     float32 // Screen.Height as float32
	InitialRadius float64 // Effective scatter radius
	DT            float64 // Seconds per tick at the target frame rate
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects values that make the simulation diverge or never settle.
func (c *Config) validate() error {
	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("config: screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	case c.Annealing.CoolingRate <= 0 || c.Annealing.CoolingRate >= 1:
		return fmt.Errorf("config: annealing.cooling_rate must be in (0, 1), got %v", c.Annealing.CoolingRate)
	case c.Integrator.Damping <= 0 || c.Integrator.Damping >= 1:
		return fmt.Errorf("config: integrator.damping must be in (0, 1), got %v", c.Integrator.Damping)
	case c.Integrator.MaxVelocity <= 0:
		return fmt.Errorf("config: integrator.max_velocity must be positive, got %v", c.Integrator.MaxVelocity)
	case c.Annealing.InitialTemperature < 0:
		return fmt.Errorf("config: annealing.initial_temperature must not be negative, got %v", c.Annealing.InitialTemperature)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	c.Derived.InitialRadius = c.Layout.InitialRadius
	if c.Derived.InitialRadius == 0 {
		c.Derived.InitialRadius = 0.3 * float64(min(c.Screen.Width, c.Screen.Height))
	}

	fps := c.Screen.TargetFPS
	if fps <= 0 {
		fps = 60
	}
	c.Derived.DT = 1.0 / float64(fps)
}

// LayoutParams converts the config into simulation parameters.
func (c *Config) LayoutParams() layout.Params {
	return layout.Params{
		Force: layout.ForceParams{
			MaxDistance:    c.Layout.MaxDistance,
			Shaping:        c.Layout.Shaping,
			SpringConstant: c.Layout.SpringConstant,
			NodeRadius:     c.Layout.NodeRadius,
			OverlapFactor:  c.Layout.OverlapFactor,
			RepulsionBase:  c.Layout.RepulsionBase,
			CenterStrength: c.Layout.CenterStrength,
			CenterDeadZone: c.Layout.CenterDeadZone,
		},
		Anneal: layout.AnnealParams{
			InitialTemperature: c.Annealing.InitialTemperature,
			CoolingRate:        c.Annealing.CoolingRate,
			JitterFrequency:    c.Annealing.JitterFrequency,
			JitterScale:        c.Annealing.JitterScale,
			DisruptImpulse:     c.Annealing.DisruptImpulse,
			DisruptBump:        c.Annealing.DisruptBump,
			Epsilon:            c.Annealing.Epsilon,
		},
		Integrator: layout.IntegratorParams{
			Damping:     c.Integrator.Damping,
			MaxVelocity: c.Integrator.MaxVelocity,
			Bounce:      c.Integrator.Bounce,
			Margin:      c.Layout.NodeRadius,
		},
		InitialRadius: c.Derived.InitialRadius,
	}
}

// Bounds returns the layout extent matching the screen.
func (c *Config) Bounds() layout.Bounds {
	return layout.Bounds{Width: float64(c.Screen.Width), Height: float64(c.Screen.Height)}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
