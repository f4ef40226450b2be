// Package config provides configuration loading and access for the slime game.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/slime/sim"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all tunable parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Slime     SlimeConfig     `yaml:"slime"`
	Pointer   PointerConfig   `yaml:"pointer"`
	Enemies   EnemiesConfig   `yaml:"enemies"`
	Render    RenderConfig    `yaml:"render"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings. The world is screen-sized; boundary
// resolution clamps particles into this rectangle.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// PhysicsConfig holds the fixed-tick parameters.
type PhysicsConfig struct {
	DT      float64 `yaml:"dt"`
	Gravity float64 `yaml:"gravity"`
}

// SlimeConfig holds the particle body parameters.
type SlimeConfig struct {
	ParticleCount     int     `yaml:"particle_count"`
	ParticleRadius    float64 `yaml:"particle_radius"`
	Repulsion         float64 `yaml:"repulsion"`
	Cohesion          float64 `yaml:"cohesion"`
	InteractionRadius float64 `yaml:"interaction_radius"`
	Damping           float64 `yaml:"damping"`
}

// PointerConfig holds drag interaction parameters.
type PointerConfig struct {
	Radius float64 `yaml:"radius"`
	Force  float64 `yaml:"force"`
}

// EnemiesConfig holds enemy spawn parameters.
type EnemiesConfig struct {
	Count int `yaml:"count"`
}

// RenderConfig holds presentation hints consumed only by the renderer.
type RenderConfig struct {
	Mode string `yaml:"mode"` // "circles" or "metaballs"
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"`
	PerfWindow  int     `yaml:"perf_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DT32     float32 // Physics.DT as float32
	Width32  float32
	Height32 float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
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
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()
	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.DT32 = float32(c.Physics.DT)
	c.Derived.Width32 = float32(c.Screen.Width)
	c.Derived.Height32 = float32(c.Screen.Height)
}

// SimParams maps the loaded configuration onto the engine's per-tick record.
func (c *Config) SimParams() sim.Params {
	mode := sim.RenderCircles
	if c.Render.Mode == "metaballs" {
		mode = sim.RenderMetaballs
	}
	return sim.Params{
		Gravity:           float32(c.Physics.Gravity),
		ParticleCount:     c.Slime.ParticleCount,
		ParticleRadius:    float32(c.Slime.ParticleRadius),
		Repulsion:         float32(c.Slime.Repulsion),
		Cohesion:          float32(c.Slime.Cohesion),
		InteractionRadius: float32(c.Slime.InteractionRadius),
		Damping:           float32(c.Slime.Damping),
		PointerRadius:     float32(c.Pointer.Radius),
		PointerForce:      float32(c.Pointer.Force),
		RenderMode:        mode,
	}
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
