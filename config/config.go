// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mnemotic/game-of-life/gradient"
	"github.com/mnemotic/game-of-life/grid"
	"github.com/mnemotic/game-of-life/tick"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Grid      GridConfig      `yaml:"grid"`
	Sim       SimConfig       `yaml:"sim"`
	Palette   PaletteConfig   `yaml:"palette"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// GridConfig holds the grid dimensions. Both should be even; the bounds are
// centered on the origin.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SimConfig holds simulation parameters.
type SimConfig struct {
	TicksPerSecond int         `yaml:"ticks_per_second"` // Clamped to [1, 64]
	HistorySize    int         `yaml:"history_size"`     // Rewind depth (0 = engine default)
	Seed           []SeedPoint `yaml:"seed"`             // Initial live cells
}

// SeedPoint is one initial live cell position.
type SeedPoint struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// PaletteConfig holds the age-coloring parameters.
type PaletteConfig struct {
	AgeNormalizer float64      `yaml:"age_normalizer"` // Age at which the ramp saturates
	Stops         []StopConfig `yaml:"stops"`          // Gradient sampling points
}

// StopConfig is one gradient sampling point with an 8-bit RGB color.
type StopConfig struct {
	At  float64  `yaml:"at"`
	RGB [3]uint8 `yaml:"rgb,flow"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	WindowGenerations int `yaml:"window_generations"` // Generations per stats window
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
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
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

	cfg.normalize()

	return cfg, nil
}

// normalize corrects out-of-range values. A bad tick rate is clamped rather
// than rejected.
func (c *Config) normalize() {
	if c.Sim.TicksPerSecond < tick.MinRate {
		c.Sim.TicksPerSecond = tick.MinRate
	}
	if c.Sim.TicksPerSecond > tick.MaxRate {
		c.Sim.TicksPerSecond = tick.MaxRate
	}
	if c.Sim.HistorySize < 0 {
		c.Sim.HistorySize = 0
	}
	if c.Telemetry.WindowGenerations < 1 {
		c.Telemetry.WindowGenerations = 1
	}
}

// SeedPoints converts the configured seed pattern to grid points.
func (c *Config) SeedPoints() []grid.Point {
	pts := make([]grid.Point, len(c.Sim.Seed))
	for i, s := range c.Sim.Seed {
		pts[i] = grid.Pt(s.X, s.Y)
	}
	return pts
}

// BuildPalette constructs the age palette from the configured stops. Falls
// back to the stock palette when fewer than 2 stops are configured.
func (c *Config) BuildPalette() *gradient.Palette {
	if len(c.Palette.Stops) < 2 {
		return gradient.DefaultPalette()
	}
	stops := make([]gradient.Stop, len(c.Palette.Stops))
	for i, s := range c.Palette.Stops {
		stops[i] = gradient.NewStop(float32(s.At), gradient.RGB8(s.RGB[0], s.RGB[1], s.RGB[2]))
	}
	return gradient.NewPalette(stops, float32(c.Palette.AgeNormalizer), gradient.DefaultDeadColor)
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
