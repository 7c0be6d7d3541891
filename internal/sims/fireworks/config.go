package fireworks

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Params holds the physical constants and capacity limits of a display.
type Params struct {
	MaxParticles  int `yaml:"max_particles"`
	MaxTrails     int `yaml:"max_trails"`
	BurstCount    int `yaml:"burst_count"`
	MinBurstCount int `yaml:"min_burst_count"`

	InitialLife       float64 `yaml:"initial_life"`
	Gravity           float64 `yaml:"gravity"`
	DragCoef          float64 `yaml:"drag_coef"`
	RocketAccel       float64 `yaml:"rocket_accel"`
	WindX             float64 `yaml:"wind_x"`
	TrailLife         float64 `yaml:"trail_life"`
	SpeedMean         float64 `yaml:"speed_mean"`
	SpeedVar          float64 `yaml:"speed_var"`
	BurstOffsetRadius float64 `yaml:"burst_offset_radius"`

	// MaxStep is the largest dt a single Tick integrates; larger steps are clamped.
	MaxStep float64 `yaml:"max_step"`
}

// Config controls the world dimensions, seeding and physics of a display.
type Config struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`

	Params Params `yaml:"params"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  1280,
		Height: 720,
		Seed:   1337,
		Params: Params{
			MaxParticles:      20000,
			MaxTrails:         160000,
			BurstCount:        300,
			MinBurstCount:     10,
			InitialLife:       4.0,
			Gravity:           -20.0,
			DragCoef:          0.1,
			RocketAccel:       800.0,
			WindX:             10.0,
			TrailLife:         0.4,
			SpeedMean:         50.0,
			SpeedVar:          40.0,
			BurstOffsetRadius: 1.0,
			MaxStep:           0.25,
		},
	}
}

// Validate reports the first setting that would make the simulation unusable.
func (c Config) Validate() error {
	p := c.Params
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("world size must be positive, got %dx%d", c.Width, c.Height)
	case p.MaxParticles <= 0:
		return fmt.Errorf("max_particles must be positive, got %d", p.MaxParticles)
	case p.MaxTrails <= 0:
		return fmt.Errorf("max_trails must be positive, got %d", p.MaxTrails)
	case p.MinBurstCount < 1:
		return fmt.Errorf("min_burst_count must be at least 1, got %d", p.MinBurstCount)
	case p.InitialLife <= 0:
		return fmt.Errorf("initial_life must be positive, got %v", p.InitialLife)
	case p.TrailLife <= 0:
		return fmt.Errorf("trail_life must be positive, got %v", p.TrailLife)
	case p.SpeedVar < 0:
		return fmt.Errorf("speed_var must not be negative, got %v", p.SpeedVar)
	case p.MaxStep <= 0:
		return fmt.Errorf("max_step must be positive, got %v", p.MaxStep)
	}
	return nil
}

// LoadConfig reads a YAML file over the defaults and validates the result.
// Keys missing from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read fireworks config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse fireworks config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid fireworks config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadConfigOrDefault returns the defaults when path is empty or missing and
// otherwise behaves like LoadConfig.
func LoadConfigOrDefault(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	cfg, err := LoadConfig(path)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	positiveInt := func(key string, dst *int) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				*dst = parsed
			}
		}
	}
	anyFloat := func(key string, dst *float64) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				*dst = parsed
			}
		}
	}
	positiveFloat := func(key string, dst *float64) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
				*dst = parsed
			}
		}
	}

	positiveInt("w", &c.Width)
	positiveInt("h", &c.Height)
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	positiveInt("max_particles", &c.Params.MaxParticles)
	positiveInt("max_trails", &c.Params.MaxTrails)
	positiveInt("min_burst_count", &c.Params.MinBurstCount)
	positiveInt("burst_count", &c.Params.BurstCount)
	if c.Params.BurstCount < c.Params.MinBurstCount {
		c.Params.BurstCount = c.Params.MinBurstCount
	}
	positiveFloat("initial_life", &c.Params.InitialLife)
	positiveFloat("trail_life", &c.Params.TrailLife)
	positiveFloat("max_step", &c.Params.MaxStep)
	anyFloat("gravity", &c.Params.Gravity)
	anyFloat("drag_coef", &c.Params.DragCoef)
	anyFloat("rocket_accel", &c.Params.RocketAccel)
	anyFloat("wind_x", &c.Params.WindX)
	anyFloat("speed_mean", &c.Params.SpeedMean)
	anyFloat("burst_offset_radius", &c.Params.BurstOffsetRadius)
	if v, ok := cfg["speed_var"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.SpeedVar = parsed
		}
	}
	return c
}
