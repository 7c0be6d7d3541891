package app

import (
	"flag"

	"fireworks/internal/sims/fireworks"
)

// Config represents the command-line parameters shared by the frontends.
type Config struct {
	ConfigPath string
	Width      int
	Height     int
	Scale      int
	TPS        int
	Seed       int64
	Fixed      bool
	NoSave     bool
}

// NewConfig returns a Config populated with sensible defaults. Zero Width,
// Height and Seed defer to the simulation config file.
func NewConfig() *Config {
	return &Config{ConfigPath: "data/fireworks.yaml", Scale: 1, TPS: 60}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "path to the simulation YAML config")
	fs.IntVar(&c.Width, "w", c.Width, "world width override")
	fs.IntVar(&c.Height, "h", c.Height, "world height override")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed override for simulation reset")
	fs.BoolVar(&c.Fixed, "fixed", c.Fixed, "advance by 1/tps per tick instead of wall-clock time")
	fs.BoolVar(&c.NoSave, "nosave", c.NoSave, "do not load or store preferences")
}

// SimConfig loads the simulation config file and applies the size and seed
// overrides. A missing file yields the defaults.
func (c *Config) SimConfig() (fireworks.Config, error) {
	cfg, err := fireworks.LoadConfigOrDefault(c.ConfigPath)
	if err != nil {
		return cfg, err
	}
	if c.Width > 0 {
		cfg.Width = c.Width
	}
	if c.Height > 0 {
		cfg.Height = c.Height
	}
	if c.Seed != 0 {
		cfg.Seed = c.Seed
	}
	return cfg, nil
}
