package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Render     RenderConfig     `yaml:"render"`
	Relax      RelaxConfig      `yaml:"relax"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type SimulationConfig struct {
	Particles     int     `yaml:"particles"`
	Spread        float64 `yaml:"spread"`
	Steps         int     `yaml:"steps"`
	Runs          int     `yaml:"runs"`
	Seed          int64   `yaml:"seed"`
	Gravity       float64 `yaml:"gravity"`
	Softening     float64 `yaml:"softening"`
	Damping       float64 `yaml:"damping"`
	Dt            float64 `yaml:"dt"`
	Bound         float64 `yaml:"bound"`          // particles beyond this are culled after the run; 0 keeps all
	MaxGoroutines uint    `yaml:"max_goroutines"` // 0 means one per CPU
}

type RenderConfig struct {
	Path   string  `yaml:"path"` // empty disables rendering
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Extent float64 `yaml:"extent"`
}

type RelaxConfig struct {
	Strategy string `yaml:"strategy"` // fifo or priority
	Source   uint   `yaml:"source"`
}

type LoggingConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			Particles: 64,
			Spread:    10,
			Steps:     200,
			Runs:      4,
			Seed:      1,
			Gravity:   1,
			Softening: 0.1,
			Damping:   0,
			Dt:        0.01,
		},
		Render: RenderConfig{
			Width:  512,
			Height: 512,
		},
		Relax: RelaxConfig{
			Strategy: "fifo",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configPath over the defaults. With an empty path the default
// locations are tried in order, and the defaults are used when none exists.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	if configPath == "" {
		for _, p := range []string{"configs/focalsplit.yaml", "focalsplit.yaml"} {
			data, err := os.ReadFile(p)
			if err == nil {
				if err := yaml.Unmarshal(data, cfg); err != nil {
					return cfg, errors.Wrapf(err, "parse %s", p)
				}
				return cfg, cfg.Validate()
			}
		}
		return cfg, nil // no file found: use defaults
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse %s", configPath)
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	s := c.Simulation
	switch {
	case s.Particles < 0:
		return errors.Wrapf(ErrInvalidConfig, "simulation.particles must not be negative: %d", s.Particles)
	case s.Steps < 0:
		return errors.Wrapf(ErrInvalidConfig, "simulation.steps must not be negative: %d", s.Steps)
	case s.Runs < 1:
		return errors.Wrapf(ErrInvalidConfig, "simulation.runs must be at least 1: %d", s.Runs)
	case s.Spread <= 0:
		return errors.Wrapf(ErrInvalidConfig, "simulation.spread must be positive: %v", s.Spread)
	case s.Bound < 0:
		return errors.Wrapf(ErrInvalidConfig, "simulation.bound must not be negative: %v", s.Bound)
	}

	if c.Render.Path != "" && (c.Render.Width <= 0 || c.Render.Height <= 0) {
		return errors.Wrapf(ErrInvalidConfig, "render size must be positive: %dx%d", c.Render.Width, c.Render.Height)
	}

	switch c.Relax.Strategy {
	case "fifo", "priority":
	default:
		return errors.Wrapf(ErrInvalidConfig, "relax.strategy must be fifo or priority: %q", c.Relax.Strategy)
	}

	return nil
}
