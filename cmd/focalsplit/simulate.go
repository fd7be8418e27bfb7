package main

import (
	"os"

	"github.com/ar90n/focalsplit/config"
	"github.com/ar90n/focalsplit/particle"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func applySimulateFlags(c *cli.Context, cfg *config.Config) error {
	if c.IsSet("particles") {
		cfg.Simulation.Particles = c.Int("particles")
	}
	if c.IsSet("steps") {
		cfg.Simulation.Steps = c.Int("steps")
	}
	if c.IsSet("runs") {
		cfg.Simulation.Runs = c.Int("runs")
	}
	if c.IsSet("seed") {
		cfg.Simulation.Seed = c.Int64("seed")
	}
	if c.IsSet("max-goroutines") {
		cfg.Simulation.MaxGoroutines = c.Uint("max-goroutines")
	}
	if c.IsSet("png") {
		cfg.Render.Path = c.String("png")
	}
	return cfg.Validate()
}

func simulateAction(c *cli.Context) error {
	cfg, logger, err := setup(c)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if err := applySimulateFlags(c, cfg); err != nil {
		return err
	}

	s := cfg.Simulation
	ensemble := particle.EnsembleConfig[float64]{
		World: particle.Config[float64]{
			Gravity:   s.Gravity,
			Softening: s.Softening,
			Damping:   s.Damping,
			Dt:        s.Dt,
		},
		Particles:     s.Particles,
		Spread:        s.Spread,
		Steps:         s.Steps,
		Runs:          s.Runs,
		Seed:          s.Seed,
		MaxGoroutines: s.MaxGoroutines,
	}

	logger.Info("running ensemble",
		zap.Int("runs", s.Runs),
		zap.Int("particles", s.Particles),
		zap.Int("steps", s.Steps),
	)
	summaries, err := particle.Ensemble(c.Context, ensemble)
	if err != nil {
		return errors.Wrap(err, "ensemble")
	}

	for _, summary := range summaries {
		culled := 0
		if 0 < s.Bound {
			culled = summary.World.Cull(s.Bound)
		}
		logger.Info("run finished",
			zap.Int("run", summary.Run),
			zap.Int64("seed", summary.Seed),
			zap.Float64("kinetic", summary.Kinetic),
			zap.Float64("momentum_x", summary.Momentum.X),
			zap.Float64("momentum_y", summary.Momentum.Y),
			zap.Float64("com_x", summary.CentreOfMass.X),
			zap.Float64("com_y", summary.CentreOfMass.Y),
			zap.Int("culled", culled),
		)
	}

	if cfg.Render.Path == "" || len(summaries) == 0 {
		return nil
	}

	f, err := os.Create(cfg.Render.Path)
	if err != nil {
		return errors.Wrap(err, "create render output")
	}
	defer f.Close()

	opts := particle.RenderOptions{
		Width:  cfg.Render.Width,
		Height: cfg.Render.Height,
		Extent: cfg.Render.Extent,
	}
	if err := particle.Render(f, summaries[0].World, opts); err != nil {
		return err
	}
	logger.Info("rendered", zap.String("path", cfg.Render.Path))
	return nil
}
