package main

import (
	"log"
	"os"

	"github.com/ar90n/focalsplit/config"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, errors.Wrapf(err, "logging.level %q", cfg.Level)
	}

	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

func setup(c *cli.Context) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, nil, err
	}
	if c.IsSet("log-level") {
		cfg.Logging.Level = c.String("log-level")
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func newApp() *cli.App {
	return &cli.App{
		Name:     "focalsplit",
		HelpName: "focalsplit",
		Usage:    "workloads built on focal/remainder slice splits",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "",
				Usage: "config file (default: configs/focalsplit.yaml or focalsplit.yaml if present)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
				Usage: "log level",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "simulate",
				Usage:     "run an ensemble of particle worlds",
				UsageText: "focalsplit simulate [command options]",
				Action:    simulateAction,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "particles",
						Usage: "particles per world",
					},
					&cli.IntFlag{
						Name:  "steps",
						Usage: "time steps per world",
					},
					&cli.IntFlag{
						Name:  "runs",
						Usage: "number of independent worlds",
					},
					&cli.Int64Flag{
						Name:  "seed",
						Usage: "seed of the first world",
					},
					&cli.UintFlag{
						Name:  "max-goroutines",
						Usage: "worker pool size, 0 for one per CPU",
					},
					&cli.StringFlag{
						Name:  "png",
						Usage: "render the first world to this file",
					},
				},
			},
			{
				Name:      "relax",
				Usage:     "shortest paths by label relaxation",
				UsageText: "focalsplit relax [command options] < edges.csv",
				Action:    relaxAction,
				Flags: []cli.Flag{
					&cli.UintFlag{
						Name:  "source",
						Usage: "source node",
					},
					&cli.StringFlag{
						Name:  "strategy",
						Usage: "worklist strategy: fifo or priority",
					},
					&cli.BoolFlag{
						Name:  "undirected",
						Usage: "add reverse edges before relaxing",
					},
					&cli.UintFlag{
						Name:  "random",
						Usage: "relax a random graph of this many nodes instead of reading stdin",
					},
					&cli.UintFlag{
						Name:  "degree",
						Value: 4,
						Usage: "out-degree of the random graph",
					},
					&cli.Int64Flag{
						Name:  "seed",
						Value: 1,
						Usage: "seed of the random graph",
					},
				},
			},
			{
				Name:      "inspect",
				Usage:     "dump raw in-memory bytes and a split of a sample slice",
				UsageText: "focalsplit inspect [command options]",
				Action:    inspectAction,
				Flags: []cli.Flag{
					&cli.Int64Flag{
						Name:  "value",
						Value: 42,
						Usage: "value to dump",
					},
					&cli.IntFlag{
						Name:  "len",
						Value: 6,
						Usage: "length of the sample slice",
					},
					&cli.IntFlag{
						Name:  "index",
						Value: 2,
						Usage: "focal index in the sample slice",
					},
				},
			},
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
