package particle

import (
	"context"
	"math/rand"
	"sort"

	"github.com/ar90n/focalsplit/common"
	"github.com/ar90n/focalsplit/linalg"
	"github.com/sourcegraph/conc/pool"
)

type EnsembleConfig[T linalg.Float] struct {
	World     Config[T]
	Particles int
	Spread    T
	Steps     int
	Runs      int
	Seed      int64
	// MaxGoroutines bounds the worker pool; zero means one per CPU.
	MaxGoroutines uint
}

type Summary[T linalg.Float] struct {
	Run          int
	Seed         int64
	Particles    int
	Kinetic      T
	Momentum     linalg.Vec2[T]
	CentreOfMass linalg.Vec2[T]
	World        *World[T]
}

// Ensemble runs independent worlds, one per goroutine. Run r is seeded with
// Seed+r, so results do not depend on scheduling. Summaries are ordered by
// run.
func Ensemble[T linalg.Float](ctx context.Context, cfg EnsembleConfig[T]) ([]Summary[T], error) {
	if err := cfg.World.Validate(); err != nil {
		return nil, err
	}

	p := pool.NewWithResults[Summary[T]]().
		WithContext(ctx).
		WithCancelOnError().
		WithMaxGoroutines(common.GetProcNum(cfg.MaxGoroutines))
	for r := 0; r < cfg.Runs; r++ {
		p.Go(func(ctx context.Context) (Summary[T], error) {
			return runOne(ctx, cfg, r)
		})
	}

	summaries, err := p.Wait()
	if err != nil {
		return nil, err
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Run < summaries[j].Run
	})
	return summaries, nil
}

func runOne[T linalg.Float](ctx context.Context, cfg EnsembleConfig[T], run int) (Summary[T], error) {
	seed := cfg.Seed + int64(run)
	world, err := NewRandomWorld(cfg.World, cfg.Particles, cfg.Spread, rand.New(rand.NewSource(seed)))
	if err != nil {
		return Summary[T]{}, err
	}

	for i := 0; i < cfg.Steps; i++ {
		if err := ctx.Err(); err != nil {
			return Summary[T]{}, err
		}
		world.Step()
	}

	summary := Summary[T]{
		Run:       run,
		Seed:      seed,
		Particles: world.Len(),
		Kinetic:   world.Kinetic(),
		Momentum:  world.Momentum(),
		World:     world,
	}
	if com, err := world.CentreOfMass(); err == nil {
		summary.CentreOfMass = com
	}
	return summary, nil
}
