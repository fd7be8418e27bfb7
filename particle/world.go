package particle

import (
	"math"
	"math/rand"

	"github.com/ar90n/focalsplit/collection"
	"github.com/ar90n/focalsplit/linalg"
	"github.com/cockroachdb/errors"
)

type Particle[T linalg.Float] struct {
	Pos  linalg.Vec2[T]
	Vel  linalg.Vec2[T]
	Mass T
}

type Config[T linalg.Float] struct {
	Gravity   T
	Softening T
	Damping   T
	Dt        T
}

func (c Config[T]) Validate() error {
	if c.Dt <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "dt must be positive: %v", c.Dt)
	}
	if c.Softening < 0 {
		return errors.Wrapf(ErrInvalidConfig, "softening must not be negative: %v", c.Softening)
	}
	if c.Damping < 0 || 1 < c.Damping {
		return errors.Wrapf(ErrInvalidConfig, "damping must be in [0, 1]: %v", c.Damping)
	}
	return nil
}

// World owns its particles. It is not safe for concurrent use.
type World[T linalg.Float] struct {
	particles *collection.Vec[Particle[T]]
	cfg       Config[T]
	steps     int
}

func NewWorld[T linalg.Float](cfg Config[T], particles ...Particle[T]) (*World[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w := &World[T]{
		particles: collection.NewVec[Particle[T]](len(particles)),
		cfg:       cfg,
	}
	for _, p := range particles {
		if err := w.Add(p); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// NewRandomWorld scatters n unit-mass particles uniformly over a square of
// half-width spread, at rest.
func NewRandomWorld[T linalg.Float](cfg Config[T], n int, spread T, rng *rand.Rand) (*World[T], error) {
	w, err := NewWorld(cfg)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		err := w.Add(Particle[T]{
			Pos: linalg.Vec2[T]{
				X: (T(rng.Float64())*2 - 1) * spread,
				Y: (T(rng.Float64())*2 - 1) * spread,
			},
			Mass: 1,
		})
		if err != nil {
			return nil, err
		}
	}
	return w, nil
}

// Add appends p. Step divides by mass, so massless particles are refused.
func (w *World[T]) Add(p Particle[T]) error {
	if !(0 < p.Mass) || math.IsInf(float64(p.Mass), 1) {
		return errors.Wrapf(ErrInvalidMass, "particle %d: mass %v", w.particles.Len(), p.Mass)
	}
	w.particles.Push(p)
	return nil
}

func (w *World[T]) Len() int {
	return w.particles.Len()
}

func (w *World[T]) Steps() int {
	return w.steps
}

func (w *World[T]) Particles() []Particle[T] {
	return w.particles.Slice()
}

// Step advances the world by one time step. Every pair interacts once: the
// focal particle takes the impulse and each later particle takes the
// opposite one.
func (w *World[T]) Step() {
	dt := w.cfg.Dt
	eps2 := w.cfg.Softening * w.cfg.Softening

	for i := 0; i < w.particles.Len(); i++ {
		focal, _, suffix := w.particles.ExtractAt(i)
		for j := range suffix {
			other := &suffix[j]

			d := other.Pos.Sub(focal.Pos)
			r2 := d.SqNorm() + eps2
			if r2 == 0 {
				continue
			}
			inv := 1 / (r2 * T(math.Sqrt(float64(r2))))
			impulse := d.Scale(w.cfg.Gravity * focal.Mass * other.Mass * inv * dt)

			focal.Vel = focal.Vel.Add(impulse.Scale(1 / focal.Mass))
			other.Vel = other.Vel.Sub(impulse.Scale(1 / other.Mass))
		}
	}

	keep := 1 - w.cfg.Damping
	ps := w.particles.Slice()
	for i := range ps {
		ps[i].Vel = ps[i].Vel.Scale(keep)
		ps[i].Pos = ps[i].Pos.Add(ps[i].Vel.Scale(dt))
	}
	w.steps++
}

func (w *World[T]) Run(steps int) {
	for i := 0; i < steps; i++ {
		w.Step()
	}
}

func (w *World[T]) Kinetic() T {
	e := T(0)
	for _, p := range w.particles.Slice() {
		e += p.Mass * p.Vel.SqNorm() / 2
	}
	return e
}

func (w *World[T]) Momentum() linalg.Vec2[T] {
	m := linalg.Vec2[T]{}
	for _, p := range w.particles.Slice() {
		m = m.Add(p.Vel.Scale(p.Mass))
	}
	return m
}

func (w *World[T]) CentreOfMass() (linalg.Vec2[T], error) {
	if w.particles.Len() == 0 {
		return linalg.Vec2[T]{}, ErrNoParticles
	}

	c := linalg.Vec2[T]{}
	total := T(0)
	for _, p := range w.particles.Slice() {
		c = c.Add(p.Pos.Scale(p.Mass))
		total += p.Mass
	}
	return c.Scale(1 / total), nil
}

// NearestNeighbour returns the index of the particle closest to particle i.
func (w *World[T]) NearestNeighbour(i int) (int, error) {
	if _, err := w.particles.At(i); err != nil {
		return 0, errors.Wrapf(err, "particle %d", i)
	}
	if w.particles.Len() < 2 {
		return 0, errors.Wrapf(ErrNoParticles, "particle %d has no neighbours", i)
	}

	focal, rest := w.particles.ExtractAtIter(i)
	best, bestDist := 0, T(math.Inf(1))
	for k := 0; ; k++ {
		other, ok := rest.Next()
		if !ok {
			break
		}
		if d := other.Pos.SqDist(focal.Pos); d < bestDist {
			best, bestDist = k, d
		}
	}

	if i <= best {
		best++
	}
	return best, nil
}

// Cull drops every particle whose position leaves the square of half-width
// bound, and returns how many were dropped. Order of survivors is not kept.
func (w *World[T]) Cull(bound T) int {
	ps := w.particles.Slice()
	kept := collection.Partition(ps, func(p Particle[T]) bool {
		return bound < linalg.Abs(p.Pos.X) || bound < linalg.Abs(p.Pos.Y)
	})
	dropped := len(ps) - kept
	w.particles.Truncate(kept)
	return dropped
}
