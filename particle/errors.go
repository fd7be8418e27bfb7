package particle

import "github.com/cockroachdb/errors"

var (
	ErrInvalidConfig = errors.New("invalid particle config")
	ErrNoParticles   = errors.New("world has no particles")
	ErrInvalidMass   = errors.New("particle mass must be positive")
)
