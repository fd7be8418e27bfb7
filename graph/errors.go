package graph

import "github.com/cockroachdb/errors"

var (
	ErrSourceOutOfRange   = errors.New("source node out of range")
	ErrNeighborOutOfRange = errors.New("neighbor out of range")
	ErrNegativeCycle      = errors.New("negative cycle reachable from source")
	ErrWeightsMismatch    = errors.New("neighbors and weights differ in length")
	ErrUnknownStrategy    = errors.New("unknown worklist strategy")
)
