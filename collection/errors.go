package collection

import "github.com/cockroachdb/errors"

var (
	ErrEmpty      = errors.New("empty collection")
	ErrOutOfRange = errors.New("index out of range")
)
