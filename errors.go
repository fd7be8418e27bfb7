package focalsplit

import "github.com/cockroachdb/errors"

var (
	ErrIndexOutOfBounds = errors.New("index out of bounds for split")
	ErrFocalIndex       = errors.New("index refers to the focal element")
)
