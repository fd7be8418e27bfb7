package focalsplit

import (
	"iter"

	"github.com/ar90n/focalsplit/unsafecast"
)

// Rest walks the prefix and then the suffix of a split, once.
type Rest[E any] struct {
	prefix []E
	suffix []E
	pos    int
}

// Next hands out each element once. A handle stays valid after later calls,
// since no two calls return the same element.
func (r *Rest[E]) Next() (*E, bool) {
	var e *E
	switch {
	case r.pos < len(r.prefix):
		e = &r.prefix[r.pos]
	case r.pos < len(r.prefix)+len(r.suffix):
		e = &r.suffix[r.pos-len(r.prefix)]
	default:
		return nil, false
	}
	r.pos++
	return unsafecast.Detach(e), true
}

// Len reports how many elements are left to visit.
func (r *Rest[E]) Len() int {
	return len(r.prefix) + len(r.suffix) - r.pos
}

// All adapts the cursor to range-over-func. Ranging consumes the cursor, so a
// second range over an exhausted Rest yields nothing.
func (r *Rest[E]) All() iter.Seq[*E] {
	return func(yield func(*E) bool) {
		for {
			e, ok := r.Next()
			if !ok || !yield(e) {
				return
			}
		}
	}
}
