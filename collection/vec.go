package collection

import (
	"github.com/ar90n/focalsplit"
	"github.com/cockroachdb/errors"
)

// Vec is a growable buffer. Splitting a Vec views its current contents and
// never resizes it; do not Push, Pop or Truncate while a split is in use,
// since a reallocation leaves the handed-out pointers on the old array.
type Vec[E any] struct {
	items []E
}

var _ focalsplit.Splittable[int] = (*Vec[int])(nil)

func NewVec[E any](capacity int) *Vec[E] {
	return &Vec[E]{
		items: make([]E, 0, capacity),
	}
}

func VecOf[E any](items ...E) *Vec[E] {
	v := NewVec[E](len(items))
	v.items = append(v.items, items...)
	return v
}

func (v *Vec[E]) Push(item E) {
	v.items = append(v.items, item)
}

func (v *Vec[E]) Pop() (item E, _ error) {
	n := len(v.items)
	if n == 0 {
		return item, ErrEmpty
	}

	item = v.items[n-1]
	var zero E
	v.items[n-1] = zero // avoid memory leak
	v.items = v.items[:n-1]
	return item, nil
}

func (v *Vec[E]) At(i int) (*E, error) {
	if i < 0 || len(v.items) <= i {
		return nil, errors.Wrapf(ErrOutOfRange, "index %d, len %d", i, len(v.items))
	}
	return &v.items[i], nil
}

func (v *Vec[E]) Truncate(n int) {
	if len(v.items) <= n {
		return
	}
	var zero E
	for i := n; i < len(v.items); i++ {
		v.items[i] = zero
	}
	v.items = v.items[:n]
}

func (v *Vec[E]) Len() int {
	return len(v.items)
}

// Slice returns the current contents. The slice aliases the Vec until the
// next call that changes its length.
func (v *Vec[E]) Slice() []E {
	return v.items
}

func (v *Vec[E]) ExtractAt(index int) (*E, []E, []E) {
	return focalsplit.ExtractAt(v.items, index)
}

func (v *Vec[E]) ExtractAtIter(index int) (*E, *focalsplit.Rest[E]) {
	return focalsplit.ExtractAtIter(v.items, index)
}
