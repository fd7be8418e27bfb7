// Package focalsplit splits a slice into one focal element and the rest of
// the slice, so that an algorithm can mutate one element while it reads or
// mutates every other element.
//
// The focal pointer, the prefix and the suffix refer to pairwise disjoint
// parts of the same backing array. Both sides are capped at their length, so
// appending to a side reallocates instead of overwriting a neighbour.
//
// Indices are not checked. Build with the focalsplit_debug tag to assert
// preconditions before touching memory.
package focalsplit

// Splittable is implemented by contiguous collections that can hand out a
// focal element together with the remainder.
type Splittable[E any] interface {
	ExtractAt(index int) (*E, []E, []E)
	ExtractAtIter(index int) (*E, *Rest[E])
}

// Slice is a fixed-view contiguous collection.
type Slice[E any] []E

var _ Splittable[int] = Slice[int](nil)

func (s Slice[E]) ExtractAt(index int) (*E, []E, []E) {
	return ExtractAt([]E(s), index)
}

func (s Slice[E]) ExtractAtIter(index int) (*E, *Rest[E]) {
	return ExtractAtIter([]E(s), index)
}

// ExtractAt returns a pointer to s[index] together with s[:index] and
// s[index+1:]. index must satisfy 0 <= index < len(s).
func ExtractAt[S ~[]E, E any](s S, index int) (focal *E, prefix, suffix S) {
	if debugChecks {
		assertSplitIndex(index, len(s))
	}

	n := len(s)
	if index == 0 {
		head, tail := s[:1:1], s[1:n:n]
		return &head[0], s[:0:0], tail
	}

	left, right := s[:index:index], s[index:n:n]
	return &right[0], left, right[1:]
}

// ExtractAtIter is ExtractAt with the two sides merged into one traversal.
func ExtractAtIter[S ~[]E, E any](s S, index int) (*E, *Rest[E]) {
	focal, prefix, suffix := ExtractAt(s, index)
	return focal, &Rest[E]{prefix: prefix, suffix: suffix}
}

// OtherAt returns the element that sat at index j of the collection before
// it was split into prefix, focal and suffix. j must not be the focal index.
func OtherAt[S ~[]E, E any](prefix, suffix S, j int) *E {
	if debugChecks {
		assertOtherIndex(j, len(prefix), len(prefix)+len(suffix))
	}

	if j < len(prefix) {
		return &prefix[j]
	}
	return &suffix[j-len(prefix)-1]
}
