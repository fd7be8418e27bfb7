package focalsplit

import "github.com/cockroachdb/errors"

func assertSplitIndex(index, n int) {
	if index < 0 || n <= index {
		panic(errors.Mark(
			errors.AssertionFailedf("index out of bounds for split: index %d, len %d", index, n),
			ErrIndexOutOfBounds,
		))
	}
}

func assertOtherIndex(j, focal, n int) {
	if j == focal {
		panic(errors.Mark(
			errors.AssertionFailedf("index %d refers to the focal element", j),
			ErrFocalIndex,
		))
	}
	if j < 0 || n < j {
		panic(errors.Mark(
			errors.AssertionFailedf("index out of bounds for split: index %d, len %d", j, n+1),
			ErrIndexOutOfBounds,
		))
	}
}
