package linalg

type Vec2[T Float] struct {
	X T
	Y T
}

func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2[T]) Scale(k T) Vec2[T] {
	return Vec2[T]{X: v.X * k, Y: v.Y * k}
}

func (v Vec2[T]) Dot(o Vec2[T]) T {
	a, b := v.Array(), o.Array()
	return T(Dot(a[:], b[:]))
}

func (v Vec2[T]) SqNorm() T {
	return v.Dot(v)
}

// SqDist is the squared euclidean distance between v and o.
func (v Vec2[T]) SqDist(o Vec2[T]) T {
	a, b := v.Array(), o.Array()
	return T(SqL2(a[:], b[:]))
}

func (v Vec2[T]) Array() [2]T {
	return [2]T{v.X, v.Y}
}

// Kernels over equal-length slices, accumulated in float64.

func SqL2[T Number, U Number](x []T, y []U) float64 {
	dist := 0.0
	for i := range x {
		diff := float64(x[i]) - float64(y[i])
		dist += diff * diff
	}

	return dist
}

func Dot[T Number, U Number](x []T, y []U) float64 {
	dot := 0.0
	for i := range x {
		dot += float64(x[i]) * float64(y[i])
	}

	return dot
}
