package collection

// Partition moves every element for which predicate holds to the tail of buf
// and returns the number of elements left at the head. Order is not kept.
func Partition[T any](buf []T, predicate func(T) bool) int {
	i, j := 0, len(buf)-1
	for i <= j {
		for i <= j && !predicate(buf[i]) {
			i++
		}
		for i <= j && predicate(buf[j]) {
			j--
		}
		if i < j {
			buf[i], buf[j] = buf[j], buf[i]
		}
	}
	return i
}
