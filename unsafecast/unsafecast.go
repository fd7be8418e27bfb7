// Package unsafecast holds the two escape hatches that sit next to
// focalsplit: a raw byte view of a value, and a no-op lifetime extension for
// pointers handed out by hand-written cursors.
//
// Nothing here is checked. The byte layout is whatever the compiler chose for
// the host, with no endianness or padding guarantees, so these views are for
// inspection only and never for serialization.
package unsafecast

import "unsafe"

// Bytes returns the in-memory representation of *p without copying. The view
// aliases *p: do not write through it, and do not keep it after *p is gone.
func Bytes[T any](p *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), unsafe.Sizeof(*p))
}

// MutableBytes is Bytes for callers that intend to write. Any byte pattern can
// be stored, including ones that are not a valid T.
func MutableBytes[T any](p *T) []byte {
	return Bytes(p)
}

// SliceBytes returns the raw view of every element of s, back to back.
func SliceBytes[E any](s []E) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero E
	size := int(unsafe.Sizeof(zero)) * len(s)
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), size)
}

// Detach reissues p with a validity chosen by the caller. The garbage
// collector already keeps the target alive, so this is the identity; calling
// it marks the place where the caller asserts that nothing else touches *p
// while the returned pointer is in use.
func Detach[T any](p *T) *T {
	return p
}
