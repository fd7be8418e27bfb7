package unsafecast

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func Test_Bytes(t *testing.T) {
	thing := int32(42)
	view := Bytes(&thing)

	want := make([]byte, 4)
	binary.NativeEndian.PutUint32(want, 42)
	assert.Equal(t, want, view)

	thing = 7
	assert.Equal(t, uint32(7), binary.NativeEndian.Uint32(view))
}

func Test_BytesStruct(t *testing.T) {
	type pair struct {
		A uint16
		B uint64
	}
	p := pair{A: 1, B: 2}
	assert.Len(t, Bytes(&p), int(unsafe.Sizeof(p)))

	var empty struct{}
	assert.Len(t, Bytes(&empty), 0)
}

func Test_MutableBytes(t *testing.T) {
	thing := uint32(0)
	binary.NativeEndian.PutUint32(MutableBytes(&thing), 0xdeadbeef)
	assert.Equal(t, uint32(0xdeadbeef), thing)
}

func Test_SliceBytes(t *testing.T) {
	data := []uint16{1, 2, 3}
	view := SliceBytes(data)
	assert.Len(t, view, 6)
	assert.Equal(t, uint16(3), binary.NativeEndian.Uint16(view[4:]))

	assert.Nil(t, SliceBytes([]uint16{}))
}

type zeroingCursor struct {
	data  []int32
	index int
}

func (c *zeroingCursor) Next() (*int32, bool) {
	if len(c.data) <= c.index {
		return nil, false
	}
	rv := &c.data[c.index]
	c.index++
	return Detach(rv), true
}

func Test_Detach(t *testing.T) {
	data := []int32{0, 1, 2, 3, 4, 5}
	cursor := &zeroingCursor{data: data}

	handles := []*int32{}
	for {
		e, ok := cursor.Next()
		if !ok {
			break
		}
		handles = append(handles, e)
	}
	for _, e := range handles {
		*e = 0
	}

	sum := int32(0)
	for _, v := range data {
		sum += v
	}
	assert.Equal(t, int32(0), sum)

	x := 1
	assert.Same(t, &x, Detach(&x))
}
