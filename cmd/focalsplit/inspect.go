package main

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/ar90n/focalsplit"
	"github.com/ar90n/focalsplit/linalg"
	"github.com/ar90n/focalsplit/particle"
	"github.com/ar90n/focalsplit/unsafecast"
	"github.com/cockroachdb/errors"
	"github.com/davecgh/go-spew/spew"
	"github.com/urfave/cli/v2"
)

func dumpValue[T any](w io.Writer, name string, v *T) {
	fmt.Fprintf(w, "== %s\n", name)
	spew.Fdump(w, *v)
	fmt.Fprint(w, hex.Dump(unsafecast.Bytes(v)))
}

func dumpSplit(w io.Writer, n, index int) error {
	if n < 1 || index < 0 || n <= index {
		return errors.Newf("index %d out of range for length %d", index, n)
	}

	data := make([]int32, n)
	for i := range data {
		data[i] = int32(i)
	}

	focal, prefix, suffix := focalsplit.ExtractAt(data, index)
	fmt.Fprintf(w, "== split of %v at %d\n", data, index)
	fmt.Fprintf(w, "focal:  %d\nprefix: %v\nsuffix: %v\n", *focal, prefix, suffix)

	focal, rest := focalsplit.ExtractAtIter(data, index)
	for other := range rest.All() {
		*other = 0
	}
	*focal = -*focal
	fmt.Fprintf(w, "after zeroing the remainder and negating the focal: %v\n", data)
	fmt.Fprint(w, hex.Dump(unsafecast.SliceBytes(data)))
	return nil
}

func inspectAction(c *cli.Context) error {
	w := c.App.Writer
	value := c.Int64("value")

	i32 := int32(value)
	dumpValue(w, "int32", &i32)
	i64 := value
	dumpValue(w, "int64", &i64)
	f64 := float64(value)
	dumpValue(w, "float64", &f64)
	p := particle.Particle[float32]{
		Pos:  linalg.Vec2[float32]{X: float32(value), Y: -float32(value)},
		Mass: 1,
	}
	dumpValue(w, "particle.Particle[float32]", &p)

	return dumpSplit(w, c.Int("len"), c.Int("index"))
}
