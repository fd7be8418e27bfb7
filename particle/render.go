package particle

import (
	"io"
	"math"

	"github.com/ar90n/focalsplit/linalg"
	"github.com/cockroachdb/errors"
	"github.com/fogleman/gg"
)

type RenderOptions struct {
	Width  int
	Height int
	// Extent is the half-width of the square of world space mapped onto the
	// image. Zero fits the image to the particles.
	Extent float64
}

// Render draws the world as a PNG, one disc per particle with area
// proportional to its mass.
func Render[T linalg.Float](w io.Writer, world *World[T], opts RenderOptions) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return errors.Newf("invalid image size: %dx%d", opts.Width, opts.Height)
	}

	extent := opts.Extent
	if extent <= 0 {
		extent = fitExtent(world)
	}

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetRGB(0.05, 0.05, 0.1)
	dc.Clear()

	maxRadius := float64(linalg.Min(opts.Width, opts.Height)) / 8
	sx := float64(opts.Width) / (2 * extent)
	sy := float64(opts.Height) / (2 * extent)
	dc.SetRGB(0.95, 0.85, 0.4)
	for _, p := range world.Particles() {
		x := (float64(p.Pos.X) + extent) * sx
		y := (extent - float64(p.Pos.Y)) * sy
		r := linalg.Min(linalg.Max(1, 2*math.Sqrt(float64(p.Mass))), maxRadius)
		dc.DrawCircle(x, y, r)
		dc.Fill()
	}

	return errors.Wrap(dc.EncodePNG(w), "encode png")
}

func fitExtent[T linalg.Float](world *World[T]) float64 {
	extent := 1.0
	for _, p := range world.Particles() {
		extent = linalg.Max(extent, linalg.Abs(float64(p.Pos.X)))
		extent = linalg.Max(extent, linalg.Abs(float64(p.Pos.Y)))
	}
	return extent * 1.05
}
