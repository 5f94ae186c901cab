package diagram

import (
	"context"
	"fmt"

	"github.com/kovidgoyal/go-parallel"
	"github.com/kovidgoyal/perceptualcolor"
)

var _ = fmt.Print

// ColorSpace is what the rasterizers need from a color space.
// *colorspace.RgbColorSpace implements it.
type ColorSpace interface {
	IsInGamut(perceptualcolor.LabColor) bool
	ToRgb(perceptualcolor.LabColor) (perceptualcolor.RgbColor, bool)
	ToRgbClipped(perceptualcolor.LabColor) perceptualcolor.RgbColor
	MaximumChroma() float64
}

// Rasterizer renders one kind of diagram. Implementations must be safe for
// concurrent use, a Cache may run a new rasterization while an older one
// is still being abandoned.
type Rasterizer interface {
	Rasterize(ctx context.Context, p Params) (*Image, error)
	Plane() Plane
}

// rasterize_rows runs f over every row of a square buffer of the given
// size in parallel, stopping early when ctx is cancelled.
func rasterize_rows(ctx context.Context, size int, f func(y int)) error {
	err := parallel.Run_in_parallel_over_range(0, func(start, limit int) {
		for y := start; y < limit; y++ {
			if ctx.Err() != nil {
				return
			}
			f(y)
		}
	}, 0, size)
	if err != nil {
		return err
	}
	return ctx.Err()
}

func set_pixel(img *Image, x, y int, c perceptualcolor.RgbColor) {
	n := c.NRGBA()
	s := img.Pix[img.PixOffset(x, y):]
	s = s[0:4:4]
	s[0], s[1], s[2], s[3] = n.R, n.G, n.B, 0xff
}
