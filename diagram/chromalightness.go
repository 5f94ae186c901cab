package diagram

import (
	"context"
	"fmt"

	"github.com/kovidgoyal/perceptualcolor"
)

var _ = fmt.Print

// ChromaLightness renders the slice of the color solid at the hue given by
// Params.Plane. Only colors inside the gamut are painted.
type ChromaLightness struct {
	space ColorSpace
}

func NewChromaLightness(space ColorSpace) *ChromaLightness {
	return &ChromaLightness{space: space}
}

func (r *ChromaLightness) Plane() Plane { return HuePlane }

func (r *ChromaLightness) String() string { return "ChromaLightness{}" }

func (r *ChromaLightness) Rasterize(ctx context.Context, p Params) (*Image, error) {
	p = p.Normalized()
	img, ok := new_image(p)
	if !ok {
		return img, nil
	}
	size := img.Rect.Dx()
	g := NewChromaLightnessGeometry(float64(size), p.PhysicalBorder(), p.ChromaRange)
	if g.Extent() <= 0 {
		return img, nil
	}
	hue := perceptualcolor.NormalizedAngleDegree(p.Plane)
	err := rasterize_rows(ctx, size, func(y int) {
		cy := float64(y) + 0.5
		c := perceptualcolor.LchColor{H: hue}
		for x := range size {
			cx := float64(x) + 0.5
			if !g.Contains(cx, cy) {
				continue
			}
			c.C, c.L = g.ToCL(cx, cy)
			if rgb, ok := r.space.ToRgb(c.ToLab()); ok {
				set_pixel(img, x, y, rgb)
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return img, nil
}
