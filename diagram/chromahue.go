package diagram

import (
	"context"
	"fmt"

	"github.com/kovidgoyal/perceptualcolor"
	"github.com/kovidgoyal/perceptualcolor/gamut"
)

var _ = fmt.Print

// OutOfGamut chooses how a chroma-hue diagram paints colors that the color
// space cannot display.
type OutOfGamut int

const (
	// Clip paints the clamped RGB value.
	Clip OutOfGamut = iota
	// Map paints the color returned by the gamut mapper.
	Map
	// Background paints a fixed background color.
	Background
)

func (o OutOfGamut) String() string {
	switch o {
	case Clip:
		return "Clip"
	case Map:
		return "Map"
	case Background:
		return "Background"
	}
	return fmt.Sprintf("OutOfGamut(%d)", int(o))
}

// ChromaHue renders the slice of the color solid at the lightness given by
// Params.Plane as a disc. The center of the disc is achromatic, the
// distance from the center is the chroma and the angle is the hue with 0°
// pointing right and 90° pointing up.
type ChromaHue struct {
	space ColorSpace

	OutOfGamut OutOfGamut
	// Mapper is used by Map
	Mapper gamut.Mapper
	// BackgroundColor is used by Background
	BackgroundColor perceptualcolor.LchColor
}

func NewChromaHue(space ColorSpace) *ChromaHue {
	return &ChromaHue{
		space:           space,
		Mapper:          gamut.New(space, gamut.SacrificeChroma),
		BackgroundColor: perceptualcolor.NeutralGray,
	}
}

func (r *ChromaHue) Plane() Plane { return LightnessPlane }

func (r *ChromaHue) String() string {
	return fmt.Sprintf("ChromaHue{out of gamut: %s}", r.OutOfGamut)
}

func (r *ChromaHue) color_for(lab perceptualcolor.LabColor, background perceptualcolor.RgbColor) perceptualcolor.RgbColor {
	switch r.OutOfGamut {
	case Map:
		if c, ok := r.space.ToRgb(lab); ok {
			return c
		}
		return r.space.ToRgbClipped(r.Mapper.NearestInGamut(lab.ToLch()).ToLab())
	case Background:
		if c, ok := r.space.ToRgb(lab); ok {
			return c
		}
		return background
	default:
		return r.space.ToRgbClipped(lab)
	}
}

func (r *ChromaHue) Rasterize(ctx context.Context, p Params) (*Image, error) {
	p = p.Normalized()
	img, ok := new_image(p)
	if !ok {
		return img, nil
	}
	size := img.Rect.Dx()
	g := NewChromaHueGeometry(float64(size), p.PhysicalBorder(), p.ChromaRange)
	if g.Radius() <= 0 {
		return img, nil
	}
	background := r.space.ToRgbClipped(r.BackgroundColor.ToLab())
	lab := perceptualcolor.LabColor{L: p.Plane}
	err := rasterize_rows(ctx, size, func(y int) {
		cy := float64(y) + 0.5
		lab := lab
		for x := range size {
			cx := float64(x) + 0.5
			if !g.Contains(cx, cy) {
				continue
			}
			lab.A, lab.B = g.ToAB(cx, cy)
			set_pixel(img, x, y, r.color_for(lab, background))
		}
	})
	if err != nil {
		return nil, err
	}
	return img, nil
}
