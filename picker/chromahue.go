package picker

import (
	"fmt"

	"github.com/kovidgoyal/perceptualcolor"
	"github.com/kovidgoyal/perceptualcolor/diagram"
	"github.com/kovidgoyal/perceptualcolor/gamut"
)

var _ = fmt.Print

// ChromaHue is a circular picker for chroma and hue at the lightness of
// the current color.
type ChromaHue struct {
	base
	image *diagram.ChromaHueImage
}

// NewChromaHue creates a picker whose current color is
// SRGBVersatileInitialColor mapped into the gamut of space.
func NewChromaHue(space diagram.ColorSpace) *ChromaHue {
	ans := &ChromaHue{image: diagram.NewChromaHueImage(space)}
	ans.base = base{
		mapper: gamut.New(space, gamut.SacrificeChroma),
		cache:  ans.image.Cache,
		plane:  func(c perceptualcolor.LchColor) float64 { return c.L },
	}
	ans.color = ans.mapper.NearestInGamut(perceptualcolor.SRGBVersatileInitialColor)
	ans.image.SetLightness(ans.color.L)
	return ans
}

// Diagram is the cached image painted by the picker.
func (p *ChromaHue) Diagram() *diagram.ChromaHueImage { return p.image }

func (p *ChromaHue) geometry() diagram.ChromaHueGeometry {
	return diagram.NewChromaHueGeometry(p.geometry_params())
}

// ImageCoordinatesFromColor returns the logical widget coordinates of the
// current color.
func (p *ChromaHue) ImageCoordinatesFromColor() (x, y float64) {
	lab := p.color.ToLab()
	return p.geometry().FromAB(lab.A, lab.B)
}

// SetColorFromImageCoordinates sets the color at the given logical widget
// coordinates, at the current lightness. The coordinates may lie outside
// the diagram or even the widget, colors outside the gamut lose chroma
// while keeping their hue. Nothing happens for the pixel under the marker
// of the current color.
func (p *ChromaHue) SetColorFromImageCoordinates(x, y float64) {
	if cx, cy := p.ImageCoordinatesFromColor(); same_pixel(x, y, cx, cy) {
		return
	}
	a, b := p.geometry().ToAB(x, y)
	p.SetColor(perceptualcolor.LabColor{L: p.color.L, A: a, B: b}.ToLch())
}

// IsWithinDiagramSurface reports whether the logical widget coordinates
// are on the diagram disc, regardless of the gamut.
func (p *ChromaHue) IsWithinDiagramSurface(x, y float64) bool {
	return p.geometry().Contains(x, y)
}

// StepChroma changes the chroma by the given number of single steps,
// never going below zero.
func (p *ChromaHue) StepChroma(steps float64) {
	c := p.color
	c.C = max(0, c.C+steps*SingleStepChroma)
	p.SetColor(c)
}

// StepHue turns the hue counter-clockwise by the given number of single
// steps.
func (p *ChromaHue) StepHue(steps float64) {
	c := p.color
	c.H += steps * SingleStepHue
	p.SetColor(c)
}

// SetLightness changes the lightness of the current color and so the
// diagram.
func (p *ChromaHue) SetLightness(lightness float64) {
	c := p.color
	c.L = lightness
	p.SetColor(c)
}
