package picker

import (
	"fmt"

	"github.com/kovidgoyal/perceptualcolor"
	"github.com/kovidgoyal/perceptualcolor/diagram"
	"github.com/kovidgoyal/perceptualcolor/gamut"
)

var _ = fmt.Print

// ChromaLightness is a square picker for chroma and lightness at the hue of
// the current color.
type ChromaLightness struct {
	base
	image *diagram.ChromaLightnessImage
}

// NewChromaLightness creates a picker whose current color is
// SRGBVersatileInitialColor mapped into the gamut of space.
func NewChromaLightness(space diagram.ColorSpace) *ChromaLightness {
	ans := &ChromaLightness{image: diagram.NewChromaLightnessImage(space)}
	ans.base = base{
		mapper: gamut.New(space, gamut.SacrificeChroma),
		cache:  ans.image.Cache,
		plane:  func(c perceptualcolor.LchColor) float64 { return c.NormalizedHue() },
	}
	ans.color = ans.mapper.NearestInGamut(perceptualcolor.SRGBVersatileInitialColor)
	ans.image.SetHue(ans.color.NormalizedHue())
	return ans
}

func (p *ChromaLightness) Diagram() *diagram.ChromaLightnessImage { return p.image }

func (p *ChromaLightness) geometry() diagram.ChromaLightnessGeometry {
	return diagram.NewChromaLightnessGeometry(p.geometry_params())
}

func (p *ChromaLightness) ImageCoordinatesFromColor() (x, y float64) {
	return p.geometry().FromCL(p.color.C, p.color.L)
}

// SetColorFromImageCoordinates sets the color at the given logical widget
// coordinates, at the current hue. Coordinates outside the diagram are
// moved to its nearest edge first.
func (p *ChromaLightness) SetColorFromImageCoordinates(x, y float64) {
	if cx, cy := p.ImageCoordinatesFromColor(); same_pixel(x, y, cx, cy) {
		return
	}
	g := p.geometry()
	if g.Extent() <= 0 {
		return
	}
	x = max(g.Border, min(x, g.Size-g.Border))
	y = max(g.Border, min(y, g.Size-g.Border))
	c, l := g.ToCL(x, y)
	p.SetColor(perceptualcolor.LchColor{L: l, C: c, H: p.color.H})
}

func (p *ChromaLightness) IsWithinDiagramSurface(x, y float64) bool {
	return p.geometry().Contains(x, y)
}

func (p *ChromaLightness) StepChroma(steps float64) {
	c := p.color
	c.C = max(0, c.C+steps*SingleStepChroma)
	p.SetColor(c)
}

// StepLightness changes the lightness by the given number of single steps,
// staying within [0, 100].
func (p *ChromaLightness) StepLightness(steps float64) {
	c := p.color
	c.L = max(0, min(c.L+steps*SingleStepLightness, 100))
	p.SetColor(c)
}

// SetHue changes the hue of the current color and so the diagram.
func (p *ChromaLightness) SetHue(hue float64) {
	c := p.color
	c.H = hue
	p.SetColor(c)
}
