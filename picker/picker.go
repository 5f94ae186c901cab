// Package picker holds the state of color picker diagrams independently of
// any widget toolkit: the current color, the cached diagram image and the
// conversions between widget coordinates and colors. A toolkit forwards
// input events to a picker and repaints when asked to.
package picker

import (
	"context"
	"fmt"
	"math"

	"github.com/kovidgoyal/perceptualcolor"
	"github.com/kovidgoyal/perceptualcolor/diagram"
	"github.com/kovidgoyal/perceptualcolor/gamut"
)

var _ = fmt.Print

// Step sizes of keyboard and mouse wheel interaction. A page step is ten
// single steps, as for sliders.
const (
	SingleStepChroma    = 1
	PageStepChroma      = 10 * SingleStepChroma
	SingleStepHue       = 360 / 100
	PageStepHue         = 10 * SingleStepHue
	SingleStepLightness = 1
	PageStepLightness   = 10 * SingleStepLightness
)

// base is the state shared by all pickers
type base struct {
	mapper gamut.Mapper
	color  perceptualcolor.LchColor
	cache  *diagram.Cache
	size   int
	// plane extracts the coordinate held constant by the diagram
	plane func(perceptualcolor.LchColor) float64

	// OnRepaint is called whenever the picker needs to be painted again
	OnRepaint func()
	// OnColorChanged is called after every change of the current color
	OnColorChanged func(perceptualcolor.LchColor)
}

func (b *base) repaint() {
	if b.OnRepaint != nil {
		b.OnRepaint()
	}
}

// SetColor maps c into the gamut and makes it the current color. Nothing
// happens if that does not change the current color. Otherwise the diagram
// is invalidated if it shows a different plane now, then a repaint is
// requested and finally OnColorChanged is called.
func (b *base) SetColor(c perceptualcolor.LchColor) {
	c = b.mapper.NearestInGamut(c)
	if c.HasSameCoordinates(b.color) {
		return
	}
	old := b.color
	b.color = c
	if p := b.plane(c); p != b.plane(old) {
		b.cache.SetPlane(p)
	}
	b.repaint()
	if b.OnColorChanged != nil {
		b.OnColorChanged(c)
	}
}

// Color is the current color, always in gamut.
func (b *base) Color() perceptualcolor.LchColor { return b.color }

// Size is the logical size of the widget, the diagram is a square of this
// size.
func (b *base) Size() int { return b.size }

// Resize sets the logical size of the square widget.
func (b *base) Resize(size int) {
	size = max(0, size)
	if size == b.size {
		return
	}
	b.size = size
	b.cache.SetImageSize(size)
	b.repaint()
}

// SetDevicePixelRatio sets the physical pixels per logical pixel, values
// that are not positive mean 1.
func (b *base) SetDevicePixelRatio(r float64) {
	r = diagram.Params{DevicePixelRatio: r}.Normalized().DevicePixelRatio
	if r == b.cache.Params().Normalized().DevicePixelRatio {
		return
	}
	b.cache.SetDevicePixelRatio(r)
	b.repaint()
}

// SetBorder sets the logical space left empty around the diagram.
func (b *base) SetBorder(border float64) {
	border = diagram.Params{Border: border}.Normalized().Border
	if border == b.cache.Params().Normalized().Border {
		return
	}
	b.cache.SetBorder(border)
	b.repaint()
}

// Image returns the diagram for painting, rasterizing it if needed.
func (b *base) Image() *diagram.Image { return b.cache.Image() }

// Refresh regenerates the diagram in the background and requests a
// repaint once it is ready.
func (b *base) Refresh(ctx context.Context) {
	b.cache.Refresh(ctx, func(*diagram.Image) { b.repaint() })
}

func (b *base) geometry_params() (size, border, chroma_range float64) {
	p := b.cache.Params().Normalized()
	return float64(b.size), p.Border, p.ChromaRange
}

func same_pixel(x1, y1, x2, y2 float64) bool {
	return math.Floor(x1) == math.Floor(x2) && math.Floor(y1) == math.Floor(y2)
}
