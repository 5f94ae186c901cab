// Package diagram rasterizes gamut diagrams: two dimensional slices of the
// LCh color solid drawn at a fixed lightness or a fixed hue, and caches the
// resulting images.
package diagram

import (
	"fmt"
	"image"
	"math"
)

var _ = fmt.Print

// Plane selects the coordinate that is held constant in a diagram.
type Plane int

const (
	// LightnessPlane diagrams show chroma and hue at a fixed lightness.
	LightnessPlane Plane = iota
	// HuePlane diagrams show chroma and lightness at a fixed hue.
	HuePlane
)

func (p Plane) String() string {
	switch p {
	case LightnessPlane:
		return "LightnessPlane"
	case HuePlane:
		return "HuePlane"
	}
	return fmt.Sprintf("Plane(%d)", int(p))
}

// Params is the full set of inputs of a rasterization. ImageSize and Border
// are in logical (device independent) pixels, Plane is the lightness or the
// hue of the slice depending on the rasterizer.
type Params struct {
	ImageSize        int
	Border           float64
	Plane            float64
	ChromaRange      float64
	DevicePixelRatio float64
}

// Normalized returns the parameters with out of range values replaced:
// negative borders and chroma ranges become 0 and a device pixel ratio that
// is not positive becomes 1.
func (p Params) Normalized() Params {
	if !(p.Border > 0) {
		p.Border = 0
	}
	if !(p.ChromaRange > 0) {
		p.ChromaRange = 0
	}
	if !(p.DevicePixelRatio > 0) || math.IsInf(p.DevicePixelRatio, 0) {
		p.DevicePixelRatio = 1
	}
	if p.ImageSize < 0 {
		p.ImageSize = 0
	}
	return p
}

// PhysicalSize is the width and height of the pixel buffer.
func (p Params) PhysicalSize() int {
	p = p.Normalized()
	if p.ImageSize <= 1 {
		return 0
	}
	ans := int(math.Round(float64(p.ImageSize) * p.DevicePixelRatio))
	if ans <= 1 {
		return 0
	}
	return ans
}

// PhysicalBorder is the border in pixels of the pixel buffer.
func (p Params) PhysicalBorder() float64 {
	p = p.Normalized()
	return p.Border * p.DevicePixelRatio
}

func (p Params) String() string {
	return fmt.Sprintf("Params{size: %d border: %v plane: %v chroma range: %v dpr: %v}",
		p.ImageSize, p.Border, p.Plane, p.ChromaRange, p.DevicePixelRatio)
}

// Image is a rendered diagram. The embedded buffer holds physical pixels,
// LogicalSize is the size in device independent pixels.
type Image struct {
	*image.NRGBA
	DevicePixelRatio float64
	LogicalSize      int
}

// IsEmpty is true for images of degenerate sizes which have no pixels.
func (img *Image) IsEmpty() bool {
	return img == nil || img.NRGBA == nil || img.Rect.Empty()
}

// new_image allocates a fully transparent buffer for p. The second return
// value is false when the image has no pixels.
func new_image(p Params) (*Image, bool) {
	p = p.Normalized()
	size := p.PhysicalSize()
	ans := &Image{NRGBA: image.NewNRGBA(image.Rect(0, 0, size, size)), DevicePixelRatio: p.DevicePixelRatio, LogicalSize: p.ImageSize}
	if size == 0 {
		ans.LogicalSize = 0
	}
	return ans, size > 0
}

// ChromaHueGeometry maps continuous image coordinates of a chroma-hue
// diagram to Lab a/b and back. The y axis points down, so b grows upwards.
// Pixel (x, y) has its center at (x+0.5, y+0.5). All values are in the
// same unit, either physical or logical pixels.
type ChromaHueGeometry struct {
	Size, Border, ChromaRange float64
}

func NewChromaHueGeometry(size, border, chroma_range float64) ChromaHueGeometry {
	return ChromaHueGeometry{Size: size, Border: max(0, border), ChromaRange: max(0, chroma_range)}
}

// Radius of the diagram disc, not positive when the border leaves no room.
func (g ChromaHueGeometry) Radius() float64 { return (g.Size - 2*g.Border) / 2 }

// Center is the image coordinate of the achromatic axis.
func (g ChromaHueGeometry) Center() float64 { return g.Size / 2 }

// Scale is the chroma per pixel.
func (g ChromaHueGeometry) Scale() float64 {
	if g.Radius() <= 0 {
		return 0
	}
	return g.ChromaRange / g.Radius()
}

func (g ChromaHueGeometry) ToAB(x, y float64) (a, b float64) {
	s, c := g.Scale(), g.Center()
	return s * (x - c), s * (c - y)
}

func (g ChromaHueGeometry) FromAB(a, b float64) (x, y float64) {
	c := g.Center()
	if g.ChromaRange <= 0 || g.Radius() <= 0 {
		return c, c
	}
	s := g.Radius() / g.ChromaRange
	return c + a*s, c - b*s
}

// Contains reports whether the point lies on the diagram disc.
func (g ChromaHueGeometry) Contains(x, y float64) bool {
	r := g.Radius()
	if r <= 0 {
		return false
	}
	c := g.Center()
	return math.Hypot(x-c, y-c) <= r
}

// ChromaLightnessGeometry maps continuous image coordinates of a
// chroma-lightness diagram to chroma and lightness. The diagram is the
// square [Border, Size-Border), chroma grows from 0 at the left edge to
// ChromaRange at the right edge and lightness falls from 100 at the top to
// 0 at the bottom.
type ChromaLightnessGeometry struct {
	Size, Border, ChromaRange float64
}

func NewChromaLightnessGeometry(size, border, chroma_range float64) ChromaLightnessGeometry {
	return ChromaLightnessGeometry{Size: size, Border: max(0, border), ChromaRange: max(0, chroma_range)}
}

// Extent is the side of the diagram square.
func (g ChromaLightnessGeometry) Extent() float64 { return g.Size - 2*g.Border }

func (g ChromaLightnessGeometry) ToCL(x, y float64) (chroma, lightness float64) {
	e := g.Extent()
	if e <= 0 {
		return 0, 0
	}
	return (x - g.Border) / e * g.ChromaRange, 100 - (y-g.Border)/e*100
}

func (g ChromaLightnessGeometry) FromCL(chroma, lightness float64) (x, y float64) {
	e := g.Extent()
	x = g.Border
	if g.ChromaRange > 0 {
		x += chroma / g.ChromaRange * e
	}
	return x, g.Border + (100-lightness)/100*e
}

func (g ChromaLightnessGeometry) Contains(x, y float64) bool {
	return g.Extent() > 0 && x >= g.Border && x < g.Size-g.Border && y >= g.Border && y < g.Size-g.Border
}
