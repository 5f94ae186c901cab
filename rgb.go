package perceptualcolor

import (
	"fmt"
	"image/color"
	"math"
)

var _ = fmt.Print

// RgbColor is a device RGB color with encoded (not linear) components.
// Components are in [0, 1] for in-gamut colors but are not clamped.
type RgbColor struct {
	R, G, B float64
}

var _ color.Color = RgbColor{}

func to8bit(v float64) uint8 {
	return uint8(math.Round(max(0, min(v, 1)) * 255))
}

func to16bit(v float64) uint32 {
	return uint32(math.Round(max(0, min(v, 1)) * 0xffff))
}

// NRGBA returns the opaque 8-bit color, clamping out of range components.
func (c RgbColor) NRGBA() color.NRGBA {
	return color.NRGBA{to8bit(c.R), to8bit(c.G), to8bit(c.B), 0xff}
}

func (c RgbColor) RGBA() (r, g, b, a uint32) {
	return to16bit(c.R), to16bit(c.G), to16bit(c.B), 0xffff
}

// Hex returns the 8-bit #RRGGBB form.
func (c RgbColor) Hex() string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B)
}

// Clamped returns the color with every component clamped to [0, 1].
func (c RgbColor) Clamped() RgbColor {
	return RgbColor{max(0, min(c.R, 1)), max(0, min(c.G, 1)), max(0, min(c.B, 1))}
}

func (c RgbColor) String() string {
	return fmt.Sprintf("RgbColor{%.4f %.4f %.4f}", c.R, c.G, c.B)
}

// RgbColorFrom converts any color.Color, un-premultiplying alpha.
func RgbColorFrom(c color.Color) RgbColor {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return RgbColor{}
	}
	f := float64(a)
	return RgbColor{float64(r) / f, float64(g) / f, float64(b) / f}
}
