// Package colorspace implements gamut aware RGB color spaces. A color space
// converts between CIE Lab (D50) and device RGB and decides whether a color
// can be displayed without clipping.
package colorspace

import (
	"bytes"
	"fmt"
	"image/color"
	"os"

	"github.com/kovidgoyal/perceptualcolor"
	"github.com/kovidgoyal/perceptualcolor/colorconv"
	"github.com/kovidgoyal/perceptualcolor/icc"
	seehuhn "seehuhn.de/go/icc"
)

var _ = fmt.Print

// GamutTolerance is how far linear device values may lie outside [0, 1]
// for a color to still count as in gamut. It absorbs rounding in the
// profile transforms.
const GamutTolerance = 1e-5

// RgbColorSpace is an RGB color space backed by a matrix/TRC ICC profile.
// It is immutable after construction and safe for concurrent use, so one
// instance is normally shared by every diagram and picker.
type RgbColorSpace struct {
	profile       *icc.Profile
	shaper        *icc.MatrixShaper
	description   string
	maximumChroma float64
}

func newFromProfile(source string, p *icc.Profile) (*RgbColorSpace, error) {
	shaper, err := p.MatrixShaper()
	if err != nil {
		return nil, &ProfileLoadError{Source: source, Err: err}
	}
	ans := &RgbColorSpace{profile: p, shaper: shaper, maximumChroma: perceptualcolor.HumanMaximumChroma}
	if ans.description, err = p.Description(); err != nil || ans.description == "" {
		ans.description = source
	}
	return ans, nil
}

// NewSRGB returns the built-in sRGB color space, equivalent to the
// LittleCMS built-in sRGB profile.
func NewSRGB() (*RgbColorSpace, error) {
	return newFromProfile("built-in sRGB", icc.SRGB())
}

// NewFromICC creates a color space from the bytes of an ICC profile. Only
// RGB display profiles using the matrix/TRC model are supported.
func NewFromICC(data []byte) (*RgbColorSpace, error) {
	return newFromICC("memory", data)
}

func newFromICC(source string, data []byte) (*RgbColorSpace, error) {
	sp, err := seehuhn.Decode(data)
	if err != nil {
		return nil, &ProfileLoadError{Source: source, Err: err}
	}
	if sp.ColorSpace != seehuhn.RGBSpace {
		return nil, &ProfileLoadError{Source: source, Err: fmt.Errorf("%w: the profile has %d color components", icc.ErrNotMatrixShaper, sp.ColorSpace.NumComponents())}
	}
	p, err := icc.DecodeProfile(bytes.NewReader(data))
	if err != nil {
		return nil, &ProfileLoadError{Source: source, Err: err}
	}
	return newFromProfile(source, p)
}

// Load creates a color space from an ICC profile file.
func Load(path string) (*RgbColorSpace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ProfileLoadError{Source: path, Err: err}
	}
	return newFromICC(path, data)
}

func (cs *RgbColorSpace) Description() string   { return cs.description }
func (cs *RgbColorSpace) Profile() *icc.Profile { return cs.profile }

// MaximumChroma is a loose upper bound of the chroma of the gamut, used to
// scale diagrams. It is not a tight bound.
func (cs *RgbColorSpace) MaximumChroma() float64 { return cs.maximumChroma }

func (cs *RgbColorSpace) ToLab(c perceptualcolor.LchColor) perceptualcolor.LabColor { return c.ToLab() }
func (cs *RgbColorSpace) ToLch(c perceptualcolor.LabColor) perceptualcolor.LchColor { return c.ToLch() }

func (cs *RgbColorSpace) linear(lab perceptualcolor.LabColor) (r, g, b float64) {
	return cs.shaper.PCSToLinear(colorconv.LabToXYZ_D50(lab.L, lab.A, lab.B))
}

func in_unit_range(v float64) bool {
	return v >= -GamutTolerance && v <= 1+GamutTolerance
}

// IsInGamut reports whether the color can be encoded in device RGB without
// clipping. NaN values are never in gamut.
func (cs *RgbColorSpace) IsInGamut(lab perceptualcolor.LabColor) bool {
	r, g, b := cs.linear(lab)
	return in_unit_range(r) && in_unit_range(g) && in_unit_range(b)
}

// ToRgb converts without clamping and reports whether the color is in gamut.
func (cs *RgbColorSpace) ToRgb(lab perceptualcolor.LabColor) (perceptualcolor.RgbColor, bool) {
	r, g, b := cs.linear(lab)
	ok := in_unit_range(r) && in_unit_range(g) && in_unit_range(b)
	r, g, b = cs.shaper.Encode(r, g, b)
	return perceptualcolor.RgbColor{R: r, G: g, B: b}, ok
}

// ToRgbClipped converts and clamps every channel to [0, 1]. The result is
// only meant for display, never for gamut decisions.
func (cs *RgbColorSpace) ToRgbClipped(lab perceptualcolor.LabColor) perceptualcolor.RgbColor {
	r, g, b := cs.linear(lab)
	r, g, b = cs.shaper.Encode(clamp01(r), clamp01(g), clamp01(b))
	return perceptualcolor.RgbColor{R: clamp01(r), G: clamp01(g), B: clamp01(b)}
}

func clamp01(v float64) float64 {
	if v > 0 {
		return min(v, 1)
	}
	// also maps NaN to 0
	return 0
}

func (cs *RgbColorSpace) FromRgb(c perceptualcolor.RgbColor) perceptualcolor.LabColor {
	L, a, b := colorconv.XYZToLab_D50(cs.shaper.ToPCS(c.R, c.G, c.B))
	return perceptualcolor.LabColor{L: L, A: a, B: b}
}

// FromColor interprets c as a color of this color space.
func (cs *RgbColorSpace) FromColor(c color.Color) perceptualcolor.LabColor {
	return cs.FromRgb(perceptualcolor.RgbColorFrom(c))
}

func (cs *RgbColorSpace) String() string {
	return fmt.Sprintf("RgbColorSpace{%s}", cs.description)
}
