package icc

import (
	"sync"
	"time"

	"github.com/kovidgoyal/perceptualcolor/colorconv"
)

const BuiltinSRGBDescription = "sRGB built-in"

// NewSRGBCurve returns the IEC 61966-2-1 tone curve as an ICC parametric
// curve of type 3.
func NewSRGBCurve() Curve1D {
	c, err := NewParametricCurve(SplitFunction, 2.4, 1/1.055, 0.055/1.055, 1/12.92, 0.04045)
	if err != nil {
		panic(err)
	}
	return c
}

// NewRGBProfile creates an in-memory display profile from the chromaticities
// of the white point and primaries, like LittleCMS' cmsCreateRGBProfile:
// the colorants are adapted from the white point to D50 with Bradford.
func NewRGBProfile(description string, white, red, green, blue colorconv.Chromaticity, curve Curve1D) (*Profile, error) {
	white_xyz := white.XYZ()
	m, ok := colorconv.RGBToXYZMatrix(red, green, blue, white_xyz)
	if !ok {
		return nil, ErrNotMatrixShaper
	}
	m = colorconv.AdaptationMatrix(white_xyz, colorconv.WhiteD50).Multiply(m)
	shaper, err := NewMatrixShaper(curve, curve, curve, m)
	if err != nil {
		return nil, err
	}
	p := newProfile()
	p.description = description
	p.shaper = shaper
	d50 := colorconv.WhiteD50
	p.Header = Header{
		PreferredCMM:           SignatureFromString("lcms"),
		Version:                Version{4, 3, 0},
		DeviceClass:            DisplayClassSignature,
		DataColorSpace:         RGBSignature,
		ProfileConnectionSpace: XYZSignature,
		CreatedAt:              time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		FileSignature:          ProfileFileSignature,
		RenderingIntent:        PerceptualRenderingIntent,
		PCSIlluminant:          XYZType{d50[0], d50[1], d50[2]},
	}
	return p, nil
}

// SRGB is the built-in sRGB profile: D65 white, Rec. 709 primaries and the
// IEC 61966-2-1 tone curve. The colorants are kept at full float precision.
var SRGB = sync.OnceValue(func() *Profile {
	p, err := NewRGBProfile(BuiltinSRGBDescription, colorconv.Chromaticity{X: 0.3127, Y: 0.3290},
		colorconv.Rec709Red, colorconv.Rec709Green, colorconv.Rec709Blue, NewSRGBCurve())
	if err != nil {
		panic(err)
	}
	return p
})
