// Package gamut maps arbitrary LCh colors to displayable ones.
package gamut

import (
	"fmt"
	"math"

	"github.com/kovidgoyal/perceptualcolor"
)

var _ = fmt.Print

type Policy int

const (
	// Preserve keeps lightness and chroma and leaves clipping to the final
	// RGB conversion.
	Preserve Policy = iota
	// SacrificeChroma keeps hue and lightness and reduces chroma until the
	// color is in gamut.
	SacrificeChroma
)

func (p Policy) String() string {
	switch p {
	case Preserve:
		return "Preserve"
	case SacrificeChroma:
		return "SacrificeChroma"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// Gamut is the part of a color space a Mapper needs.
// *colorspace.RgbColorSpace implements it.
type Gamut interface {
	IsInGamut(perceptualcolor.LabColor) bool
	MaximumChroma() float64
}

type Mapper interface {
	// NearestInGamut never fails. The hue of the result is in [0, 360),
	// its chroma is not negative and its lightness is the input lightness.
	NearestInGamut(perceptualcolor.LchColor) perceptualcolor.LchColor
	Policy() Policy
}

// MaxIterations bounds the bisection of SacrificeChroma. 30 halvings of
// a chroma range of 200 are far below any useful precision.
const MaxIterations = 30

// New returns a mapper for the policy using GamutPrecision.
func New(g Gamut, p Policy) Mapper {
	switch p {
	case SacrificeChroma:
		return NewChromaSacrificer(g, perceptualcolor.GamutPrecision, MaxIterations)
	default:
		return preserver{}
	}
}

func normalized(c perceptualcolor.LchColor) perceptualcolor.LchColor {
	if c.H = perceptualcolor.NormalizedAngleDegree(c.H); math.IsNaN(c.H) {
		c.H = 0
	}
	if !(c.C > 0) {
		c.C = 0
	}
	return c
}

type preserver struct{}

func (preserver) Policy() Policy { return Preserve }

func (preserver) NearestInGamut(c perceptualcolor.LchColor) perceptualcolor.LchColor {
	return normalized(c)
}

// ChromaSacrificer searches, at constant lightness and hue, the largest
// chroma that is in gamut. Gamut membership is assumed to be monotonic in
// chroma. This holds for the usual display gamuts but is only an
// approximation for unusual profiles.
type ChromaSacrificer struct {
	gamut          Gamut
	precision      float64
	max_iterations int
}

func NewChromaSacrificer(g Gamut, precision float64, max_iterations int) *ChromaSacrificer {
	if !(precision > 0) {
		precision = perceptualcolor.GamutPrecision
	}
	if max_iterations < 1 {
		max_iterations = MaxIterations
	}
	return &ChromaSacrificer{gamut: g, precision: precision, max_iterations: max_iterations}
}

func (m *ChromaSacrificer) Policy() Policy { return SacrificeChroma }

func (m *ChromaSacrificer) in_gamut(c perceptualcolor.LchColor) bool {
	return m.gamut.IsInGamut(c.ToLab())
}

func (m *ChromaSacrificer) NearestInGamut(c perceptualcolor.LchColor) perceptualcolor.LchColor {
	c = normalized(c)
	if m.in_gamut(c) {
		return c
	}
	candidate := c
	candidate.C = 0
	if !m.in_gamut(candidate) {
		// not even gray is in gamut at this lightness
		return candidate
	}
	lo, hi := 0.0, min(c.C, m.gamut.MaximumChroma())
	candidate.C = hi
	if hi < c.C && m.in_gamut(candidate) {
		return candidate
	}
	for i := 0; i < m.max_iterations && hi-lo > m.precision; i++ {
		candidate.C = (lo + hi) / 2
		if m.in_gamut(candidate) {
			lo = candidate.C
		} else {
			hi = candidate.C
		}
	}
	candidate.C = lo
	return candidate
}
