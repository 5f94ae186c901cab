package perceptualcolor

import (
	"fmt"
	"math"
)

var _ = fmt.Print

// LchColor is a color in the cylindrical representation of CIE L*a*b*
// (D50): lightness, chroma and hue in degrees.
//
// None of the fields is range checked. Lightness is conventionally in
// [0, 100] and chroma non-negative, hue may be any real number. There is
// deliberately no equality method as the hue is meaningless at zero
// chroma, use HasSameCoordinates to compare fields exactly.
type LchColor struct {
	L, C, H float64
}

// LabColor is a color in CIE L*a*b* (D50), the format used to talk to
// color profiles.
type LabColor struct {
	L, A, B float64
}

func (c LchColor) String() string {
	return fmt.Sprintf("LchColor{L: %v C: %v h: %v°}", c.L, c.C, c.H)
}

func (c LabColor) String() string {
	return fmt.Sprintf("LabColor{L: %v a: %v b: %v}", c.L, c.A, c.B)
}

// HasSameCoordinates compares all three fields exactly.
func (c LchColor) HasSameCoordinates(o LchColor) bool {
	return c.L == o.L && c.C == o.C && c.H == o.H
}

// NormalizedHue returns the hue folded into [0, 360).
func (c LchColor) NormalizedHue() float64 {
	return NormalizedAngleDegree(c.H)
}

func (c LchColor) ToLab() LabColor {
	s, co := math.Sincos(c.H * math.Pi / 180)
	return LabColor{L: c.L, A: c.C * co, B: c.C * s}
}

// ToLch converts to LCh, the hue of the result is in [0, 360). For
// achromatic colors the hue is 0.
func (c LabColor) ToLch() LchColor {
	ans := LchColor{L: c.L, C: math.Hypot(c.A, c.B)}
	if ans.C != 0 {
		ans.H = NormalizedAngleDegree(math.Atan2(c.B, c.A) * 180 / math.Pi)
	}
	return ans
}

// NormalizedAngleDegree folds an angle into [0, 360) using a floored modulo.
func NormalizedAngleDegree(angle float64) float64 {
	ans := math.Mod(angle, 360)
	if ans < 0 {
		ans += 360
	}
	if ans >= 360 {
		// -tiny + 360 rounds up to 360
		ans = 0
	}
	return ans
}
