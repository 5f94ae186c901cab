package colorconv

import (
	"math"
)

// This package holds the colorimetric math shared by the color spaces:
// CIE L*a*b* <-> XYZ relative to the D50 profile connection space white,
// Bradford chromatic adaptation and construction of RGB -> XYZ matrices
// from chromaticities.
//
// Notes:
// - L,a,b are the usual CIELAB values (L in [0,100], a,b around -/+).
// - XYZ values are normalized so that the white has Y = 1.

type Vec3 [3]float64
type Mat3 [3][3]float64

// Chromaticity is a CIE xy chromaticity coordinate.
type Chromaticity struct {
	X, Y float64
}

// Standard reference whites (CIE XYZ) normalized so Y = 1.0
// D50 matches the ICC profile connection space illuminant as used by
// LittleCMS.
var (
	WhiteD50 = Vec3{0.9642, 1.0, 0.8249}
	WhiteD65 = Chromaticity{0.3127, 0.3290}.XYZ()
)

// Rec. 709 primaries, shared by sRGB
var (
	Rec709Red   = Chromaticity{0.64, 0.33}
	Rec709Green = Chromaticity{0.30, 0.60}
	Rec709Blue  = Chromaticity{0.15, 0.06}
)

// Bradford transform matrices (forward and inverse)
var (
	bradford = Mat3{
		{0.8951, 0.2664, -0.1614},
		{-0.7502, 1.7135, 0.0367},
		{0.0389, -0.0685, 1.0296},
	}
	invBradford = Mat3{
		{0.9869929, -0.1470543, 0.1599627},
		{0.4323053, 0.5183603, 0.0492912},
		{-0.0085287, 0.0400428, 0.9684867},
	}
)

var IdentityMat3 = Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// XYZ returns the XYZ value of the chromaticity with luminance Y = 1.
func (c Chromaticity) XYZ() Vec3 {
	return Vec3{c.X / c.Y, 1, (1 - c.X - c.Y) / c.Y}
}

func finv(t float64) float64 {
	const delta = 6.0 / 29.0
	if t > delta {
		return t * t * t
	}
	// when t <= delta: 3*delta^2*(t - 4/29)
	return 3 * delta * delta * (t - 4.0/29.0)
}

// LabToXYZ_D50 converts Lab (D50) to CIE XYZ values relative to the D50 whitepoint (Y=1).
func LabToXYZ_D50(L, a, b float64) (X, Y, Z float64) {
	// Inverse of the CIELAB f function
	var fy = (L + 16.0) / 116.0
	var fx = fy + (a / 500.0)
	var fz = fy - (b / 200.0)

	X = finv(fx) * WhiteD50[0]
	Y = finv(fy) * WhiteD50[1]
	Z = finv(fz) * WhiteD50[2]
	return
}

func ff(t float64) float64 {
	const delta = 6.0 / 29.0
	if t > delta*delta*delta {
		return math.Cbrt(t)
	}
	// t <= delta^3
	return t/(3*delta*delta) + 4.0/29.0
}

// XYZToLab_D50 converts XYZ (relative to D50, Y=1) into CIELAB (D50).
func XYZToLab_D50(X, Y, Z float64) (L, a, b float64) {
	fx := ff(X / WhiteD50[0])
	fy := ff(Y / WhiteD50[1])
	fz := ff(Z / WhiteD50[2])

	L = 116.0*fy - 16.0
	a = 500.0 * (fx - fy)
	b = 200.0 * (fy - fz)
	return
}

// Matrix & vector utilities

func (a Mat3) Multiply(b Mat3) Mat3 {
	var out Mat3
	for i := range 3 {
		for j := range 3 {
			sum := 0.0
			for k := range 3 {
				sum += a[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

func (m Mat3) Apply(x, y, z float64) (float64, float64, float64) {
	return m[0][0]*x + m[0][1]*y + m[0][2]*z,
		m[1][0]*x + m[1][1]*y + m[1][2]*z,
		m[2][0]*x + m[2][1]*y + m[2][2]*z
}

func (m Mat3) ApplyVec(v Vec3) Vec3 {
	x, y, z := m.Apply(v[0], v[1], v[2])
	return Vec3{x, y, z}
}

// Determinants below this are treated as zero
const DeterminantTolerance = 1e-9

// Inverted returns the inverse matrix and false if the matrix is singular.
func (m Mat3) Inverted() (ans Mat3, ok bool) {
	det := m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
	if math.Abs(det) < DeterminantTolerance {
		return ans, false
	}
	inv := 1 / det
	adj := Mat3{
		{m[1][1]*m[2][2] - m[1][2]*m[2][1], m[0][2]*m[2][1] - m[0][1]*m[2][2], m[0][1]*m[1][2] - m[0][2]*m[1][1]},
		{m[1][2]*m[2][0] - m[1][0]*m[2][2], m[0][0]*m[2][2] - m[0][2]*m[2][0], m[0][2]*m[1][0] - m[0][0]*m[1][2]},
		{m[1][0]*m[2][1] - m[1][1]*m[2][0], m[0][1]*m[2][0] - m[0][0]*m[2][1], m[0][0]*m[1][1] - m[0][1]*m[1][0]},
	}
	for i := range 3 {
		for j := range 3 {
			ans[i][j] = inv * adj[i][j]
		}
	}
	return ans, true
}

// AdaptationMatrix constructs a 3x3 matrix that adapts XYZ values
// from sourceWhite to targetWhite using the Bradford method.
func AdaptationMatrix(sourceWhite, targetWhite Vec3) Mat3 {
	src := bradford.ApplyVec(sourceWhite)
	tgt := bradford.ApplyVec(targetWhite)
	diag := Mat3{
		{tgt[0] / src[0], 0, 0},
		{0, tgt[1] / src[1], 0},
		{0, 0, tgt[2] / src[2]},
	}
	// adapt = invBradford * diag * bradford
	return invBradford.Multiply(diag.Multiply(bradford))
}

// RGBToXYZMatrix builds the matrix converting linear RGB to XYZ relative to
// white, such that RGB (1, 1, 1) maps to white. The columns are the XYZ
// values of the primaries. Returns false when the primaries are
// degenerate.
func RGBToXYZMatrix(red, green, blue Chromaticity, white Vec3) (ans Mat3, ok bool) {
	r, g, b := red.XYZ(), green.XYZ(), blue.XYZ()
	primaries := Mat3{
		{r[0], g[0], b[0]},
		{r[1], g[1], b[1]},
		{r[2], g[2], b[2]},
	}
	inv, ok := primaries.Inverted()
	if !ok {
		return ans, false
	}
	s := inv.ApplyVec(white)
	for i := range 3 {
		for j := range 3 {
			ans[i][j] = primaries[i][j] * s[j]
		}
	}
	return ans, true
}
