package icc

import (
	"errors"
	"fmt"

	"github.com/kovidgoyal/perceptualcolor/colorconv"
)

// MatrixShaper converts between device RGB and PCS XYZ (D50) using one
// tone curve per channel and a 3x3 matrix. It is immutable and safe for
// concurrent use.
type MatrixShaper struct {
	curves           [3]Curve1D
	to_pcs, from_pcs colorconv.Mat3
}

// NewMatrixShaper creates a shaper from the tone curves and the matrix
// converting linear RGB to PCS XYZ.
func NewMatrixShaper(red, green, blue Curve1D, to_pcs colorconv.Mat3) (*MatrixShaper, error) {
	if red == nil || green == nil || blue == nil {
		return nil, errors.New("matrix shaper needs three tone curves")
	}
	inv, ok := to_pcs.Inverted()
	if !ok {
		return nil, fmt.Errorf("the colorant matrix is singular: %v", to_pcs)
	}
	return &MatrixShaper{curves: [3]Curve1D{red, green, blue}, to_pcs: to_pcs, from_pcs: inv}, nil
}

func (m *MatrixShaper) Matrix() colorconv.Mat3 { return m.to_pcs }
func (m *MatrixShaper) Curves() [3]Curve1D     { return m.curves }

// Linearize applies the tone curves to encoded device values.
func (m *MatrixShaper) Linearize(r, g, b float64) (float64, float64, float64) {
	return m.curves[0].Transform(r), m.curves[1].Transform(g), m.curves[2].Transform(b)
}

// Encode applies the inverse tone curves to linear device values.
func (m *MatrixShaper) Encode(r, g, b float64) (float64, float64, float64) {
	return m.curves[0].InverseTransform(r), m.curves[1].InverseTransform(g), m.curves[2].InverseTransform(b)
}

func (m *MatrixShaper) LinearToPCS(r, g, b float64) (x, y, z float64) {
	return m.to_pcs.Apply(r, g, b)
}

func (m *MatrixShaper) PCSToLinear(x, y, z float64) (r, g, b float64) {
	return m.from_pcs.Apply(x, y, z)
}

// ToPCS converts encoded device RGB to PCS XYZ.
func (m *MatrixShaper) ToPCS(r, g, b float64) (x, y, z float64) {
	return m.LinearToPCS(m.Linearize(r, g, b))
}

// FromPCS converts PCS XYZ to encoded device RGB. Values outside the
// device gamut are not clipped by the matrix but the tone curves may
// clamp them.
func (m *MatrixShaper) FromPCS(x, y, z float64) (r, g, b float64) {
	return m.Encode(m.PCSToLinear(x, y, z))
}

func (m *MatrixShaper) String() string {
	return fmt.Sprintf("MatrixShaper{curves: [%s %s %s] matrix: %v}", m.curves[0], m.curves[1], m.curves[2], m.to_pcs)
}
