package perceptualcolor

import (
	"fmt"
	"math"
)

// PolarPoint is a point in polar coordinates. The radial is never
// negative and the angle is always in [0, 360).
type PolarPoint struct {
	radial, angle_degree float64
}

// NewPolarPoint normalizes its arguments: a negative radial is made
// positive by turning the angle by 180°.
func NewPolarPoint(radial, angle_degree float64) PolarPoint {
	if radial < 0 {
		return PolarPoint{-radial, NormalizedAngleDegree(angle_degree + 180)}
	}
	return PolarPoint{radial, NormalizedAngleDegree(angle_degree)}
}

// PolarPointFromCartesian converts from Cartesian coordinates. The origin
// gets the angle 0.
func PolarPointFromCartesian(x, y float64) PolarPoint {
	r := math.Hypot(x, y)
	if r == 0 {
		return PolarPoint{}
	}
	return PolarPoint{r, NormalizedAngleDegree(math.Atan2(y, x) * 180 / math.Pi)}
}

func (p PolarPoint) Radial() float64      { return p.radial }
func (p PolarPoint) AngleDegree() float64 { return p.angle_degree }

func (p PolarPoint) ToCartesian() (x, y float64) {
	s, c := math.Sincos(p.angle_degree * math.Pi / 180)
	return p.radial * c, p.radial * s
}

// Equal compares exactly, except that the angle is ignored for a zero
// radial.
func (p PolarPoint) Equal(o PolarPoint) bool {
	return p.radial == o.radial && (p.angle_degree == o.angle_degree || p.radial == 0)
}

func (p PolarPoint) String() string {
	return fmt.Sprintf("PolarPoint{radial: %v angle: %v°}", p.radial, p.angle_degree)
}
