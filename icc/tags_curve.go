package icc

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// Parameters closer than this are treated as equal
const CURVE_TOLERANCE = 0.0001

// Curve1D is a tone reproduction curve mapping encoded device values to
// linear light. InverseTransform maps linear light back to encoded values.
type Curve1D interface {
	Transform(x float64) float64
	InverseTransform(x float64) float64
	String() string
}

type IdentityCurve int

type GammaCurve struct {
	gamma, inv_gamma float64
	is_one           bool
}

// PointsCurve is a sampled curve, linearly interpolated between samples.
type PointsCurve struct {
	points, reverse_lookup []float64
	max_idx                float64
}

type ParametricCurveFunction uint16

const (
	SimpleGammaFunction     ParametricCurveFunction = 0 // Y = X^g
	ConditionalZeroFunction ParametricCurveFunction = 1 // Y = (aX+b)^g for X >= -b/a, else 0
	ConditionalCFunction    ParametricCurveFunction = 2 // Y = (aX+b)^g + c for X >= -b/a, else c
	SplitFunction           ParametricCurveFunction = 3 // Y = (aX+b)^g for X >= d, else cX
	ComplexFunction         ParametricCurveFunction = 4 // Y = (aX+b)^g + e for X >= d, else cX + f
)

var para_param_counts = map[ParametricCurveFunction]int{
	SimpleGammaFunction: 1, ConditionalZeroFunction: 3, ConditionalCFunction: 4, SplitFunction: 5, ComplexFunction: 7,
}

// ParametricCurve is one of the five ICC parametric curve functions. The
// parameters not used by a function are zero.
type ParametricCurve struct {
	Function            ParametricCurveFunction
	G, A, B, C, D, E, F float64

	inv_g, inv_a, inv_c, threshold float64
}

var _ Curve1D = (*IdentityCurve)(nil)
var _ Curve1D = (*GammaCurve)(nil)
var _ Curve1D = (*PointsCurve)(nil)
var _ Curve1D = (*ParametricCurve)(nil)

func align_to_4(x int) int {
	if extra := x % 4; extra > 0 {
		x += 4 - extra
	}
	return x
}

func NewGammaCurve(gamma float64) (Curve1D, error) {
	if gamma == 0 {
		return nil, fmt.Errorf("gamma curve has zero gamma value")
	}
	if math.Abs(gamma-1) < CURVE_TOLERANCE {
		c := IdentityCurve(0)
		return &c, nil
	}
	return &GammaCurve{gamma: gamma, inv_gamma: 1 / gamma}, nil
}

// NewPointsCurve creates a sampled curve from values in [0, 1]. The
// samples must be monotonic for the inverse to be meaningful.
func NewPointsCurve(points []float64) (*PointsCurve, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("sampled curve needs at least two points, got: %d", len(points))
	}
	c := &PointsCurve{points: points, max_idx: float64(len(points) - 1)}
	reverse_lookup := make([]float64, len(points))
	for i := range reverse_lookup {
		y := float64(i) / c.max_idx
		idx := get_interval(c.points, y)
		if idx < 0 {
			if y > points[len(points)-1] {
				reverse_lookup[i] = 1
			}
			continue
		}
		y1, y2 := c.points[idx], c.points[idx+1]
		x1, x2 := float64(idx)/c.max_idx, float64(idx+1)/c.max_idx
		if y2 == y1 {
			reverse_lookup[i] = x1
			continue
		}
		reverse_lookup[i] = x1 + (y-y1)/(y2-y1)*(x2-x1)
	}
	c.reverse_lookup = reverse_lookup
	return c, nil
}

// NewParametricCurve validates the parameters of the given function.
func NewParametricCurve(function ParametricCurveFunction, params ...float64) (*ParametricCurve, error) {
	n, ok := para_param_counts[function]
	if !ok {
		return nil, fmt.Errorf("unknown parametric function type: %d", function)
	}
	if len(params) != n {
		return nil, fmt.Errorf("parametric function type %d needs %d parameters, got: %d", function, n, len(params))
	}
	var p [7]float64
	copy(p[:], params)
	c := &ParametricCurve{Function: function, G: p[0], A: p[1], B: p[2]}
	switch function {
	case ConditionalCFunction:
		c.C = p[3]
	case SplitFunction:
		c.C, c.D = p[3], p[4]
	case ComplexFunction:
		c.C, c.D, c.E, c.F = p[3], p[4], p[5], p[6]
	}
	if c.G == 0 {
		return nil, fmt.Errorf("parametric curve has zero gamma")
	}
	c.inv_g = 1 / c.G
	if function != SimpleGammaFunction {
		if c.A == 0 {
			return nil, fmt.Errorf("parametric curve type %d has zero a parameter", function)
		}
		c.inv_a = 1 / c.A
	}
	switch function {
	case ConditionalZeroFunction, ConditionalCFunction:
		c.threshold = -c.B / c.A
	case SplitFunction, ComplexFunction:
		if c.C != 0 {
			c.inv_c = 1 / c.C
		}
		c.threshold = math.Pow(max(0, c.A*c.D+c.B), c.G) + c.E
	}
	return c, nil
}

func fixed88ToFloat(raw []byte) float64 {
	return float64(binary.BigEndian.Uint16(raw)) / 256
}

func embeddedCurveDecoder(raw []byte) (Curve1D, int, error) {
	if len(raw) < 12 {
		return nil, 0, errors.New("curv tag too short")
	}
	count := int(binary.BigEndian.Uint32(raw[8:12]))
	consumed := align_to_4(12 + count*2)
	switch count {
	case 0:
		c := IdentityCurve(0)
		return &c, consumed, nil
	case 1:
		if len(raw) < 14 {
			return nil, 0, errors.New("curv tag missing gamma value")
		}
		c, err := NewGammaCurve(fixed88ToFloat(raw[12:14]))
		return c, consumed, err
	}
	if len(raw) < 12+count*2 {
		return nil, 0, errors.New("curv tag truncated")
	}
	points := make([]float64, count)
	for i := range points {
		points[i] = float64(binary.BigEndian.Uint16(raw[12+2*i:])) / 65535
	}
	c, err := NewPointsCurve(points)
	return c, consumed, err
}

func embeddedParametricCurveDecoder(raw []byte) (Curve1D, int, error) {
	const header_len = 12
	if len(raw) < header_len+4 {
		return nil, 0, errors.New("para tag too short")
	}
	function := ParametricCurveFunction(binary.BigEndian.Uint16(raw[8:10]))
	n, ok := para_param_counts[function]
	if !ok {
		return nil, 0, fmt.Errorf("unknown parametric function type: %d", function)
	}
	consumed := header_len + n*4
	if len(raw) < consumed {
		return nil, 0, errors.New("para tag too short")
	}
	params := make([]float64, n)
	for i := range params {
		params[i] = readS15Fixed16BE(raw[header_len+i*4:])
	}
	c, err := NewParametricCurve(function, params...)
	if err != nil {
		return nil, 0, err
	}
	return c, align_to_4(consumed), nil
}

// curveTagDecoder decodes either a curv or a para tag
func curveTagDecoder(raw []byte) (Curve1D, error) {
	if len(raw) < 4 {
		return nil, errors.New("curve tag too short")
	}
	var c Curve1D
	var err error
	switch s := Signature(binary.BigEndian.Uint32(raw)); s {
	case CurveTypeSignature:
		c, _, err = embeddedCurveDecoder(raw)
	case ParametricCurveTypeSignature:
		c, _, err = embeddedParametricCurveDecoder(raw)
	default:
		return nil, fmt.Errorf("unsupported tone curve type: %s", s)
	}
	return c, err
}

func (c IdentityCurve) Transform(x float64) float64        { return x }
func (c IdentityCurve) InverseTransform(x float64) float64 { return x }
func (c IdentityCurve) String() string                     { return "IdentityCurve{}" }

func (c GammaCurve) Transform(x float64) float64 {
	if x < 0 {
		return 0
	}
	return math.Pow(x, c.gamma)
}

func (c GammaCurve) InverseTransform(x float64) float64 {
	if x < 0 {
		return 0
	}
	return math.Pow(x, c.inv_gamma)
}

func (c GammaCurve) String() string { return fmt.Sprintf("GammaCurve{%f}", c.gamma) }

func sampled_value(samples []float64, max_idx float64, x float64) float64 {
	x = max(0, min(x, 1))
	idx := x * max_idx
	lof := math.Trunc(idx)
	lo := int(lof)
	if lof == idx {
		return samples[lo]
	}
	p := idx - lof
	return samples[lo] + p*(samples[lo+1]-samples[lo])
}

func get_interval(lookup []float64, y float64) int {
	for i := range len(lookup) - 1 {
		y0, y1 := lookup[i], lookup[i+1]
		if y1 < y0 {
			y0, y1 = y1, y0
		}
		if y0 <= y && y <= y1 {
			return i
		}
	}
	return -1
}

// Transform clamps its input to [0, 1]
func (c PointsCurve) Transform(v float64) float64 {
	return sampled_value(c.points, c.max_idx, v)
}

func (c PointsCurve) InverseTransform(v float64) float64 {
	return sampled_value(c.reverse_lookup, c.max_idx, v)
}

func (c PointsCurve) String() string { return fmt.Sprintf("PointsCurve{%d}", len(c.points)) }

func (c *ParametricCurve) String() string {
	return fmt.Sprintf("ParametricCurve{type: %d g: %v a: %v b: %v c: %v d: %v e: %v f: %v}",
		c.Function, c.G, c.A, c.B, c.C, c.D, c.E, c.F)
}

func (c *ParametricCurve) Transform(x float64) float64 {
	switch c.Function {
	case SimpleGammaFunction:
		if x < 0 {
			return 0
		}
		return math.Pow(x, c.G)
	case ConditionalZeroFunction, ConditionalCFunction:
		if x >= c.threshold {
			if e := c.A*x + c.B; e > 0 {
				return math.Pow(e, c.G) + c.C
			}
		}
		return c.C
	default:
		if x >= c.D {
			if e := c.A*x + c.B; e > 0 {
				return math.Pow(e, c.G) + c.E
			}
			return c.E
		}
		return c.C*x + c.F
	}
}

func (c *ParametricCurve) InverseTransform(y float64) float64 {
	switch c.Function {
	case SimpleGammaFunction:
		if y < 0 {
			return 0
		}
		return math.Pow(y, c.inv_g)
	case ConditionalZeroFunction, ConditionalCFunction:
		e := y - c.C
		if e <= 0 {
			return max(0, c.threshold)
		}
		return max(0, (math.Pow(e, c.inv_g)-c.B)*c.inv_a)
	default:
		if y < c.threshold {
			if c.C == 0 {
				return 0
			}
			return (y - c.F) * c.inv_c
		}
		if e := y - c.E; e > 0 {
			return (math.Pow(e, c.inv_g) - c.B) * c.inv_a
		}
		return 0
	}
}
