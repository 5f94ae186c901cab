package icc

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ = fmt.Print

func TestCurveDecoder(t *testing.T) {
	t.Run("IdentityCurve", func(t *testing.T) {
		val, err := curveTagDecoder(curv_bytes())
		require.NoError(t, err)
		q := IdentityCurve(0)
		require.IsType(t, &q, val)
	})
	t.Run("GammaOneIsIdentity", func(t *testing.T) {
		val, err := curveTagDecoder(curv_bytes(1.0))
		require.NoError(t, err)
		_, ok := val.(*IdentityCurve)
		require.True(t, ok)
	})
	t.Run("GammaCurve", func(t *testing.T) {
		val, err := curveTagDecoder(curv_bytes(2.2))
		require.NoError(t, err)
		require.IsType(t, &GammaCurve{}, val)
		in_delta(t, 0.5, val.InverseTransform(val.Transform(0.5)), 1e-12)
		in_delta(t, 563.0/256, val.(*GammaCurve).gamma, 1e-12)
		assert.Equal(t, 0., val.Transform(-1))
	})
	t.Run("PointsCurve", func(t *testing.T) {
		val, err := curveTagDecoder(curv_bytes(0.1, 0.2, 0.3))
		require.NoError(t, err)
		require.IsType(t, &PointsCurve{}, val)
		c := val.(*PointsCurve)
		in_delta_slice(t, []float64{0.1, 0.2, 0.3}, c.points, 0.0001)
		in_delta(t, 0.15, c.Transform(0.25), 0.0001)
		in_delta(t, 0.3, c.Transform(2), 0.0001)
	})
	t.Run("TooShort", func(t *testing.T) {
		_, _, err := embeddedCurveDecoder(make([]byte, 11))
		assert.ErrorContains(t, err, "curv tag too short")
	})
	t.Run("MissingGamma", func(t *testing.T) {
		raw := []byte("curv\x00\x00\x00\x00" +
			"\x00\x00\x00\x01") // count = 1 (but no gamma value)
		_, err := curveTagDecoder(raw)
		assert.ErrorContains(t, err, "curv tag missing gamma value")
	})
	t.Run("TruncatedPoints", func(t *testing.T) {
		raw := []byte("curv\x00\x00\x00\x00" +
			"\x00\x00\x00\x02" + // count = 2
			"\x00\x10") // missing second uint16
		_, err := curveTagDecoder(raw)
		assert.ErrorContains(t, err, "curv tag truncated")
	})
	t.Run("UnknownType", func(t *testing.T) {
		_, err := curveTagDecoder([]byte("sf32\x00\x00\x00\x00"))
		assert.ErrorContains(t, err, "unsupported tone curve type")
	})
}

func TestPointsCurveInverse(t *testing.T) {
	pts := make([]float64, 256)
	for i := range pts {
		x := float64(i) / 255
		pts[i] = x * x
	}
	c, err := NewPointsCurve(pts)
	require.NoError(t, err)
	for _, x := range []float64{0, 0.1, 0.5, 0.9, 1} {
		in_delta(t, x, c.InverseTransform(c.Transform(x)), 0.01)
	}
	_, err = NewPointsCurve([]float64{1})
	require.Error(t, err)
}

func TestParametricCurveDecoder(t *testing.T) {
	w := func(t *testing.T, q uint16, expect_error bool, params ...float64) Curve1D {
		t.Helper()
		val, err := curveTagDecoder(para_bytes(q, params...))
		if expect_error {
			require.Error(t, err)
		} else {
			require.NoError(t, err)
		}
		return val
	}
	roundtrip := func(t *testing.T, c Curve1D) {
		t.Helper()
		for _, x := range []float64{0, 0.01, 0.04, 0.1, 0.5, 0.75, 1} {
			in_delta(t, x, c.InverseTransform(c.Transform(x)), 0.0001)
		}
	}
	t.Run("SimpleGamma", func(t *testing.T) {
		c := w(t, 0, false, 2.2)
		in_delta(t, 0.217637, c.Transform(0.5), 1e-5)
		roundtrip(t, c)
		w(t, 0, true, 0)
	})
	t.Run("ConditionalZero", func(t *testing.T) {
		c := w(t, 1, false, 2.2, 1.2, -0.2)
		assert.Equal(t, 0., c.Transform(0.1))
		in_delta(t, 0.5, c.InverseTransform(c.Transform(0.5)), 0.0001)
		w(t, 1, true, 2.2, 0, 0.1)
	})
	t.Run("ConditionalC", func(t *testing.T) {
		c := w(t, 2, false, 2.2, 1, 0, 0.1)
		in_delta(t, 0.1, c.Transform(0), 1e-4)
		in_delta(t, 0.5, c.InverseTransform(c.Transform(0.5)), 0.0001)
	})
	t.Run("SRGB", func(t *testing.T) {
		c := w(t, 3, false, 2.4, 1/1.055, 0.055/1.055, 1/12.92, 0.04045)
		in_delta(t, 0.214041, c.Transform(0.5), 1e-4)
		in_delta(t, 0.04/12.92, c.Transform(0.04), 1e-5)
		in_delta(t, 1, c.Transform(1), 1e-4)
		roundtrip(t, c)
	})
	t.Run("Complex", func(t *testing.T) {
		c := w(t, 4, false, 2.4, 1/1.055, 0.055/1.055, 1/12.92, 0.04045, 0, 0)
		roundtrip(t, c)
	})
	t.Run("Errors", func(t *testing.T) {
		w(t, 7, true, 1)
		w(t, 3, true, 2.4, 1/1.055) // too few parameters
		_, _, err := embeddedParametricCurveDecoder(make([]byte, 8))
		assert.ErrorContains(t, err, "para tag too short")
	})
}

func TestBuiltinSRGBCurve(t *testing.T) {
	c := NewSRGBCurve()
	for _, tc := range []struct{ encoded, linear float64 }{
		{0, 0}, {0.04045, 0.0031308}, {0.5, 0.2140411}, {0.46633, 0.1842}, {1, 1},
	} {
		in_delta(t, tc.linear, c.Transform(tc.encoded), 1e-4)
		in_delta(t, tc.encoded, c.InverseTransform(tc.linear), 1e-4)
	}
}
