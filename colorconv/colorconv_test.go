package colorconv

import (
	"math"
	"testing"
)

func nearlyEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

var tableCases = []struct {
	name string
	L    float64
	a    float64
	b    float64
}{
	{"neutral gray", 50, 0, 0},
	{"vivid warm", 60, 80, 60},
	{"vivid cyan-ish", 75, -70, 70},
	{"light slightly red", 90, 30, 0},
	{"dark saturated green-blue", 20, 80, -60},
	{"very dark saturated", 5, 60, -40},
	{"very dark near linear segment", 2, 10, -10},
	{"very bright saturated", 99, -80, 90},
}

func TestLabXYZ_Roundtrip_TableDriven(t *testing.T) {
	epsL := 1e-9
	epsAB := 1e-8 // a,b can be slightly more sensitive

	for _, tc := range tableCases {
		t.Run(tc.name+"/Lab->XYZ->Lab", func(t *testing.T) {
			X, Y, Z := LabToXYZ_D50(tc.L, tc.a, tc.b)
			L2, a2, b2 := XYZToLab_D50(X, Y, Z)

			if !nearlyEqual(tc.L, L2, epsL) || !nearlyEqual(tc.a, a2, epsAB) || !nearlyEqual(tc.b, b2, epsAB) {
				t.Fatalf("Roundtrip mismatch for %s: in Lab=(%.9f,%.9f,%.9f) out Lab=(%.9f,%.9f,%.9f)",
					tc.name, tc.L, tc.a, tc.b, L2, a2, b2)
			}
		})
	}
}

func TestWhiteIsL100(t *testing.T) {
	L, a, b := XYZToLab_D50(WhiteD50[0], WhiteD50[1], WhiteD50[2])
	if !nearlyEqual(L, 100, 1e-9) || !nearlyEqual(a, 0, 1e-9) || !nearlyEqual(b, 0, 1e-9) {
		t.Fatalf("D50 white is not L=100 achromatic: (%v, %v, %v)", L, a, b)
	}
}

func TestAdaptationMatrix(t *testing.T) {
	adapt := AdaptationMatrix(WhiteD65, WhiteD50)
	got := adapt.ApplyVec(WhiteD65)
	for i := range 3 {
		if !nearlyEqual(got[i], WhiteD50[i], 1e-5) {
			t.Fatalf("D65 white does not adapt to D50: %v", got)
		}
	}
	same := AdaptationMatrix(WhiteD50, WhiteD50)
	for i := range 3 {
		for j := range 3 {
			if !nearlyEqual(same[i][j], IdentityMat3[i][j], 1e-5) {
				t.Fatalf("adapting a white to itself is not the identity: %v", same)
			}
		}
	}
}

func TestRGBToXYZMatrix(t *testing.T) {
	m, ok := RGBToXYZMatrix(Rec709Red, Rec709Green, Rec709Blue, WhiteD65)
	if !ok {
		t.Fatal("Rec. 709 primaries reported as degenerate")
	}
	// well known sRGB -> XYZ (D65) matrix
	expected := Mat3{
		{0.4124, 0.3576, 0.1805},
		{0.2126, 0.7152, 0.0722},
		{0.0193, 0.1192, 0.9505},
	}
	for i := range 3 {
		for j := range 3 {
			if !nearlyEqual(m[i][j], expected[i][j], 2e-4) {
				t.Fatalf("unexpected matrix entry [%d][%d]: %v != %v", i, j, m[i][j], expected[i][j])
			}
		}
	}
	x, y, z := m.Apply(1, 1, 1)
	if !nearlyEqual(x, WhiteD65[0], 1e-12) || !nearlyEqual(y, 1, 1e-12) || !nearlyEqual(z, WhiteD65[2], 1e-12) {
		t.Fatalf("RGB white does not map to the white point: (%v, %v, %v)", x, y, z)
	}
	if _, ok := RGBToXYZMatrix(Rec709Red, Rec709Red, Rec709Blue, WhiteD65); ok {
		t.Fatal("identical primaries must be degenerate")
	}
}

func TestInverted(t *testing.T) {
	m := Mat3{{2, 0, 1}, {1, 3, 0}, {0, 1, 4}}
	inv, ok := m.Inverted()
	if !ok {
		t.Fatal("invertible matrix reported as singular")
	}
	p := m.Multiply(inv)
	for i := range 3 {
		for j := range 3 {
			if !nearlyEqual(p[i][j], IdentityMat3[i][j], 1e-12) {
				t.Fatalf("m * inverse(m) is not the identity: %v", p)
			}
		}
	}
	if _, ok := (Mat3{{1, 2, 3}, {2, 4, 6}, {0, 0, 1}}).Inverted(); ok {
		t.Fatal("singular matrix reported as invertible")
	}
}
