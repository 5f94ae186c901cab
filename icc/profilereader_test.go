package icc

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	seehuhn "seehuhn.de/go/icc"
)

func TestProfileReader(t *testing.T) {
	t.Run("readHeader()", func(t *testing.T) {
		t.Run("parses valid header successfully", func(t *testing.T) {
			pr := NewProfileReader(bytes.NewReader(header_bytes(4242, profile_layout{file_signature: "acsp", color_space: "RGB ", pcs: "XYZ "})))
			header := Header{}
			require.NoError(t, pr.readHeader(&header))
			assert.Equal(t, uint32(4242), header.ProfileSize)
			assert.Equal(t, Version{4, 3, 0}, header.Version)
			assert.Equal(t, DisplayClassSignature, header.DeviceClass)
			assert.Equal(t, RGBSignature, header.DataColorSpace)
			assert.Equal(t, XYZSignature, header.ProfileConnectionSpace)
			assert.Equal(t, RelativeColorimetricRenderingIntent, header.RenderingIntent)
			assert.Equal(t, time.Date(2024, 5, 17, 12, 30, 0, 0, time.UTC), header.CreatedAt)
			assert.Equal(t, SignatureFromString("IEC"), header.DeviceManufacturer)
			in_delta(t, 0.9642, header.PCSIlluminant.X, 1e-4)
			in_delta(t, 0.8249, header.PCSIlluminant.Z, 1e-4)
			assert.Equal(t, [16]byte(bytes.Repeat([]byte{7}, 16)), header.ProfileID)
			assert.Contains(t, header.String(), "'mntr'")
		})

		t.Run("returns error with invalid profile signature", func(t *testing.T) {
			pr := NewProfileReader(bytes.NewReader(header_bytes(128, profile_layout{file_signature: "bad!", color_space: "RGB ", pcs: "XYZ "})))
			header := Header{}
			err := pr.readHeader(&header)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "'bad!'")
		})

		t.Run("returns error on short header", func(t *testing.T) {
			_, err := DecodeProfile(bytes.NewReader(make([]byte, 100)))
			require.Error(t, err)
		})
	})

	t.Run("ReadProfile()", func(t *testing.T) {
		t.Run("returns an error when header parsing fails", func(t *testing.T) {
			_, err := DecodeProfile(bytes.NewReader(profile_bytes(profile_layout{file_signature: "bad!"})))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "'bad!'")
		})

		t.Run("returns an error when tag table parsing fails", func(t *testing.T) {
			data := header_bytes(132, profile_layout{file_signature: "acsp", color_space: "RGB ", pcs: "XYZ "})
			data = append(data, 0, 0, 0, 1) // tag count
			_, err := DecodeProfile(bytes.NewReader(data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "EOF")
		})

		t.Run("returns an error for tags outside the profile", func(t *testing.T) {
			data := profile_bytes(profile_layout{tags: map[string][]byte{"desc": desc_bytes("x")}})
			_, err := DecodeProfile(bytes.NewReader(data[:len(data)-8]))
			require.ErrorContains(t, err, "outside the profile")
		})

		t.Run("successfully reads profile descriptions", func(t *testing.T) {
			for _, c := range []struct {
				tag         []byte
				description string
			}{
				{desc_bytes("Display P3"), "Display P3"},
				{mluc_bytes(mluc_record{"fr", "FR", "Profil"}, mluc_record{"en", "US", "Wide gamut"}), "Wide gamut"},
				{[]byte("text\x00\x00\x00\x00Plain\x00\x00\x00"), "Plain"},
			} {
				p, err := DecodeProfile(bytes.NewReader(profile_bytes(profile_layout{tags: map[string][]byte{"desc": c.tag}})))
				require.NoError(t, err)
				d, err := p.Description()
				require.NoError(t, err)
				assert.Equal(t, c.description, d)
			}
			p, err := DecodeProfile(bytes.NewReader(profile_bytes(profile_layout{tags: map[string][]byte{"desc": xyz_bytes(1, 1, 1)}})))
			require.NoError(t, err)
			_, err = p.Description()
			require.ErrorContains(t, err, "unknown profile description type")
			_, err = p.DeviceModelDescription()
			require.Error(t, err)
		})
	})
}

func TestMatrixShaperProfile(t *testing.T) {
	p, err := DecodeProfile(bytes.NewReader(profile_bytes(profile_layout{tags: srgb_like_tags()})))
	require.NoError(t, err)
	require.Equal(t, 9, p.TagTable.Len())
	require.True(t, p.IsMatrixShaper())
	assert.Equal(t, SRGBProfile, p.WellKnownProfile())
	c, err := p.Copyright()
	require.NoError(t, err)
	assert.Equal(t, "No copyright", c)
	wtpt, err := p.MediaWhitePoint()
	require.NoError(t, err)
	in_delta(t, 0.9642, wtpt.X, 1e-4)

	s, err := p.MatrixShaper()
	require.NoError(t, err)
	x, y, z := s.ToPCS(1, 1, 1)
	in_delta(t, 0.9642, x, 1e-3)
	in_delta(t, 1, y, 1e-3)
	in_delta(t, 0.8249, z, 1e-3)
	x, y, z = s.ToPCS(0, 0, 0)
	assert.Equal(t, []float64{0, 0, 0}, []float64{x, y, z})

	r, g, b := s.FromPCS(s.ToPCS(0.2, 0.5, 0.9))
	in_delta_slice(t, []float64{0.2, 0.5, 0.9}, []float64{r, g, b}, 1e-4)
	assert.True(t, strings.HasPrefix(s.String(), "MatrixShaper{"))
}

func TestNonMatrixShaperProfiles(t *testing.T) {
	check := func(t *testing.T, s profile_layout, msg string) {
		t.Helper()
		p, err := DecodeProfile(bytes.NewReader(profile_bytes(s)))
		require.NoError(t, err)
		_, err = p.MatrixShaper()
		require.ErrorIs(t, err, ErrNotMatrixShaper)
		require.ErrorContains(t, err, msg)
	}
	t.Run("LUT based", func(t *testing.T) {
		check(t, profile_layout{tags: map[string][]byte{"A2B0": []byte("mAB \x00\x00\x00\x00"), "desc": desc_bytes("lut")}}, "LUT based")
	})
	t.Run("missing tags", func(t *testing.T) {
		tags := srgb_like_tags()
		delete(tags, "gTRC")
		check(t, profile_layout{tags: tags}, "no colorant and TRC tags")
	})
	t.Run("gray", func(t *testing.T) {
		check(t, profile_layout{color_space: "GRAY", tags: srgb_like_tags()}, "'GRAY'")
	})
	t.Run("Lab PCS", func(t *testing.T) {
		check(t, profile_layout{pcs: "Lab ", tags: srgb_like_tags()}, "'Lab '")
	})
	t.Run("singular matrix", func(t *testing.T) {
		tags := srgb_like_tags()
		tags["gXYZ"] = tags["rXYZ"]
		p, err := DecodeProfile(bytes.NewReader(profile_bytes(profile_layout{tags: tags})))
		require.NoError(t, err)
		_, err = p.MatrixShaper()
		require.ErrorContains(t, err, "singular")
	})
	t.Run("bad curve", func(t *testing.T) {
		tags := srgb_like_tags()
		tags["bTRC"] = para_bytes(9, 1)
		p, err := DecodeProfile(bytes.NewReader(profile_bytes(profile_layout{tags: tags})))
		require.NoError(t, err)
		_, err = p.MatrixShaper()
		require.ErrorContains(t, err, "'bTRC'")
	})
}

func TestBuiltinSRGB(t *testing.T) {
	p := SRGB()
	require.Same(t, p, SRGB())
	d, err := p.Description()
	require.NoError(t, err)
	assert.Equal(t, BuiltinSRGBDescription, d)
	assert.Equal(t, SRGBProfile, p.WellKnownProfile())
	s, err := p.MatrixShaper()
	require.NoError(t, err)
	x, y, z := s.ToPCS(1, 1, 1)
	in_delta(t, 0.9642, x, 1e-5)
	in_delta(t, 1, y, 1e-5)
	in_delta(t, 0.8249, z, 1e-5)
	// the well known D50 adapted sRGB colorants
	m := s.Matrix()
	in_delta_slice(t, []float64{0.4361, 0.2225, 0.0139}, []float64{m[0][0], m[1][0], m[2][0]}, 2e-4)
	in_delta_slice(t, []float64{0.3851, 0.7169, 0.0971}, []float64{m[0][1], m[1][1], m[2][1]}, 2e-4)
	in_delta_slice(t, []float64{0.1431, 0.0606, 0.7141}, []float64{m[0][2], m[1][2], m[2][2]}, 2e-4)
	assert.Equal(t, XYZSignature, p.Header.ProfileConnectionSpace)
}

func TestThirdPartySRGBProfile(t *testing.T) {
	sp, err := seehuhn.Decode(seehuhn.SRGBv2Profile)
	require.NoError(t, err)
	require.Equal(t, seehuhn.RGBSpace, sp.ColorSpace)

	p, err := DecodeProfile(bytes.NewReader(seehuhn.SRGBv2Profile))
	require.NoError(t, err)
	assert.Equal(t, RGBSignature, p.Header.DataColorSpace)
	s, err := p.MatrixShaper()
	require.NoError(t, err)
	x, y, z := s.ToPCS(1, 1, 1)
	in_delta(t, 0.9642, x, 0.01)
	in_delta(t, 1, y, 0.01)
	in_delta(t, 0.8249, z, 0.01)
	bx, by, bz := s.ToPCS(0, 0, 1)
	ex, ey, ez := SRGB().shaper.ToPCS(0, 0, 1)
	in_delta_slice(t, []float64{ex, ey, ez}, []float64{bx, by, bz}, 0.01)
}

func TestSignature(t *testing.T) {
	assert.Equal(t, "'acsp'", ProfileFileSignature.String())
	assert.Equal(t, RGBSignature, SignatureFromString("RGB"))
	assert.Equal(t, "'ab  '", Signature(0x61620000).String())
	assert.Equal(t, "Relative colorimetric", RelativeColorimetricRenderingIntent.String())
	assert.Equal(t, "Display P3", DisplayP3Profile.String())
	assert.Equal(t, AdobeRGBProfile, WellKnownProfileFromDescription("Adobe RGB (1998)"))
}
