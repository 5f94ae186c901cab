package icc

import (
	"errors"
	"fmt"
)

var _ = fmt.Println

type WellKnownProfile int

const (
	UnknownProfile WellKnownProfile = iota
	SRGBProfile
	AdobeRGBProfile
	PhotoProProfile
	DisplayP3Profile
)

func WellKnownProfileFromDescription(x string) WellKnownProfile {
	switch x {
	case "sRGB IEC61966-2.1", "sRGB IEC61966-2-1 black scaled", "sRGB built-in", "sRGB":
		return SRGBProfile
	case "Adobe RGB (1998)":
		return AdobeRGBProfile
	case "Display P3":
		return DisplayP3Profile
	case "ProPhoto RGB":
		return PhotoProProfile
	default:
		return UnknownProfile
	}
}

func (p WellKnownProfile) String() string {
	switch p {
	case SRGBProfile:
		return "sRGB IEC61966-2.1"
	case AdobeRGBProfile:
		return "Adobe RGB (1998)"
	case PhotoProProfile:
		return "ProPhoto RGB"
	case DisplayP3Profile:
		return "Display P3"
	default:
		return "Unknown Profile"
	}
}

var ErrNotMatrixShaper = errors.New("only matrix/TRC RGB profiles are supported")

type Profile struct {
	Header   Header
	TagTable TagTable

	// set for profiles constructed in memory rather than read
	description string
	shaper      *MatrixShaper
}

func newProfile() *Profile {
	return &Profile{
		TagTable: emptyTagTable(),
	}
}

func (p *Profile) Description() (string, error) {
	if p.description != "" {
		return p.description, nil
	}
	return p.TagTable.getDescription(ProfileDescriptionTagSignature)
}

func (p *Profile) DeviceManufacturerDescription() (string, error) {
	return p.TagTable.getDescription(DeviceManufacturerDescriptionSignature)
}

func (p *Profile) DeviceModelDescription() (string, error) {
	return p.TagTable.getDescription(DeviceModelDescriptionSignature)
}

func (p *Profile) Copyright() (string, error) {
	return p.TagTable.getDescription(CopyrightTagSignature)
}

func (p *Profile) WellKnownProfile() WellKnownProfile {
	model, err := p.DeviceModelDescription()
	if err == nil && model == "IEC 61966-2-1 Default RGB Colour Space - sRGB" {
		return SRGBProfile
	}
	if d, err := p.Description(); err == nil {
		return WellKnownProfileFromDescription(d)
	}
	return UnknownProfile
}

// MediaWhitePoint falls back to the PCS illuminant when the profile has no
// wtpt tag
func (p *Profile) MediaWhitePoint() (XYZType, error) {
	if !p.TagTable.Has(MediaWhitePointTagSignature) {
		return p.Header.PCSIlluminant, nil
	}
	return p.TagTable.getXYZ(MediaWhitePointTagSignature)
}

// IsMatrixShaper reports whether the profile has the tags of a three
// component matrix/TRC profile. A profile may have both these tags and LUT
// based tags, in which case the matrix/TRC tags are used.
func (p *Profile) IsMatrixShaper() bool {
	if p.shaper != nil {
		return true
	}
	for _, s := range []Signature{
		RedColorantTagSignature, GreenColorantTagSignature, BlueColorantTagSignature,
		RedTRCTagSignature, GreenTRCTagSignature, BlueTRCTagSignature} {
		if !p.TagTable.Has(s) {
			return false
		}
	}
	return true
}

// MatrixShaper builds the transform between device RGB and the XYZ profile
// connection space. See section F.3 of ICC.1-2022-05 for how the tags are
// composed.
func (p *Profile) MatrixShaper() (*MatrixShaper, error) {
	if p.shaper != nil {
		return p.shaper, nil
	}
	if p.Header.DataColorSpace != RGBSignature {
		return nil, fmt.Errorf("%w: the data color space is %s", ErrNotMatrixShaper, p.Header.DataColorSpace)
	}
	if p.Header.ProfileConnectionSpace != XYZSignature {
		return nil, fmt.Errorf("%w: the profile connection space is %s", ErrNotMatrixShaper, p.Header.ProfileConnectionSpace)
	}
	if !p.IsMatrixShaper() {
		if p.TagTable.Has(AToB0TagSignature) {
			return nil, fmt.Errorf("%w: the profile is LUT based", ErrNotMatrixShaper)
		}
		return nil, fmt.Errorf("%w: the profile has no colorant and TRC tags", ErrNotMatrixShaper)
	}
	var curves [3]Curve1D
	var err error
	for i, s := range []Signature{RedTRCTagSignature, GreenTRCTagSignature, BlueTRCTagSignature} {
		if curves[i], err = p.TagTable.load_curve_tag(s); err != nil {
			return nil, err
		}
	}
	m, err := p.TagTable.load_rgb_matrix()
	if err != nil {
		return nil, err
	}
	return NewMatrixShaper(curves[0], curves[1], curves[2], m)
}
