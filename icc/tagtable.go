package icc

import (
	"encoding/binary"
	"fmt"

	"github.com/kovidgoyal/perceptualcolor/colorconv"
)

var _ = fmt.Print

type TagTable struct {
	entries map[Signature][]byte
}

func emptyTagTable() TagTable {
	return TagTable{
		entries: make(map[Signature][]byte),
	}
}

func (t *TagTable) add(sig Signature, data []byte) {
	t.entries[sig] = data
}

func (t *TagTable) Has(sig Signature) bool {
	_, ok := t.entries[sig]
	return ok
}

// Raw returns the undecoded tag data, shared with the table.
func (t *TagTable) Raw(sig Signature) []byte {
	return t.entries[sig]
}

func (t *TagTable) Len() int { return len(t.entries) }

func (t *TagTable) getDescription(s Signature) (string, error) {
	data, ok := t.entries[s]
	if !ok {
		return "", fmt.Errorf("no %s tag in ICC profile", s)
	}
	if len(data) < 4 {
		return "", fmt.Errorf("%s tag too short", s)
	}

	switch sig := Signature(binary.BigEndian.Uint32(data)); sig {
	case DescSignature:
		desc, err := descDecoder(data)
		if err != nil {
			return "", err
		}
		if desc.ASCII == "" {
			return desc.Unicode, nil
		}
		return desc.ASCII, nil

	case MultiLocalisedUnicodeSignature:
		mluc, err := parseMultiLocalisedUnicode(data)
		if err != nil {
			return "", err
		}
		return mluc.bestString(), nil

	case TextTagSignature:
		return textDecoder(data)

	default:
		return "", fmt.Errorf("unknown profile description type (%v)", sig)
	}
}

func (t *TagTable) getXYZ(s Signature) (XYZType, error) {
	data, ok := t.entries[s]
	if !ok {
		return XYZType{}, fmt.Errorf("no %s tag in ICC profile", s)
	}
	x, err := xyzDecoder(data)
	if err != nil {
		return XYZType{}, fmt.Errorf("failed to decode %s tag: %w", s, err)
	}
	return *(x.(*XYZType)), nil
}

func (t *TagTable) load_curve_tag(s Signature) (Curve1D, error) {
	data, ok := t.entries[s]
	if !ok {
		return nil, fmt.Errorf("no %s tag in ICC profile", s)
	}
	c, err := curveTagDecoder(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s tag: %w", s, err)
	}
	return c, nil
}

// load_rgb_matrix reads the colorant tags, the columns of the returned
// matrix are the PCS XYZ values of the red, green and blue primaries.
func (t *TagTable) load_rgb_matrix() (m colorconv.Mat3, err error) {
	for col, s := range []Signature{RedColorantTagSignature, GreenColorantTagSignature, BlueColorantTagSignature} {
		xyz, err := t.getXYZ(s)
		if err != nil {
			return m, err
		}
		m[0][col], m[1][col], m[2][col] = xyz.X, xyz.Y, xyz.Z
	}
	return
}
