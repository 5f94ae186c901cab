package icc

import (
	"encoding/binary"
	"errors"
	"fmt"
)

type XYZType struct{ X, Y, Z float64 }

func (x XYZType) String() string { return fmt.Sprintf("XYZ{%.4f %.4f %.4f}", x.X, x.Y, x.Z) }

func readS15Fixed16BE(raw []byte) float64 {
	return float64(int32(binary.BigEndian.Uint32(raw))) / 65536
}

func readXYZNumber(raw []byte) XYZType {
	return XYZType{readS15Fixed16BE(raw[0:4]), readS15Fixed16BE(raw[4:8]), readS15Fixed16BE(raw[8:12])}
}

func xyzDecoder(raw []byte) (any, error) {
	if len(raw) < 20 {
		return nil, errors.New("XYZ tag too short")
	}
	if s := Signature(binary.BigEndian.Uint32(raw)); s != XYZTypeSignature {
		return nil, fmt.Errorf("expected %v but got %v", XYZTypeSignature, s)
	}
	ans := readXYZNumber(raw[8:20])
	return &ans, nil
}
