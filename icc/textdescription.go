package icc

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"unicode/utf16"
)

// DescriptionTag is the ICC v2 textDescriptionType
type DescriptionTag struct {
	ASCII   string
	Unicode string
	Script  string
}

func descDecoder(data []byte) (*DescriptionTag, error) {
	desc := &DescriptionTag{}
	if len(data) < 12 {
		return nil, errors.New("desc tag too short")
	}
	if s := Signature(binary.BigEndian.Uint32(data)); s != DescSignature {
		return nil, fmt.Errorf("expected %v but got %v", DescSignature, s)
	}
	asciiCount := int(binary.BigEndian.Uint32(data[8:12]))
	data = data[12:]
	if asciiCount > len(data) {
		return nil, errors.New("desc tag ASCII text truncated")
	}
	desc.ASCII = string(bytes.TrimRight(data[:asciiCount], "\x00"))
	data = data[asciiCount:]

	// The Unicode and ScriptCode parts are often missing or garbage in the
	// wild, stop quietly at the first inconsistency
	if len(data) < 8 {
		return desc, nil
	}
	unicodeCount := int(binary.BigEndian.Uint32(data[4:8]))
	data = data[8:]
	if unicodeCount*2 > len(data) {
		return desc, nil
	}
	u := make([]uint16, unicodeCount)
	for i := range u {
		u[i] = binary.BigEndian.Uint16(data[2*i:])
	}
	for len(u) > 0 && u[len(u)-1] == 0 {
		u = u[:len(u)-1]
	}
	desc.Unicode = string(utf16.Decode(u))
	data = data[unicodeCount*2:]

	if len(data) < 3 {
		return desc, nil
	}
	scriptCount := min(int(data[2]), 67, len(data)-3)
	desc.Script = string(bytes.TrimRight(data[3:3+scriptCount], "\x00"))
	return desc, nil
}

func textDecoder(data []byte) (string, error) {
	if len(data) < 8 {
		return "", errors.New("text tag too short")
	}
	if s := Signature(binary.BigEndian.Uint32(data)); s != TextTagSignature {
		return "", fmt.Errorf("expected %v but got %v", TextTagSignature, s)
	}
	return string(bytes.TrimRight(data[8:], "\x00")), nil
}
