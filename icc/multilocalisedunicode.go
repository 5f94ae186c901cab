package icc

import (
	"encoding/binary"
	"errors"
	"fmt"
	"unicode/utf16"
)

type languageCountry struct {
	language [2]byte
	country  [2]byte
}

func (lc languageCountry) String() string {
	return fmt.Sprintf("%c%c_%c%c", lc.language[0], lc.language[1], lc.country[0], lc.country[1])
}

type MultiLocalisedUnicode struct {
	// entries in the order they appear in the tag
	order   []languageCountry
	entries map[languageCountry]string
}

func (mluc *MultiLocalisedUnicode) getAnyString() string {
	if len(mluc.order) == 0 {
		return ""
	}
	return mluc.entries[mluc.order[0]]
}

func (mluc *MultiLocalisedUnicode) getString(language, country [2]byte) string {
	return mluc.entries[languageCountry{language, country}]
}

func (mluc *MultiLocalisedUnicode) getStringForLanguage(language [2]byte) string {
	for _, lc := range mluc.order {
		if lc.language == language {
			return mluc.entries[lc]
		}
	}
	return ""
}

// bestString prefers en_US, then any English, then the first entry
func (mluc *MultiLocalisedUnicode) bestString() string {
	en := [2]byte{'e', 'n'}
	if s := mluc.getString(en, [2]byte{'U', 'S'}); s != "" {
		return s
	}
	if s := mluc.getStringForLanguage(en); s != "" {
		return s
	}
	return mluc.getAnyString()
}

func (mluc *MultiLocalisedUnicode) setString(language, country [2]byte, text string) {
	lc := languageCountry{language, country}
	if _, exists := mluc.entries[lc]; !exists {
		mluc.order = append(mluc.order, lc)
	}
	mluc.entries[lc] = text
}

func parseMultiLocalisedUnicode(data []byte) (*MultiLocalisedUnicode, error) {
	result := &MultiLocalisedUnicode{entries: make(map[languageCountry]string)}
	const header_len = 16
	if len(data) < header_len {
		return nil, errors.New("mluc tag too short")
	}
	if s := Signature(binary.BigEndian.Uint32(data)); s != MultiLocalisedUnicodeSignature {
		return nil, fmt.Errorf("expected %v but got %v", MultiLocalisedUnicodeSignature, s)
	}
	recordCount := int(binary.BigEndian.Uint32(data[8:12]))
	recordSize := int(binary.BigEndian.Uint32(data[12:16]))
	if recordSize < 12 {
		return nil, fmt.Errorf("invalid mluc record size: %d", recordSize)
	}
	for i := range recordCount {
		rec := header_len + i*recordSize
		if rec+12 > len(data) {
			return nil, fmt.Errorf("failed to read multilang record header: record %d exceeds tag data length", i)
		}
		var language, country [2]byte
		copy(language[:], data[rec:rec+2])
		copy(country[:], data[rec+2:rec+4])
		length := uint64(binary.BigEndian.Uint32(data[rec+4:]))
		offset := uint64(binary.BigEndian.Uint32(data[rec+8:]))
		if offset+length > uint64(len(data)) {
			return nil, fmt.Errorf("record exceeds tag data length")
		}
		raw := data[offset : offset+length]
		u := make([]uint16, len(raw)/2)
		for j := range u {
			u[j] = binary.BigEndian.Uint16(raw[2*j:])
		}
		result.setString(language, country, string(utf16.Decode(u)))
	}
	return result, nil
}
