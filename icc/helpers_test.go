package icc

import (
	"bytes"
	"encoding/binary"
	"math"
	"sort"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
)

func encodeS15Fixed16BE(value float64) []byte {
	result := make([]byte, 4)
	binary.BigEndian.PutUint32(result, uint32(int32(math.Round(value*65536))))
	return result
}

func pad4(b *bytes.Buffer) {
	if extra := b.Len() % 4; extra != 0 {
		b.Write(bytes.Repeat([]byte{0}, 4-extra))
	}
}

func curv_bytes(params ...float64) []byte {
	b := bytes.NewBuffer([]byte("curv\x00\x00\x00\x00"))
	_ = binary.Write(b, binary.BigEndian, uint32(len(params)))
	if len(params) == 1 {
		_ = binary.Write(b, binary.BigEndian, uint16(math.Round(params[0]*256)))
	} else {
		for _, p := range params {
			_ = binary.Write(b, binary.BigEndian, uint16(math.Round(p*65535)))
		}
	}
	pad4(b)
	return b.Bytes()
}

func para_bytes(q uint16, params ...float64) []byte {
	b := bytes.NewBuffer([]byte("para\x00\x00\x00\x00"))
	_ = binary.Write(b, binary.BigEndian, q)
	b.WriteString("\x00\x00")
	for _, p := range params {
		b.Write(encodeS15Fixed16BE(p))
	}
	pad4(b)
	return b.Bytes()
}

func xyz_bytes(x, y, z float64) []byte {
	b := bytes.NewBuffer([]byte("XYZ \x00\x00\x00\x00"))
	b.Write(encodeS15Fixed16BE(x))
	b.Write(encodeS15Fixed16BE(y))
	b.Write(encodeS15Fixed16BE(z))
	return b.Bytes()
}

func desc_bytes(ascii string) []byte {
	b := bytes.NewBuffer([]byte("desc\x00\x00\x00\x00"))
	_ = binary.Write(b, binary.BigEndian, uint32(len(ascii)+1))
	b.WriteString(ascii)
	b.WriteByte(0)
	// empty Unicode and ScriptCode parts
	b.Write(make([]byte, 4+4+2+1+67))
	pad4(b)
	return b.Bytes()
}

type mluc_record struct {
	lang, country string
	text          string
}

func mluc_bytes(records ...mluc_record) []byte {
	b := bytes.NewBuffer([]byte("mluc\x00\x00\x00\x00"))
	_ = binary.Write(b, binary.BigEndian, uint32(len(records)))
	_ = binary.Write(b, binary.BigEndian, uint32(12))
	offset := 16 + 12*len(records)
	var strings bytes.Buffer
	for _, r := range records {
		u := utf16.Encode([]rune(r.text))
		b.WriteString(r.lang)
		b.WriteString(r.country)
		_ = binary.Write(b, binary.BigEndian, uint32(2*len(u)))
		_ = binary.Write(b, binary.BigEndian, uint32(offset+strings.Len()))
		_ = binary.Write(&strings, binary.BigEndian, u)
	}
	b.Write(strings.Bytes())
	pad4(b)
	return b.Bytes()
}

type profile_layout struct {
	file_signature string
	color_space    string
	pcs            string
	tags           map[string][]byte
}

func header_bytes(size int, s profile_layout) []byte {
	b := &bytes.Buffer{}
	_ = binary.Write(b, binary.BigEndian, uint32(size))
	b.WriteString("test")                                                   // Preferred CMM
	b.Write([]byte{4, 0x30, 0, 0})                                          // Version
	b.WriteString("mntr")                                                   // Device class
	b.WriteString(s.color_space)                                            // Data colour space
	b.WriteString(s.pcs)                                                    // Profile connection space
	_ = binary.Write(b, binary.BigEndian, []uint16{2024, 5, 17, 12, 30, 0}) // Creation date/time
	b.WriteString(s.file_signature)                                         // Profile signature
	b.WriteString("APPL")                                                   // Primary platform
	b.Write([]byte{0, 0, 0, 0})                                             // Profile flags
	b.WriteString("IEC ")                                                   // Device manufacturer
	b.WriteString("sRGB")                                                   // Device model
	b.Write(make([]byte, 8))                                                // Device attributes
	b.Write([]byte{0, 0, 0, 1})                                             // Rendering intent
	b.Write(xyz_bytes(0.9642, 1, 0.8249)[8:])                               // PCS illuminant
	b.WriteString("test")                                                   // Profile creator
	b.Write(bytes.Repeat([]byte{7}, 16))                                    // Profile ID
	b.Write(make([]byte, 28))
	return b.Bytes()
}

func profile_bytes(s profile_layout) []byte {
	if s.file_signature == "" {
		s.file_signature = "acsp"
	}
	if s.color_space == "" {
		s.color_space = "RGB "
	}
	if s.pcs == "" {
		s.pcs = "XYZ "
	}
	sigs := make([]string, 0, len(s.tags))
	for sig := range s.tags {
		sigs = append(sigs, sig)
	}
	sort.Strings(sigs)
	table := &bytes.Buffer{}
	body := &bytes.Buffer{}
	_ = binary.Write(table, binary.BigEndian, uint32(len(sigs)))
	offset := HeaderSize + 4 + 12*len(sigs)
	for _, sig := range sigs {
		data := s.tags[sig]
		table.WriteString(sig)
		_ = binary.Write(table, binary.BigEndian, uint32(offset+body.Len()))
		_ = binary.Write(table, binary.BigEndian, uint32(len(data)))
		body.Write(data)
		pad4(body)
	}
	size := HeaderSize + table.Len() + body.Len()
	return append(append(header_bytes(size, s), table.Bytes()...), body.Bytes()...)
}

// srgb_like_tags are the tags of an sRGB matrix/TRC profile
func srgb_like_tags() map[string][]byte {
	m := SRGB().shaper.Matrix()
	srgb := para_bytes(3, 2.4, 1/1.055, 0.055/1.055, 1/12.92, 0.04045)
	return map[string][]byte{
		"desc": desc_bytes("sRGB IEC61966-2.1"),
		"cprt": []byte("text\x00\x00\x00\x00No copyright\x00\x00\x00\x00"),
		"wtpt": xyz_bytes(0.9642, 1, 0.8249),
		"rXYZ": xyz_bytes(m[0][0], m[1][0], m[2][0]),
		"gXYZ": xyz_bytes(m[0][1], m[1][1], m[2][1]),
		"bXYZ": xyz_bytes(m[0][2], m[1][2], m[2][2]),
		"rTRC": srgb, "gTRC": srgb, "bTRC": srgb,
	}
}

func in_delta(t *testing.T, expected, actual, delta float64) {
	t.Helper()
	assert.InDelta(t, expected, actual, delta)
}

func in_delta_slice(t *testing.T, expected, actual []float64, delta float64) {
	t.Helper()
	assert.InDeltaSlice(t, expected, actual, delta)
}
