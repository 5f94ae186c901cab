package icc

type Signature uint32

const (
	ProfileFileSignature Signature = 0x61637370 // 'acsp'

	// tag types
	TextTagSignature               Signature = 0x74657874 // 'text'
	DescSignature                  Signature = 0x64657363 // 'desc'
	MultiLocalisedUnicodeSignature Signature = 0x6D6C7563 // 'mluc'
	XYZTypeSignature               Signature = 0x58595A20 // 'XYZ '
	CurveTypeSignature             Signature = 0x63757276 // 'curv'
	ParametricCurveTypeSignature   Signature = 0x70617261 // 'para'

	// tags
	ProfileDescriptionTagSignature         Signature = 0x64657363 // 'desc'
	CopyrightTagSignature                  Signature = 0x63707274 // 'cprt'
	DeviceManufacturerDescriptionSignature Signature = 0x646d6e64 // 'dmnd'
	DeviceModelDescriptionSignature        Signature = 0x646d6464 // 'dmdd'
	MediaWhitePointTagSignature            Signature = 0x77747074 // 'wtpt'
	RedColorantTagSignature                Signature = 0x7258595A // 'rXYZ'
	GreenColorantTagSignature              Signature = 0x6758595A // 'gXYZ'
	BlueColorantTagSignature               Signature = 0x6258595A // 'bXYZ'
	RedTRCTagSignature                     Signature = 0x72545243 // 'rTRC'
	GreenTRCTagSignature                   Signature = 0x67545243 // 'gTRC'
	BlueTRCTagSignature                    Signature = 0x62545243 // 'bTRC'
	AToB0TagSignature                      Signature = 0x41324230 // 'A2B0'
	BToA0TagSignature                      Signature = 0x42324130 // 'B2A0'

	// color spaces
	RGBSignature Signature = 0x52474220 // 'RGB '
	XYZSignature Signature = 0x58595A20 // 'XYZ '
	LabSignature Signature = 0x4C616220 // 'Lab '

	// device classes
	DisplayClassSignature    Signature = 0x6D6E7472 // 'mntr'
	InputClassSignature      Signature = 0x73636E72 // 'scnr'
	OutputClassSignature     Signature = 0x70727472 // 'prtr'
	ColorSpaceClassSignature Signature = 0x73706163 // 'spac'
)

func maskNull(b byte) byte {
	switch b {
	case 0:
		return ' '
	default:
		return b
	}
}

func (s Signature) String() string {
	v := []byte{
		maskNull(byte((s >> 24) & 0xff)),
		maskNull(byte((s >> 16) & 0xff)),
		maskNull(byte((s >> 8) & 0xff)),
		maskNull(byte(s & 0xff)),
	}
	return "'" + string(v) + "'"
}

func SignatureFromString(s string) Signature {
	var b [4]byte
	copy(b[:], "    ")
	copy(b[:], s)
	return Signature(uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]))
}
