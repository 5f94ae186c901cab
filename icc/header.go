package icc

import (
	"encoding/binary"
	"fmt"
	"time"
)

const HeaderSize = 128

type RenderingIntent uint32

const (
	PerceptualRenderingIntent RenderingIntent = iota
	RelativeColorimetricRenderingIntent
	SaturationRenderingIntent
	AbsoluteColorimetricRenderingIntent
)

func (ri RenderingIntent) String() string {
	switch ri {
	case PerceptualRenderingIntent:
		return "Perceptual"
	case RelativeColorimetricRenderingIntent:
		return "Relative colorimetric"
	case SaturationRenderingIntent:
		return "Saturation"
	case AbsoluteColorimetricRenderingIntent:
		return "Absolute colorimetric"
	}
	return fmt.Sprintf("RenderingIntent(%d)", uint32(ri))
}

type Version struct {
	Major, Minor, Bugfix uint8
}

func (v Version) String() string { return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Bugfix) }

type Header struct {
	ProfileSize            uint32
	PreferredCMM           Signature
	Version                Version
	DeviceClass            Signature
	DataColorSpace         Signature
	ProfileConnectionSpace Signature
	CreatedAt              time.Time
	FileSignature          Signature
	PrimaryPlatform        Signature
	Flags                  uint32
	DeviceManufacturer     Signature
	DeviceModel            Signature
	DeviceAttributes       uint64
	RenderingIntent        RenderingIntent
	PCSIlluminant          XYZType
	ProfileCreator         Signature
	ProfileID              [16]byte
}

type raw_header struct {
	ProfileSize                                         uint32
	PreferredCMM                                        uint32
	Version                                             [4]uint8
	DeviceClass, DataColorSpace, ProfileConnectionSpace uint32
	Year, Month, Day, Hour, Minute, Second              uint16
	FileSignature, PrimaryPlatform, Flags               uint32
	DeviceManufacturer, DeviceModel                     uint32
	DeviceAttributes                                    uint64
	RenderingIntent                                     uint32
	PCSIlluminant                                       [12]byte
	ProfileCreator                                      uint32
	ProfileID                                           [16]byte
	Reserved                                            [28]byte
}

func parseHeader(data []byte) (h Header, err error) {
	if len(data) < HeaderSize {
		return h, fmt.Errorf("ICC profile header too short: %d < %d", len(data), HeaderSize)
	}
	var r raw_header
	if _, err = binary.Decode(data[:HeaderSize], binary.BigEndian, &r); err != nil {
		return h, err
	}
	if s := Signature(r.FileSignature); s != ProfileFileSignature {
		return h, fmt.Errorf("invalid ICC profile signature: %s", s)
	}
	h = Header{
		ProfileSize:            r.ProfileSize,
		PreferredCMM:           Signature(r.PreferredCMM),
		Version:                Version{r.Version[0], r.Version[1] >> 4, r.Version[1] & 0xf},
		DeviceClass:            Signature(r.DeviceClass),
		DataColorSpace:         Signature(r.DataColorSpace),
		ProfileConnectionSpace: Signature(r.ProfileConnectionSpace),
		FileSignature:          Signature(r.FileSignature),
		PrimaryPlatform:        Signature(r.PrimaryPlatform),
		Flags:                  r.Flags,
		DeviceManufacturer:     Signature(r.DeviceManufacturer),
		DeviceModel:            Signature(r.DeviceModel),
		DeviceAttributes:       r.DeviceAttributes,
		RenderingIntent:        RenderingIntent(r.RenderingIntent),
		PCSIlluminant:          readXYZNumber(r.PCSIlluminant[:]),
		ProfileCreator:         Signature(r.ProfileCreator),
		ProfileID:              r.ProfileID,
	}
	if r.Year != 0 {
		h.CreatedAt = time.Date(int(r.Year), time.Month(r.Month), int(r.Day), int(r.Hour), int(r.Minute), int(r.Second), 0, time.UTC)
	}
	return h, nil
}

func (h Header) String() string {
	return fmt.Sprintf("Header{Version: %s Class: %s ColorSpace: %s PCS: %s Intent: %s Size: %d}",
		h.Version, h.DeviceClass, h.DataColorSpace, h.ProfileConnectionSpace, h.RenderingIntent, h.ProfileSize)
}
