package icc

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

type ProfileReader struct {
	reader io.Reader
}

func NewProfileReader(r io.Reader) *ProfileReader {
	return &ProfileReader{reader: r}
}

// DecodeProfile reads a complete ICC profile from r.
func DecodeProfile(r io.Reader) (*Profile, error) {
	return NewProfileReader(r).ReadProfile()
}

func (pr *ProfileReader) ReadProfile() (p *Profile, err error) {
	data := make([]byte, HeaderSize)
	if _, err = io.ReadFull(pr.reader, data); err != nil {
		return nil, fmt.Errorf("failed to read ICC profile header: %w", err)
	}
	p = newProfile()
	if p.Header, err = parseHeader(data); err != nil {
		return nil, err
	}
	rest, err := io.ReadAll(pr.reader)
	if err != nil {
		return nil, err
	}
	data = append(data, rest...)
	if err = pr.readTagTable(data, &p.TagTable); err != nil {
		return nil, err
	}
	return p, nil
}

func (pr *ProfileReader) readHeader(header *Header) (err error) {
	data := make([]byte, HeaderSize)
	if _, err = io.ReadFull(pr.reader, data); err != nil {
		return err
	}
	*header, err = parseHeader(data)
	return
}

// readTagTable reads the tag table following the header. data is the full
// profile as tag offsets are relative to its start.
func (pr *ProfileReader) readTagTable(data []byte, tagTable *TagTable) error {
	r := bytes.NewReader(data[HeaderSize:])
	var tagCount uint32
	if err := binary.Read(r, binary.BigEndian, &tagCount); err != nil {
		return fmt.Errorf("failed to read ICC tag count: %w", err)
	}
	type entry struct {
		Sig, Offset, Size uint32
	}
	for i := range tagCount {
		var e entry
		if err := binary.Read(r, binary.BigEndian, &e); err != nil {
			return fmt.Errorf("failed to read ICC tag table entry %d: %w", i, err)
		}
		end := uint64(e.Offset) + uint64(e.Size)
		if end > uint64(len(data)) || e.Offset < HeaderSize {
			return fmt.Errorf("ICC tag %s at offset %d with size %d lies outside the profile of size %d", Signature(e.Sig), e.Offset, e.Size, len(data))
		}
		tagTable.add(Signature(e.Sig), data[e.Offset:end])
	}
	return nil
}
