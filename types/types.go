// Package types holds the image file formats diagrams can be exported to.
package types

import (
	"fmt"
)

var _ = fmt.Print

// Format is an image file format for exported diagrams.
type Format int

const (
	UNKNOWN Format = iota
	PNG
	TIFF
	BMP
)

// FormatExts maps lower case file extensions, without the leading dot, to
// formats. Animated PNG files use the PNG container.
var FormatExts = map[string]Format{
	"png":  PNG,
	"apng": PNG,
	"tif":  TIFF,
	"tiff": TIFF,
	"bmp":  BMP,
}

type format_info struct {
	name, extension, mime_type string
}

var formats = [...]format_info{
	UNKNOWN: {"UNKNOWN", "", "application/octet-stream"},
	PNG:     {"PNG", "png", "image/png"},
	TIFF:    {"TIFF", "tiff", "image/tiff"},
	BMP:     {"BMP", "bmp", "image/bmp"},
}

func (f Format) info() format_info {
	if f < 0 || int(f) >= len(formats) {
		return formats[UNKNOWN]
	}
	return formats[f]
}

func (f Format) String() string { return f.info().name }

// Extension is the preferred file extension, without the leading dot.
func (f Format) Extension() string { return f.info().extension }

func (f Format) MimeType() string { return f.info().mime_type }
