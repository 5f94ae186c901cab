package perceptualcolor

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kovidgoyal/perceptualcolor/types"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

var _ = fmt.Print

// the file system used by Save, replaced in tests
type fileSystem interface {
	Create(string) (io.WriteCloser, error)
}

type localFS struct{}

func (localFS) Create(name string) (io.WriteCloser, error) { return os.Create(name) }

var fs fileSystem = localFS{}

type Format = types.Format

const (
	UNKNOWN = types.UNKNOWN
	PNG     = types.PNG
	TIFF    = types.TIFF
	BMP     = types.BMP
)

var ErrUnsupportedFormat = errors.New("perceptualcolor: unsupported image format")

// FormatFromExtension returns the format for a file extension, with or
// without the leading dot, ignoring case.
func FormatFromExtension(ext string) (Format, error) {
	if f, found := types.FormatExts[strings.ToLower(strings.TrimPrefix(ext, "."))]; found {
		return f, nil
	}
	return UNKNOWN, fmt.Errorf("%w: %#v", ErrUnsupportedFormat, ext)
}

func FormatFromFilename(filename string) (Format, error) {
	return FormatFromExtension(filepath.Ext(filename))
}

type encodeConfig struct {
	png_compression  png.CompressionLevel
	tiff_compression tiff.CompressionType
	background       color.Color
}

// EncodeOption sets an optional parameter of Encode and Save.
type EncodeOption func(*encodeConfig)

// PNGCompressionLevel sets the zlib level of PNG output, the default is
// png.DefaultCompression.
func PNGCompressionLevel(level png.CompressionLevel) EncodeOption {
	return func(c *encodeConfig) { c.png_compression = level }
}

// TIFFCompression sets the compression of TIFF output, the default is
// tiff.Deflate.
func TIFFCompression(ct tiff.CompressionType) EncodeOption {
	return func(c *encodeConfig) { c.tiff_compression = ct }
}

// FlattenOnto composites the image onto an opaque background before
// encoding. Diagrams are transparent outside the gamut and the border,
// this is useful for viewers that show transparency badly.
func FlattenOnto(background color.Color) EncodeOption {
	return func(c *encodeConfig) { c.background = background }
}

func flatten(img image.Image, background color.Color) *image.NRGBA {
	b := img.Bounds()
	ans := image.NewNRGBA(b)
	bg := color.NRGBAModel.Convert(background).(color.NRGBA)
	bg.A = 0xff
	draw.Draw(ans, b, image.NewUniform(bg), image.Point{}, draw.Src)
	draw.Draw(ans, b, img, b.Min, draw.Over)
	return ans
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format Format, opts ...EncodeOption) error {
	cfg := encodeConfig{png_compression: png.DefaultCompression, tiff_compression: tiff.Deflate}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.background != nil {
		img = flatten(img, cfg.background)
	}
	switch format {
	case PNG:
		e := png.Encoder{CompressionLevel: cfg.png_compression}
		return e.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: cfg.tiff_compression, Predictor: cfg.tiff_compression != tiff.Uncompressed})
	case BMP:
		return bmp.Encode(w, img)
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
}

// Save writes img to the named file, the format is chosen by the file
// extension, see FormatFromFilename. For example:
//
//	err := perceptualcolor.Save(cache.Image(), "wheel.png", perceptualcolor.FlattenOnto(color.White))
func Save(img image.Image, filename string, opts ...EncodeOption) (err error) {
	format, err := FormatFromFilename(filename)
	if err != nil {
		return err
	}
	f, err := fs.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Encode(f, img, format, opts...)
}
