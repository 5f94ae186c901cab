package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/kovidgoyal/perceptualcolor"
	"github.com/kovidgoyal/perceptualcolor/diagram"
	"github.com/pelletier/go-toml/v2"
)

var _ = fmt.Print

const (
	ChromaHueDiagram       = "chroma-hue"
	ChromaLightnessDiagram = "chroma-lightness"
)

// Config is read from an optional TOML file, command line flags override
// its values.
type Config struct {
	Diagram          string  `toml:"diagram"`
	Size             int     `toml:"size"`
	Border           float64 `toml:"border"`
	Lightness        float64 `toml:"lightness"`
	Hue              float64 `toml:"hue"`
	ChromaRange      float64 `toml:"chroma_range"` // 0 means the maximum chroma of the color space
	DevicePixelRatio float64 `toml:"device_pixel_ratio"`
	Profile          string  `toml:"profile"` // empty means built-in sRGB
	OutOfGamut       string  `toml:"out_of_gamut"`
	Frames           int     `toml:"frames"`
	DelayMS          int     `toml:"delay_ms"`
	LoopCount        uint    `toml:"loop_count"`
}

func DefaultConfig() Config {
	return Config{
		Diagram:          ChromaHueDiagram,
		Size:             256,
		Lightness:        perceptualcolor.NeutralLightness,
		Hue:              perceptualcolor.NeutralHue,
		DevicePixelRatio: 1,
		OutOfGamut:       "clip",
		Frames:           1,
		DelayMS:          40,
	}
}

// DecodeConfig reads TOML into cfg, keeping the values of keys that are not
// present. Unknown keys are errors.
func DecodeConfig(r io.Reader, cfg *Config) error {
	d := toml.NewDecoder(r)
	d.DisallowUnknownFields()
	if err := d.Decode(cfg); err != nil {
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			return fmt.Errorf("unknown configuration keys:\n%s", serr.String())
		}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return fmt.Errorf("invalid configuration at line %d column %d: %w", row, col, err)
		}
		return err
	}
	return nil
}

func LoadConfig(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err = DecodeConfig(f, cfg); err != nil {
		return fmt.Errorf("failed to read the configuration from %s: %w", path, err)
	}
	return nil
}

func parse_out_of_gamut(s string) (diagram.OutOfGamut, error) {
	switch strings.ToLower(s) {
	case "clip", "":
		return diagram.Clip, nil
	case "map":
		return diagram.Map, nil
	case "background":
		return diagram.Background, nil
	}
	return diagram.Clip, fmt.Errorf("unknown out of gamut mode: %#v, must be one of clip, map or background", s)
}

func (c Config) Validate() error {
	switch c.Diagram {
	case ChromaHueDiagram, ChromaLightnessDiagram:
	default:
		return fmt.Errorf("unknown diagram: %#v, must be %s or %s", c.Diagram, ChromaHueDiagram, ChromaLightnessDiagram)
	}
	if c.Size < 2 {
		return fmt.Errorf("the image size must be at least 2, not %d", c.Size)
	}
	if c.Frames < 1 {
		return fmt.Errorf("the number of frames must be at least 1, not %d", c.Frames)
	}
	if c.DelayMS < 0 {
		return fmt.Errorf("the frame delay must not be negative")
	}
	_, err := parse_out_of_gamut(c.OutOfGamut)
	return err
}

func (c Config) Delay() time.Duration { return time.Duration(c.DelayMS) * time.Millisecond }
