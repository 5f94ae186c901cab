package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/kovidgoyal/perceptualcolor"
	"github.com/kovidgoyal/perceptualcolor/colorspace"
	"github.com/kovidgoyal/perceptualcolor/diagram"
)

var _ = fmt.Print

func load_color_space(cfg Config) (*colorspace.RgbColorSpace, error) {
	if cfg.Profile == "" {
		return colorspace.NewSRGB()
	}
	return colorspace.Load(cfg.Profile)
}

// new_cache returns the diagram cache for cfg and a function to move it to
// frame i of n of the sweep.
func new_cache(cfg Config, space *colorspace.RgbColorSpace) (*diagram.Cache, func(i, n int)) {
	var cache *diagram.Cache
	var sweep func(i, n int)
	switch cfg.Diagram {
	case ChromaLightnessDiagram:
		c := diagram.NewChromaLightnessImage(space)
		c.SetHue(cfg.Hue)
		cache = c.Cache
		sweep = func(i, n int) { c.SetHue(cfg.Hue + 360*float64(i)/float64(n)) }
	default:
		c := diagram.NewChromaHueImage(space)
		o, _ := parse_out_of_gamut(cfg.OutOfGamut)
		c.SetOutOfGamut(o)
		c.SetLightness(cfg.Lightness)
		cache = c.Cache
		sweep = func(i, n int) { c.SetLightness(100 * float64(i) / float64(n-1)) }
	}
	cache.SetImageSize(cfg.Size)
	cache.SetBorder(cfg.Border)
	cache.SetDevicePixelRatio(cfg.DevicePixelRatio)
	if cfg.ChromaRange > 0 {
		cache.SetChromaRange(cfg.ChromaRange)
	}
	return cache, sweep
}

func render(cfg Config, output string, logger *slog.Logger) (err error) {
	space, err := load_color_space(cfg)
	if err != nil {
		return err
	}
	logger.Debug("loaded color space", "description", space.Description())
	cache, sweep := new_cache(cfg, space)
	cache.SetLogger(logger)
	if cfg.Frames == 1 {
		return perceptualcolor.Save(cache.Image().NRGBA, output)
	}

	switch strings.ToLower(filepath.Ext(output)) {
	case ".png", ".apng":
	default:
		return fmt.Errorf("sweeps can only be saved as animated PNG, not as: %s", output)
	}
	anim := perceptualcolor.Animation{LoopCount: cfg.LoopCount}
	for i := range cfg.Frames {
		sweep(i, cfg.Frames)
		anim.AddFrame(cache.Image().NRGBA, cfg.Delay())
	}
	logger.Debug("rendered sweep", "frames", len(anim.Frames), "rasterizations", cache.Regenerations(), "duration", anim.TotalDuration())
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return anim.EncodeAsPNG(f)
}
