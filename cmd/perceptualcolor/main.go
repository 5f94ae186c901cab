package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/kovidgoyal/perceptualcolor"
	flag "github.com/spf13/pflag"
)

var _ = fmt.Print

const usage = `usage: perceptualcolor [options] output-file

Render a gamut diagram of an RGB color space. The format is chosen by the
extension of output-file: png, tif, tiff or bmp. With --frames more than one
a lightness sweep (chroma-hue) or hue sweep (chroma-lightness) is written as
an animated PNG.

Options:
`

type cli_opts struct {
	config_path string
	verbose     bool
	version     bool
	cfg         Config
}

func parse_args(args []string, stderr io.Writer) (opts cli_opts, output string, err error) {
	fs := flag.NewFlagSet("perceptualcolor", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	d := DefaultConfig()
	var f Config
	fs.StringVarP(&opts.config_path, "config", "c", "", "Read settings from this TOML file, options given on the command line take precedence")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug information")
	fs.BoolVar(&opts.version, "version", false, "Print the version and exit")
	fs.StringVarP(&f.Diagram, "diagram", "d", d.Diagram, "The diagram to render: chroma-hue or chroma-lightness")
	fs.IntVarP(&f.Size, "size", "s", d.Size, "Width and height of the image in logical pixels")
	fs.Float64Var(&f.Border, "border", d.Border, "Empty space around the diagram in logical pixels")
	fs.Float64VarP(&f.Lightness, "lightness", "l", d.Lightness, "Lightness of chroma-hue diagrams")
	fs.Float64Var(&f.Hue, "hue", d.Hue, "Hue of chroma-lightness diagrams in degrees")
	fs.Float64Var(&f.ChromaRange, "chroma-range", d.ChromaRange, "Chroma at the edge of the diagram, 0 for the maximum chroma of the color space")
	fs.Float64Var(&f.DevicePixelRatio, "device-pixel-ratio", d.DevicePixelRatio, "Physical pixels per logical pixel")
	fs.StringVarP(&f.Profile, "profile", "p", d.Profile, "An ICC matrix/TRC RGB profile, the built-in sRGB is used if not specified")
	fs.StringVar(&f.OutOfGamut, "out-of-gamut", d.OutOfGamut, "How to paint colors outside the gamut in chroma-hue diagrams: clip, map or background")
	fs.IntVarP(&f.Frames, "frames", "n", d.Frames, "Number of frames of the sweep")
	fs.IntVar(&f.DelayMS, "delay", d.DelayMS, "Delay between frames of the sweep in milliseconds")
	fs.UintVar(&f.LoopCount, "loop-count", d.LoopCount, "Number of times the sweep is played, 0 for forever")
	if err = fs.Parse(args); err != nil {
		return
	}
	if opts.version {
		return
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return opts, "", fmt.Errorf("exactly one output file must be specified")
	}
	output = fs.Arg(0)

	opts.cfg = d
	if opts.config_path != "" {
		if err = LoadConfig(opts.config_path, &opts.cfg); err != nil {
			return
		}
	}
	fs.Visit(func(flg *flag.Flag) {
		c := &opts.cfg
		switch flg.Name {
		case "diagram":
			c.Diagram = f.Diagram
		case "size":
			c.Size = f.Size
		case "border":
			c.Border = f.Border
		case "lightness":
			c.Lightness = f.Lightness
		case "hue":
			c.Hue = f.Hue
		case "chroma-range":
			c.ChromaRange = f.ChromaRange
		case "device-pixel-ratio":
			c.DevicePixelRatio = f.DevicePixelRatio
		case "profile":
			c.Profile = f.Profile
		case "out-of-gamut":
			c.OutOfGamut = f.OutOfGamut
		case "frames":
			c.Frames = f.Frames
		case "delay":
			c.DelayMS = f.DelayMS
		case "loop-count":
			c.LoopCount = f.LoopCount
		}
	})
	err = opts.cfg.Validate()
	return
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, output, err := parse_args(args, stderr)
	if err != nil {
		return err
	}
	if opts.version {
		fmt.Fprintln(stdout, "perceptualcolor", perceptualcolor.Version)
		return nil
	}
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	if err = render(opts.cfg, output, logger); err != nil {
		return err
	}
	fmt.Fprintln(stdout, "Diagram saved to:", output)
	return nil
}

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
	default:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
