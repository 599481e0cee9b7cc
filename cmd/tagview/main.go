// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fogleman/gg"
	"go.uber.org/zap"
	"golang.org/x/term"
	"golang.org/x/text/unicode/norm"

	"github.com/tagview/tagview/config"
	"github.com/tagview/tagview/console"
	"github.com/tagview/tagview/raster"
	"github.com/tagview/tagview/unit"
	"github.com/tagview/tagview/widget"
)

// options are the parsed command line flags.
type options struct {
	config      string
	width       int
	png         string
	pngWidth    int
	scale       float64
	interactive bool
	verbose     bool
	titles      []string
}

func main() {
	if err := mainErr(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if err == flag.ErrHelp {
			return
		}
		fmt.Fprintf(os.Stderr, "tagview: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	o := new(options)
	fs := flag.NewFlagSet("tagview", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, mainUsage)
	}
	fs.StringVar(&o.config, "config", "", "YAML configuration file.")
	fs.IntVar(&o.width, "width", 0, "width in columns (default: terminal width).")
	fs.StringVar(&o.png, "png", "", "write a PNG image to this file.")
	fs.IntVar(&o.pngWidth, "pngwidth", 400, "PNG image width in pixels.")
	fs.Float64Var(&o.scale, "scale", 2, "PNG pixels per dp.")
	fs.BoolVar(&o.interactive, "i", false, "interactive mode.")
	fs.BoolVar(&o.verbose, "v", false, "log debug messages to stderr.")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	for _, a := range fs.Args() {
		if t := normalize(a); t != "" {
			o.titles = append(o.titles, t)
		}
	}
	if o.pngWidth <= 0 {
		return nil, fmt.Errorf("invalid -pngwidth %d", o.pngWidth)
	}
	if o.scale <= 0 {
		return nil, fmt.Errorf("invalid -scale %g", o.scale)
	}
	return o, nil
}

func mainErr(args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	logger, err := newLogger(o.verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	tags := widget.NewTags[struct{}](widget.DefaultStyle())
	tags.Logger = logger
	if o.config != "" {
		c, err := config.Load(o.config)
		if err != nil {
			return err
		}
		if err := config.Apply(c, tags); err != nil {
			return err
		}
		logger.Debug("loaded configuration", zap.String("path", o.config), zap.Int("tags", tags.Len()))
	}
	tags.AddAll(o.titles...)

	switch {
	case o.png != "":
		return writePNG(tags, o, logger)
	case o.interactive:
		console.ToCells(tags)
		m := newModel(tags, termWidth(o.width), logger)
		_, err := tea.NewProgram(m, tea.WithOutput(stdout)).Run()
		return err
	}
	console.ToCells(tags)
	_, err = fmt.Fprintln(stdout, console.Render(tags, termWidth(o.width), console.Options{}))
	return err
}

func writePNG(tags *widget.Tags[struct{}], o *options, logger *zap.Logger) error {
	s := float32(o.scale)
	metric := unit.Metric{PxPerDp: s, PxPerSp: s}
	// Lengths of the list itself are in dp; the layout works in pixels.
	tags.Spacing *= s
	tags.Padding.Top *= s
	tags.Padding.Leading *= s
	tags.Padding.Bottom *= s
	tags.Padding.Trailing *= s
	tags.MaxHeight *= s
	fonts := raster.NewFonts(metric)
	fonts.Logger = logger
	img := raster.Render(tags, o.pngWidth, raster.Options{Metric: metric, Fonts: fonts})
	logger.Debug("rendered image", zap.Int("width", img.Bounds().Dx()), zap.Int("height", img.Bounds().Dy()))
	if err := gg.SavePNG(o.png, img); err != nil {
		return fmt.Errorf("write %s: %w", o.png, err)
	}
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopmentConfig().Build()
}

// termWidth returns width, or the width of the terminal on standard
// output when width is not positive.
func termWidth(width int) int {
	if width > 0 {
		return width
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return 80
}

// normalize trims a title and converts it to NFC, so titles typed with
// combining marks compare equal to their precomposed forms.
func normalize(title string) string {
	return norm.NFC.String(strings.TrimSpace(title))
}
