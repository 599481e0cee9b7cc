// SPDX-License-Identifier: Unlicense OR MIT

/*
Package config reads tag list settings from YAML.

A configuration file holds the list settings, the chip style and an
optional list of initial tags:

	spacing: 6
	alignment: center
	axis: vertical
	maxHeight: 120
	padding: 10
	style:
	  cornerRadius: 8
	  font: {size: 14}
	  textColor: "#ffffff"
	  background: ["#ff5f6d", "#ffc371"]
	  borderWidth: 1
	  borderColor: "#00000040"
	  padding: {top: 4, leading: 8, bottom: 4, trailing: 8}
	  remove: {enabled: true, color: "#ff3b30"}
	tags:
	  - go
	  - {title: yaml, selected: true}

Colors are #rgb, #rrggbb or #rrggbbaa strings. A color list is the
stops of a gradient; a mapping with stops and steps interpolates steps
colors between the stops.

Settings left out keep the values of NewTags and widget.DefaultStyle.
*/
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/tagview/tagview/f32"
	"github.com/tagview/tagview/layout"
	"github.com/tagview/tagview/unit"
	"github.com/tagview/tagview/widget"
)

var (
	// ErrColor is wrapped by errors for malformed colors.
	ErrColor = errors.New("invalid color")
	// ErrValue is wrapped by errors for out of range settings.
	ErrValue = errors.New("invalid value")
)

// ConfigError describes an invalid setting.
type ConfigError struct {
	// Field is the path of the setting, such as "style.background[1]".
	Field   string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	msg := "config: " + e.Field + ": " + e.Message
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Config is a decoded configuration file.
type Config struct {
	Spacing             *float32 `yaml:"spacing"`
	Alignment           string   `yaml:"alignment"`
	Axis                string   `yaml:"axis"`
	Padding             *Inset   `yaml:"padding"`
	MaxHeight           float32  `yaml:"maxHeight"`
	ShowScrollIndicator *bool    `yaml:"showScrollIndicator"`
	Chip                Style    `yaml:"style"`
	Tags                []Tag    `yaml:"tags"`
}

// Style is the chip style section.
type Style struct {
	CornerRadius        *float32 `yaml:"cornerRadius"`
	Font                *Font    `yaml:"font"`
	TextColor           string   `yaml:"textColor"`
	Background          Colors   `yaml:"background"`
	SelectedTextColor   string   `yaml:"selectedTextColor"`
	SelectedBackground  string   `yaml:"selectedBackground"`
	SelectedBorderColor string   `yaml:"selectedBorderColor"`
	BorderWidth         *float32 `yaml:"borderWidth"`
	BorderColor         Colors   `yaml:"borderColor"`
	Padding             *Inset   `yaml:"padding"`
	Remove              *Remove  `yaml:"remove"`
}

type Font struct {
	Name string  `yaml:"name"`
	Size float32 `yaml:"size"`
}

type Remove struct {
	Enabled  bool   `yaml:"enabled"`
	IconSize *Size  `yaml:"iconSize"`
	Color    string `yaml:"color"`
}

// Tag is an initial tag. It decodes from a plain title too.
type Tag struct {
	Title    string `yaml:"title"`
	Selected bool   `yaml:"selected"`
}

// Inset decodes from a single number or a mapping of edges.
type Inset layout.Inset

// Size decodes from a single number or a [width, height] pair.
type Size f32.Point

// Colors decodes from a color, a list of gradient stops or a mapping
// with stops and steps.
type Colors struct {
	Stops []string `yaml:"stops"`
	// Steps, when larger than the number of stops, is the number of
	// colors interpolated between them.
	Steps int `yaml:"steps"`
}

func (t *Tag) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		return n.Decode(&t.Title)
	}
	type plain Tag
	return decodeStrict(n, (*plain)(t))
}

func (in *Inset) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		var v float32
		if err := n.Decode(&v); err != nil {
			return err
		}
		*in = Inset(layout.UniformInset(v))
		return nil
	}
	var edges struct {
		Top      float32 `yaml:"top"`
		Leading  float32 `yaml:"leading"`
		Bottom   float32 `yaml:"bottom"`
		Trailing float32 `yaml:"trailing"`
	}
	if err := decodeStrict(n, &edges); err != nil {
		return err
	}
	*in = Inset{Top: edges.Top, Leading: edges.Leading, Bottom: edges.Bottom, Trailing: edges.Trailing}
	return nil
}

func (s *Size) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		var v float32
		if err := n.Decode(&v); err != nil {
			return err
		}
		*s = Size{X: v, Y: v}
		return nil
	case yaml.SequenceNode:
		var v []float32
		if err := n.Decode(&v); err != nil {
			return err
		}
		if len(v) != 2 {
			return fmt.Errorf("line %d: size needs 2 values, got %d", n.Line, len(v))
		}
		*s = Size{X: v[0], Y: v[1]}
		return nil
	}
	return fmt.Errorf("line %d: size must be a number or a pair", n.Line)
}

func (c *Colors) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		var s string
		if err := n.Decode(&s); err != nil {
			return err
		}
		*c = Colors{Stops: []string{s}}
		return nil
	case yaml.SequenceNode:
		var stops []string
		if err := n.Decode(&stops); err != nil {
			return err
		}
		*c = Colors{Stops: stops}
		return nil
	}
	type plain Colors
	return decodeStrict(n, (*plain)(c))
}

// decodeStrict decodes n into v, rejecting unknown fields as Parse does
// for the document itself. Node.Decode alone does not.
func decodeStrict(n *yaml.Node, v any) error {
	data, err := yaml.Marshal(n)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	return nil
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a configuration. Unknown fields are
// errors. An empty document is the zero Config.
func Parse(data []byte) (*Config, error) {
	c := new(Config)
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) validate() error {
	if _, err := c.alignment(); err != nil {
		return err
	}
	if _, err := c.axis(); err != nil {
		return err
	}
	if c.MaxHeight < 0 {
		return &ConfigError{Field: "maxHeight", Message: "must not be negative", Err: ErrValue}
	}
	for i, t := range c.Tags {
		if t.Title == "" {
			return &ConfigError{Field: fmt.Sprintf("tags[%d]", i), Message: "empty title", Err: ErrValue}
		}
	}
	_, err := c.Style()
	return err
}

func (c *Config) alignment() (layout.Alignment, error) {
	var a layout.Alignment
	if err := a.UnmarshalText([]byte(c.Alignment)); err != nil {
		return 0, &ConfigError{Field: "alignment", Message: strconv.Quote(c.Alignment), Err: err}
	}
	return a, nil
}

func (c *Config) axis() (layout.Axis, error) {
	var a layout.Axis
	if c.Axis == "" {
		return layout.None, nil
	}
	if err := a.UnmarshalText([]byte(c.Axis)); err != nil {
		return 0, &ConfigError{Field: "axis", Message: strconv.Quote(c.Axis), Err: err}
	}
	return a, nil
}

// Style returns widget.DefaultStyle with the settings of the style
// section applied.
func (c *Config) Style() (widget.Style, error) {
	s := widget.DefaultStyle()
	cs := c.Chip
	if cs.CornerRadius != nil {
		if *cs.CornerRadius < 0 {
			return s, &ConfigError{Field: "style.cornerRadius", Message: "must not be negative", Err: ErrValue}
		}
		s.CornerRadius = unit.Dp(*cs.CornerRadius)
	}
	if f := cs.Font; f != nil {
		if f.Size < 0 {
			return s, &ConfigError{Field: "style.font.size", Message: "must not be negative", Err: ErrValue}
		}
		s.Font.Name = f.Name
		if f.Size > 0 {
			s.Font.Size = unit.Sp(f.Size)
		}
	}
	if cs.BorderWidth != nil {
		if *cs.BorderWidth < 0 {
			return s, &ConfigError{Field: "style.borderWidth", Message: "must not be negative", Err: ErrValue}
		}
		s.BorderWidth = unit.Dp(*cs.BorderWidth)
	}
	if cs.Padding != nil {
		s.Padding = layout.Inset(*cs.Padding)
	}
	var err error
	set := func(field, v string, dst *color.NRGBA) {
		if err != nil || v == "" {
			return
		}
		var col color.NRGBA
		if col, err = parseColor(v); err != nil {
			err = &ConfigError{Field: field, Message: strconv.Quote(v), Err: err}
			return
		}
		*dst = col
	}
	set("style.textColor", cs.TextColor, &s.TextColor)
	set("style.selectedTextColor", cs.SelectedTextColor, &s.SelectedTextColor)
	set("style.selectedBackground", cs.SelectedBackground, &s.SelectedBackground)
	set("style.selectedBorderColor", cs.SelectedBorderColor, &s.SelectedBorderColor)
	if r := cs.Remove; r != nil {
		s.Remove.Enabled = r.Enabled
		if r.IconSize != nil {
			s.Remove.IconSize = f32.Point(*r.IconSize)
		}
		set("style.remove.color", r.Color, &s.Remove.Color)
	}
	if err != nil {
		return s, err
	}
	if cs.Background.Stops != nil {
		if s.Background, err = cs.Background.resolve("style.background"); err != nil {
			return s, err
		}
	}
	if cs.BorderColor.Stops != nil {
		if s.BorderColor, err = cs.BorderColor.resolve("style.borderColor"); err != nil {
			return s, err
		}
	}
	return s, nil
}

// Apply configures tags, restyles its chips and appends the initial
// tags of c.
func Apply[T any](c *Config, tags *widget.Tags[T]) error {
	align, err := c.alignment()
	if err != nil {
		return err
	}
	axis, err := c.axis()
	if err != nil {
		return err
	}
	style, err := c.Style()
	if err != nil {
		return err
	}
	if c.Spacing != nil {
		tags.Spacing = *c.Spacing
	}
	tags.Alignment = align
	tags.Axis = axis
	if c.Padding != nil {
		tags.Padding = layout.Inset(*c.Padding)
	}
	tags.MaxHeight = c.MaxHeight
	if c.ShowScrollIndicator != nil {
		tags.ShowScrollIndicator = *c.ShowScrollIndicator
	}
	tags.ApplyStyle(style)
	for _, t := range c.Tags {
		tag := tags.Add(t.Title)
		tag.Selected = t.Selected
	}
	return nil
}

// resolve parses the stops and expands them to Steps colors when
// requested.
func (c Colors) resolve(field string) ([]color.NRGBA, error) {
	stops := make([]colorful.Color, len(c.Stops))
	alpha := make([]float64, len(c.Stops))
	for i, v := range c.Stops {
		col, err := parseColor(v)
		if err != nil {
			return nil, &ConfigError{Field: fmt.Sprintf("%s[%d]", field, i), Message: strconv.Quote(v), Err: err}
		}
		stops[i], _ = colorful.MakeColor(opaque(col))
		alpha[i] = float64(col.A)
	}
	if c.Steps < 0 {
		return nil, &ConfigError{Field: field + ".steps", Message: "must not be negative", Err: ErrValue}
	}
	if len(stops) < 2 || c.Steps <= len(stops) {
		out := make([]color.NRGBA, len(stops))
		for i := range stops {
			out[i] = nrgba(stops[i], alpha[i])
		}
		return out, nil
	}
	out := make([]color.NRGBA, c.Steps)
	last := float64(len(stops) - 1)
	for i := range out {
		t := float64(i) / float64(c.Steps-1) * last
		seg := math.Min(math.Floor(t), last-1)
		j := int(seg)
		f := t - seg
		col := stops[j].BlendLab(stops[j+1], f).Clamped()
		out[i] = nrgba(col, alpha[j]+(alpha[j+1]-alpha[j])*f)
	}
	return out, nil
}

func opaque(c color.NRGBA) color.NRGBA {
	c.A = 0xff
	return c
}

func nrgba(c colorful.Color, a float64) color.NRGBA {
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(a))}
}

// parseColor parses #rgb, #rrggbb and #rrggbbaa colors.
func parseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	a := uint8(0xff)
	if len(s) == 9 {
		v, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, ErrColor
		}
		a = uint8(v)
		s = s[:7]
	}
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return color.NRGBA{}, ErrColor
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
