// SPDX-License-Identifier: Unlicense OR MIT

package config

import (
	"errors"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/tagview/tagview/f32"
	"github.com/tagview/tagview/layout"
	"github.com/tagview/tagview/widget"
)

const sample = `
spacing: 6
alignment: center
axis: vertical
maxHeight: 120
padding: 10
showScrollIndicator: false
style:
  cornerRadius: 8
  font: {name: mono, size: 14}
  textColor: "#fff"
  background: ["#ff5f6d", "#ffc371"]
  borderWidth: 1
  borderColor: "#00000040"
  padding: {top: 2, leading: 8, bottom: 2, trailing: 8}
  remove: {enabled: true, iconSize: [12, 8], color: "#ff3b30"}
tags:
  - go
  - {title: yaml, selected: true}
`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	s, err := c.Style()
	if err != nil {
		t.Fatal(err)
	}
	if s.CornerRadius != 8 || s.Font.Name != "mono" || s.Font.Size != 14 || s.BorderWidth != 1 {
		t.Errorf("style = %+v", s)
	}
	if want := (color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}); s.TextColor != want {
		t.Errorf("text color = %v", s.TextColor)
	}
	want := []color.NRGBA{{R: 0xff, G: 0x5f, B: 0x6d, A: 0xff}, {R: 0xff, G: 0xc3, B: 0x71, A: 0xff}}
	if len(s.Background) != 2 || s.Background[0] != want[0] || s.Background[1] != want[1] {
		t.Errorf("background = %v", s.Background)
	}
	if len(s.BorderColor) != 1 || s.BorderColor[0] != (color.NRGBA{A: 0x40}) {
		t.Errorf("border color = %v", s.BorderColor)
	}
	if s.Padding != (layout.Inset{Top: 2, Leading: 8, Bottom: 2, Trailing: 8}) {
		t.Errorf("padding = %+v", s.Padding)
	}
	if !s.Remove.Enabled || s.Remove.IconSize != f32.Pt(12, 8) {
		t.Errorf("remove = %+v", s.Remove)
	}
	// Unset settings keep their defaults.
	def := widget.DefaultStyle()
	if s.SelectedBackground != def.SelectedBackground {
		t.Errorf("selected background = %v", s.SelectedBackground)
	}
	if len(c.Tags) != 2 || c.Tags[0] != (Tag{Title: "go"}) || c.Tags[1] != (Tag{Title: "yaml", Selected: true}) {
		t.Errorf("tags = %+v", c.Tags)
	}
}

func TestParseEmpty(t *testing.T) {
	c, err := Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	s, err := c.Style()
	if err != nil {
		t.Fatal(err)
	}
	def := widget.DefaultStyle()
	if s.Font != def.Font || s.Padding != def.Padding || len(s.Background) != 1 {
		t.Errorf("empty config style = %+v", s)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
		is    error
	}{
		{"color", "style:\n  textColor: blue\n", "style.textColor", ErrColor},
		{"stop", "style:\n  background: ['#fff', '#12']\n", "style.background[1]", ErrColor},
		{"alpha", "style:\n  borderColor: '#000000zz'\n", "style.borderColor[0]", ErrColor},
		{"radius", "style:\n  cornerRadius: -1\n", "style.cornerRadius", ErrValue},
		{"maxHeight", "maxHeight: -5\n", "maxHeight", ErrValue},
		{"title", "tags: ['']\n", "tags[0]", ErrValue},
		{"alignment", "alignment: diagonal\n", "alignment", nil},
		{"axis", "axis: sideways\n", "axis", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			var cerr *ConfigError
			if !errors.As(err, &cerr) {
				t.Fatalf("got %v, want a *ConfigError", err)
			}
			if cerr.Field != tc.field {
				t.Errorf("field = %q, want %q", cerr.Field, tc.field)
			}
			if tc.is != nil && !errors.Is(err, tc.is) {
				t.Errorf("%v does not wrap %v", err, tc.is)
			}
		})
	}
}

func TestParseUnknownField(t *testing.T) {
	if _, err := Parse([]byte("spacin: 4\n")); err == nil {
		t.Error("unknown field accepted")
	}
	if _, err := Parse([]byte("style:\n  remove: {iconSize: [1, 2, 3]}\n")); err == nil {
		t.Error("malformed icon size accepted")
	}
	for _, doc := range []string{
		"tags: [{title: go, selcted: true}]\n",
		"padding: {top: 1, left: 4}\n",
		"style:\n  padding: {top: 1, leading: 2, botom: 3}\n",
		"style:\n  background: {stops: ['#000', '#fff'], stesp: 5}\n",
		"style:\n  remove: {enabled: true, colour: '#fff'}\n",
	} {
		if _, err := Parse([]byte(doc)); err == nil {
			t.Errorf("unknown nested field accepted in %q", doc)
		}
	}
	// The strict nested decoding still accepts every known field.
	if _, err := Parse([]byte("tags: [{title: go, selected: true}]\npadding: {top: 1, leading: 2, bottom: 3, trailing: 4}\nstyle:\n  background: {stops: ['#000', '#fff'], steps: 4}\n")); err != nil {
		t.Error(err)
	}
}

func TestGradientSteps(t *testing.T) {
	c, err := Parse([]byte("style:\n  background: {stops: ['#000000', '#ffffff'], steps: 3}\n"))
	if err != nil {
		t.Fatal(err)
	}
	s, _ := c.Style()
	if len(s.Background) != 3 {
		t.Fatalf("got %d colors", len(s.Background))
	}
	if s.Background[0] != (color.NRGBA{A: 0xff}) || s.Background[2] != (color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
		t.Errorf("end stops = %v", s.Background)
	}
	mid := s.Background[1]
	if mid.R != mid.G || mid.G != mid.B || mid.R < 0x60 || mid.R > 0x90 {
		t.Errorf("middle stop = %v", mid)
	}
}

func TestApply(t *testing.T) {
	c, err := Parse([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	tags := widget.NewTags[int](widget.DefaultStyle())
	existing := tags.Add("existing")
	if err := Apply(c, tags); err != nil {
		t.Fatal(err)
	}
	if tags.Spacing != 6 || tags.Alignment != layout.Center || tags.Axis != layout.Vertical || tags.MaxHeight != 120 {
		t.Errorf("settings = %v %v %v %v", tags.Spacing, tags.Alignment, tags.Axis, tags.MaxHeight)
	}
	if tags.Padding != layout.UniformInset(10) || tags.ShowScrollIndicator {
		t.Errorf("padding %+v, indicator %v", tags.Padding, tags.ShowScrollIndicator)
	}
	if existing.Style.CornerRadius != 8 {
		t.Error("existing chip not restyled")
	}
	if got := tags.Titles(); len(got) != 3 || got[1] != "go" || got[2] != "yaml" {
		t.Errorf("titles = %v", got)
	}
	if got := tags.SelectedTitles(); len(got) != 1 || got[0] != "yaml" {
		t.Errorf("selected = %v", got)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tags.yaml")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err != nil {
		t.Fatal(err)
	}
	_, err := Load(filepath.Join(dir, "missing.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file: %v", err)
	}
}
