// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"github.com/tagview/tagview/f32"
	"github.com/tagview/tagview/layout"
	"github.com/tagview/tagview/unit"
)

// Font selects a typeface by name and size. An empty Name selects the
// host's default face.
type Font struct {
	Name string
	Size unit.Sp
}

// RemoveButton configures the remove glyph drawn after a chip title.
type RemoveButton struct {
	Enabled bool
	// IconSize is the glyph size in dp.
	IconSize f32.Point
	Color    color.NRGBA
}

// Style is the visual configuration of a chip. Background and
// BorderColor take one color or the stops of a linear gradient running
// from the bottom leading corner to the top trailing corner.
type Style struct {
	CornerRadius unit.Dp
	Font         Font
	TextColor    color.NRGBA
	Background   []color.NRGBA

	SelectedTextColor   color.NRGBA
	SelectedBackground  color.NRGBA
	SelectedBorderColor color.NRGBA

	BorderWidth unit.Dp
	BorderColor []color.NRGBA

	// Padding is the inset between the chip edge and its content, in dp.
	Padding layout.Inset

	Remove RemoveButton
}

// Colors are the effective colors of a chip in one selection state.
type Colors struct {
	Text       color.NRGBA
	Background []color.NRGBA
	Border     []color.NRGBA
}

var (
	white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	gray  = color.NRGBA{R: 0x8e, G: 0x8e, B: 0x93, A: 0xff}
	blue  = color.NRGBA{R: 0x00, G: 0x7a, B: 0xff, A: 0xff}
	red   = color.NRGBA{R: 0xff, G: 0x3b, B: 0x30, A: 0xff}
)

// DefaultStyle returns the style of chips created without explicit
// configuration: square gray chips with white 12sp text.
func DefaultStyle() Style {
	return Style{
		Font:               Font{Size: 12},
		TextColor:          white,
		Background:         []color.NRGBA{gray},
		SelectedTextColor:  white,
		SelectedBackground: blue,
		Padding:            layout.UniformInset(4),
		Remove: RemoveButton{
			IconSize: f32.Pt(10, 10),
			Color:    red,
		},
	}
}

// Colors resolves the colors of a chip. A selected chip uses the
// single selected colors instead of the gradients.
func (s Style) Colors(selected bool) Colors {
	if selected {
		return Colors{
			Text:       s.SelectedTextColor,
			Background: []color.NRGBA{s.SelectedBackground},
			Border:     []color.NRGBA{s.SelectedBorderColor},
		}
	}
	return Colors{
		Text:       s.TextColor,
		Background: s.Background,
		Border:     s.BorderColor,
	}
}

// clone returns s with its own copies of the color slices, so chips
// sharing a style never alias each other's gradients.
func (s Style) clone() Style {
	s.Background = append([]color.NRGBA(nil), s.Background...)
	s.BorderColor = append([]color.NRGBA(nil), s.BorderColor...)
	return s
}
