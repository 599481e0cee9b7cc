// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"github.com/tagview/tagview/f32"
	"github.com/tagview/tagview/unit"
)

// ChipGap is the space between the image, title and remove glyph of a
// chip.
const ChipGap unit.Dp = 8

// ChipLayout is the geometry of a chip in pixels, relative to the top
// left corner of the chip. Image and Remove are empty when the chip has
// no image or no remove glyph.
type ChipLayout struct {
	Size   f32.Point
	Image  f32.Rectangle
	Text   f32.Rectangle
	Remove f32.Rectangle
}

// Measurer measures text for a host. Sizes are in pixels.
type Measurer interface {
	MeasureText(s string, f Font) f32.Point
}

// Chip lays out the content of a chip with style s: an optional image,
// the title and an optional remove glyph, left to right and centered
// vertically inside the padding. text and image are the pixel sizes of
// the title and the image; a zero image size omits the image.
func Chip(s Style, m unit.Metric, text, image f32.Point) ChipLayout {
	pad := px(m, s.Padding.Leading)
	top := px(m, s.Padding.Top)
	gap := float32(m.Dp(ChipGap))

	var icon f32.Point
	if s.Remove.Enabled {
		icon = f32.Pt(px(m, s.Remove.IconSize.X), px(m, s.Remove.IconSize.Y))
	}
	h := text.Y
	if image.Y > h {
		h = image.Y
	}
	if icon.Y > h {
		h = icon.Y
	}

	var c ChipLayout
	x := pad
	first := true
	place := func(sz f32.Point) f32.Rectangle {
		if !first {
			x += gap
		}
		first = false
		y := top + (h-sz.Y)/2
		r := f32.Rectangle{Min: f32.Pt(x, y), Max: f32.Pt(x+sz.X, y+sz.Y)}
		x += sz.X
		return r
	}
	if image != (f32.Point{}) {
		c.Image = place(image)
	}
	c.Text = place(text)
	if s.Remove.Enabled {
		c.Remove = place(icon)
	}
	c.Size = f32.Point{
		X: x + px(m, s.Padding.Trailing),
		Y: top + h + px(m, s.Padding.Bottom),
	}
	return c
}

// RemoveArea returns the area of a chip of size that activates its
// remove glyph: the glyph, half the gap before it and the trailing
// padding, over the full chip height. It is empty when s has no remove
// glyph.
func RemoveArea(s Style, m unit.Metric, size f32.Point) f32.Rectangle {
	if !s.Remove.Enabled {
		return f32.Rectangle{}
	}
	w := px(m, s.Remove.IconSize.X) + px(m, s.Padding.Trailing) + float32(m.Dp(ChipGap))/2
	return f32.Rectangle{Min: f32.Pt(size.X-w, 0), Max: size}
}

func px(m unit.Metric, v float32) float32 {
	return float32(m.Dp(unit.Dp(v)))
}
