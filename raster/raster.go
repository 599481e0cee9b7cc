// SPDX-License-Identifier: Unlicense OR MIT

/*
Package raster draws tag lists into images.

Render measures every chip with the faces of a Fonts, reports the
sizes to the list, arranges it and paints the chips with rounded
corners, gradient fills and borders.
*/
package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"

	"github.com/tagview/tagview/f32"
	"github.com/tagview/tagview/layout"
	"github.com/tagview/tagview/unit"
	"github.com/tagview/tagview/widget"
)

// Options configure Render.
type Options struct {
	Metric unit.Metric
	// Background fills the image before drawing. Nil leaves it
	// transparent.
	Background color.Color
	// Fonts measures and draws titles. Nil uses NewFonts(Metric).
	Fonts *Fonts
}

// Render draws tags into a new image of width pixels. The image is as
// tall as the list's viewport; chips outside it are clipped.
func Render[T any](tags *widget.Tags[T], width int, o Options) *image.RGBA {
	fonts := o.Fonts
	if fonts == nil {
		fonts = NewFonts(o.Metric)
	}
	tags.MeasureAll(fonts, o.Metric)
	w := float32(width)
	arr := tags.Arrange(w)
	h := int(math.Ceil(float64(tags.ViewportHeight(w))))
	img := image.NewRGBA(image.Rect(0, 0, width, h))
	if width <= 0 || h <= 0 {
		return img
	}
	dc := gg.NewContextForRGBA(img)
	if o.Background != nil {
		dc.SetColor(o.Background)
		dc.Clear()
	}
	Draw(dc, tags, arr, fonts, o.Metric)
	if tags.ShowScrollIndicator && tags.Scrollable(w) {
		drawIndicator(dc, tags.Axis, arr.Size, f32.Pt(w, float32(h)))
	}
	return img
}

// Draw paints the chips of tags at the positions of arr. The chips
// must have been measured with fonts.
func Draw[T any](dc *gg.Context, tags *widget.Tags[T], arr layout.Arrangement, fonts *Fonts, m unit.Metric) {
	for _, tag := range tags.All() {
		pos, ok := arr.Position(tag.ID())
		if !ok {
			continue
		}
		drawChip(dc, tag, pos, tag.Chip(fonts, m), fonts, m)
	}
}

func drawChip[T any](dc *gg.Context, tag *widget.Tag[T], pos f32.Point, c widget.ChipLayout, fonts *Fonts, m unit.Metric) {
	s := tag.Style
	colors := s.Colors(tag.Selected)
	x, y := float64(pos.X), float64(pos.Y)
	w, h := float64(c.Size.X), float64(c.Size.Y)
	r := float64(m.Dp(s.CornerRadius))

	if fill := pattern(colors.Background, x, y, w, h); fill != nil {
		rect(dc, x, y, w, h, r)
		dc.SetFillStyle(fill)
		dc.Fill()
	}
	if bw := float64(m.Dp(s.BorderWidth)); bw > 0 {
		if stroke := pattern(colors.Border, x, y, w, h); stroke != nil {
			rect(dc, x+.5, y+.5, w-1, h-1, r)
			dc.SetStrokeStyle(stroke)
			dc.SetLineWidth(bw)
			dc.Stroke()
		}
	}
	if tag.Image != nil && !c.Image.Empty() {
		drawImage(dc, tag.Image, tag.ImageFit, c.Image.Add(pos))
	}

	dc.SetFontFace(fonts.Face(s.Font))
	dc.SetColor(colors.Text)
	dc.DrawStringAnchored(tag.Title, x+float64(c.Text.Min.X), y+float64(c.Text.Min.Y+c.Text.Dy()/2), 0, .35)

	if !c.Remove.Empty() {
		b := c.Remove.Add(pos)
		dc.SetColor(s.Remove.Color)
		dc.SetLineWidth(math.Max(1, float64(m.Dp(1.5))))
		dc.DrawLine(float64(b.Min.X), float64(b.Min.Y), float64(b.Max.X), float64(b.Max.Y))
		dc.DrawLine(float64(b.Min.X), float64(b.Max.Y), float64(b.Max.X), float64(b.Min.Y))
		dc.Stroke()
	}
}

// drawImage draws img into slot, scaled by fit and clipped to the slot.
func drawImage(dc *gg.Context, img image.Image, fit widget.Fit, slot f32.Rectangle) {
	b := img.Bounds()
	r := fit.Rect(f32.Pt(float32(b.Dx()), float32(b.Dy())), slot.Size()).Add(slot.Min)
	w, h := int(math.Round(float64(r.Dx()))), int(math.Round(float64(r.Dy())))
	if w <= 0 || h <= 0 {
		return
	}
	scaled := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.BiLinear.Scale(scaled, scaled.Bounds(), img, b, xdraw.Over, nil)
	dc.Push()
	defer dc.Pop()
	dc.DrawRectangle(float64(slot.Min.X), float64(slot.Min.Y), float64(slot.Dx()), float64(slot.Dy()))
	dc.Clip()
	dc.DrawImage(scaled, int(math.Round(float64(r.Min.X))), int(math.Round(float64(r.Min.Y))))
}

func rect(dc *gg.Context, x, y, w, h, r float64) {
	if r > 0 {
		dc.DrawRoundedRectangle(x, y, w, h, r)
	} else {
		dc.DrawRectangle(x, y, w, h)
	}
}

// pattern returns a solid pattern for a single color and a linear
// gradient from the bottom leading corner to the top trailing corner
// for several. It returns nil for no colors.
func pattern(stops []color.NRGBA, x, y, w, h float64) gg.Pattern {
	switch len(stops) {
	case 0:
		return nil
	case 1:
		return gg.NewSolidPattern(stops[0])
	}
	g := gg.NewLinearGradient(x, y+h, x+w, y)
	for i, c := range stops {
		g.AddColorStop(float64(i)/float64(len(stops)-1), c)
	}
	return g
}

// drawIndicator draws a scroll bar along the scrolling axis sized by
// the visible fraction of the content.
func drawIndicator(dc *gg.Context, axis layout.Axis, content, view f32.Point) {
	const thickness = 3
	dc.SetColor(color.NRGBA{A: 0x60})
	switch axis {
	case layout.Vertical:
		l := float64(view.Y * view.Y / content.Y)
		dc.DrawRoundedRectangle(float64(view.X)-thickness-1, 1, thickness, l-2, thickness/2)
	case layout.Horizontal:
		l := float64(view.X * view.X / content.X)
		dc.DrawRoundedRectangle(1, float64(view.Y)-thickness-1, l-2, thickness, thickness/2)
	default:
		return
	}
	dc.Fill()
}
