// SPDX-License-Identifier: Unlicense OR MIT

/*
Package console draws tag lists as styled terminal text.

Chips are measured in terminal cells, so the spacing and padding of a
list drawn by this package are in cells too. Chip styles keep their dp
units; Cells converts them.
*/
package console

import (
	"fmt"
	"image/color"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/tagview/tagview/f32"
	"github.com/tagview/tagview/layout"
	"github.com/tagview/tagview/unit"
	"github.com/tagview/tagview/widget"
)

// Options configure Render.
type Options struct {
	// Focus highlights the chip with this ID.
	Focus layout.ID
	// Scroll is the number of lines or columns scrolled along the
	// list's scrolling axis.
	Scroll int
}

// Dp per terminal cell along each axis.
const (
	dpPerColumn = 4
	dpPerLine   = 16
)

// Cells converts a dp length to terminal columns.
func Cells(v unit.Dp) int {
	return int(math.Round(float64(v) / dpPerColumn))
}

// Lines converts a dp length to terminal lines.
func Lines(v unit.Dp) int {
	return int(math.Round(float64(v) / dpPerLine))
}

// ToCells converts the list settings of tags from dp to cells: the
// spacing and the horizontal padding to columns, the vertical padding
// and the maximum height to lines.
func ToCells[T any](tags *widget.Tags[T]) {
	tags.Spacing = float32(Cells(unit.Dp(tags.Spacing)))
	p := tags.Padding
	tags.Padding = layout.Inset{
		Top:      float32(Lines(unit.Dp(p.Top))),
		Leading:  float32(Cells(unit.Dp(p.Leading))),
		Bottom:   float32(Lines(unit.Dp(p.Bottom))),
		Trailing: float32(Cells(unit.Dp(p.Trailing))),
	}
	if tags.MaxHeight > 0 {
		tags.MaxHeight = float32(max(1, Lines(unit.Dp(tags.MaxHeight))))
	}
}

// Measure reports the cell size of every chip of tags.
func Measure[T any](tags *widget.Tags[T], o Options) {
	for _, tag := range tags.All() {
		s := Chip(tag, tag.ID() == o.Focus)
		tags.Measure(tag.ID(), f32.Pt(float32(lipgloss.Width(s)), float32(lipgloss.Height(s))))
	}
}

// Render measures and arranges tags in width columns and returns the
// visible lines.
func Render[T any](tags *widget.Tags[T], width int, o Options) string {
	Measure(tags, o)
	w := float32(width)
	arr := tags.Arrange(w)
	chips := make(map[layout.ID]string, tags.Len())
	for _, tag := range tags.All() {
		chips[tag.ID()] = Chip(tag, tag.ID() == o.Focus)
	}
	out := compose(arr, chips)

	view := lipgloss.NewStyle()
	switch tags.Axis {
	case layout.Vertical:
		out = scrollLines(out, o.Scroll)
		if tags.MaxHeight > 0 {
			view = view.MaxHeight(int(tags.MaxHeight))
		}
	case layout.Horizontal:
		out = scrollColumns(out, o.Scroll)
	}
	if width > 0 {
		view = view.MaxWidth(width)
	}
	return view.Render(out)
}

// Chip renders a single chip.
func Chip[T any](tag *widget.Tag[T], focused bool) string {
	s := tag.Style
	colors := s.Colors(tag.Selected)
	st := lipgloss.NewStyle().
		Padding(Lines(unit.Dp(s.Padding.Top)), Cells(unit.Dp(s.Padding.Trailing)),
			Lines(unit.Dp(s.Padding.Bottom)), Cells(unit.Dp(s.Padding.Leading)))
	if c, ok := termColor(colors.Text); ok {
		st = st.Foreground(c)
	}
	if len(colors.Background) > 0 {
		if c, ok := termColor(colors.Background[0]); ok {
			st = st.Background(c)
		}
	}
	if s.BorderWidth > 0 {
		b := lipgloss.NormalBorder()
		if s.CornerRadius > 0 {
			b = lipgloss.RoundedBorder()
		}
		st = st.Border(b)
		if len(colors.Border) > 0 {
			if c, ok := termColor(colors.Border[len(colors.Border)-1]); ok {
				st = st.BorderForeground(c)
			}
		}
	}
	if focused {
		st = st.Bold(true).Underline(true)
	}
	label := tag.Title
	if s.Remove.Enabled {
		x := lipgloss.NewStyle()
		if c, ok := termColor(s.Remove.Color); ok {
			x = x.Foreground(c)
		}
		if len(colors.Background) > 0 {
			if c, ok := termColor(colors.Background[0]); ok {
				x = x.Background(c)
			}
		}
		label += " " + x.Render("×")
	}
	return st.Render(label)
}

// compose places the rendered chips at the positions of arr.
func compose(arr layout.Arrangement, chips map[layout.ID]string) string {
	var b strings.Builder
	// cur is the line holding the cursor.
	cur := 0
	for i, row := range arr.Rows {
		ids := append([]layout.ID(nil), row...)
		sort.SliceStable(ids, func(i, j int) bool {
			return arr.Positions[ids[i]].X < arr.Positions[ids[j]].X
		})
		y := round(arr.Positions[ids[0]].Y)
		if i > 0 && y <= cur {
			y = cur + 1
		}
		b.WriteString(strings.Repeat("\n", y-cur))
		cur = y
		var parts []string
		col := 0
		for _, id := range ids {
			x := round(arr.Positions[id].X)
			if x > col {
				parts = append(parts, strings.Repeat(" ", x-col))
				col = x
			}
			chip := chips[id]
			parts = append(parts, chip)
			col += lipgloss.Width(chip)
		}
		block := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
		b.WriteString(block)
		cur += lipgloss.Height(block) - 1
	}
	return b.String()
}

func scrollLines(s string, n int) string {
	if n <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	if n >= len(lines) {
		return ""
	}
	return strings.Join(lines[n:], "\n")
}

func scrollColumns(s string, n int) string {
	if n <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = ansi.TruncateLeft(l, n, "")
	}
	return strings.Join(lines, "\n")
}

func round(v float32) int {
	return int(math.Round(float64(v)))
}

func termColor(c color.NRGBA) (lipgloss.Color, bool) {
	if c.A == 0 {
		return "", false
	}
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)), true
}
