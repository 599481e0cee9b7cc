// SPDX-License-Identifier: Unlicense OR MIT

package console

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/tagview/tagview/layout"
	"github.com/tagview/tagview/unit"
	"github.com/tagview/tagview/widget"
)

func newTags(titles ...string) *widget.Tags[struct{}] {
	tags := widget.NewTags[struct{}](widget.DefaultStyle())
	tags.Spacing = 1
	tags.AddAll(titles...)
	return tags
}

// lines strips escapes and trailing blanks from the rendered output.
func lines(s string) []string {
	ls := strings.Split(ansi.Strip(s), "\n")
	for i, l := range ls {
		ls[i] = strings.TrimRight(l, " ")
	}
	return ls
}

func equal(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %q, want %q", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCells(t *testing.T) {
	if got := Cells(4); got != 1 {
		t.Errorf("Cells(4) = %d", got)
	}
	if got := Cells(10); got != 3 {
		t.Errorf("Cells(10) = %d", got)
	}
	if got := Lines(4); got != 0 {
		t.Errorf("Lines(4) = %d", got)
	}
	if got := Lines(unit.Dp(16)); got != 1 {
		t.Errorf("Lines(16) = %d", got)
	}
}

func TestChip(t *testing.T) {
	tags := newTags("go")
	tag := tags.At(0)
	s := Chip(tag, false)
	if got := ansi.Strip(s); got != " go " {
		t.Errorf("chip = %q", got)
	}
	if w := lipgloss.Width(s); w != 4 {
		t.Errorf("width = %d", w)
	}

	tag.Style.Remove.Enabled = true
	if got := ansi.Strip(Chip(tag, true)); got != " go × " {
		t.Errorf("chip with remove = %q", got)
	}

	tag.Style.BorderWidth = 1
	tag.Style.CornerRadius = 4
	s = Chip(tag, false)
	if h := lipgloss.Height(s); h != 3 {
		t.Errorf("bordered height = %d", h)
	}
	if !strings.HasPrefix(ansi.Strip(s), "╭") {
		t.Errorf("bordered chip %q is not rounded", ansi.Strip(s))
	}
}

func TestMeasure(t *testing.T) {
	tags := newTags("a", "bc")
	Measure(tags, Options{})
	for i, want := range []float32{3, 4} {
		sz, ok := tags.Size(tags.At(i).ID())
		if !ok || sz.X != want || sz.Y != 1 {
			t.Errorf("tag %d: size %v, %v", i, sz, ok)
		}
	}
}

func TestRenderWrap(t *testing.T) {
	tags := newTags("a", "b", "c")
	got := lines(Render(tags, 7, Options{}))
	equal(t, got, []string{" a   b", "", " c"})
}

func TestRenderAlignment(t *testing.T) {
	tags := newTags("a", "b", "c")
	tags.Alignment = layout.Trailing
	got := lines(Render(tags, 9, Options{}))
	// The first row is 7 columns wide and the second 3.
	equal(t, got, []string{"   a   b", "", "       c"})
}

func TestRenderEmpty(t *testing.T) {
	tags := newTags()
	if got := ansi.Strip(Render(tags, 10, Options{})); got != "" {
		t.Errorf("empty list rendered %q", got)
	}
}

func TestRenderVerticalScroll(t *testing.T) {
	tags := newTags("a", "b", "c")
	tags.Axis = layout.Vertical
	tags.MaxHeight = 1
	equal(t, lines(Render(tags, 7, Options{})), []string{" a   b"})
	equal(t, lines(Render(tags, 7, Options{Scroll: 2})), []string{" c"})
}

func TestRenderHorizontalScroll(t *testing.T) {
	tags := newTags("a", "b", "c")
	tags.Axis = layout.Horizontal
	equal(t, lines(Render(tags, 20, Options{})), []string{" a   b   c"})
	equal(t, lines(Render(tags, 20, Options{Scroll: 4})), []string{" b   c"})
}

func TestTermColor(t *testing.T) {
	c, ok := termColor(widget.DefaultStyle().TextColor)
	if !ok || c != "#ffffff" {
		t.Errorf("termColor = %q, %v", c, ok)
	}
	if _, ok := termColor(widget.DefaultStyle().SelectedBorderColor); ok {
		t.Error("transparent color mapped to a terminal color")
	}
}

func TestToCells(t *testing.T) {
	tags := newTags()
	tags.Spacing = 8
	tags.Padding = layout.UniformInset(16)
	tags.MaxHeight = 4
	ToCells(tags)
	if tags.Spacing != 2 {
		t.Errorf("spacing = %v", tags.Spacing)
	}
	if want := (layout.Inset{Top: 1, Leading: 4, Bottom: 1, Trailing: 4}); tags.Padding != want {
		t.Errorf("padding = %+v", tags.Padding)
	}
	if tags.MaxHeight != 1 {
		t.Errorf("max height = %v", tags.MaxHeight)
	}
}
