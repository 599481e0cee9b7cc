// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"

	"github.com/tagview/tagview/layout"
	"github.com/tagview/tagview/widget"
)

func TestConsoleOutput(t *testing.T) {
	var out, errOut bytes.Buffer
	if err := mainErr([]string{"-width", "20", "go", "yaml", "bubbletea"}, &out, &errOut); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(ansi.Strip(out.String()), "\n")
	if !strings.Contains(lines[0], "go") || !strings.Contains(lines[0], "yaml") {
		t.Errorf("first row %q", lines[0])
	}
	if strings.Contains(lines[0], "bubbletea") {
		t.Errorf("first row %q did not wrap", lines[0])
	}
	if !strings.Contains(out.String(), "bubbletea") {
		t.Errorf("output %q is missing a tag", out.String())
	}
}

func TestConfigFlag(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tags.yaml")
	if err := os.WriteFile(path, []byte("tags: [first]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	var out, errOut bytes.Buffer
	if err := mainErr([]string{"-config", path, "-width", "40", "second"}, &out, &errOut); err != nil {
		t.Fatal(err)
	}
	s := ansi.Strip(out.String())
	if i, j := strings.Index(s, "first"), strings.Index(s, "second"); i < 0 || j < i {
		t.Errorf("output %q", s)
	}

	if err := mainErr([]string{"-config", filepath.Join(dir, "missing.yaml")}, &out, &errOut); err == nil {
		t.Error("missing configuration accepted")
	}
}

func TestPNGOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tags.png")
	var out, errOut bytes.Buffer
	if err := mainErr([]string{"-png", path, "-pngwidth", "200", "-scale", "1", "go", "yaml"}, &out, &errOut); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() <= 0 {
		t.Errorf("image bounds %v", b)
	}
}

func TestBadFlags(t *testing.T) {
	var out, errOut bytes.Buffer
	if err := mainErr([]string{"-pngwidth", "0"}, &out, &errOut); err == nil {
		t.Error("zero png width accepted")
	}
	if err := mainErr([]string{"-nosuchflag"}, &out, &errOut); err == nil {
		t.Error("unknown flag accepted")
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel(t *testing.T) {
	tags := widget.NewTags[struct{}](widget.DefaultStyle())
	tags.Spacing = 1
	tags.AddAll("a", "b", "c")
	m := newModel(tags, 40, zap.NewNop())

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.focus != 1 {
		t.Fatalf("focus = %d", m.focus)
	}
	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	if got := tags.SelectedTitles(); len(got) != 1 || got[0] != "b" {
		t.Errorf("selected %v", got)
	}
	m.Update(keyRunes("x"))
	if got := tags.Titles(); len(got) != 2 || got[1] != "c" {
		t.Errorf("titles after remove %v", got)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.focus != 1 {
		t.Errorf("focus moved past the end: %d", m.focus)
	}

	m.Update(keyRunes("a"))
	if !m.adding {
		t.Fatal("not adding")
	}
	m.Update(keyRunes("new"))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.adding {
		t.Error("still adding")
	}
	if got := tags.Titles(); len(got) != 3 || got[2] != "new" {
		t.Errorf("titles after add %v", got)
	}
	if m.focus != 2 {
		t.Errorf("focus = %d", m.focus)
	}
	if v := ansi.Strip(m.View()); !strings.Contains(v, "new") {
		t.Errorf("view %q", v)
	}

	if _, cmd := m.Update(keyRunes("q")); cmd == nil {
		t.Error("q did not quit")
	}
}

func TestNormalize(t *testing.T) {
	// "e" followed by a combining acute accent.
	if got := normalize(" cafe\u0301 "); got != "caf\u00e9" {
		t.Errorf("normalize = %q", got)
	}
}

func TestModelScrollLimit(t *testing.T) {
	tags := widget.NewTags[struct{}](widget.DefaultStyle())
	tags.Spacing = 1
	tags.AddAll("a", "b", "c")
	tags.Axis = layout.Vertical
	tags.MaxHeight = 1
	// Rows " a   b " and " c " with a blank line between them.
	m := newModel(tags, 7, zap.NewNop())
	for i := 0; i < 5; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.scroll != 2 {
		t.Fatalf("scroll = %d, want 2", m.scroll)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if m.scroll != 1 {
		t.Errorf("scroll after up = %d, want 1", m.scroll)
	}

	tags.Axis = layout.Horizontal
	m.Update(tea.WindowSizeMsg{Width: 5, Height: 10})
	for i := 0; i < 20; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	// The single row " a   b   c " is 11 columns wide.
	if m.scroll != 6 {
		t.Errorf("horizontal scroll = %d, want 6", m.scroll)
	}
}
