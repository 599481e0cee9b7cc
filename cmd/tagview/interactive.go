// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/tagview/tagview/console"
	"github.com/tagview/tagview/layout"
	"github.com/tagview/tagview/widget"
)

type keyMap struct {
	Prev, Next   key.Binding
	Up, Down     key.Binding
	Toggle       key.Binding
	Remove       key.Binding
	Add          key.Binding
	Quit         key.Binding
	Submit, Back key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Toggle, k.Remove, k.Add, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Up, k.Down, k.Submit, k.Back}}
}

var keys = keyMap{
	Prev:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
	Next:   key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/l", "next")),
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
	Toggle: key.NewBinding(key.WithKeys(" ", "space", "enter"), key.WithHelp("space", "select")),
	Remove: key.NewBinding(key.WithKeys("x", "delete", "backspace"), key.WithHelp("x", "remove")),
	Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add tag")),
	Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
}

// model is the bubbletea model of an interactive session. Selection
// and removal go through the list's handler, as a press on a chip
// would.
type model struct {
	tags   *widget.Tags[struct{}]
	log    *zap.Logger
	help   help.Model
	input  textinput.Model
	adding bool
	width  int
	focus  int
	scroll int
}

func newModel(tags *widget.Tags[struct{}], width int, logger *zap.Logger) *model {
	in := textinput.New()
	in.Placeholder = "new tag"
	in.Prompt = "add: "
	m := &model{
		tags:  tags,
		log:   logger,
		help:  help.New(),
		input: in,
		width: width,
	}
	tags.SetHandler(widget.HandlerFuncs[struct{}]{
		Press: func(tag *widget.Tag[struct{}]) {
			tag.Selected = !tag.Selected
		},
		Remove: func(tag *widget.Tag[struct{}]) {
			tags.Remove(tag.ID())
			logger.Debug("removed tag", zap.String("title", tag.Title))
			m.clampFocus()
		},
	})
	return m
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.clampScroll()
	case tea.KeyMsg:
		if m.adding {
			return m.updateInput(msg)
		}
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Prev):
			m.focus--
			m.clampFocus()
		case key.Matches(msg, keys.Next):
			m.focus++
			m.clampFocus()
		case key.Matches(msg, keys.Up):
			if m.scroll > 0 {
				m.scroll--
			}
		case key.Matches(msg, keys.Down):
			m.scroll++
		case key.Matches(msg, keys.Toggle):
			m.tags.Press(m.focused())
		case key.Matches(msg, keys.Remove):
			m.tags.PressRemove(m.focused())
		case key.Matches(msg, keys.Add):
			m.adding = true
			return m, m.input.Focus()
		}
		m.clampScroll()
	}
	return m, nil
}

func (m *model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Submit):
		if title := normalize(m.input.Value()); title != "" {
			tag := m.tags.Add(title)
			m.log.Debug("added tag", zap.String("title", title), zap.Uint64("id", uint64(tag.ID())))
			m.focus = m.tags.Len() - 1
		}
		fallthrough
	case key.Matches(msg, keys.Back):
		m.adding = false
		m.input.Reset()
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) focused() layout.ID {
	if t := m.tags.At(m.focus); t != nil {
		return t.ID()
	}
	return 0
}

func (m *model) clampFocus() {
	if n := m.tags.Len(); m.focus >= n {
		m.focus = n - 1
	}
	if m.focus < 0 {
		m.focus = 0
	}
}

// maxScroll returns the number of lines or columns the content extends
// past the viewport along the scrolling axis.
func (m *model) maxScroll() int {
	console.Measure(m.tags, console.Options{Focus: m.focused()})
	size := m.tags.ContentSize(float32(m.width))
	var n float32
	switch m.tags.Axis {
	case layout.Vertical:
		if m.tags.MaxHeight > 0 {
			n = size.Y - m.tags.MaxHeight
		}
	case layout.Horizontal:
		if m.tags.Len() > 0 {
			// The single row ends with one spacing.
			n = size.X - m.tags.Spacing - float32(m.width)
		}
	}
	return max(0, int(math.Ceil(float64(n))))
}

func (m *model) clampScroll() {
	m.scroll = min(m.scroll, m.maxScroll())
	if m.scroll < 0 {
		m.scroll = 0
	}
}

func (m *model) View() string {
	var b strings.Builder
	b.WriteString(console.Render(m.tags, m.width, console.Options{Focus: m.focused(), Scroll: m.scroll}))
	b.WriteString("\n\n")
	if m.adding {
		b.WriteString(m.input.View())
	} else {
		b.WriteString(m.help.View(keys))
	}
	b.WriteString("\n")
	return b.String()
}
