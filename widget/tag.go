// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"sync/atomic"

	"github.com/tagview/tagview/f32"
	"github.com/tagview/tagview/layout"
	"github.com/tagview/tagview/unit"
)

// Tag is a single chip. Data carries the consumer's payload.
type Tag[T any] struct {
	Title    string
	Selected bool
	// Style is the chip's own copy of the list style. Changing it
	// overrides the list style for this chip until the next
	// Tags.ApplyStyle.
	Style Style
	Data  T
	// Image is drawn before the title in a slot of ImageSize dp,
	// scaled according to ImageFit.
	Image     image.Image
	ImageSize f32.Point
	ImageFit  Fit

	id      layout.ID
	handler Handler[T]
}

// Handler receives the events of the chips of a list.
type Handler[T any] interface {
	TagPressed(tag *Tag[T])
	RemovePressed(tag *Tag[T])
}

// HandlerFuncs adapts functions to a Handler. Nil functions ignore
// their event.
type HandlerFuncs[T any] struct {
	Press  func(tag *Tag[T])
	Remove func(tag *Tag[T])
}

var lastID atomic.Uint64

// NewTag returns a detached tag with the default style. Its ID is
// unique for the life of the process.
func NewTag[T any](title string, data T) *Tag[T] {
	return &Tag[T]{
		Title: title,
		Style: DefaultStyle(),
		Data:  data,
		id:    layout.ID(lastID.Add(1)),
	}
}

// ID returns the identity of the tag used for layout.
func (t *Tag[T]) ID() layout.ID {
	return t.id
}

// Press reports a press on the chip to the list's handler.
func (t *Tag[T]) Press() {
	if t.handler != nil {
		t.handler.TagPressed(t)
	}
}

// PressRemove reports a press on the chip's remove glyph.
func (t *Tag[T]) PressRemove() {
	if t.handler != nil {
		t.handler.RemovePressed(t)
	}
}

// Chip lays out the chip's content, measuring its title with m.
func (t *Tag[T]) Chip(m Measurer, metric unit.Metric) ChipLayout {
	var img f32.Point
	if t.Image != nil {
		img = f32.Pt(px(metric, t.ImageSize.X), px(metric, t.ImageSize.Y))
	}
	return Chip(t.Style, metric, m.MeasureText(t.Title, t.Style.Font), img)
}

func (h HandlerFuncs[T]) TagPressed(tag *Tag[T]) {
	if h.Press != nil {
		h.Press(tag)
	}
}

func (h HandlerFuncs[T]) RemovePressed(tag *Tag[T]) {
	if h.Remove != nil {
		h.Remove(tag)
	}
}
