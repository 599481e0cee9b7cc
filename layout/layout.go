// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"
	"math"
)

// ID identifies a laid out item. IDs are opaque to the layout engine
// and must be unique within a single layout pass.
type ID uint64

// Alignment is the horizontal alignment of the items of a row
// relative to the available width.
type Alignment uint8

// Axis is the scrolling axis of a tag list. It selects whether
// the list wraps items into rows (Vertical, None) or keeps them
// on a single, horizontally scrolling row (Horizontal).
type Axis uint8

// Inset is the space around a list or inside a chip.
type Inset struct {
	Top, Leading, Bottom, Trailing float32
}

const (
	Leading Alignment = iota
	Center
	Trailing
)

const (
	// None lays out rows without scrolling.
	None Axis = iota
	// Vertical wraps rows and scrolls vertically.
	Vertical
	// Horizontal keeps every item on one row and scrolls horizontally.
	Horizontal
)

// Unbounded is the width of a container without a finite width
// constraint, such as the scrolling axis of a horizontal list or a
// container that has not been measured yet.
var Unbounded = float32(math.Inf(1))

// IsUnbounded reports whether width is Unbounded.
func IsUnbounded(width float32) bool {
	return math.IsInf(float64(width), 1)
}

// UniformInset returns an Inset with a single inset applied to all
// edges.
func UniformInset(v float32) Inset {
	return Inset{Top: v, Leading: v, Bottom: v, Trailing: v}
}

// SymmetricInset returns an Inset with the horizontal inset h applied
// to the leading and trailing edges and the vertical inset v applied to
// the top and bottom edges.
func SymmetricInset(h, v float32) Inset {
	return Inset{Top: v, Leading: h, Bottom: v, Trailing: h}
}

// Horizontal returns the sum of the leading and trailing insets.
func (in Inset) Horizontal() float32 {
	return in.Leading + in.Trailing
}

// Vertical returns the sum of the top and bottom insets.
func (in Inset) Vertical() float32 {
	return in.Top + in.Bottom
}

// offset returns the horizontal shift of a row of rowWidth in a
// container of width.
func (a Alignment) offset(width, rowWidth float32) float32 {
	switch a {
	case Center:
		return (width - rowWidth) / 2
	case Trailing:
		return width - rowWidth
	default:
		return 0
	}
}

func (a Alignment) String() string {
	switch a {
	case Leading:
		return "Leading"
	case Center:
		return "Center"
	case Trailing:
		return "Trailing"
	default:
		return fmt.Sprintf("Alignment(%d)", uint8(a))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Alignment) MarshalText() ([]byte, error) {
	switch a {
	case Leading:
		return []byte("leading"), nil
	case Center:
		return []byte("center"), nil
	case Trailing:
		return []byte("trailing"), nil
	}
	return nil, fmt.Errorf("layout: invalid alignment %d", uint8(a))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Alignment) UnmarshalText(b []byte) error {
	switch string(b) {
	case "leading", "start", "":
		*a = Leading
	case "center", "middle":
		*a = Center
	case "trailing", "end":
		*a = Trailing
	default:
		return fmt.Errorf("layout: unknown alignment %q", b)
	}
	return nil
}

func (a Axis) String() string {
	switch a {
	case None:
		return "None"
	case Vertical:
		return "Vertical"
	case Horizontal:
		return "Horizontal"
	default:
		return fmt.Sprintf("Axis(%d)", uint8(a))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Axis) MarshalText() ([]byte, error) {
	switch a {
	case None:
		return []byte("none"), nil
	case Vertical:
		return []byte("vertical"), nil
	case Horizontal:
		return []byte("horizontal"), nil
	}
	return nil, fmt.Errorf("layout: invalid axis %d", uint8(a))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Axis) UnmarshalText(b []byte) error {
	switch string(b) {
	case "none", "":
		*a = None
	case "vertical":
		*a = Vertical
	case "horizontal":
		*a = Horizontal
	default:
		return fmt.Errorf("layout: unknown axis %q", b)
	}
	return nil
}
