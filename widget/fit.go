// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"fmt"

	"github.com/tagview/tagview/f32"
)

// Fit scales a chip image into the image slot of the chip.
type Fit uint8

const (
	// Fill stretches the image to the slot and does not preserve
	// the aspect ratio.
	Fill Fit = iota
	// Contain scales the image as large as possible without cropping
	// and preserves the aspect ratio.
	Contain
	// Cover scales the image to cover the slot and preserves the
	// aspect ratio.
	Cover
	// ScaleDown scales the image down without cropping when it
	// exceeds the slot. It preserves the aspect ratio.
	ScaleDown
	// Unscaled does not alter the scale of the image.
	Unscaled
)

// Rect returns the placement of an image of size src in a slot of size
// dst, centered in the slot. Cover placements, and Unscaled images
// larger than the slot, extend beyond the slot and must be clipped.
func (fit Fit) Rect(src, dst f32.Point) f32.Rectangle {
	if fit == Fill || src.X <= 0 || src.Y <= 0 {
		return f32.Rectangle{Max: dst}
	}
	scale := f32.Point{X: dst.X / src.X, Y: dst.Y / src.Y}
	switch fit {
	case Contain, ScaleDown:
		if scale.Y < scale.X {
			scale.X = scale.Y
		} else {
			scale.Y = scale.X
		}
		// The image would need to be scaled up.
		if fit == ScaleDown && scale.X >= 1 {
			scale = f32.Point{X: 1, Y: 1}
		}
	case Cover:
		if scale.Y > scale.X {
			scale.X = scale.Y
		} else {
			scale.Y = scale.X
		}
	case Unscaled:
		scale = f32.Point{X: 1, Y: 1}
	}
	size := f32.Point{X: src.X * scale.X, Y: src.Y * scale.Y}
	off := dst.Sub(size).Mul(.5)
	return f32.Rectangle{Min: off, Max: off.Add(size)}
}

func (fit Fit) String() string {
	switch fit {
	case Fill:
		return "Fill"
	case Contain:
		return "Contain"
	case Cover:
		return "Cover"
	case ScaleDown:
		return "ScaleDown"
	case Unscaled:
		return "Unscaled"
	default:
		return fmt.Sprintf("Fit(%d)", uint8(fit))
	}
}
