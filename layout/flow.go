// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "github.com/tagview/tagview/f32"

// Flow lays out items left to right, wrapping to a new row when the
// next item would overflow the available width. Rows are stacked top
// to bottom and each row is shifted according to Alignment.
//
// Flow holds no state; the measured sizes are supplied by the caller
// on every pass and a pass depends on nothing else.
type Flow struct {
	// Spacing is the space between items in a row and between rows.
	// Negative spacing is accepted and overlaps items.
	Spacing float32
	// Alignment is the horizontal alignment of each row.
	Alignment Alignment
}

// Arrangement is the result of a Flow layout pass.
type Arrangement struct {
	// Rows lists the items of every row, top to bottom.
	Rows [][]ID
	// Positions maps every item to the top left corner of its
	// placement, relative to the content origin.
	Positions map[ID]f32.Point
	// Size is the size of the content. The width is the available
	// width when it is bounded and the extent of the single row
	// otherwise.
	Size f32.Point
}

// Layout arranges items in a container of width. Unmeasured items use
// the fallback size of sizes. An item wider than width is never split
// or shrunk; it occupies a row of its own, as does every item when
// width is not positive. Use Unbounded for a
// container without a width constraint, which places every item on a
// single row and disables alignment.
func (f Flow) Layout(items []ID, sizes *Sizes, width float32) Arrangement {
	arr := Arrangement{Positions: make(map[ID]f32.Point, len(items))}
	if len(items) == 0 {
		return arr
	}
	pos := make([]f32.Point, len(items))
	var x, y, rowHeight float32
	// start is the index of the first item of the current row.
	start := 0
	closeRow := func(end int) {
		f.align(pos[start:end], width, x-f.Spacing)
		arr.Rows = append(arr.Rows, append([]ID(nil), items[start:end]...))
	}
	for i, id := range items {
		sz := sizes.Size(id, width)
		// A container without room puts every item on its own row.
		if i > start && (width <= 0 || x+sz.X > width) {
			closeRow(i)
			x = 0
			y += rowHeight + f.Spacing
			rowHeight = 0
			start = i
		}
		pos[i] = f32.Point{X: x, Y: y}
		x += sz.X + f.Spacing
		if sz.Y > rowHeight {
			rowHeight = sz.Y
		}
	}
	closeRow(len(items))
	for i, id := range items {
		arr.Positions[id] = pos[i]
	}
	arr.Size = f32.Point{X: width, Y: y + rowHeight}
	if IsUnbounded(width) {
		arr.Size.X = x
	}
	return arr
}

// align shifts the positions of a completed row of rowWidth. Rows are
// only ever shifted towards the trailing edge: a row that fills or
// overflows the width stays at the leading edge.
func (f Flow) align(row []f32.Point, width, rowWidth float32) {
	if IsUnbounded(width) {
		return
	}
	off := f.Alignment.offset(width, rowWidth)
	if off <= 0 {
		return
	}
	for i := range row {
		row[i].X += off
	}
}

// Rows returns the number of rows of items laid out in width.
func (f Flow) Rows(items []ID, sizes *Sizes, width float32) int {
	return f.Layout(items, sizes, width).RowCount()
}

// Measure returns the content size of items laid out in width.
func (f Flow) Measure(items []ID, sizes *Sizes, width float32) f32.Point {
	return f.Layout(items, sizes, width).Size
}

// RowCount returns the number of rows. It is zero for an empty
// arrangement.
func (a Arrangement) RowCount() int {
	return len(a.Rows)
}

// Position returns the placement of id.
func (a Arrangement) Position(id ID) (f32.Point, bool) {
	p, ok := a.Positions[id]
	return p, ok
}

// Bounds returns the rectangle covered by id, given the sizes and
// width of the pass that produced a.
func (a Arrangement) Bounds(id ID, sizes *Sizes, width float32) (f32.Rectangle, bool) {
	p, ok := a.Positions[id]
	if !ok {
		return f32.Rectangle{}, false
	}
	return f32.Rectangle{Min: p, Max: p.Add(sizes.Size(id, width))}, true
}

// Row returns the index of the row holding id, or -1.
func (a Arrangement) Row(id ID) int {
	for i, r := range a.Rows {
		for _, rid := range r {
			if rid == id {
				return i
			}
		}
	}
	return -1
}
