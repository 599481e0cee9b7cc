// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/tagview/tagview/f32"
	"github.com/tagview/tagview/layout"
	"github.com/tagview/tagview/unit"
)

// Tags is an ordered list of chips together with the measured chip
// sizes. It is the single source of truth for the hosts drawing it;
// every layout query recomputes the arrangement from the live order
// and the measurements, so hosts must query again after a resize or a
// mutation.
//
// Mutations are permissive: out of range indices and unknown IDs are
// ignored. Tags is not safe for concurrent use.
type Tags[T any] struct {
	// Spacing is the space between chips and between rows.
	Spacing float32
	// Alignment is the horizontal alignment of each row.
	Alignment layout.Alignment
	// Axis selects wrapping (None, Vertical) or a single
	// horizontally scrolling row (Horizontal).
	Axis layout.Axis
	// Padding is the space around the chips.
	Padding layout.Inset
	// MaxHeight limits the viewport height of a vertically
	// scrolling list. Zero means no limit.
	MaxHeight float32
	// ShowScrollIndicator is a hint for hosts that draw scroll bars.
	ShowScrollIndicator bool
	// Logger receives debug events. Nil disables logging.
	Logger *zap.Logger

	tags    []*Tag[T]
	sizes   layout.Sizes
	style   Style
	handler Handler[T]

	onContentSize func(f32.Point)
	lastContent   f32.Point
	reported      bool
}

// NewTags returns an empty list whose new chips use style.
func NewTags[T any](style Style) *Tags[T] {
	return &Tags[T]{
		Spacing:             8,
		ShowScrollIndicator: true,
		style:               style.clone(),
	}
}

func (t *Tags[T]) log() *zap.Logger {
	if t.Logger == nil {
		return zap.NewNop()
	}
	return t.Logger
}

// Add appends a chip titled title.
func (t *Tags[T]) Add(title string) *Tag[T] {
	var data T
	return t.AddData(title, data)
}

// AddData appends a chip titled title carrying data.
func (t *Tags[T]) AddData(title string, data T) *Tag[T] {
	tag := t.newTag(title, data)
	t.tags = append(t.tags, tag)
	return tag
}

// AddAll appends a chip for every title. Repeated titles within
// titles are added once.
func (t *Tags[T]) AddAll(titles ...string) []*Tag[T] {
	seen := make(map[string]bool, len(titles))
	var added []*Tag[T]
	for _, title := range titles {
		if seen[title] {
			continue
		}
		seen[title] = true
		added = append(added, t.Add(title))
	}
	return added
}

// AddTag appends an existing chip. The chip's events are redirected
// to the list's handler. AddTag reports false for a nil chip or a chip
// already in the list.
func (t *Tags[T]) AddTag(tag *Tag[T]) bool {
	return t.InsertTag(tag, len(t.tags))
}

// Insert inserts a chip titled title at index. It returns nil and
// leaves the list unchanged when index is out of range.
func (t *Tags[T]) Insert(title string, index int) *Tag[T] {
	if index < 0 || index > len(t.tags) {
		t.log().Debug("insert out of range", zap.Int("index", index), zap.Int("len", len(t.tags)))
		return nil
	}
	var data T
	tag := t.newTag(title, data)
	t.tags = slices.Insert(t.tags, index, tag)
	return tag
}

// InsertTag inserts an existing chip at index.
func (t *Tags[T]) InsertTag(tag *Tag[T], index int) bool {
	if tag == nil || t.Index(tag.id) >= 0 {
		return false
	}
	if index < 0 || index > len(t.tags) {
		t.log().Debug("insert out of range", zap.Int("index", index), zap.Int("len", len(t.tags)))
		return false
	}
	if tag.id == 0 {
		tag.id = layout.ID(lastID.Add(1))
	}
	tag.handler = t.handler
	t.tags = slices.Insert(t.tags, index, tag)
	return true
}

func (t *Tags[T]) newTag(title string, data T) *Tag[T] {
	return &Tag[T]{
		Title:   title,
		Style:   t.style.clone(),
		Data:    data,
		id:      layout.ID(lastID.Add(1)),
		handler: t.handler,
	}
}

// Remove removes the chip identified by id.
func (t *Tags[T]) Remove(id layout.ID) bool {
	return t.RemoveAt(t.Index(id))
}

// RemoveAt removes the chip at index.
func (t *Tags[T]) RemoveAt(index int) bool {
	if index < 0 || index >= len(t.tags) {
		return false
	}
	t.detach(t.tags[index])
	t.tags = slices.Delete(t.tags, index, index+1)
	return true
}

// detach forgets the measurement of a removed chip and stops its
// events from reaching the list's handler.
func (t *Tags[T]) detach(tag *Tag[T]) {
	t.sizes.Delete(tag.id)
	tag.handler = nil
}

// RemoveTitle removes every chip titled title and returns the number
// of removed chips.
func (t *Tags[T]) RemoveTitle(title string) int {
	return t.RemoveFunc(func(tag *Tag[T]) bool {
		return tag.Title == title
	})
}

// RemoveFunc removes every chip for which del returns true and
// returns the number of removed chips.
func (t *Tags[T]) RemoveFunc(del func(tag *Tag[T]) bool) int {
	n := len(t.tags)
	t.tags = slices.DeleteFunc(t.tags, func(tag *Tag[T]) bool {
		if !del(tag) {
			return false
		}
		t.detach(tag)
		return true
	})
	return n - len(t.tags)
}

// Clear removes every chip.
func (t *Tags[T]) Clear() {
	for _, tag := range t.tags {
		tag.handler = nil
	}
	t.tags = nil
	t.sizes.Reset()
}

// SetTitles replaces the chips with one chip per title. Existing
// chips are reused in order for matching titles, keeping their
// selection, style and data.
func (t *Tags[T]) SetTitles(titles []string) {
	existing := make(map[string][]*Tag[T])
	for _, tag := range t.tags {
		existing[tag.Title] = append(existing[tag.Title], tag)
	}
	tags := make([]*Tag[T], 0, len(titles))
	for _, title := range titles {
		if reuse := existing[title]; len(reuse) > 0 {
			tags = append(tags, reuse[0])
			existing[title] = reuse[1:]
			continue
		}
		var data T
		tags = append(tags, t.newTag(title, data))
	}
	for _, dropped := range existing {
		for _, tag := range dropped {
			tag.handler = nil
		}
	}
	t.tags = tags
	if n := t.sizes.Retain(t.IDs()); n > 0 {
		t.log().Debug("pruned measurements", zap.Int("count", n))
	}
}

// Toggle flips the selection of the chip identified by id.
func (t *Tags[T]) Toggle(id layout.ID) bool {
	tag := t.Tag(id)
	if tag == nil {
		return false
	}
	tag.Selected = !tag.Selected
	return true
}

// SetSelected sets the selection of the chip identified by id.
func (t *Tags[T]) SetSelected(id layout.ID, selected bool) bool {
	tag := t.Tag(id)
	if tag == nil {
		return false
	}
	tag.Selected = selected
	return true
}

// Len returns the number of chips.
func (t *Tags[T]) Len() int {
	return len(t.tags)
}

// All returns the chips in order.
func (t *Tags[T]) All() []*Tag[T] {
	return slices.Clone(t.tags)
}

// IDs returns the IDs of the chips in order.
func (t *Tags[T]) IDs() []layout.ID {
	ids := make([]layout.ID, len(t.tags))
	for i, tag := range t.tags {
		ids[i] = tag.id
	}
	return ids
}

// Titles returns the chip titles in order.
func (t *Tags[T]) Titles() []string {
	titles := make([]string, len(t.tags))
	for i, tag := range t.tags {
		titles[i] = tag.Title
	}
	return titles
}

// Tag returns the chip identified by id, or nil.
func (t *Tags[T]) Tag(id layout.ID) *Tag[T] {
	if i := t.Index(id); i >= 0 {
		return t.tags[i]
	}
	return nil
}

// Index returns the position of the chip identified by id, or -1.
func (t *Tags[T]) Index(id layout.ID) int {
	return slices.IndexFunc(t.tags, func(tag *Tag[T]) bool {
		return tag.id == id
	})
}

// At returns the chip at index, or nil.
func (t *Tags[T]) At(index int) *Tag[T] {
	if index < 0 || index >= len(t.tags) {
		return nil
	}
	return t.tags[index]
}

// Selected returns the selected chips in order.
func (t *Tags[T]) Selected() []*Tag[T] {
	var sel []*Tag[T]
	for _, tag := range t.tags {
		if tag.Selected {
			sel = append(sel, tag)
		}
	}
	return sel
}

// SelectedIndices returns the positions of the selected chips.
func (t *Tags[T]) SelectedIndices() []int {
	var idx []int
	for i, tag := range t.tags {
		if tag.Selected {
			idx = append(idx, i)
		}
	}
	return idx
}

// SelectedTitles returns the titles of the selected chips.
func (t *Tags[T]) SelectedTitles() []string {
	var titles []string
	for _, tag := range t.tags {
		if tag.Selected {
			titles = append(titles, tag.Title)
		}
	}
	return titles
}

// Style returns the style applied to new chips.
func (t *Tags[T]) Style() Style {
	return t.style.clone()
}

// ApplyStyle sets the style of every chip, and of chips added later,
// to s. Measurements are kept; hosts measure again before the next
// layout.
func (t *Tags[T]) ApplyStyle(s Style) {
	t.style = s.clone()
	for _, tag := range t.tags {
		tag.Style = s.clone()
	}
}

// SetHandler registers the receiver of chip events for every current
// and future chip.
func (t *Tags[T]) SetHandler(h Handler[T]) {
	t.handler = h
	for _, tag := range t.tags {
		tag.handler = h
	}
}

// OnContentSize registers fn to be called by ContentSize whenever the
// content size differs from the previously reported one.
func (t *Tags[T]) OnContentSize(fn func(size f32.Point)) {
	t.onContentSize = fn
	t.reported = false
}

// Press reports a press on the chip identified by id.
func (t *Tags[T]) Press(id layout.ID) bool {
	tag := t.Tag(id)
	if tag == nil {
		return false
	}
	tag.Press()
	return true
}

// PressRemove reports a press on the remove glyph of the chip
// identified by id.
func (t *Tags[T]) PressRemove(id layout.ID) bool {
	tag := t.Tag(id)
	if tag == nil {
		return false
	}
	tag.PressRemove()
	return true
}

// Measure records the measured pixel size of the chip identified by
// id. Measurements for chips no longer in the list are ignored.
func (t *Tags[T]) Measure(id layout.ID, size f32.Point) {
	if t.Index(id) < 0 {
		t.log().Debug("ignoring measurement of removed tag", zap.Uint64("id", uint64(id)))
		return
	}
	t.sizes.Set(id, size)
}

// Size returns the recorded measurement of the chip identified by id.
func (t *Tags[T]) Size(id layout.ID) (f32.Point, bool) {
	return t.sizes.Lookup(id)
}

// MeasureAll measures every chip with m and records the sizes.
func (t *Tags[T]) MeasureAll(m Measurer, metric unit.Metric) {
	for _, tag := range t.tags {
		t.sizes.Set(tag.id, tag.Chip(m, metric).Size)
	}
}

// Arrange lays out the chips in a list of width. Positions are
// relative to the list origin and include the padding, as does the
// size of a non-empty arrangement. An empty list has a zero size.
func (t *Tags[T]) Arrange(width float32) layout.Arrangement {
	inner := t.innerWidth(width)
	flow := layout.Flow{Spacing: t.Spacing, Alignment: t.Alignment}
	arr := flow.Layout(t.IDs(), &t.sizes, inner)
	if len(t.tags) == 0 {
		return arr
	}
	off := f32.Pt(t.Padding.Leading, t.Padding.Top)
	for id, p := range arr.Positions {
		arr.Positions[id] = p.Add(off)
	}
	arr.Size = arr.Size.Add(f32.Pt(t.Padding.Horizontal(), t.Padding.Vertical()))
	return arr
}

// innerWidth is the width available to the chips of a list of width.
func (t *Tags[T]) innerWidth(width float32) float32 {
	if t.Axis == layout.Horizontal || layout.IsUnbounded(width) {
		return layout.Unbounded
	}
	return width - t.Padding.Horizontal()
}

// Rows returns the number of rows in a list of width.
func (t *Tags[T]) Rows(width float32) int {
	return t.Arrange(width).RowCount()
}

// ContentSize returns the size of the content of a list of width,
// padding included, and reports changes to the OnContentSize callback.
func (t *Tags[T]) ContentSize(width float32) f32.Point {
	sz := t.Arrange(width).Size
	if t.onContentSize != nil && (!t.reported || sz != t.lastContent) {
		t.lastContent = sz
		t.reported = true
		t.onContentSize(sz)
	}
	return sz
}

// ViewportHeight returns the visible height of a list of width. A
// vertically scrolling list is limited to MaxHeight.
func (t *Tags[T]) ViewportHeight(width float32) float32 {
	h := t.ContentSize(width).Y
	if t.Axis == layout.Vertical && t.MaxHeight > 0 && h > t.MaxHeight {
		return t.MaxHeight
	}
	return h
}

// Scrollable reports whether the content of a list of width exceeds
// its viewport along the scrolling axis.
func (t *Tags[T]) Scrollable(width float32) bool {
	sz := t.ContentSize(width)
	switch t.Axis {
	case layout.Vertical:
		return t.MaxHeight > 0 && sz.Y > t.MaxHeight
	case layout.Horizontal:
		return !layout.IsUnbounded(width) && sz.X > width
	}
	return false
}

// Click dispatches a press at p, in list coordinates, to the chip of
// arr under p. A press on the remove area of a chip is reported as a
// remove press. Click reports whether a chip was hit.
func (t *Tags[T]) Click(arr layout.Arrangement, metric unit.Metric, p f32.Point) bool {
	for _, tag := range t.tags {
		pos, ok := arr.Position(tag.id)
		if !ok {
			continue
		}
		sz, ok := t.sizes.Lookup(tag.id)
		if !ok {
			continue
		}
		local := p.Sub(pos)
		if !local.In(f32.Rectangle{Max: sz}) {
			continue
		}
		if local.In(RemoveArea(tag.Style, metric, sz)) {
			tag.PressRemove()
		} else {
			tag.Press()
		}
		return true
	}
	return false
}
