// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "github.com/tagview/tagview/f32"

// Sizes caches the most recent measured size of each item. Sizes are
// reported by the host after it renders an item, so a layout pass may
// see items that are not measured yet; those get a fallback size.
//
// The zero value is an empty cache ready to use. A nil *Sizes behaves
// as an empty cache for lookups. Sizes is not safe for concurrent use.
type Sizes struct {
	m map[ID]f32.Point
}

// Set records the measured size of id, replacing any earlier
// measurement. Measurements for items unknown to the caller are
// stored as is; they are inert until an item with that id is laid out.
func (s *Sizes) Set(id ID, size f32.Point) {
	if s.m == nil {
		s.m = make(map[ID]f32.Point)
	}
	s.m[id] = size
}

// Lookup returns the measured size of id and whether one is known.
func (s *Sizes) Lookup(id ID) (f32.Point, bool) {
	if s == nil {
		return f32.Point{}, false
	}
	sz, ok := s.m[id]
	return sz, ok
}

// Size returns the measured size of id, or the fallback size for an
// item laid out in a container of width. The fallback assumes a full
// width item, so a first pass places every unmeasured item on its own
// row. Without a finite width the fallback is a 1x1 placeholder.
func (s *Sizes) Size(id ID, width float32) f32.Point {
	if sz, ok := s.Lookup(id); ok {
		return sz
	}
	return Fallback(width)
}

// Fallback returns the size assumed for an unmeasured item in a
// container of width.
func Fallback(width float32) f32.Point {
	if IsUnbounded(width) {
		return f32.Point{X: 1, Y: 1}
	}
	return f32.Point{X: width, Y: 1}
}

// Delete forgets the measurement of id.
func (s *Sizes) Delete(id ID) {
	delete(s.m, id)
}

// Retain removes every measurement whose id is not in live and
// returns the number of removed entries.
func (s *Sizes) Retain(live []ID) int {
	if len(s.m) == 0 {
		return 0
	}
	keep := make(map[ID]struct{}, len(live))
	for _, id := range live {
		keep[id] = struct{}{}
	}
	n := 0
	for id := range s.m {
		if _, ok := keep[id]; !ok {
			delete(s.m, id)
			n++
		}
	}
	return n
}

// Len returns the number of measured items.
func (s *Sizes) Len() int {
	if s == nil {
		return 0
	}
	return len(s.m)
}

// Reset forgets every measurement.
func (s *Sizes) Reset() {
	for id := range s.m {
		delete(s.m, id)
	}
}
