// SPDX-License-Identifier: Unlicense OR MIT

package raster

import (
	"github.com/tagview/tagview/f32"
)

// measureCache is a least recently used cache of text measurements.
type measureCache struct {
	m          map[measureKey]*measureElem
	head, tail *measureElem
}

type measureElem struct {
	next, prev *measureElem
	key        measureKey
	size       f32.Point
}

type measureKey struct {
	font string
	ppem int
	str  string
}

const maxSize = 1000

func (l *measureCache) Get(k measureKey) (f32.Point, bool) {
	if e, ok := l.m[k]; ok {
		l.remove(e)
		l.insert(e)
		return e.size, true
	}
	return f32.Point{}, false
}

func (l *measureCache) Put(k measureKey, size f32.Point) {
	if l.m == nil {
		l.m = make(map[measureKey]*measureElem)
		l.head = new(measureElem)
		l.tail = new(measureElem)
		l.head.prev = l.tail
		l.tail.next = l.head
	}
	if e, ok := l.m[k]; ok {
		e.size = size
		l.remove(e)
		l.insert(e)
		return
	}
	val := &measureElem{key: k, size: size}
	l.m[k] = val
	l.insert(val)
	if len(l.m) > maxSize {
		oldest := l.tail.next
		l.remove(oldest)
		delete(l.m, oldest.key)
	}
}

func (l *measureCache) remove(e *measureElem) {
	e.next.prev = e.prev
	e.prev.next = e.next
}

func (l *measureCache) insert(e *measureElem) {
	e.next = l.head
	e.prev = l.head.prev
	e.prev.next = e
	e.next.prev = e
}
