package omap

import (
	"fmt"
	"iter"
	"strings"
)

// First places the map's cursor on the first key and returns it.
// The key belongs to the map. It returns false if the map is empty.
//
// Only one cursor exists per map. Any Put that adds a key, Remove, Clear
// or sort ends the iteration: the following Next returns false.
func (m *Map[K, V]) First() (K, bool) {
	if m == nil {
		return *new(K), false
	}
	m.cursor = m.head
	m.cgen = m.gen
	if m.head == nil {
		return *new(K), false
	}
	return m.head.key, true
}

// Next moves the cursor to the following key and returns it. It returns
// false at the end of the map, if First was never called, or if the map
// was modified since.
func (m *Map[K, V]) Next() (K, bool) {
	if m == nil || m.cursor == nil {
		return *new(K), false
	}
	if m.cgen != m.gen || m.cursor.next == nil {
		m.cursor = nil
		return *new(K), false
	}
	m.cursor = m.cursor.next
	return m.cursor.key, true
}

// All returns an iterator over the entries in chain order. It does not
// move the cursor. The map must not be modified during the iteration.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil {
			return
		}
		for n := m.head; n != nil; n = n.next {
			if !yield(n.key, n.val) {
				return
			}
		}
	}
}

// Keys returns an iterator over the keys in chain order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Range calls fn for each entry until fn returns false.
func (m *Map[K, V]) Range(fn func(key K, value V) bool) {
	m.All()(fn)
}

func (m *Map[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("map[")
	for n := m.headOrNil(); n != nil; n = n.next {
		if n != m.head {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v:%v", n.key, n.val)
	}
	sb.WriteByte(']')
	return sb.String()
}

func (m *Map[K, V]) headOrNil() *node[K, V] {
	if m == nil {
		return nil
	}
	return m.head
}
