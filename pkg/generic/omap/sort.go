package omap

import "cmp"

// Signed is the set of value types SortByNumericValue accepts.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// bubble reorders the chain with repeated passes of adjacent swaps until
// a pass makes none. A node only moves ahead of its predecessor when
// before reports true, so entries that compare equal keep their order.
func (m *Map[K, V]) bubble(before func(a, b *node[K, V]) bool) {
	for pass := m.size - 1; pass > 0; pass-- {
		swapped := false
		link := &m.head
		for i := 0; i < pass; i++ {
			a := *link
			b := a.next
			if before(b, a) {
				a.next = b.next
				b.next = a
				*link = b
				link = &b.next
				swapped = true
				continue
			}
			link = &a.next
		}
		if !swapped {
			break
		}
	}
	m.gen++
}

// SortByKey puts the entries back into ascending key order.
func (m *Map[K, V]) SortByKey() {
	if !m.usable() {
		return
	}
	m.bubble(func(a, b *node[K, V]) bool {
		return m.fns.CompareKeys(a.key, b.key) < 0
	})
}

// SortByValue reorders the entries into ascending order according to
// compare, which is applied to values. Entries with equal values keep
// their relative order.
//
// The map stays usable while value ordered, but keys inserted meanwhile
// are placed relative to keys only. Call SortByKey to restore key order.
func (m *Map[K, V]) SortByValue(compare func(a, b V) int) {
	if !m.usable() || compare == nil {
		return
	}
	m.bubble(func(a, b *node[K, V]) bool {
		return compare(a.val, b.val) < 0
	})
}

// SortByNumericValue reorders the entries of m from the largest value to
// the smallest. Entries with equal values keep their relative order.
func SortByNumericValue[K any, V Signed](m *Map[K, V]) {
	m.SortByValue(func(a, b V) int {
		return cmp.Compare(b, a)
	})
}
