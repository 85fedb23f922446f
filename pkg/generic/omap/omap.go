// Package omap implements an ordered map on top of a singly linked list.
//
// A Map keeps its entries sorted by key using a caller supplied three-way
// comparison. It never stores the caller's keys and values directly: every
// key and value is copied on the way in and released when its entry goes
// away, using the operations given to New. Lookups are linear.
//
// A Map is not safe for concurrent use.
package omap

import (
	"cmp"

	"github.com/pkg/errors"
	"github.com/scottcagno/collections"
	"go.uber.org/zap"
)

// Map is an ordered map of owned keys and values.
type Map[K, V any] struct {
	head *node[K, V]
	size int

	// cursor is the current node of the First/Next protocol. It is only
	// valid while cgen matches gen, which changes on every structural
	// modification.
	cursor *node[K, V]
	cgen   uint64
	gen    uint64

	fns Funcs[K, V]
	log *zap.Logger
}

var _ collections.OrderedMap[string, int] = (*Map[string, int])(nil)

// New returns an empty map bound to fns. It returns ErrNullArgument if
// any of the functions are missing.
func New[K, V any](fns Funcs[K, V], opts ...Option) (*Map[K, V], error) {
	if !fns.valid() {
		return nil, ErrNullArgument
	}
	o := buildOptions(opts)
	return &Map[K, V]{
		fns: fns,
		log: o.logger,
	}, nil
}

// NewOrdered returns an empty map for naturally ordered keys.
func NewOrdered[K cmp.Ordered, V any](opts ...Option) *Map[K, V] {
	m, _ := New(OrderedFuncs[K, V](), opts...)
	return m
}

// NewCloning returns an empty map whose keys and values copy, release
// and (for keys) compare themselves.
func NewCloning[K KeyElement[K], V Element[V]](opts ...Option) *Map[K, V] {
	m, _ := New(ElementFuncs[K, V](), opts...)
	return m
}

func (m *Map[K, V]) usable() bool {
	return m != nil && m.fns.valid()
}

// Size returns the number of entries, or -1 if m is nil.
func (m *Map[K, V]) Size() int {
	if m == nil {
		return -1
	}
	return m.size
}

// search returns the node holding key, or nil.
func (m *Map[K, V]) search(key K) *node[K, V] {
	for n := m.head; n != nil; n = n.next {
		if m.fns.CompareKeys(n.key, key) == 0 {
			return n
		}
	}
	return nil
}

// Contains reports whether an entry with an equal key exists.
func (m *Map[K, V]) Contains(key K) bool {
	if !m.usable() || isNil(key) {
		return false
	}
	return m.search(key) != nil
}

// Get returns the value stored for key. The value still belongs to
// the map and must not be released by the caller.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if !m.usable() || isNil(key) {
		return *new(V), false
	}
	n := m.search(key)
	if n == nil {
		return *new(V), false
	}
	return n.val, true
}

// Put stores a copy of value under key. If the key is already present
// its value is replaced and the old value released; the key itself and
// its position are left alone. Otherwise a copy of the key is inserted
// in order. On any failure the map is left exactly as it was.
func (m *Map[K, V]) Put(key K, value V) error {
	if !m.usable() || isNil(key) || isNil(value) {
		return ErrNullArgument
	}
	val, err := m.fns.CopyValue(value)
	if err != nil {
		m.log.Debug("copy value failed", zap.Error(err), zap.Int("size", m.size))
		return errors.Wrapf(ErrOutOfMemory, "copy value: %v", err)
	}
	if n := m.search(key); n != nil {
		old := n.val
		n.val = val
		m.fns.FreeValue(old)
		return nil
	}
	k, err := m.fns.CopyKey(key)
	if err != nil {
		m.fns.FreeValue(val)
		m.log.Debug("copy key failed, released value copy",
			zap.Error(err), zap.Int("size", m.size))
		return errors.Wrapf(ErrOutOfMemory, "copy key: %v", err)
	}
	m.insert(&node[K, V]{key: k, val: val})
	return nil
}

// insert links n in front of the first node whose key is not less
// than its own.
func (m *Map[K, V]) insert(n *node[K, V]) {
	link := &m.head
	for *link != nil && m.fns.CompareKeys((*link).key, n.key) < 0 {
		link = &(*link).next
	}
	n.next = *link
	*link = n
	m.size++
	m.gen++
}

// Remove deletes the entry for key and releases its key and value.
// It returns ErrItemDoesNotExist if there is no such entry.
func (m *Map[K, V]) Remove(key K) error {
	if !m.usable() || isNil(key) {
		return ErrNullArgument
	}
	link := &m.head
	for *link != nil && m.fns.CompareKeys((*link).key, key) != 0 {
		link = &(*link).next
	}
	n := *link
	if n == nil {
		return ErrItemDoesNotExist
	}
	*link = n.next
	m.size--
	m.gen++
	m.destroyNode(n)
	return nil
}

// Clear releases every entry and leaves the map empty.
func (m *Map[K, V]) Clear() error {
	if !m.usable() {
		return ErrNullArgument
	}
	for n := m.head; n != nil; {
		next := n.next
		m.destroyNode(n)
		n = next
	}
	m.head = nil
	m.size = 0
	m.cursor = nil
	m.gen++
	return nil
}

// Destroy releases every entry and unbinds the map from its functions.
// The map must not be used afterwards.
func (m *Map[K, V]) Destroy() {
	if !m.usable() {
		return
	}
	_ = m.Clear()
	m.fns = Funcs[K, V]{}
}

// Copy returns a new map bound to the same functions and holding its
// own copies of every key and value, in the same order. The copy's
// iteration cursor starts cleared. If any copy fails, everything
// copied so far is released and ErrOutOfMemory is returned.
func (m *Map[K, V]) Copy() (*Map[K, V], error) {
	if !m.usable() {
		return nil, ErrNullArgument
	}
	cp := &Map[K, V]{fns: m.fns, log: m.log}
	tail := &cp.head
	for n := m.head; n != nil; n = n.next {
		c, err := cp.copyNode(n)
		if err != nil {
			m.log.Debug("copy aborted", zap.Int("copied", cp.size), zap.Int("size", m.size))
			_ = cp.Clear()
			return nil, err
		}
		*tail = c
		tail = &c.next
		cp.size++
	}
	return cp, nil
}
