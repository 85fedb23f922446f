package omap

import (
	"cmp"
	"reflect"
)

// Funcs is the set of element operations a Map is bound to for its
// entire lifetime. Every field is required.
//
// CopyKey and CopyValue must return an independent copy that the map
// will own, or an error if no copy could be made. FreeKey and FreeValue
// release a copy the map owns; each owned copy is released exactly once.
// CompareKeys is a three-way comparison returning a negative number,
// zero or a positive number when a is less than, equal to or greater
// than b.
type Funcs[K, V any] struct {
	CopyKey     func(K) (K, error)
	CopyValue   func(V) (V, error)
	FreeKey     func(K)
	FreeValue   func(V)
	CompareKeys func(a, b K) int
}

func (f *Funcs[K, V]) valid() bool {
	return f.CopyKey != nil && f.CopyValue != nil &&
		f.FreeKey != nil && f.FreeValue != nil && f.CompareKeys != nil
}

// Element is a value type that knows how to clone and release itself.
type Element[T any] interface {
	Clone() (T, error)
	Release()
}

// KeyElement is an Element that can also order itself against another
// key of the same type.
type KeyElement[T any] interface {
	Element[T]
	Compare(T) int
}

// ElementFuncs builds a Funcs from the methods of the key and value types.
func ElementFuncs[K KeyElement[K], V Element[V]]() Funcs[K, V] {
	return Funcs[K, V]{
		CopyKey:     func(k K) (K, error) { return k.Clone() },
		CopyValue:   func(v V) (V, error) { return v.Clone() },
		FreeKey:     func(k K) { k.Release() },
		FreeValue:   func(v V) { v.Release() },
		CompareKeys: func(a, b K) int { return a.Compare(b) },
	}
}

// OrderedFuncs builds a Funcs for plain ordered keys. Keys and values are
// copied by assignment and need no release.
func OrderedFuncs[K cmp.Ordered, V any]() Funcs[K, V] {
	return Funcs[K, V]{
		CopyKey:     func(k K) (K, error) { return k, nil },
		CopyValue:   func(v V) (V, error) { return v, nil },
		FreeKey:     func(K) {},
		FreeValue:   func(V) {},
		CompareKeys: cmp.Compare[K],
	}
}

// isNil reports whether v holds a nil pointer, interface, slice, map,
// channel or func.
func isNil[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
