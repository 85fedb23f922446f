package collections

import "iter"

// Config is an interface for this package
type Config interface {
	CheckConfig() Config
}

// OrderedMap is an interface for this package. It is implemented
// by the sorted linked list map found in pkg/generic/omap.
type OrderedMap[K, V any] interface {
	Size() int
	Contains(key K) bool
	Get(key K) (V, bool)
	Put(key K, value V) error
	Remove(key K) error
	Clear() error
	First() (K, bool)
	Next() (K, bool)
	All() iter.Seq2[K, V]
	SortByKey()
	SortByValue(compare func(a, b V) int)
}
