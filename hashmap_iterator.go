// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package collections

// MapIterator is a bidirectional iterator over a HashMap, walking the
// backing store in insertion order. It is a value type; == compares the
// (map, entry) pair, so iterators of different maps are never equal, even
// when both are End. A nil entry marks the past-the-end sentinel.
// Dereferencing or advancing End violates the caller contract and panics.
//
// An iterator stays valid across rehashes and across erases of other
// keys; erasing the entry it points at invalidates it.
type MapIterator[K comparable, V any] struct {
	m *HashMap[K, V]
	e *entry[K, V]
}

// Key returns the key of the entry the iterator points at.
func (it MapIterator[K, V]) Key() K {
	return it.e.key
}

// Value returns the value of the entry the iterator points at.
func (it MapIterator[K, V]) Value() V {
	return it.e.value
}

// Next returns the iterator advanced to the next entry in insertion
// order; advancing past the newest entry yields End.
func (it MapIterator[K, V]) Next() MapIterator[K, V] {
	if it.e == nil {
		panic("collections: advancing End iterator")
	}
	return MapIterator[K, V]{m: it.m, e: it.e.next}
}

// Prev returns the iterator moved to the previous entry; stepping back
// from End yields the newest entry.
func (it MapIterator[K, V]) Prev() MapIterator[K, V] {
	if it.e == nil {
		return MapIterator[K, V]{m: it.m, e: it.m.store.tail}
	}
	return MapIterator[K, V]{m: it.m, e: it.e.prev}
}
