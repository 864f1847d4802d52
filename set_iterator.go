// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package collections

// SetIterator is a bidirectional iterator over a TreeSet. It is a value
// type; == compares the (set, node) pair, so iterators of different sets
// are never equal, even when both are End. A nil node marks the
// past-the-end sentinel. Dereferencing or advancing End violates the
// caller contract and panics.
type SetIterator[T any] struct {
	set  *TreeSet[T]
	node *setNode[T]
}

// Value returns the value the iterator points at.
func (it SetIterator[T]) Value() T {
	return it.node.value
}

// Next returns the iterator advanced to the in-order successor; advancing
// past the maximum yields End.
func (it SetIterator[T]) Next() SetIterator[T] {
	if it.node == nil {
		panic("collections: advancing End iterator")
	}
	return SetIterator[T]{set: it.set, node: it.node.next()}
}

// Prev returns the iterator moved to the in-order predecessor; stepping
// back from End yields the maximum value.
func (it SetIterator[T]) Prev() SetIterator[T] {
	if it.node == nil {
		return SetIterator[T]{set: it.set, node: it.set.root.rightmost()}
	}
	return SetIterator[T]{set: it.set, node: it.node.prev()}
}
