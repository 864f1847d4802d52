// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package collections

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// WalkFn is used when walking a TreeSet in order. It takes a value and
// returns whether iteration should be terminated.
type WalkFn[T any] func(v T) bool

// TreeSet is an ordered set of unique values backed by an AVL tree. The
// zero value is not usable; construct with NewTreeSet, NewTreeSetFunc or
// NewTreeSetOf.
type TreeSet[T any] struct {
	root    *setNode[T]
	first   *setNode[T]
	count   int
	compare func(a, b T) int
}

// NewTreeSet returns an empty set ordered by the natural < of T.
func NewTreeSet[T constraints.Ordered]() *TreeSet[T] {
	return &TreeSet[T]{compare: cmp.Compare[T]}
}

// NewTreeSetFunc returns an empty set ordered by the given three-way
// comparator. compare must describe a strict total order; a nil compare
// panics.
func NewTreeSetFunc[T any](compare func(a, b T) int) *TreeSet[T] {
	if compare == nil {
		panic("collections: nil comparator")
	}
	return &TreeSet[T]{compare: compare}
}

// NewTreeSetOf returns a set holding the given items, duplicates collapsed.
func NewTreeSetOf[T constraints.Ordered](items ...T) *TreeSet[T] {
	s := NewTreeSet[T]()
	for _, v := range items {
		s.Insert(v)
	}
	return s
}

// Insert adds v to the set, keeping the tree balanced. Returns false
// without modifying anything if an equal value is already present.
func (s *TreeSet[T]) Insert(v T) bool {
	var added bool
	s.root, added = s.insertNode(s.root, nil, v)
	s.updateFirst()
	return added
}

func (s *TreeSet[T]) insertNode(n, parent *setNode[T], v T) (*setNode[T], bool) {
	if n == nil {
		s.count++
		return &setNode[T]{value: v, parent: parent, height: 1}, true
	}
	c := s.compare(v, n.value)
	if c == 0 {
		return n, false
	}
	var added bool
	if c < 0 {
		n.left, added = s.insertNode(n.left, n, v)
	} else {
		n.right, added = s.insertNode(n.right, n, v)
	}
	n.updateHeight()
	return rebalance(n), added
}

// Erase removes v from the set. Returns false if no equal value is present.
func (s *TreeSet[T]) Erase(v T) bool {
	var removed bool
	s.root, removed = s.eraseNode(s.root, v)
	s.updateFirst()
	return removed
}

func (s *TreeSet[T]) eraseNode(n *setNode[T], v T) (*setNode[T], bool) {
	if n == nil {
		return nil, false
	}
	var removed bool
	switch c := s.compare(v, n.value); {
	case c < 0:
		n.left, removed = s.eraseNode(n.left, v)
	case c > 0:
		n.right, removed = s.eraseNode(n.right, v)
	default:
		if n.left == nil && n.right == nil {
			s.count--
			return nil, true
		}
		// Pull the replacement from the taller subtree, successor on ties.
		// The erased value is swapped into the replacement node so the
		// recursion below lands exactly on it.
		if n.left == nil || (n.right != nil && n.right.height >= n.left.height) {
			near := n.right.leftmost()
			n.value, near.value = near.value, n.value
			n.right, removed = s.eraseNode(n.right, v)
		} else {
			near := n.left.rightmost()
			n.value, near.value = near.value, n.value
			n.left, removed = s.eraseNode(n.left, v)
		}
	}
	n.updateHeight()
	return rebalance(n), removed
}

// updateFirst recomputes the leftmost-node cache by descending from the
// root. Called after every mutation rather than patched incrementally.
func (s *TreeSet[T]) updateFirst() {
	if s.root == nil {
		s.first = nil
		return
	}
	s.first = s.root.leftmost()
}

// LowerBound returns an iterator to the smallest value not less than v,
// or End if the set is empty or every value is less than v.
func (s *TreeSet[T]) LowerBound(v T) SetIterator[T] {
	if s.count == 0 || s.compare(s.root.rightmost().value, v) < 0 {
		return s.End()
	}
	n := s.root
	var bound *setNode[T]
	for n != nil {
		c := s.compare(v, n.value)
		if c == 0 {
			return SetIterator[T]{set: s, node: n}
		}
		if c > 0 {
			n = n.right
		} else {
			bound = n
			n = n.left
		}
	}
	return SetIterator[T]{set: s, node: bound}
}

// Find returns an iterator to the value equal to v, or End if absent.
func (s *TreeSet[T]) Find(v T) SetIterator[T] {
	it := s.LowerBound(v)
	if it.node != nil && s.compare(it.node.value, v) == 0 {
		return it
	}
	return s.End()
}

// Contains reports whether an equal value is present.
func (s *TreeSet[T]) Contains(v T) bool {
	return s.Find(v) != s.End()
}

// Min returns the smallest value, or ok=false on an empty set.
func (s *TreeSet[T]) Min() (T, bool) {
	if s.first == nil {
		var zero T
		return zero, false
	}
	return s.first.value, true
}

// Max returns the largest value, or ok=false on an empty set.
func (s *TreeSet[T]) Max() (T, bool) {
	if s.root == nil {
		var zero T
		return zero, false
	}
	return s.root.rightmost().value, true
}

// Begin returns an iterator to the smallest value, equal to End when the
// set is empty.
func (s *TreeSet[T]) Begin() SetIterator[T] {
	return SetIterator[T]{set: s, node: s.first}
}

// End returns the past-the-end sentinel of this set. Sentinels of
// different sets never compare equal.
func (s *TreeSet[T]) End() SetIterator[T] {
	return SetIterator[T]{set: s}
}

// Walk visits every value in ascending order until fn returns true.
func (s *TreeSet[T]) Walk(fn WalkFn[T]) {
	for n := s.first; n != nil; n = n.next() {
		if fn(n.value) {
			return
		}
	}
}

// Size returns the number of values in the set.
func (s *TreeSet[T]) Size() int {
	return s.count
}

// Empty reports whether the set holds no values.
func (s *TreeSet[T]) Empty() bool {
	return s.count == 0
}

// Clear removes every value. The garbage collector reclaims the nodes once
// the root reference is dropped.
func (s *TreeSet[T]) Clear() {
	s.root = nil
	s.first = nil
	s.count = 0
}

// Copy returns a deep copy sharing no structure with s, built by
// re-inserting every value in order with the same comparator.
func (s *TreeSet[T]) Copy() *TreeSet[T] {
	cp := &TreeSet[T]{compare: s.compare}
	for n := s.first; n != nil; n = n.next() {
		cp.Insert(n.value)
	}
	return cp
}
