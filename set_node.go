// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package collections

// setNode is a node of the AVL tree backing TreeSet. Children are owned by
// their parent, the parent link is a non-owning back-reference used by the
// iterators, and height caches the subtree height (1 for a leaf).
type setNode[T any] struct {
	left, right *setNode[T]
	parent      *setNode[T]
	value       T
	height      int
}

func (n *setNode[T]) updateHeight() {
	h := 1
	if n.left != nil {
		h = max(h, n.left.height+1)
	}
	if n.right != nil {
		h = max(h, n.right.height+1)
	}
	n.height = h
}

// balance is height(left) - height(right); the AVL invariant keeps it
// within {-1, 0, 1} between operations.
func (n *setNode[T]) balance() int {
	lh, rh := 0, 0
	if n.left != nil {
		lh = n.left.height
	}
	if n.right != nil {
		rh = n.right.height
	}
	return lh - rh
}

// leftmost returns the smallest node of the subtree rooted at n.
func (n *setNode[T]) leftmost() *setNode[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// rightmost returns the largest node of the subtree rooted at n.
func (n *setNode[T]) rightmost() *setNode[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// next returns the in-order successor of n, or nil past the maximum. The
// walk uses the parent links only, no auxiliary stack.
func (n *setNode[T]) next() *setNode[T] {
	if n.right != nil {
		return n.right.leftmost()
	}
	for n.parent != nil && n.parent.right == n {
		n = n.parent
	}
	return n.parent
}

// prev is the mirror image of next.
func (n *setNode[T]) prev() *setNode[T] {
	if n.left != nil {
		return n.left.rightmost()
	}
	for n.parent != nil && n.parent.left == n {
		n = n.parent
	}
	return n.parent
}

// rotateLeft turns (a L (b M N)) into (b (a L M) N) and returns b as the
// new subtree root. Relinks three pointers, fixes the parent
// back-references and recomputes the two affected heights.
func rotateLeft[T any](a *setNode[T]) *setNode[T] {
	b := a.right
	m := b.left
	b.parent = a.parent
	a.right = m
	if m != nil {
		m.parent = a
	}
	b.left = a
	a.parent = b
	a.updateHeight()
	b.updateHeight()
	return b
}

// rotateRight turns (a (b L M) N) into (b L (a M N)) and returns b.
func rotateRight[T any](a *setNode[T]) *setNode[T] {
	b := a.left
	m := b.right
	b.parent = a.parent
	a.left = m
	if m != nil {
		m.parent = a
	}
	b.right = a
	a.parent = b
	a.updateHeight()
	b.updateHeight()
	return b
}

// rebalance repairs a node whose balance reached -2 or +2 after an insert
// or erase below it. A child leaning the opposite way first gets rotated
// towards the node (the double rotation case), then a single rotation
// restores the invariant. Heights of the touched nodes are recomputed by
// the rotations themselves.
func rebalance[T any](n *setNode[T]) *setNode[T] {
	switch n.balance() {
	case -2:
		if n.right.balance() == 1 {
			n.right = rotateRight(n.right)
		}
		return rotateLeft(n)
	case 2:
		if n.left.balance() == -1 {
			n.left = rotateLeft(n.left)
		}
		return rotateRight(n)
	}
	return n
}
