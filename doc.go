// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package collections provides two generic in-memory associative containers:
//
//   - TreeSet, an ordered set backed by an AVL-balanced binary search tree
//     with bidirectional iterators and logarithmic Insert, Erase, Find and
//     LowerBound.
//
//   - HashMap, an open-addressing hash map whose probe index sits over an
//     insertion-ordered backing store that owns the entries. Erasing an entry
//     or growing the table rebuilds only the probe index, so iterators and
//     value references into other entries stay valid.
//
// Both containers are single-threaded; concurrent mutation without external
// synchronization is the caller's bug.
package collections
