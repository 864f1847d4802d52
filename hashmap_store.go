// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package collections

// entry is a key-value record owned by the backing store. The key never
// changes after insertion; the value is mutable in place. Entries are
// linked in insertion order, so unlinking one never relocates another and
// references into the rest of the store stay valid.
type entry[K comparable, V any] struct {
	key        K
	value      V
	next, prev *entry[K, V]
}

// entryStore is the insertion-ordered backing store of a HashMap. It owns
// the entries; the probe index only references them.
type entryStore[K comparable, V any] struct {
	head, tail *entry[K, V]
	size       int
}

// pushBack appends a new entry holding key and value and returns it.
func (st *entryStore[K, V]) pushBack(key K, value V) *entry[K, V] {
	e := &entry[K, V]{key: key, value: value, prev: st.tail}
	if st.tail == nil {
		st.head = e
	} else {
		st.tail.next = e
	}
	st.tail = e
	st.size++
	return e
}

// remove unlinks e from the store. e must belong to this store.
func (st *entryStore[K, V]) remove(e *entry[K, V]) {
	if e.prev == nil {
		st.head = e.next
	} else {
		e.prev.next = e.next
	}
	if e.next == nil {
		st.tail = e.prev
	} else {
		e.next.prev = e.prev
	}
	e.next, e.prev = nil, nil
	st.size--
}

// reset drops every entry.
func (st *entryStore[K, V]) reset() {
	st.head, st.tail = nil, nil
	st.size = 0
}
