// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package collections

import "errors"

// ErrKeyNotFound is returned by HashMap.At for a key with no entry.
var ErrKeyNotFound = errors.New("collections: key not found")

// initialCapacity is the probe-index size of a fresh map; growth always
// doubles it.
const initialCapacity = 8

type slotState uint8

const (
	slotEmpty slotState = iota
	slotFilled
	slotTombstone
)

// slot is one cell of the probe index. A Filled slot references a live
// backing-store entry. A Tombstone marks a slot whose entry was erased;
// probes must keep walking past it, but a later insert may reuse it.
// Tombstone reverts to Empty only on rehash or Clear.
type slot[K comparable, V any] struct {
	state slotState
	entry *entry[K, V]
}

// MapWalkFn is used when walking a HashMap in insertion order. It takes a
// key and value, returning if iteration should be terminated.
type MapWalkFn[K comparable, V any] func(k K, v V) bool

// Pair is a key-value literal for NewHashMapOf.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// HashMap is a hash map built on linear probing over an insertion-ordered
// backing store. The probe index holds only references into the store, so
// erasing an entry or growing the index never moves the others: iterators
// and value pointers into surviving entries stay valid across both.
//
// occupancy counts slots ever transitioned away from Empty (Filled plus
// Tombstone); it is a probing-pressure counter, never decremented on
// erase, and is distinct from Size.
type HashMap[K comparable, V any] struct {
	hash      Hasher[K]
	slots     []slot[K, V]
	store     entryStore[K, V]
	occupancy int
}

// NewHashMap returns an empty map using the package default hasher for K.
// It panics for key types without a default hasher; supply one with
// NewHashMapWithHasher instead.
func NewHashMap[K comparable, V any]() *HashMap[K, V] {
	return NewHashMapWithHasher[K, V](defaultHasher[K]())
}

// NewHashMapWithHasher returns an empty map hashing keys with h. A nil h
// panics.
func NewHashMapWithHasher[K comparable, V any](h Hasher[K]) *HashMap[K, V] {
	if h == nil {
		panic("collections: nil hasher")
	}
	return &HashMap[K, V]{
		hash:  h,
		slots: make([]slot[K, V], initialCapacity),
	}
}

// NewHashMapOf returns a map holding the given pairs. Duplicate keys keep
// their first occurrence.
func NewHashMapOf[K comparable, V any](pairs ...Pair[K, V]) *HashMap[K, V] {
	m := NewHashMap[K, V]()
	for _, p := range pairs {
		m.Insert(p.Key, p.Value)
	}
	return m
}

// findSlot runs the probe sequence for key: linear, step +1, wrapping,
// starting at hash(key) mod capacity. Tombstones and non-matching Filled
// slots are skipped. It returns the index of the matching Filled slot and
// found=true, or the index of the terminating Empty slot and found=false.
// The load-factor invariant guarantees an Empty slot always exists.
func (m *HashMap[K, V]) findSlot(key K) (int, bool) {
	pos := int(m.hash(key) % uint64(len(m.slots)))
	for {
		s := &m.slots[pos]
		if s.state == slotEmpty {
			return pos, false
		}
		if s.state == slotFilled && s.entry.key == key {
			return pos, true
		}
		pos++
		if pos == len(m.slots) {
			pos = 0
		}
	}
}

// place appends a new entry to the store and marks slot pos Filled with
// it, counting the transition away from Empty toward occupancy.
func (m *HashMap[K, V]) place(pos int, key K, value V) *entry[K, V] {
	e := m.store.pushBack(key, value)
	if m.slots[pos].state == slotEmpty {
		m.occupancy++
	}
	m.slots[pos] = slot[K, V]{state: slotFilled, entry: e}
	return e
}

// Insert adds the pair to the map. A present key is a silent no-op: the
// stored value is not overwritten and Insert returns false. The new entry
// reuses the first tombstone on its probe path if there is one, bounding
// probe-chain growth under insert/erase churn.
func (m *HashMap[K, V]) Insert(key K, value V) bool {
	m.checkGrowth()
	pos := int(m.hash(key) % uint64(len(m.slots)))
	firstTomb := -1
	// One full wraparound completes the duplicate check even if no Empty
	// slot terminates the scan; the load-factor invariant guarantees a
	// tombstone was passed by then.
	for scanned := 0; scanned < len(m.slots); scanned++ {
		s := &m.slots[pos]
		if s.state == slotEmpty {
			break
		}
		if s.state == slotTombstone {
			if firstTomb < 0 {
				firstTomb = pos
			}
		} else if s.entry.key == key {
			return false
		}
		pos++
		if pos == len(m.slots) {
			pos = 0
		}
	}
	if firstTomb >= 0 {
		pos = firstTomb
	}
	m.place(pos, key, value)
	return true
}

// Ref returns a pointer to the value stored under key, inserting a
// zero-valued entry first if the key is absent. The pointer stays valid
// across rehashes and erases of other keys.
func (m *HashMap[K, V]) Ref(key K) *V {
	m.checkGrowth()
	pos, found := m.findSlot(key)
	if !found {
		var zero V
		return &m.place(pos, key, zero).value
	}
	return &m.slots[pos].entry.value
}

// At returns the value stored under key, or ErrKeyNotFound.
func (m *HashMap[K, V]) At(key K) (V, error) {
	pos, found := m.findSlot(key)
	if !found {
		var zero V
		return zero, ErrKeyNotFound
	}
	return m.slots[pos].entry.value, nil
}

// Get returns the value stored under key and whether it was present.
func (m *HashMap[K, V]) Get(key K) (V, bool) {
	pos, found := m.findSlot(key)
	if !found {
		var zero V
		return zero, false
	}
	return m.slots[pos].entry.value, true
}

// Contains reports whether key has an entry.
func (m *HashMap[K, V]) Contains(key K) bool {
	_, found := m.findSlot(key)
	return found
}

// Find returns an iterator to the entry under key, or End if absent.
func (m *HashMap[K, V]) Find(key K) MapIterator[K, V] {
	pos, found := m.findSlot(key)
	if !found {
		return m.End()
	}
	return MapIterator[K, V]{m: m, e: m.slots[pos].entry}
}

// Erase removes the entry under key, returning false if it was absent.
// The slot becomes a Tombstone rather than Empty so that keys displaced
// past it remain reachable; occupancy is not decremented.
func (m *HashMap[K, V]) Erase(key K) bool {
	pos, found := m.findSlot(key)
	if !found {
		return false
	}
	m.store.remove(m.slots[pos].entry)
	m.slots[pos] = slot[K, V]{state: slotTombstone}
	return true
}

// Begin returns an iterator to the oldest live entry, equal to End when
// the map is empty. Iteration follows insertion order, not hash order.
func (m *HashMap[K, V]) Begin() MapIterator[K, V] {
	return MapIterator[K, V]{m: m, e: m.store.head}
}

// End returns the past-the-end sentinel of this map. Sentinels of
// different maps never compare equal.
func (m *HashMap[K, V]) End() MapIterator[K, V] {
	return MapIterator[K, V]{m: m}
}

// Walk visits every entry in insertion order until fn returns true.
func (m *HashMap[K, V]) Walk(fn MapWalkFn[K, V]) {
	for e := m.store.head; e != nil; e = e.next {
		if fn(e.key, e.value) {
			return
		}
	}
}

// Size returns the number of live entries, independent of occupancy.
func (m *HashMap[K, V]) Size() int {
	return m.store.size
}

// Empty reports whether the map holds no entries.
func (m *HashMap[K, V]) Empty() bool {
	return m.store.size == 0
}

// HashFunc returns the hash function the map was constructed with.
func (m *HashMap[K, V]) HashFunc() Hasher[K] {
	return m.hash
}

// Clear removes every entry, keeping the current capacity. For each live
// entry the original probe chain is walked from its home slot, resetting
// slots to Empty until an already-Empty slot bounds the walk. Tombstones
// on probe runs no live chain touches survive; occupancy is recounted
// from them so they still register as probing pressure and the next
// growth check can sweep them, keeping every probe sequence bounded by
// an Empty slot.
func (m *HashMap[K, V]) Clear() {
	for e := m.store.head; e != nil; e = e.next {
		pos := int(m.hash(e.key) % uint64(len(m.slots)))
		for m.slots[pos].state != slotEmpty {
			m.slots[pos] = slot[K, V]{}
			pos++
			if pos == len(m.slots) {
				pos = 0
			}
		}
	}
	m.store.reset()
	m.occupancy = 0
	for _, s := range m.slots {
		if s.state != slotEmpty {
			m.occupancy++
		}
	}
}

// Copy returns a deep copy using the same hasher, built by re-inserting
// every live pair in insertion order.
func (m *HashMap[K, V]) Copy() *HashMap[K, V] {
	cp := NewHashMapWithHasher[K, V](m.hash)
	for e := m.store.head; e != nil; e = e.next {
		cp.Insert(e.key, e.value)
	}
	return cp
}

// checkGrowth runs before every insertion-capable operation and repairs
// the load-factor invariant occupancy*4 < capacity by rehashing into a
// doubled probe index. Entries are not moved or copied, so held iterators
// and Ref pointers survive; occupancy resets to the live entry count
// since the new index carries no tombstones.
func (m *HashMap[K, V]) checkGrowth() {
	if m.occupancy*4 < len(m.slots) {
		return
	}
	slots := make([]slot[K, V], len(m.slots)*2)
	for e := m.store.head; e != nil; e = e.next {
		pos := int(m.hash(e.key) % uint64(len(slots)))
		for slots[pos].state == slotFilled {
			pos++
			if pos == len(slots) {
				pos = 0
			}
		}
		slots[pos] = slot[K, V]{state: slotFilled, entry: e}
	}
	m.slots = slots
	m.occupancy = m.store.size
}
