// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package collections

import (
	"encoding/binary"
	"fmt"
	"hash/maphash"
	"math"
)

// Hasher maps a key to a 64-bit hash code. A HashMap reduces the code
// modulo its capacity to pick the home slot of the probe sequence.
type Hasher[K any] func(K) uint64

// seed randomizes the default hashers per process.
var seed = maphash.MakeSeed()

// HashString hashes a string with the package seed.
func HashString(key string) uint64 {
	return maphash.String(seed, key)
}

// HashBytes hashes a byte slice with the package seed.
func HashBytes(key []byte) uint64 {
	return maphash.Bytes(seed, key)
}

func hashWord(v uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return maphash.Bytes(seed, buf[:])
}

// defaultHasher returns the built-in hasher for K: seeded maphash over
// the string bytes or the 8-byte encoding of the fixed-size kinds. Key
// types without a built-in hasher panic, pointing the caller at
// NewHashMapWithHasher.
func defaultHasher[K comparable]() Hasher[K] {
	switch any(*new(K)).(type) {
	case string:
		return func(k K) uint64 { return HashString(any(k).(string)) }
	case int:
		return func(k K) uint64 { return hashWord(uint64(any(k).(int))) }
	case int8:
		return func(k K) uint64 { return hashWord(uint64(any(k).(int8))) }
	case int16:
		return func(k K) uint64 { return hashWord(uint64(any(k).(int16))) }
	case int32:
		return func(k K) uint64 { return hashWord(uint64(any(k).(int32))) }
	case int64:
		return func(k K) uint64 { return hashWord(uint64(any(k).(int64))) }
	case uint:
		return func(k K) uint64 { return hashWord(uint64(any(k).(uint))) }
	case uint8:
		return func(k K) uint64 { return hashWord(uint64(any(k).(uint8))) }
	case uint16:
		return func(k K) uint64 { return hashWord(uint64(any(k).(uint16))) }
	case uint32:
		return func(k K) uint64 { return hashWord(uint64(any(k).(uint32))) }
	case uint64:
		return func(k K) uint64 { return hashWord(any(k).(uint64)) }
	case uintptr:
		return func(k K) uint64 { return hashWord(uint64(any(k).(uintptr))) }
	case float32:
		return func(k K) uint64 { return hashWord(uint64(math.Float32bits(any(k).(float32)))) }
	case float64:
		return func(k K) uint64 { return hashWord(math.Float64bits(any(k).(float64))) }
	case bool:
		return func(k K) uint64 {
			if any(k).(bool) {
				return hashWord(1)
			}
			return hashWord(0)
		}
	default:
		panic(fmt.Sprintf("collections: no default hasher for %T, use NewHashMapWithHasher", *new(K)))
	}
}
