// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package collections

import (
	"math/rand"
	"testing"

	"github.com/hashicorp/go-uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

const datasetSize = 100000

func generateDataset(size int) []string {
	dataset := make([]string, size)
	for i := 0; i < size; i++ {
		uuid1, _ := uuid.GenerateUUID()
		dataset[i] = uuid1
	}
	return dataset
}

func BenchmarkTreeSetMixedOperations(b *testing.B) {
	dataset := generateDataset(datasetSize)
	s := NewTreeSet[string]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := 0; j < datasetSize; j++ {
			key := dataset[j]

			// Randomly choose an operation
			switch rand.Intn(3) {
			case 0:
				s.Insert(key)
			case 1:
				s.Find(key)
			case 2:
				s.Erase(key)
			}
		}
	}
}

func BenchmarkTreeSetInsert(b *testing.B) {
	s := NewTreeSet[string]()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		uuid1, _ := uuid.GenerateUUID()
		s.Insert(uuid1)
	}
}

func BenchmarkTreeSetFind(b *testing.B) {
	s := NewTreeSet[string]()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		uuid1, _ := uuid.GenerateUUID()
		s.Insert(uuid1)
		s.Find(uuid1)
	}
}

func BenchmarkTreeSetErase(b *testing.B) {
	s := NewTreeSet[string]()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		uuid1, _ := uuid.GenerateUUID()
		s.Insert(uuid1)
		s.Erase(uuid1)
	}
}

func BenchmarkHashMapInsert(b *testing.B) {
	m := NewHashMap[string, int]()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		uuid1, _ := uuid.GenerateUUID()
		m.Insert(uuid1, n)
	}
}

func BenchmarkHashMapGet(b *testing.B) {
	m := NewHashMap[string, int]()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		uuid1, _ := uuid.GenerateUUID()
		m.Insert(uuid1, n)
		m.Get(uuid1)
	}
}

func BenchmarkHashMapErase(b *testing.B) {
	m := NewHashMap[string, int]()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		uuid1, _ := uuid.GenerateUUID()
		m.Insert(uuid1, n)
		m.Erase(uuid1)
	}
}

// The store benchmarks compare HashMap against the builtin map and an LRU
// cache over the same workload: insert every dataset key, then read it
// back.

func BenchmarkHashMapStore(b *testing.B) {
	dataset := generateDataset(datasetSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := NewHashMap[string, int]()
		for j, key := range dataset {
			m.Insert(key, j)
		}
		for _, key := range dataset {
			m.Get(key)
		}
	}
}

func BenchmarkBuiltinMapStore(b *testing.B) {
	dataset := generateDataset(datasetSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := make(map[string]int)
		for j, key := range dataset {
			if _, ok := m[key]; !ok {
				m[key] = j
			}
		}
		for _, key := range dataset {
			_ = m[key]
		}
	}
}

func BenchmarkLRUCacheStore(b *testing.B) {
	dataset := generateDataset(datasetSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c, err := lru.New[string, int](datasetSize)
		if err != nil {
			b.Fatal(err)
		}
		for j, key := range dataset {
			c.Add(key, j)
		}
		for _, key := range dataset {
			c.Get(key)
		}
	}
}
