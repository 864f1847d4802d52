package collections

import (
	"math/rand"
	"slices"
	"testing"
	"testing/quick"
)

func TestSetIteratorLowerBoundFuzz(t *testing.T) {
	s := NewTreeSet[uint16]()
	var set []uint16

	// This specifies a property where each call adds a new random value to
	// the tree set.
	//
	// It also maintains a plain sorted list of the same set of values and
	// asserts that iterating from some random value to the end using
	// LowerBound produces the same list as filtering all sorted values that
	// are lower.

	setAddAndScan := func(newVal, searchVal uint16) []uint16 {
		s.Insert(newVal)

		t.Logf("NewVal: %d, SearchVal: %d", newVal, searchVal)

		// Now iterate the set from searchVal to the end
		var result []uint16
		for it := s.LowerBound(searchVal); it != s.End(); it = it.Next() {
			result = append(result, it.Value())
		}
		t.Logf("Set: %#v", result)
		return result
	}

	sliceAddSortAndFilter := func(newVal, searchVal uint16) []uint16 {
		set = append(set, newVal)
		slices.Sort(set)

		var result []uint16
		for i, v := range set {
			// Skip duplicates of the previous value.
			if i > 0 && set[i-1] == v {
				continue
			}
			if v >= searchVal {
				result = append(result, v)
			}
		}
		t.Logf("Filtered Set: %#v", result)
		return result
	}

	if err := quick.CheckEqual(setAddAndScan, sliceAddSortAndFilter, nil); err != nil {
		t.Error(err)
	}
}

func TestSetIterator_ForwardBackward(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	s := NewTreeSet[int]()
	for _, v := range rng.Perm(100) {
		s.Insert(v)
	}

	var forward []int
	for it := s.Begin(); it != s.End(); it = it.Next() {
		forward = append(forward, it.Value())
	}
	if len(forward) != 100 || !slices.IsSorted(forward) {
		t.Fatalf("forward iteration out of order: %v", forward)
	}

	var backward []int
	for it := s.End(); it != s.Begin(); {
		it = it.Prev()
		backward = append(backward, it.Value())
	}
	slices.Reverse(backward)
	if !slices.Equal(forward, backward) {
		t.Fatalf("backward iteration mis-match: %v vs %v", forward, backward)
	}
}

func TestSetIterator_EndPrevIsMax(t *testing.T) {
	s := NewTreeSetOf(4, 9, 1)
	if got := s.End().Prev().Value(); got != 9 {
		t.Fatalf("expected 9, got %d", got)
	}
}

func TestSetIterator_EmptySet(t *testing.T) {
	s := NewTreeSet[int]()
	if s.Begin() != s.End() {
		t.Fatalf("begin of empty set should equal end")
	}
}

func TestSetIterator_ContainerIdentity(t *testing.T) {
	a := NewTreeSetOf(1)
	b := NewTreeSetOf(1)
	if a.End() == b.End() {
		t.Fatalf("end iterators of different sets must not be equal")
	}
	if a.Find(1) == b.Find(1) {
		t.Fatalf("iterators of different sets must not be equal")
	}
	if a.Find(1) != a.Begin() {
		t.Fatalf("iterators at the same node of the same set must be equal")
	}
}

func TestSetIterator_NextOnEndPanics(t *testing.T) {
	s := NewTreeSetOf(1)
	defer func() {
		if recover() == nil {
			t.Fatalf("advancing End must panic")
		}
	}()
	s.End().Next()
}

func TestSetIterator_SurvivesRotation(t *testing.T) {
	// Inserting ascending values rotates the root; an issued iterator keeps
	// identifying its set through the rotations.
	s := NewTreeSet[int]()
	s.Insert(1)
	it := s.Find(1)
	for v := 2; v <= 16; v++ {
		s.Insert(v)
	}
	if it.Value() != 1 {
		t.Fatalf("iterator lost its node across rotations")
	}
	if it != s.Begin() {
		t.Fatalf("iterator should still equal Begin of its own set")
	}
}
