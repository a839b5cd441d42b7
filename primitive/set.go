package primitive

import (
	"maps"
	"slices"
)

// HashSet is a set of distinct numbers.
// The zero value is an empty set ready to use.
type HashSet[N Number] struct {
	items map[N]struct{}
}

// IntSet is a [HashSet] of int.
type IntSet = HashSet[int]

// LongSet is a [HashSet] of int64.
type LongSet = HashSet[int64]

// DoubleSet is a [HashSet] of float64.
type DoubleSet = HashSet[float64]

// NewHashSet creates a set from items; duplicates are dropped.
func NewHashSet[N Number](items ...N) *HashSet[N] {
	s := &HashSet[N]{items: make(map[N]struct{}, len(items))}
	s.Add(items...)
	return s
}

// NewIntSet creates an [IntSet] from items.
func NewIntSet(items ...int) *IntSet { return NewHashSet(items...) }

// NewDoubleSet creates a [DoubleSet] from items.
func NewDoubleSet(items ...float64) *DoubleSet { return NewHashSet(items...) }

// Add inserts items. Adding an existing element has no effect.
func (s *HashSet[N]) Add(items ...N) {
	if s.items == nil {
		s.items = make(map[N]struct{}, len(items))
	}
	for _, n := range items {
		s.items[n] = struct{}{}
	}
}

// Remove deletes n and reports whether it was present.
func (s *HashSet[N]) Remove(n N) bool {
	if _, ok := s.items[n]; !ok {
		return false
	}
	delete(s.items, n)
	return true
}

// Contains reports whether n is in the set.
func (s *HashSet[N]) Contains(n N) bool {
	_, ok := s.items[n]
	return ok
}

// Size returns the number of distinct elements.
func (s *HashSet[N]) Size() int { return len(s.items) }

// IsEmpty reports whether the set has no elements.
func (s *HashSet[N]) IsEmpty() bool { return len(s.items) == 0 }

// Each calls fn for every element in unspecified order.
func (s *HashSet[N]) Each(fn func(N)) {
	for n := range s.items {
		fn(n)
	}
}

// Select returns a new set with the elements for which fn returns true.
func (s *HashSet[N]) Select(fn func(N) bool) *HashSet[N] {
	out := NewHashSet[N]()
	for n := range s.items {
		if fn(n) {
			out.items[n] = struct{}{}
		}
	}
	return out
}

// Sum returns the sum of all elements.
func (s *HashSet[N]) Sum() N {
	var sum N
	for n := range s.items {
		sum += n
	}
	return sum
}

// Equal reports whether both sets hold exactly the same elements.
func (s *HashSet[N]) Equal(other *HashSet[N]) bool {
	if other == nil {
		return false
	}
	return maps.Equal(s.items, other.items)
}

// ToSortedList returns the elements as an ascending [ArrayList].
func (s *HashSet[N]) ToSortedList() *ArrayList[N] {
	return &ArrayList[N]{items: slices.Sorted(maps.Keys(s.items))}
}

// String returns the elements in ascending order, e.g. "[1, 2, 3]".
func (s *HashSet[N]) String() string { return s.ToSortedList().String() }
