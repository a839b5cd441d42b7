package collections

import (
	"cmp"
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
)

// HashBag is a multiset: it tracks how many times each distinct element has
// been added.
//
//	bag := collections.BagOf("Cat", "Dog", "Dog", "Dog")
//	bag.OccurrencesOf("Dog")      // 3
//	bag.AddOccurrences("Cat", 2)  // Cat → 3
//	bag.Size()                    // 6
//	bag.SizeDistinct()            // 2
//
// The zero value is an empty bag ready to use.
type HashBag[T comparable] struct {
	counts map[T]int
	size   int
}

// NewBag creates an empty bag.
func NewBag[T comparable]() *HashBag[T] {
	return &HashBag[T]{counts: make(map[T]int)}
}

// BagOf creates a bag holding one occurrence per item.
func BagOf[T comparable](items ...T) *HashBag[T] {
	b := NewBag[T]()
	b.Add(items...)
	return b
}

// Add adds one occurrence of each item.
func (b *HashBag[T]) Add(items ...T) {
	if b.counts == nil {
		b.counts = make(map[T]int)
	}
	for _, item := range items {
		b.counts[item]++
	}
	b.size += len(items)
}

// AddOccurrences adds n occurrences of item and returns the new count.
// n == 0 is a no-op; a negative n returns [ErrNegativeOccurrences].
func (b *HashBag[T]) AddOccurrences(item T, n int) (int, error) {
	if n < 0 {
		return b.OccurrencesOf(item), fmt.Errorf("%w: %d", ErrNegativeOccurrences, n)
	}
	if n == 0 {
		return b.OccurrencesOf(item), nil
	}
	if b.counts == nil {
		b.counts = make(map[T]int)
	}
	b.counts[item] += n
	b.size += n
	return b.counts[item], nil
}

// RemoveOccurrences removes up to n occurrences of item and reports whether
// anything was removed. A negative n returns [ErrNegativeOccurrences].
func (b *HashBag[T]) RemoveOccurrences(item T, n int) (bool, error) {
	if n < 0 {
		return false, fmt.Errorf("%w: %d", ErrNegativeOccurrences, n)
	}
	current := b.counts[item]
	if n == 0 || current == 0 {
		return false, nil
	}
	removed := min(n, current)
	if removed == current {
		delete(b.counts, item)
	} else {
		b.counts[item] = current - removed
	}
	b.size -= removed
	return true, nil
}

// Remove removes a single occurrence of item and reports whether it was
// present.
func (b *HashBag[T]) Remove(item T) bool {
	removed, _ := b.RemoveOccurrences(item, 1)
	return removed
}

// OccurrencesOf returns how many times item has been added, or 0.
func (b *HashBag[T]) OccurrencesOf(item T) int { return b.counts[item] }

// Contains reports whether item occurs at least once.
func (b *HashBag[T]) Contains(item T) bool { return b.counts[item] > 0 }

// Size returns the total number of occurrences.
func (b *HashBag[T]) Size() int { return b.size }

// SizeDistinct returns the number of distinct elements.
func (b *HashBag[T]) SizeDistinct() int { return len(b.counts) }

// IsEmpty reports whether the bag has no occurrences.
func (b *HashBag[T]) IsEmpty() bool { return b.size == 0 }

// NotEmpty reports whether the bag has at least one occurrence.
func (b *HashBag[T]) NotEmpty() bool { return b.size > 0 }

// All yields every occurrence: an element added three times is yielded three
// times, consecutively. Distinct elements come in unspecified order.
func (b *HashBag[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for item, n := range b.counts {
			for range n {
				if !yield(item) {
					return
				}
			}
		}
	}
}

// Each calls fn once per occurrence.
func (b *HashBag[T]) Each(fn func(T)) {
	for item := range b.All() {
		fn(item)
	}
}

// EachWithOccurrences calls fn once per distinct element with its count.
func (b *HashBag[T]) EachWithOccurrences(fn func(T, int)) {
	for item, n := range b.counts {
		fn(item, n)
	}
}

// Count returns the number of occurrences satisfying fn.
func (b *HashBag[T]) Count(fn func(T) bool) int {
	count := 0
	for item, n := range b.counts {
		if fn(item) {
			count += n
		}
	}
	return count
}

// Detect returns some element satisfying fn.
func (b *HashBag[T]) Detect(fn func(T) bool) (T, bool) {
	return detectSeq(maps.Keys(b.counts), fn)
}

// AnySatisfy reports whether at least one element satisfies fn.
func (b *HashBag[T]) AnySatisfy(fn func(T) bool) bool { return anySeq(maps.Keys(b.counts), fn) }

// AllSatisfy reports whether every element satisfies fn.
func (b *HashBag[T]) AllSatisfy(fn func(T) bool) bool { return allSeq(maps.Keys(b.counts), fn) }

// NoneSatisfy reports whether no element satisfies fn.
func (b *HashBag[T]) NoneSatisfy(fn func(T) bool) bool { return !b.AnySatisfy(fn) }

// ToSlice returns every occurrence.
func (b *HashBag[T]) ToSlice() []T { return slices.AppendSeq(make([]T, 0, b.size), b.All()) }

// ToSet returns the distinct elements.
func (b *HashBag[T]) ToSet() *UnifiedSet[T] {
	out := NewSet[T]()
	for item := range b.counts {
		out.items[item] = struct{}{}
	}
	return out
}

// Select returns a new bag with the elements satisfying fn, keeping their
// counts.
func (b *HashBag[T]) Select(fn func(T) bool) *HashBag[T] {
	out := NewBag[T]()
	for item, n := range b.counts {
		if fn(item) {
			out.counts[item] = n
			out.size += n
		}
	}
	return out
}

// Reject returns a new bag without the elements satisfying fn.
func (b *HashBag[T]) Reject(fn func(T) bool) *HashBag[T] {
	return b.Select(func(item T) bool { return !fn(item) })
}

// TopOccurrences returns the n elements with the highest counts, highest
// first. Ties are broken by the elements' string form. All elements tied
// with the n-th are included.
func (b *HashBag[T]) TopOccurrences(n int) []Pair[T, int] {
	pairs := make([]Pair[T, int], 0, len(b.counts))
	for _, item := range sortedByString(slices.Collect(maps.Keys(b.counts))) {
		pairs = append(pairs, PairOf(item, b.counts[item]))
	}
	slices.SortStableFunc(pairs, func(x, y Pair[T, int]) int { return cmp.Compare(y.Second, x.Second) })
	if n <= 0 {
		return []Pair[T, int]{}
	}
	if n >= len(pairs) {
		return pairs
	}
	end := n
	for end < len(pairs) && pairs[end].Second == pairs[n-1].Second {
		end++
	}
	return pairs[:end]
}

// Equal reports whether other holds the same elements with the same counts.
func (b *HashBag[T]) Equal(other *HashBag[T]) bool {
	if other == nil || b.size != other.size {
		return false
	}
	return maps.Equal(b.counts, other.counts)
}

// ToJSON serialises every occurrence to a JSON array.
func (b *HashBag[T]) ToJSON() ([]byte, error) { return json.Marshal(b.ToSlice()) }

// String formats the bag as "[a=2, b=1]", ordered by element string.
func (b *HashBag[T]) String() string {
	keys := sortedByString(slices.Collect(maps.Keys(b.counts)))
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%v=%d", k, b.counts[k])
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
