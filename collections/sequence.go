package collections

import (
	"fmt"
	"iter"
	"slices"
)

// sequence is the slice-backed read surface embedded by FastList and
// ImmutableList.
type sequence[T any] struct {
	items []T
}

// All returns an iterator over the elements in order.
func (s sequence[T]) All() iter.Seq[T] { return slices.Values(s.items) }

// Each calls fn for every element in order.
func (s sequence[T]) Each(fn func(T)) {
	for _, item := range s.items {
		fn(item)
	}
}

// EachWithIndex calls fn(item, index) for every element in order.
func (s sequence[T]) EachWithIndex(fn func(T, int)) {
	for i, item := range s.items {
		fn(item, i)
	}
}

// TryEach calls fn for every element in order and stops at the first error,
// which it returns.
func (s sequence[T]) TryEach(fn func(T) error) error {
	for _, item := range s.items {
		if err := fn(item); err != nil {
			return err
		}
	}
	return nil
}

// Size returns the number of elements.
func (s sequence[T]) Size() int { return len(s.items) }

// IsEmpty reports whether there are no elements.
func (s sequence[T]) IsEmpty() bool { return len(s.items) == 0 }

// NotEmpty reports whether there is at least one element.
func (s sequence[T]) NotEmpty() bool { return len(s.items) > 0 }

// Get returns the element at index together with a presence flag.
func (s sequence[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(s.items) {
		return zero, false
	}
	return s.items[index], true
}

// GetFirst returns the first element, or false when empty.
func (s sequence[T]) GetFirst() (T, bool) { return s.Get(0) }

// GetLast returns the last element, or false when empty.
func (s sequence[T]) GetLast() (T, bool) { return s.Get(len(s.items) - 1) }

// Count returns the number of elements satisfying fn.
func (s sequence[T]) Count(fn func(T) bool) int { return countSeq(s.All(), fn) }

// Detect returns the first element satisfying fn.
func (s sequence[T]) Detect(fn func(T) bool) (T, bool) { return detectSeq(s.All(), fn) }

// DetectIndex returns the index of the first element satisfying fn, or -1.
func (s sequence[T]) DetectIndex(fn func(T) bool) int { return slices.IndexFunc(s.items, fn) }

// AnySatisfy reports whether at least one element satisfies fn.
func (s sequence[T]) AnySatisfy(fn func(T) bool) bool { return slices.ContainsFunc(s.items, fn) }

// AllSatisfy reports whether every element satisfies fn.
func (s sequence[T]) AllSatisfy(fn func(T) bool) bool { return allSeq(s.All(), fn) }

// NoneSatisfy reports whether no element satisfies fn.
func (s sequence[T]) NoneSatisfy(fn func(T) bool) bool { return !s.AnySatisfy(fn) }

// ToSlice returns a copy of the elements.
func (s sequence[T]) ToSlice() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// ToJSON serialises the elements to a JSON array.
func (s sequence[T]) ToJSON() ([]byte, error) {
	if s.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.items)
}

// String formats the elements as "[a, b, c]".
func (s sequence[T]) String() string {
	return joinStrings(s.All())
}

func joinStrings[T any](seq iter.Seq[T]) string {
	out := []byte{'['}
	first := true
	for item := range seq {
		if !first {
			out = append(out, ", "...)
		}
		first = false
		out = fmt.Append(out, item)
	}
	return string(append(out, ']'))
}
