package primitive

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is the set of element types accepted by the containers in this
// package.
type Number interface {
	constraints.Integer | constraints.Float
}

// ArrayList is an ordered, growable list of numbers.
// The zero value is an empty list ready to use.
type ArrayList[N Number] struct {
	items []N
}

// IntList is an [ArrayList] of int.
type IntList = ArrayList[int]

// LongList is an [ArrayList] of int64.
type LongList = ArrayList[int64]

// DoubleList is an [ArrayList] of float64.
type DoubleList = ArrayList[float64]

// NewArrayList creates a list holding a copy of items.
func NewArrayList[N Number](items ...N) *ArrayList[N] {
	return &ArrayList[N]{items: slices.Clone(items)}
}

// NewIntList creates an [IntList] from items.
func NewIntList(items ...int) *IntList { return NewArrayList(items...) }

// NewLongList creates a [LongList] from items.
func NewLongList(items ...int64) *LongList { return NewArrayList(items...) }

// NewDoubleList creates a [DoubleList] from items.
func NewDoubleList(items ...float64) *DoubleList { return NewArrayList(items...) }

// Add appends items to the list.
func (l *ArrayList[N]) Add(items ...N) {
	l.items = append(l.items, items...)
}

// Get returns the element at index together with a presence flag.
func (l *ArrayList[N]) Get(index int) (N, bool) {
	if index < 0 || index >= len(l.items) {
		return 0, false
	}
	return l.items[index], true
}

// Size returns the number of elements.
func (l *ArrayList[N]) Size() int { return len(l.items) }

// IsEmpty reports whether the list has no elements.
func (l *ArrayList[N]) IsEmpty() bool { return len(l.items) == 0 }

// Each calls fn for every element in order.
func (l *ArrayList[N]) Each(fn func(N)) {
	for _, n := range l.items {
		fn(n)
	}
}

// Select returns a new list with the elements for which fn returns true.
func (l *ArrayList[N]) Select(fn func(N) bool) *ArrayList[N] {
	out := make([]N, 0, len(l.items))
	for _, n := range l.items {
		if fn(n) {
			out = append(out, n)
		}
	}
	return &ArrayList[N]{items: out}
}

// Reject is the complement of [ArrayList.Select].
func (l *ArrayList[N]) Reject(fn func(N) bool) *ArrayList[N] {
	return l.Select(func(n N) bool { return !fn(n) })
}

// Count returns the number of elements satisfying fn.
func (l *ArrayList[N]) Count(fn func(N) bool) int {
	count := 0
	for _, n := range l.items {
		if fn(n) {
			count++
		}
	}
	return count
}

// AnySatisfy reports whether at least one element satisfies fn.
func (l *ArrayList[N]) AnySatisfy(fn func(N) bool) bool {
	return slices.ContainsFunc(l.items, fn)
}

// Sum returns the sum of all elements, or 0 for an empty list.
func (l *ArrayList[N]) Sum() N {
	var sum N
	for _, n := range l.items {
		sum += n
	}
	return sum
}

// Min returns the smallest element. Returns false for an empty list.
func (l *ArrayList[N]) Min() (N, bool) {
	if len(l.items) == 0 {
		return 0, false
	}
	return slices.Min(l.items), true
}

// Max returns the largest element. Returns false for an empty list.
func (l *ArrayList[N]) Max() (N, bool) {
	if len(l.items) == 0 {
		return 0, false
	}
	return slices.Max(l.items), true
}

// Average returns the arithmetic mean, or [ErrEmpty] for an empty list.
func (l *ArrayList[N]) Average() (float64, error) {
	if len(l.items) == 0 {
		return 0, ErrEmpty
	}
	return float64(l.Sum()) / float64(len(l.items)), nil
}

// Median returns the middle value of the sorted elements. For an even
// number of elements it is the mean of the two middle values.
func (l *ArrayList[N]) Median() (float64, error) {
	if len(l.items) == 0 {
		return 0, ErrEmpty
	}
	sorted := l.ToSorted().items
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return float64(sorted[mid]), nil
	}
	return (float64(sorted[mid-1]) + float64(sorted[mid])) / 2, nil
}

// ToSlice returns a copy of the elements.
func (l *ArrayList[N]) ToSlice() []N { return slices.Clone(l.items) }

// ToSorted returns a new list sorted in ascending order.
func (l *ArrayList[N]) ToSorted() *ArrayList[N] {
	out := slices.Clone(l.items)
	slices.Sort(out)
	return &ArrayList[N]{items: out}
}

// Equal reports whether other holds the same elements in the same order.
func (l *ArrayList[N]) Equal(other *ArrayList[N]) bool {
	if other == nil {
		return false
	}
	return slices.Equal(l.items, other.items)
}

// SummaryStatistics computes count, sum, min, max and average in one pass.
func (l *ArrayList[N]) SummaryStatistics() Statistics[N] {
	var s Statistics[N]
	for _, n := range l.items {
		s.accept(n)
	}
	return s
}

// String returns the elements formatted as "[1, 2, 3]".
func (l *ArrayList[N]) String() string {
	parts := make([]string, len(l.items))
	for i, n := range l.items {
		parts[i] = fmt.Sprint(n)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
