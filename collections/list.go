package collections

import "slices"

// FastList is a mutable, ordered list backed by a Go slice.
//
// # Creating a list
//
//	l := collections.ListOf("Cat", "Dog", "Bat")
//	l := collections.ListFrom([]int{1, 2, 3})    // copies
//	l := collections.AdaptList(existing)         // shares the backing array
//	l := collections.NewList[int]()
//
// Query methods (Select, Reject, Partition, Take, …) return new lists and
// leave the receiver unchanged. Mutators (Add, Set, RemoveIndex, Clear) change
// the receiver and return an error only to satisfy [MutableList]; on a
// FastList that error is nil except for out-of-range indexes.
type FastList[T any] struct {
	sequence[T]
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// NewList creates an empty list.
func NewList[T any]() *FastList[T] {
	return &FastList[T]{sequence[T]{items: []T{}}}
}

// ListOf creates a list from a variadic list of items (copied).
func ListOf[T any](items ...T) *FastList[T] {
	return ListFrom(items)
}

// ListFrom creates a list from a slice (the slice is copied).
func ListFrom[T any](items []T) *FastList[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &FastList[T]{sequence[T]{items: dst}}
}

// AdaptList wraps items without copying. Writes through Set are visible in
// items; appends may or may not be, depending on the slice's capacity.
func AdaptList[T any](items []T) *FastList[T] {
	if items == nil {
		items = []T{}
	}
	return &FastList[T]{sequence[T]{items: items}}
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutators
// ─────────────────────────────────────────────────────────────────────────────

// Add appends items to the end of the list.
func (l *FastList[T]) Add(items ...T) error {
	l.items = append(l.items, items...)
	return nil
}

// AddAll appends every element of other.
func (l *FastList[T]) AddAll(other RichIterable[T]) error {
	for item := range other.All() {
		l.items = append(l.items, item)
	}
	return nil
}

// With appends items and returns l for chaining.
func (l *FastList[T]) With(items ...T) *FastList[T] {
	l.items = append(l.items, items...)
	return l
}

// Set replaces the element at index.
func (l *FastList[T]) Set(index int, item T) error {
	if index < 0 || index >= len(l.items) {
		return outOfRange(index, len(l.items))
	}
	l.items[index] = item
	return nil
}

// RemoveIndex removes and returns the element at index.
func (l *FastList[T]) RemoveIndex(index int) (T, error) {
	var zero T
	if index < 0 || index >= len(l.items) {
		return zero, outOfRange(index, len(l.items))
	}
	item := l.items[index]
	l.items = slices.Delete(l.items, index, index+1)
	return item, nil
}

// RemoveIf removes every element satisfying fn and reports whether anything
// was removed.
func (l *FastList[T]) RemoveIf(fn func(T) bool) bool {
	before := len(l.items)
	l.items = slices.DeleteFunc(l.items, fn)
	return len(l.items) != before
}

// Clear removes every element.
func (l *FastList[T]) Clear() error {
	clear(l.items)
	l.items = l.items[:0]
	return nil
}

// SortThis sorts the list in place with cmp (stable) and returns l.
// cmp follows the [slices.SortStableFunc] contract.
func (l *FastList[T]) SortThis(cmp func(a, b T) int) *FastList[T] {
	slices.SortStableFunc(l.items, cmp)
	return l
}

// ─────────────────────────────────────────────────────────────────────────────
// Queries
// ─────────────────────────────────────────────────────────────────────────────

// Select returns a new list with the elements for which fn returns true.
func (l *FastList[T]) Select(fn func(T) bool) *FastList[T] {
	return &FastList[T]{sequence[T]{items: selectItems(l.items, fn, true)}}
}

// Reject returns a new list without the elements for which fn returns true.
// It is the complement of [FastList.Select].
func (l *FastList[T]) Reject(fn func(T) bool) *FastList[T] {
	return &FastList[T]{sequence[T]{items: selectItems(l.items, fn, false)}}
}

// Partition splits the list in one pass: Selected holds the elements for
// which fn returns true, Rejected the rest. Both keep the original order.
func (l *FastList[T]) Partition(fn func(T) bool) PartitionList[T] {
	p := PartitionList[T]{selected: NewList[T](), rejected: NewList[T]()}
	for _, item := range l.items {
		if fn(item) {
			p.selected.items = append(p.selected.items, item)
		} else {
			p.rejected.items = append(p.rejected.items, item)
		}
	}
	return p
}

// Take returns at most the first n elements.
func (l *FastList[T]) Take(n int) *FastList[T] {
	n = max(0, min(n, len(l.items)))
	return ListFrom(l.items[:n])
}

// Drop returns the list without its first n elements.
func (l *FastList[T]) Drop(n int) *FastList[T] {
	n = max(0, min(n, len(l.items)))
	return ListFrom(l.items[n:])
}

// ToReversed returns a new list with the elements in reverse order.
func (l *FastList[T]) ToReversed() *FastList[T] {
	out := l.Clone()
	slices.Reverse(out.items)
	return out
}

// ToSorted returns a new list sorted with cmp (stable).
func (l *FastList[T]) ToSorted(cmp func(a, b T) int) *FastList[T] {
	return l.Clone().SortThis(cmp)
}

// Clone returns a shallow copy.
func (l *FastList[T]) Clone() *FastList[T] { return ListFrom(l.items) }

// ToImmutable returns an immutable snapshot of the current elements.
func (l *FastList[T]) ToImmutable() *ImmutableList[T] { return ImmutableListOf(l.items...) }

// AsUnmodifiable returns a read-through view whose mutators fail with
// [ErrUnsupportedOperation].
func (l *FastList[T]) AsUnmodifiable() *UnmodifiableList[T] {
	return &UnmodifiableList[T]{list: l}
}

func selectItems[T any](items []T, fn func(T) bool, want bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if fn(item) == want {
			out = append(out, item)
		}
	}
	return out
}

// PartitionList is the result of [FastList.Partition].
type PartitionList[T any] struct {
	selected *FastList[T]
	rejected *FastList[T]
}

// Selected returns the elements that satisfied the predicate.
func (p PartitionList[T]) Selected() *FastList[T] { return p.selected }

// Rejected returns the elements that did not satisfy the predicate.
func (p PartitionList[T]) Rejected() *FastList[T] { return p.rejected }
