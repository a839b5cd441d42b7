package collections

import (
	"fmt"
	"iter"
)

// RichIterable is the read-only surface shared by every container in this
// package.
//
// Accept RichIterable in your own functions so that callers can pass a list,
// a set, a bag, an immutable snapshot or an unmodifiable view alike.
type RichIterable[T any] interface {
	fmt.Stringer

	// All returns an iterator over every element. Lists yield elements in
	// order; sets, bags and maps in unspecified order.
	All() iter.Seq[T]

	// Each calls fn for every element.
	Each(fn func(T))

	// Size returns the number of elements. For a bag this counts every
	// occurrence.
	Size() int

	// IsEmpty reports whether there are no elements.
	IsEmpty() bool

	// NotEmpty reports whether there is at least one element.
	NotEmpty() bool

	// Count returns the number of elements satisfying fn.
	Count(fn func(T) bool) int

	// Detect returns the first element satisfying fn.
	// Returns the zero value and false when nothing matches.
	Detect(fn func(T) bool) (T, bool)

	// AnySatisfy reports whether at least one element satisfies fn.
	AnySatisfy(fn func(T) bool) bool

	// AllSatisfy reports whether every element satisfies fn.
	// It is true for an empty container.
	AllSatisfy(fn func(T) bool) bool

	// NoneSatisfy reports whether no element satisfies fn.
	NoneSatisfy(fn func(T) bool) bool

	// ToSlice returns the elements as a freshly allocated slice.
	ToSlice() []T
}

// ListIterable is a [RichIterable] with a stable order and positional access.
type ListIterable[T any] interface {
	RichIterable[T]

	// Get returns the element at index together with a presence flag.
	Get(index int) (T, bool)

	// GetFirst returns the first element, or false when empty.
	GetFirst() (T, bool)

	// GetLast returns the last element, or false when empty.
	GetLast() (T, bool)
}

// MutableList is a [ListIterable] that can be changed in place.
//
// [FastList] implements it directly. [UnmodifiableList] implements it by
// rejecting every mutation with [ErrUnsupportedOperation].
type MutableList[T any] interface {
	ListIterable[T]

	Add(items ...T) error
	Set(index int, item T) error
	RemoveIndex(index int) (T, error)
	Clear() error
}

// SetIterable is a [RichIterable] without duplicates.
type SetIterable[T comparable] interface {
	RichIterable[T]

	// Contains reports whether item is a member.
	Contains(item T) bool
}

// MutableSet is a [SetIterable] that can be changed in place.
type MutableSet[T comparable] interface {
	SetIterable[T]

	Add(items ...T) error
	Remove(items ...T) error
	Clear() error
}

// MapIterable is the read-only surface of a map.
type MapIterable[K comparable, V any] interface {
	fmt.Stringer

	Get(key K) (V, bool)
	ContainsKey(key K) bool
	Size() int
	IsEmpty() bool
	NotEmpty() bool
	EachKeyValue(fn func(K, V))
	KeysView() []K
	ValuesView() []V

	// ToMap returns a copy of the entries as a Go map.
	ToMap() map[K]V
}

// MutableMap is a [MapIterable] that can be changed in place.
type MutableMap[K comparable, V any] interface {
	MapIterable[K, V]

	Put(key K, value V) error
	RemoveKey(key K) error
	Clear() error
}

// MutableMultimap is the write surface shared by the multimaps. It is the
// target type accepted by [GroupByInto] and [GroupByEachInto].
type MutableMultimap[K comparable, V any] interface {
	Put(key K, value V)
}

// ─────────────────────────────────────────────────────────────────────────────
// Helpers over iter.Seq, shared by the unordered containers
// ─────────────────────────────────────────────────────────────────────────────

func countSeq[T any](seq iter.Seq[T], fn func(T) bool) int {
	count := 0
	for item := range seq {
		if fn(item) {
			count++
		}
	}
	return count
}

func detectSeq[T any](seq iter.Seq[T], fn func(T) bool) (T, bool) {
	for item := range seq {
		if fn(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func anySeq[T any](seq iter.Seq[T], fn func(T) bool) bool {
	_, ok := detectSeq(seq, fn)
	return ok
}

func allSeq[T any](seq iter.Seq[T], fn func(T) bool) bool {
	return !anySeq(seq, func(item T) bool { return !fn(item) })
}
