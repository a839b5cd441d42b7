package collections

import (
	"iter"
	"maps"
	"slices"
)

// setCore is the map-backed read surface embedded by UnifiedSet and
// ImmutableSet.
type setCore[T comparable] struct {
	items map[T]struct{}
}

func newSetCore[T comparable](items ...T) setCore[T] {
	core := setCore[T]{items: make(map[T]struct{}, len(items))}
	core.add(items...)
	return core
}

func (s *setCore[T]) add(items ...T) {
	if s.items == nil {
		s.items = make(map[T]struct{}, len(items))
	}
	for _, item := range items {
		s.items[item] = struct{}{}
	}
}

func (s setCore[T]) clone() setCore[T] {
	items := make(map[T]struct{}, len(s.items))
	maps.Copy(items, s.items)
	return setCore[T]{items: items}
}

// All returns an iterator over the members in unspecified order.
func (s setCore[T]) All() iter.Seq[T] { return maps.Keys(s.items) }

// Each calls fn for every member in unspecified order.
func (s setCore[T]) Each(fn func(T)) {
	for item := range s.items {
		fn(item)
	}
}

// Contains reports whether item is a member.
func (s setCore[T]) Contains(item T) bool {
	_, ok := s.items[item]
	return ok
}

// Size returns the number of members.
func (s setCore[T]) Size() int { return len(s.items) }

// IsEmpty reports whether the set has no members.
func (s setCore[T]) IsEmpty() bool { return len(s.items) == 0 }

// NotEmpty reports whether the set has at least one member.
func (s setCore[T]) NotEmpty() bool { return len(s.items) > 0 }

// Count returns the number of members satisfying fn.
func (s setCore[T]) Count(fn func(T) bool) int { return countSeq(s.All(), fn) }

// Detect returns some member satisfying fn.
func (s setCore[T]) Detect(fn func(T) bool) (T, bool) { return detectSeq(s.All(), fn) }

// AnySatisfy reports whether at least one member satisfies fn.
func (s setCore[T]) AnySatisfy(fn func(T) bool) bool { return anySeq(s.All(), fn) }

// AllSatisfy reports whether every member satisfies fn.
func (s setCore[T]) AllSatisfy(fn func(T) bool) bool { return allSeq(s.All(), fn) }

// NoneSatisfy reports whether no member satisfies fn.
func (s setCore[T]) NoneSatisfy(fn func(T) bool) bool { return !s.AnySatisfy(fn) }

// ToSlice returns the members in unspecified order.
func (s setCore[T]) ToSlice() []T { return slices.AppendSeq(make([]T, 0, len(s.items)), s.All()) }

// ToMap returns a copy of the members as a Go map-set.
func (s setCore[T]) ToMap() map[T]struct{} { return maps.Clone(s.items) }

// ToSortedList returns the members as a list ordered by cmp.
func (s setCore[T]) ToSortedList(cmp func(a, b T) int) *FastList[T] {
	return AdaptList(s.ToSlice()).SortThis(cmp)
}

// Equal reports whether other has exactly the same members.
func (s setCore[T]) Equal(other SetIterable[T]) bool {
	if other == nil || other.Size() != len(s.items) {
		return false
	}
	return other.AllSatisfy(s.Contains)
}

// EqualMap reports whether m has exactly the same members. It lets a set be
// compared with a plain Go map-set.
func (s setCore[T]) EqualMap(m map[T]struct{}) bool {
	return maps.Equal(s.items, m)
}

// IsSubsetOf reports whether every member is also in other.
func (s setCore[T]) IsSubsetOf(other SetIterable[T]) bool {
	return s.AllSatisfy(other.Contains)
}

// ToJSON serialises the members to a JSON array in unspecified order.
func (s setCore[T]) ToJSON() ([]byte, error) { return json.Marshal(s.ToSlice()) }

// String formats the members as "[a, b, c]", ordered by their string form.
func (s setCore[T]) String() string { return joinStrings(slices.Values(sortedByString(s.ToSlice()))) }

// UnifiedSet is a mutable set of comparable elements. The zero value is an
// empty set ready to use.
//
//	s := collections.SetOf("Cat", "Dog", "Dog") // {Cat, Dog}
//	s.Contains("Dog")                           // true
type UnifiedSet[T comparable] struct {
	setCore[T]
}

// NewSet creates an empty set.
func NewSet[T comparable]() *UnifiedSet[T] { return &UnifiedSet[T]{newSetCore[T]()} }

// SetOf creates a set from items; duplicates are dropped.
func SetOf[T comparable](items ...T) *UnifiedSet[T] { return &UnifiedSet[T]{newSetCore(items...)} }

// AdaptSet wraps a Go map-set without copying; changes through either are
// visible in both.
func AdaptSet[T comparable](m map[T]struct{}) *UnifiedSet[T] {
	if m == nil {
		m = make(map[T]struct{})
	}
	return &UnifiedSet[T]{setCore[T]{items: m}}
}

// Add inserts items. Adding an existing member has no effect.
func (s *UnifiedSet[T]) Add(items ...T) error {
	s.add(items...)
	return nil
}

// Remove deletes items. Removing a non-member has no effect.
func (s *UnifiedSet[T]) Remove(items ...T) error {
	for _, item := range items {
		delete(s.items, item)
	}
	return nil
}

// Clear removes every member.
func (s *UnifiedSet[T]) Clear() error {
	clear(s.items)
	return nil
}

// With inserts items and returns s for chaining.
func (s *UnifiedSet[T]) With(items ...T) *UnifiedSet[T] {
	s.add(items...)
	return s
}

// Select returns a new set with the members satisfying fn.
func (s *UnifiedSet[T]) Select(fn func(T) bool) *UnifiedSet[T] {
	out := NewSet[T]()
	for item := range s.items {
		if fn(item) {
			out.items[item] = struct{}{}
		}
	}
	return out
}

// Reject returns a new set without the members satisfying fn.
func (s *UnifiedSet[T]) Reject(fn func(T) bool) *UnifiedSet[T] {
	return s.Select(func(item T) bool { return !fn(item) })
}

// Partition splits the set into the members satisfying fn and the rest.
func (s *UnifiedSet[T]) Partition(fn func(T) bool) PartitionSet[T] {
	p := PartitionSet[T]{selected: NewSet[T](), rejected: NewSet[T]()}
	for item := range s.items {
		if fn(item) {
			p.selected.items[item] = struct{}{}
		} else {
			p.rejected.items[item] = struct{}{}
		}
	}
	return p
}

// Union returns a new set with the members of s and other.
func (s *UnifiedSet[T]) Union(other SetIterable[T]) *UnifiedSet[T] {
	out := &UnifiedSet[T]{s.clone()}
	other.Each(func(item T) { out.items[item] = struct{}{} })
	return out
}

// Intersect returns a new set with the members present in both s and other.
func (s *UnifiedSet[T]) Intersect(other SetIterable[T]) *UnifiedSet[T] {
	return s.Select(other.Contains)
}

// Difference returns a new set with the members of s that are not in other.
func (s *UnifiedSet[T]) Difference(other SetIterable[T]) *UnifiedSet[T] {
	return s.Reject(other.Contains)
}

// Clone returns a shallow copy.
func (s *UnifiedSet[T]) Clone() *UnifiedSet[T] { return &UnifiedSet[T]{s.clone()} }

// ToImmutable returns an immutable snapshot of the current members.
func (s *UnifiedSet[T]) ToImmutable() *ImmutableSet[T] { return &ImmutableSet[T]{s.clone()} }

// AsUnmodifiable returns a read-through view whose mutators fail with
// [ErrUnsupportedOperation].
func (s *UnifiedSet[T]) AsUnmodifiable() *UnmodifiableSet[T] {
	return &UnmodifiableSet[T]{set: s}
}

// PartitionSet is the result of [UnifiedSet.Partition].
type PartitionSet[T comparable] struct {
	selected *UnifiedSet[T]
	rejected *UnifiedSet[T]
}

// Selected returns the members that satisfied the predicate.
func (p PartitionSet[T]) Selected() *UnifiedSet[T] { return p.selected }

// Rejected returns the members that did not satisfy the predicate.
func (p PartitionSet[T]) Rejected() *UnifiedSet[T] { return p.rejected }
