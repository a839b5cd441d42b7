package collections

import "iter"

// UnmodifiableList is a read-through view of a list. Reads reflect the
// current state of the underlying list; every mutator returns
// [ErrUnsupportedOperation]. The underlying list is not reachable through
// the view. A zero UnmodifiableList reads as empty.
type UnmodifiableList[T any] struct {
	list ListIterable[T]
}

var _ MutableList[int] = (*UnmodifiableList[int])(nil)

func (u *UnmodifiableList[T]) target() ListIterable[T] {
	if u.list == nil {
		return sequence[T]{}
	}
	return u.list
}

func (u *UnmodifiableList[T]) All() iter.Seq[T]                 { return u.target().All() }
func (u *UnmodifiableList[T]) Each(fn func(T))                  { u.target().Each(fn) }
func (u *UnmodifiableList[T]) Size() int                        { return u.target().Size() }
func (u *UnmodifiableList[T]) IsEmpty() bool                    { return u.target().IsEmpty() }
func (u *UnmodifiableList[T]) NotEmpty() bool                   { return u.target().NotEmpty() }
func (u *UnmodifiableList[T]) Count(fn func(T) bool) int        { return u.target().Count(fn) }
func (u *UnmodifiableList[T]) Detect(fn func(T) bool) (T, bool) { return u.target().Detect(fn) }
func (u *UnmodifiableList[T]) AnySatisfy(fn func(T) bool) bool  { return u.target().AnySatisfy(fn) }
func (u *UnmodifiableList[T]) AllSatisfy(fn func(T) bool) bool  { return u.target().AllSatisfy(fn) }
func (u *UnmodifiableList[T]) NoneSatisfy(fn func(T) bool) bool { return u.target().NoneSatisfy(fn) }
func (u *UnmodifiableList[T]) ToSlice() []T                     { return u.target().ToSlice() }
func (u *UnmodifiableList[T]) String() string                   { return u.target().String() }
func (u *UnmodifiableList[T]) Get(index int) (T, bool)          { return u.target().Get(index) }
func (u *UnmodifiableList[T]) GetFirst() (T, bool)              { return u.target().GetFirst() }
func (u *UnmodifiableList[T]) GetLast() (T, bool)               { return u.target().GetLast() }

// Add always fails with [ErrUnsupportedOperation].
func (u *UnmodifiableList[T]) Add(...T) error { return unsupported("Add") }

// Set always fails with [ErrUnsupportedOperation].
func (u *UnmodifiableList[T]) Set(int, T) error { return unsupported("Set") }

// RemoveIndex always fails with [ErrUnsupportedOperation].
func (u *UnmodifiableList[T]) RemoveIndex(int) (T, error) {
	var zero T
	return zero, unsupported("RemoveIndex")
}

// Clear always fails with [ErrUnsupportedOperation].
func (u *UnmodifiableList[T]) Clear() error { return unsupported("Clear") }

// UnmodifiableSet is a read-through view of a set whose mutators return
// [ErrUnsupportedOperation].
type UnmodifiableSet[T comparable] struct {
	set SetIterable[T]
}

var _ MutableSet[int] = (*UnmodifiableSet[int])(nil)

func (u *UnmodifiableSet[T]) target() SetIterable[T] {
	if u.set == nil {
		return setCore[T]{}
	}
	return u.set
}

func (u *UnmodifiableSet[T]) All() iter.Seq[T]                 { return u.target().All() }
func (u *UnmodifiableSet[T]) Each(fn func(T))                  { u.target().Each(fn) }
func (u *UnmodifiableSet[T]) Size() int                        { return u.target().Size() }
func (u *UnmodifiableSet[T]) IsEmpty() bool                    { return u.target().IsEmpty() }
func (u *UnmodifiableSet[T]) NotEmpty() bool                   { return u.target().NotEmpty() }
func (u *UnmodifiableSet[T]) Count(fn func(T) bool) int        { return u.target().Count(fn) }
func (u *UnmodifiableSet[T]) Detect(fn func(T) bool) (T, bool) { return u.target().Detect(fn) }
func (u *UnmodifiableSet[T]) AnySatisfy(fn func(T) bool) bool  { return u.target().AnySatisfy(fn) }
func (u *UnmodifiableSet[T]) AllSatisfy(fn func(T) bool) bool  { return u.target().AllSatisfy(fn) }
func (u *UnmodifiableSet[T]) NoneSatisfy(fn func(T) bool) bool { return u.target().NoneSatisfy(fn) }
func (u *UnmodifiableSet[T]) ToSlice() []T                     { return u.target().ToSlice() }
func (u *UnmodifiableSet[T]) String() string                   { return u.target().String() }
func (u *UnmodifiableSet[T]) Contains(item T) bool             { return u.target().Contains(item) }

// Add always fails with [ErrUnsupportedOperation].
func (u *UnmodifiableSet[T]) Add(...T) error { return unsupported("Add") }

// Remove always fails with [ErrUnsupportedOperation].
func (u *UnmodifiableSet[T]) Remove(...T) error { return unsupported("Remove") }

// Clear always fails with [ErrUnsupportedOperation].
func (u *UnmodifiableSet[T]) Clear() error { return unsupported("Clear") }

// UnmodifiableMap is a read-through view of a map whose mutators return
// [ErrUnsupportedOperation].
type UnmodifiableMap[K comparable, V any] struct {
	m MapIterable[K, V]
}

var _ MutableMap[string, int] = (*UnmodifiableMap[string, int])(nil)

func (u *UnmodifiableMap[K, V]) target() MapIterable[K, V] {
	if u.m == nil {
		return mapCore[K, V]{}
	}
	return u.m
}

func (u *UnmodifiableMap[K, V]) Get(key K) (V, bool)        { return u.target().Get(key) }
func (u *UnmodifiableMap[K, V]) ContainsKey(key K) bool     { return u.target().ContainsKey(key) }
func (u *UnmodifiableMap[K, V]) Size() int                  { return u.target().Size() }
func (u *UnmodifiableMap[K, V]) IsEmpty() bool              { return u.target().IsEmpty() }
func (u *UnmodifiableMap[K, V]) NotEmpty() bool             { return u.target().NotEmpty() }
func (u *UnmodifiableMap[K, V]) EachKeyValue(fn func(K, V)) { u.target().EachKeyValue(fn) }
func (u *UnmodifiableMap[K, V]) KeysView() []K              { return u.target().KeysView() }
func (u *UnmodifiableMap[K, V]) ValuesView() []V            { return u.target().ValuesView() }
func (u *UnmodifiableMap[K, V]) ToMap() map[K]V             { return u.target().ToMap() }
func (u *UnmodifiableMap[K, V]) String() string             { return u.target().String() }

// Put always fails with [ErrUnsupportedOperation].
func (u *UnmodifiableMap[K, V]) Put(K, V) error { return unsupported("Put") }

// RemoveKey always fails with [ErrUnsupportedOperation].
func (u *UnmodifiableMap[K, V]) RemoveKey(K) error { return unsupported("RemoveKey") }

// Clear always fails with [ErrUnsupportedOperation].
func (u *UnmodifiableMap[K, V]) Clear() error { return unsupported("Clear") }
