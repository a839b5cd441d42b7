package collections

// ImmutableList is an ordered snapshot with no mutators.
//
// Operations that would change it return a new ImmutableList instead.
// [ImmutableList.CastToList] exposes it through the [MutableList] interface;
// the mutators of that view fail with [ErrUnsupportedOperation].
type ImmutableList[T any] struct {
	sequence[T]
}

// ImmutableListOf creates an immutable list holding a copy of items.
func ImmutableListOf[T any](items ...T) *ImmutableList[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &ImmutableList[T]{sequence[T]{items: dst}}
}

// NewWith returns a new immutable list with items appended.
func (l *ImmutableList[T]) NewWith(items ...T) *ImmutableList[T] {
	dst := make([]T, 0, len(l.items)+len(items))
	dst = append(dst, l.items...)
	dst = append(dst, items...)
	return &ImmutableList[T]{sequence[T]{items: dst}}
}

// NewWithoutIndex returns a new immutable list without the element at index.
// An out-of-range index returns l unchanged.
func (l *ImmutableList[T]) NewWithoutIndex(index int) *ImmutableList[T] {
	if index < 0 || index >= len(l.items) {
		return l
	}
	dst := make([]T, 0, len(l.items)-1)
	dst = append(dst, l.items[:index]...)
	dst = append(dst, l.items[index+1:]...)
	return &ImmutableList[T]{sequence[T]{items: dst}}
}

// Select returns a new immutable list with the elements satisfying fn.
func (l *ImmutableList[T]) Select(fn func(T) bool) *ImmutableList[T] {
	return &ImmutableList[T]{sequence[T]{items: selectItems(l.items, fn, true)}}
}

// Reject returns a new immutable list without the elements satisfying fn.
func (l *ImmutableList[T]) Reject(fn func(T) bool) *ImmutableList[T] {
	return &ImmutableList[T]{sequence[T]{items: selectItems(l.items, fn, false)}}
}

// ToList returns a mutable copy.
func (l *ImmutableList[T]) ToList() *FastList[T] { return ListFrom(l.items) }

// CastToList returns l typed as a [MutableList]. Every mutator of the result
// fails with [ErrUnsupportedOperation].
func (l *ImmutableList[T]) CastToList() MutableList[T] {
	return &UnmodifiableList[T]{list: l}
}

// ImmutableSet is a set snapshot with no mutators.
type ImmutableSet[T comparable] struct {
	setCore[T]
}

// ImmutableSetOf creates an immutable set from items; duplicates are dropped.
func ImmutableSetOf[T comparable](items ...T) *ImmutableSet[T] {
	return &ImmutableSet[T]{newSetCore(items...)}
}

// NewWith returns a new immutable set that also contains items.
func (s *ImmutableSet[T]) NewWith(items ...T) *ImmutableSet[T] {
	core := s.clone()
	core.add(items...)
	return &ImmutableSet[T]{core}
}

// NewWithout returns a new immutable set without items.
func (s *ImmutableSet[T]) NewWithout(items ...T) *ImmutableSet[T] {
	core := s.clone()
	for _, item := range items {
		delete(core.items, item)
	}
	return &ImmutableSet[T]{core}
}

// ToSet returns a mutable copy.
func (s *ImmutableSet[T]) ToSet() *UnifiedSet[T] { return &UnifiedSet[T]{s.clone()} }

// CastToSet returns s typed as a [MutableSet]. Every mutator of the result
// fails with [ErrUnsupportedOperation].
func (s *ImmutableSet[T]) CastToSet() MutableSet[T] {
	return &UnmodifiableSet[T]{set: s}
}

// ImmutableMap is a map snapshot with no mutators.
type ImmutableMap[K comparable, V any] struct {
	mapCore[K, V]
}

// ImmutableMapOf creates an immutable map from pairs. Later pairs win on
// duplicate keys.
func ImmutableMapOf[K comparable, V any](pairs ...Pair[K, V]) *ImmutableMap[K, V] {
	return &ImmutableMap[K, V]{newMapCore(pairs...)}
}

// NewWithKeyValue returns a new immutable map that also maps key to value.
func (m *ImmutableMap[K, V]) NewWithKeyValue(key K, value V) *ImmutableMap[K, V] {
	core := m.clone()
	core.items[key] = value
	return &ImmutableMap[K, V]{core}
}

// NewWithoutKey returns a new immutable map without key.
func (m *ImmutableMap[K, V]) NewWithoutKey(key K) *ImmutableMap[K, V] {
	core := m.clone()
	delete(core.items, key)
	return &ImmutableMap[K, V]{core}
}

// ToMutable returns a mutable copy.
func (m *ImmutableMap[K, V]) ToMutable() *UnifiedMap[K, V] { return &UnifiedMap[K, V]{m.clone()} }

// CastToMap returns m typed as a [MutableMap]. Every mutator of the result
// fails with [ErrUnsupportedOperation].
func (m *ImmutableMap[K, V]) CastToMap() MutableMap[K, V] {
	return &UnmodifiableMap[K, V]{m: m}
}
