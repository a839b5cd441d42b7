package collections

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// mapCore is the read surface embedded by UnifiedMap and ImmutableMap.
type mapCore[K comparable, V any] struct {
	items map[K]V
}

func newMapCore[K comparable, V any](pairs ...Pair[K, V]) mapCore[K, V] {
	core := mapCore[K, V]{items: make(map[K]V, len(pairs))}
	for _, p := range pairs {
		core.items[p.First] = p.Second
	}
	return core
}

func (m mapCore[K, V]) clone() mapCore[K, V] {
	items := make(map[K]V, len(m.items))
	maps.Copy(items, m.items)
	return mapCore[K, V]{items: items}
}

// Get returns the value for key together with a presence flag.
func (m mapCore[K, V]) Get(key K) (V, bool) {
	v, ok := m.items[key]
	return v, ok
}

// GetIfAbsent returns the value for key, or the result of fn when the key is
// absent. The map is not changed.
func (m mapCore[K, V]) GetIfAbsent(key K, fn func() V) V {
	if v, ok := m.items[key]; ok {
		return v
	}
	return fn()
}

// ContainsKey reports whether key is present.
func (m mapCore[K, V]) ContainsKey(key K) bool {
	_, ok := m.items[key]
	return ok
}

// Size returns the number of entries.
func (m mapCore[K, V]) Size() int { return len(m.items) }

// IsEmpty reports whether the map has no entries.
func (m mapCore[K, V]) IsEmpty() bool { return len(m.items) == 0 }

// NotEmpty reports whether the map has at least one entry.
func (m mapCore[K, V]) NotEmpty() bool { return len(m.items) > 0 }

// EachKeyValue calls fn for every entry in unspecified order.
func (m mapCore[K, V]) EachKeyValue(fn func(K, V)) {
	for k, v := range m.items {
		fn(k, v)
	}
}

// KeysView returns the keys in unspecified order.
func (m mapCore[K, V]) KeysView() []K {
	return slices.AppendSeq(make([]K, 0, len(m.items)), maps.Keys(m.items))
}

// ValuesView returns the values in unspecified order.
func (m mapCore[K, V]) ValuesView() []V {
	return slices.AppendSeq(make([]V, 0, len(m.items)), maps.Values(m.items))
}

// ToMap returns a copy of the entries as a Go map.
func (m mapCore[K, V]) ToMap() map[K]V { return maps.Clone(m.items) }

// ToJSON serialises the entries to a JSON object.
func (m mapCore[K, V]) ToJSON() ([]byte, error) { return json.Marshal(m.items) }

// String formats the entries as "{k1=v1, k2=v2}", ordered by key string.
func (m mapCore[K, V]) String() string {
	keys := sortedByString(m.KeysView())
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%v=%v", k, m.items[k])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// UnifiedMap is a mutable map. The zero value is an empty map ready to use.
//
//	m := collections.MapOf(
//	    collections.PairOf("Animal", "Cat"),
//	    collections.PairOf("Bird", "Duck"),
//	)
type UnifiedMap[K comparable, V any] struct {
	mapCore[K, V]
}

// NewMap creates an empty map.
func NewMap[K comparable, V any]() *UnifiedMap[K, V] {
	return &UnifiedMap[K, V]{newMapCore[K, V]()}
}

// MapOf creates a map from pairs. Later pairs win on duplicate keys.
func MapOf[K comparable, V any](pairs ...Pair[K, V]) *UnifiedMap[K, V] {
	return &UnifiedMap[K, V]{newMapCore(pairs...)}
}

// MapFromKeysValues creates a map from equal-length key and value slices.
// Returns [ErrMismatchedLengths] if the lengths differ.
func MapFromKeysValues[K comparable, V any](keys []K, values []V) (*UnifiedMap[K, V], error) {
	if len(keys) != len(values) {
		return nil, fmt.Errorf("%w: %d keys, %d values", ErrMismatchedLengths, len(keys), len(values))
	}
	m := NewMap[K, V]()
	for i, k := range keys {
		m.items[k] = values[i]
	}
	return m, nil
}

// AdaptMap wraps a Go map without copying; changes through either are
// visible in both.
func AdaptMap[K comparable, V any](items map[K]V) *UnifiedMap[K, V] {
	if items == nil {
		items = make(map[K]V)
	}
	return &UnifiedMap[K, V]{mapCore[K, V]{items: items}}
}

// Put maps key to value, replacing any previous value.
func (m *UnifiedMap[K, V]) Put(key K, value V) error {
	m.put(key, value)
	return nil
}

// WithKeyValue puts key → value and returns m for chaining.
func (m *UnifiedMap[K, V]) WithKeyValue(key K, value V) *UnifiedMap[K, V] {
	m.put(key, value)
	return m
}

// GetIfAbsentPut returns the value for key. When the key is absent it stores
// and returns the result of fn.
func (m *UnifiedMap[K, V]) GetIfAbsentPut(key K, fn func() V) V {
	if v, ok := m.items[key]; ok {
		return v
	}
	v := fn()
	m.put(key, v)
	return v
}

func (m *UnifiedMap[K, V]) put(key K, value V) {
	if m.items == nil {
		m.items = make(map[K]V)
	}
	m.items[key] = value
}

// RemoveKey deletes key. Removing an absent key has no effect.
func (m *UnifiedMap[K, V]) RemoveKey(key K) error {
	delete(m.items, key)
	return nil
}

// Clear removes every entry.
func (m *UnifiedMap[K, V]) Clear() error {
	clear(m.items)
	return nil
}

// Select returns a new map with the entries satisfying fn.
func (m *UnifiedMap[K, V]) Select(fn func(K, V) bool) *UnifiedMap[K, V] {
	out := NewMap[K, V]()
	for k, v := range m.items {
		if fn(k, v) {
			out.items[k] = v
		}
	}
	return out
}

// Reject returns a new map without the entries satisfying fn.
func (m *UnifiedMap[K, V]) Reject(fn func(K, V) bool) *UnifiedMap[K, V] {
	return m.Select(func(k K, v V) bool { return !fn(k, v) })
}

// ToImmutable returns an immutable snapshot of the current entries.
func (m *UnifiedMap[K, V]) ToImmutable() *ImmutableMap[K, V] {
	return &ImmutableMap[K, V]{m.clone()}
}

// AsUnmodifiable returns a read-through view whose mutators fail with
// [ErrUnsupportedOperation].
func (m *UnifiedMap[K, V]) AsUnmodifiable() *UnmodifiableMap[K, V] {
	return &UnmodifiableMap[K, V]{m: m}
}
