package collections

import (
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// multimap is the storage shared by ListMultimap, SetMultimap and
// BagMultimap. Keys keep first-insertion order; a key is present only while
// it has at least one value.
type multimap[K comparable, V any, C RichIterable[V], O valueOps[V, C]] struct {
	entries *orderedmap.OrderedMap[K, C]
	ops     O
}

// valueOps creates, fills and copies the per-key value collection. The
// implementations are empty structs, so a zero multimap is ready to use.
type valueOps[V any, C any] interface {
	newValues() C
	add(C, V)
	clone(C) C
}

type listOps[V any] struct{}

func (listOps[V]) newValues() *FastList[V]           { return NewList[V]() }
func (listOps[V]) add(l *FastList[V], v V)           { l.items = append(l.items, v) }
func (listOps[V]) clone(l *FastList[V]) *FastList[V] { return l.Clone() }

type setOps[V comparable] struct{}

func (setOps[V]) newValues() *UnifiedSet[V]             { return NewSet[V]() }
func (setOps[V]) add(s *UnifiedSet[V], v V)             { s.add(v) }
func (setOps[V]) clone(s *UnifiedSet[V]) *UnifiedSet[V] { return s.Clone() }

type bagOps[V comparable] struct{}

func (bagOps[V]) newValues() *HashBag[V]          { return NewBag[V]() }
func (bagOps[V]) add(b *HashBag[V], v V)          { b.Add(v) }
func (bagOps[V]) clone(b *HashBag[V]) *HashBag[V] { return b.Select(func(V) bool { return true }) }

func (m *multimap[K, V, C, O]) values(key K) C {
	if m.entries == nil {
		m.entries = orderedmap.New[K, C]()
	}
	values, ok := m.entries.Get(key)
	if !ok {
		values = m.ops.newValues()
		m.entries.Set(key, values)
	}
	return values
}

// Put adds value under key.
func (m *multimap[K, V, C, O]) Put(key K, value V) {
	m.ops.add(m.values(key), value)
}

// PutAll adds every value under key.
func (m *multimap[K, V, C, O]) PutAll(key K, values ...V) {
	if len(values) == 0 {
		return
	}
	target := m.values(key)
	for _, v := range values {
		m.ops.add(target, v)
	}
}

// Get returns a copy of the values stored under key. An absent key yields an
// empty collection, never nil.
func (m *multimap[K, V, C, O]) Get(key K) C {
	if m.entries != nil {
		if values, ok := m.entries.Get(key); ok {
			return m.ops.clone(values)
		}
	}
	return m.ops.newValues()
}

// ContainsKey reports whether key has at least one value.
func (m *multimap[K, V, C, O]) ContainsKey(key K) bool {
	if m.entries == nil {
		return false
	}
	_, ok := m.entries.Get(key)
	return ok
}

// RemoveAll removes key and returns the values it held.
func (m *multimap[K, V, C, O]) RemoveAll(key K) C {
	if m.entries != nil {
		if values, ok := m.entries.Delete(key); ok {
			return values
		}
	}
	return m.ops.newValues()
}

// KeysView returns the distinct keys in first-insertion order.
func (m *multimap[K, V, C, O]) KeysView() []K {
	keys := make([]K, 0, m.SizeDistinct())
	m.eachKey(func(k K, _ C) { keys = append(keys, k) })
	return keys
}

// Size returns the total number of key/value entries.
func (m *multimap[K, V, C, O]) Size() int {
	size := 0
	m.eachKey(func(_ K, values C) { size += values.Size() })
	return size
}

// SizeDistinct returns the number of distinct keys.
func (m *multimap[K, V, C, O]) SizeDistinct() int {
	if m.entries == nil {
		return 0
	}
	return m.entries.Len()
}

// IsEmpty reports whether the multimap has no entries.
func (m *multimap[K, V, C, O]) IsEmpty() bool { return m.SizeDistinct() == 0 }

// NotEmpty reports whether the multimap has at least one entry.
func (m *multimap[K, V, C, O]) NotEmpty() bool { return m.SizeDistinct() > 0 }

// EachKeyValue calls fn once per key/value entry, keys in first-insertion
// order.
func (m *multimap[K, V, C, O]) EachKeyValue(fn func(K, V)) {
	m.eachKey(func(k K, values C) {
		values.Each(func(v V) { fn(k, v) })
	})
}

// EachKeyMultiValues calls fn once per key with a copy of its values.
func (m *multimap[K, V, C, O]) EachKeyMultiValues(fn func(K, C)) {
	m.eachKey(func(k K, values C) { fn(k, m.ops.clone(values)) })
}

// KeyBag returns a bag counting the values held under each key.
func (m *multimap[K, V, C, O]) KeyBag() *HashBag[K] {
	bag := NewBag[K]()
	m.eachKey(func(k K, values C) { _, _ = bag.AddOccurrences(k, values.Size()) })
	return bag
}

// String formats the multimap as "{k1=[a, b], k2=[c]}" in key order.
func (m *multimap[K, V, C, O]) String() string {
	parts := make([]string, 0, m.SizeDistinct())
	m.eachKey(func(k K, values C) { parts = append(parts, fmt.Sprintf("%v=%s", k, values)) })
	return "{" + strings.Join(parts, ", ") + "}"
}

func (m *multimap[K, V, C, O]) eachKey(fn func(K, C)) {
	if m.entries == nil {
		return
	}
	for pair := m.entries.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// ListMultimap maps each key to an ordered list of values; duplicate values
// are kept. The zero value is an empty multimap ready to use.
type ListMultimap[K comparable, V any] struct {
	multimap[K, V, *FastList[V], listOps[V]]
}

// NewListMultimap creates an empty ListMultimap.
func NewListMultimap[K comparable, V any]() *ListMultimap[K, V] {
	return &ListMultimap[K, V]{multimap[K, V, *FastList[V], listOps[V]]{
		entries: orderedmap.New[K, *FastList[V]](),
	}}
}

// SetMultimap maps each key to a set of values; duplicate values under the
// same key collapse. The zero value is an empty multimap ready to use.
type SetMultimap[K, V comparable] struct {
	multimap[K, V, *UnifiedSet[V], setOps[V]]
}

// NewSetMultimap creates an empty SetMultimap.
func NewSetMultimap[K, V comparable]() *SetMultimap[K, V] {
	return &SetMultimap[K, V]{multimap[K, V, *UnifiedSet[V], setOps[V]]{
		entries: orderedmap.New[K, *UnifiedSet[V]](),
	}}
}

// ContainsKeyAndValue reports whether value is stored under key.
func (m *SetMultimap[K, V]) ContainsKeyAndValue(key K, value V) bool {
	if m.entries == nil {
		return false
	}
	if values, ok := m.entries.Get(key); ok {
		return values.Contains(value)
	}
	return false
}

// BagMultimap maps each key to a bag of values, counting duplicates. The
// zero value is an empty multimap ready to use.
type BagMultimap[K, V comparable] struct {
	multimap[K, V, *HashBag[V], bagOps[V]]
}

// NewBagMultimap creates an empty BagMultimap.
func NewBagMultimap[K, V comparable]() *BagMultimap[K, V] {
	return &BagMultimap[K, V]{multimap[K, V, *HashBag[V], bagOps[V]]{
		entries: orderedmap.New[K, *HashBag[V]](),
	}}
}
