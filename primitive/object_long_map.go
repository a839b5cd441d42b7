package primitive

import "maps"

// ObjectLongMap maps comparable keys to int64 values.
//
// It is the natural target for "sum by" aggregations: [ObjectLongMap.AddToValue]
// treats a missing key as 0.
//
//	sums := primitive.NewObjectLongMap[string]()
//	sums.AddToValue("Even", 2)
//	sums.AddToValue("Even", 4) // → 6
type ObjectLongMap[K comparable] struct {
	values map[K]int64
}

// NewObjectLongMap creates an empty map.
func NewObjectLongMap[K comparable]() *ObjectLongMap[K] {
	return &ObjectLongMap[K]{values: make(map[K]int64)}
}

// WithKeyValue puts key → value and returns m for chaining.
func (m *ObjectLongMap[K]) WithKeyValue(key K, value int64) *ObjectLongMap[K] {
	m.Put(key, value)
	return m
}

// Put sets key to value.
func (m *ObjectLongMap[K]) Put(key K, value int64) {
	if m.values == nil {
		m.values = make(map[K]int64)
	}
	m.values[key] = value
}

// AddToValue adds delta to the value stored under key and returns the new
// value. A missing key starts at 0.
func (m *ObjectLongMap[K]) AddToValue(key K, delta int64) int64 {
	if m.values == nil {
		m.values = make(map[K]int64)
	}
	m.values[key] += delta
	return m.values[key]
}

// Get returns the value for key, or 0 when the key is absent.
func (m *ObjectLongMap[K]) Get(key K) int64 { return m.values[key] }

// GetIfAbsent returns the value for key, or ifAbsent when the key is absent.
func (m *ObjectLongMap[K]) GetIfAbsent(key K, ifAbsent int64) int64 {
	if v, ok := m.values[key]; ok {
		return v
	}
	return ifAbsent
}

// ContainsKey reports whether key has a value.
func (m *ObjectLongMap[K]) ContainsKey(key K) bool {
	_, ok := m.values[key]
	return ok
}

// Size returns the number of keys.
func (m *ObjectLongMap[K]) Size() int { return len(m.values) }

// KeysView returns the keys in unspecified order.
func (m *ObjectLongMap[K]) KeysView() []K {
	keys := make([]K, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	return keys
}

// EachKeyValue calls fn for every entry in unspecified order.
func (m *ObjectLongMap[K]) EachKeyValue(fn func(K, int64)) {
	for k, v := range m.values {
		fn(k, v)
	}
}

// Sum returns the total of all values.
func (m *ObjectLongMap[K]) Sum() int64 {
	var sum int64
	for _, v := range m.values {
		sum += v
	}
	return sum
}

// ToMap returns a copy of the entries as a Go map.
func (m *ObjectLongMap[K]) ToMap() map[K]int64 {
	out := make(map[K]int64, len(m.values))
	maps.Copy(out, m.values)
	return out
}

// Equal reports whether both maps hold the same entries.
func (m *ObjectLongMap[K]) Equal(other *ObjectLongMap[K]) bool {
	if other == nil {
		return false
	}
	return maps.Equal(m.values, other.values)
}
