package hashchain

var _ Mapping[string, any] = (*Map[string, any])(nil)

// Map is an insertion-ordered mapping. Setting an existing key keeps its
// position. A Map is not safe for concurrent writes.
type Map[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// NewMap returns an empty Map.
func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{values: make(map[K]V)}
}

// MapOf returns a Map holding entries in the given order.
func MapOf[K comparable, V any](entries ...Entry[K, V]) *Map[K, V] {
	m := &Map[K, V]{
		keys:   make([]K, 0, len(entries)),
		values: make(map[K]V, len(entries)),
	}
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
	return m
}

func (m *Map[K, V]) Set(key K, val V) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = val
}

// Delete removes key and reports whether it was present.
func (m *Map[K, V]) Delete(key K) bool {
	if _, ok := m.values[key]; !ok {
		return false
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
	return true
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	val, ok := m.values[key]
	return val, ok
}

func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.values[key]
	return ok
}

func (m *Map[K, V]) Keys() []K {
	keys := make([]K, len(m.keys))
	copy(keys, m.keys)
	return keys
}

func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, len(m.keys))
	for _, k := range m.keys {
		values = append(values, m.values[k])
	}
	return values
}

func (m *Map[K, V]) Len() int {
	return len(m.keys)
}

func (m *Map[K, V]) IsEmpty() bool {
	return len(m.keys) == 0
}

func (m *Map[K, V]) Each(fn func(key K, val V)) {
	for _, k := range m.Keys() {
		fn(k, m.values[k])
	}
}

func (m *Map[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, len(m.keys))
	for _, k := range m.keys {
		entries = append(entries, Entry[K, V]{Key: k, Value: m.values[k]})
	}
	return entries
}
