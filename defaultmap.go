package hashchain

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

var _ Mapping[string, any] = (*DefaultMap[string, any])(nil)

// DefaultMap is an ordered map that generates, stores and returns a value
// for every missing key it is asked about. Has stays false for a key until
// the key has been generated or set.
//
// Once a DefaultMap is reached by a Chain lookup it answers every key, so
// sources placed after it are only consulted for keys it already reports
// through Has.
type DefaultMap[K comparable, V any] struct {
	mu       sync.RWMutex
	m        *Map[K, V]
	generate func(key K) V
	group    singleflight.Group
}

// NewDefaultMap returns an empty DefaultMap using generate for missing keys.
func NewDefaultMap[K comparable, V any](generate func(key K) V) *DefaultMap[K, V] {
	if generate == nil {
		panic("hashchain: default generator must not be nil")
	}
	return &DefaultMap[K, V]{
		m:        NewMap[K, V](),
		generate: generate,
	}
}

func (d *DefaultMap[K, V]) Set(key K, val V) {
	d.mu.Lock()
	d.m.Set(key, val)
	d.mu.Unlock()
}

func (d *DefaultMap[K, V]) Delete(key K) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.m.Delete(key)
}

// Get always yields a value. Concurrent callers missing the same key share
// one generator call, which runs without holding the map's lock so the
// generator may read the map itself.
func (d *DefaultMap[K, V]) Get(key K) (V, bool) {
	if val, ok := d.lookup(key); ok {
		return val, true
	}

	_, _, _ = d.group.Do(fmt.Sprintf("%#v", key), func() (interface{}, error) {
		if _, ok := d.lookup(key); ok {
			return nil, nil
		}
		d.store(key, d.generate(key))
		return nil, nil
	})

	if val, ok := d.lookup(key); ok {
		return val, true
	}

	// Another key with the same flight name ran the generator.
	return d.store(key, d.generate(key)), true
}

func (d *DefaultMap[K, V]) lookup(key K) (V, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.m.Get(key)
}

// store sets key to val unless a value was stored first, and returns the
// value held afterwards.
func (d *DefaultMap[K, V]) store(key K, val V) V {
	d.mu.Lock()
	defer d.mu.Unlock()
	if existing, ok := d.m.Get(key); ok {
		return existing
	}
	d.m.Set(key, val)
	return val
}

func (d *DefaultMap[K, V]) Has(key K) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.m.Has(key)
}

func (d *DefaultMap[K, V]) Keys() []K {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.m.Keys()
}

func (d *DefaultMap[K, V]) Values() []V {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.m.Values()
}

func (d *DefaultMap[K, V]) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.m.Len()
}

func (d *DefaultMap[K, V]) IsEmpty() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.m.IsEmpty()
}

// Each iterates over a snapshot of the stored entries.
func (d *DefaultMap[K, V]) Each(fn func(key K, val V)) {
	d.mu.RLock()
	entries := d.m.Entries()
	d.mu.RUnlock()
	for _, e := range entries {
		fn(e.Key, e.Value)
	}
}
