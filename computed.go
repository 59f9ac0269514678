package hashchain

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

var (
	_ Mapping[string, any] = Computed[string, any](nil)
	_ Mapping[string, any] = Sorted[string, any](nil)
)

// Computed derives values from keys without storing or enumerating them.
// Has is always false and Keys is empty, so a Chain only matches it through
// the value its function yields.
type Computed[K comparable, V any] func(key K) (V, bool)

func (f Computed[K, V]) Get(key K) (V, bool) { return f(key) }
func (f Computed[K, V]) Has(K) bool          { return false }
func (f Computed[K, V]) Keys() []K           { return nil }
func (f Computed[K, V]) Values() []V         { return nil }
func (f Computed[K, V]) IsEmpty() bool       { return true }
func (f Computed[K, V]) Each(func(K, V))     {}

// Sorted is a live view over a Go map that enumerates keys in ascending
// order.
type Sorted[K constraints.Ordered, V any] map[K]V

func (s Sorted[K, V]) Get(key K) (V, bool) {
	val, ok := s[key]
	return val, ok
}

func (s Sorted[K, V]) Has(key K) bool {
	_, ok := s[key]
	return ok
}

func (s Sorted[K, V]) Keys() []K {
	keys := make([]K, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (s Sorted[K, V]) Values() []V {
	values := make([]V, 0, len(s))
	for _, k := range s.Keys() {
		values = append(values, s[k])
	}
	return values
}

func (s Sorted[K, V]) IsEmpty() bool {
	return len(s) == 0
}

func (s Sorted[K, V]) Each(fn func(key K, val V)) {
	for _, k := range s.Keys() {
		fn(k, s[k])
	}
}
