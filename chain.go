// Package hashchain presents an ordered list of mappings as one read-through
// mapping in which the first source that knows a key answers.
package hashchain

import (
	"errors"

	"github.com/mgtv-tech/hashchain-go/logger"
)

var ErrInvalidSource = errors.New("hashchain: source is neither a mapping nor a sequence")

var _ Mapping[string, any] = (*Chain[string, any])(nil)

// Chain is a read-through view over an ordered list of mappings. Lookups
// consult the sources in order and the first source that knows a key answers.
// A Chain never copies, caches or mutates its sources, so changes made to a
// source are visible on the next call.
type Chain[K comparable, V any] struct {
	Options
	sources []Mapping[K, V]
}

// New flattens srcs into a chain with default options.
func New[K comparable, V any](srcs ...Source[K, V]) (*Chain[K, V], error) {
	return NewWithOptions(nil, srcs...)
}

// NewWithOptions flattens srcs into a chain configured by opts. It fails with
// ErrInvalidSource when a source is the zero Source or wraps a nil mapping.
func NewWithOptions[K comparable, V any](opts []Option, srcs ...Source[K, V]) (*Chain[K, V], error) {
	o := newOptions(opts...)

	sources, err := flatten(make([]Mapping[K, V], 0, len(srcs)), srcs, "sources")
	if err != nil {
		return nil, err
	}

	logger.Debug("hashchain(%s): chained %d sources", o.name, len(sources))

	return &Chain[K, V]{
		Options: o,
		sources: sources,
	}, nil
}

// From chains plain mappings in the given order.
func From[K comparable, V any](ms ...Mapping[K, V]) (*Chain[K, V], error) {
	return New(Flat(ms...))
}

// Must is like New but panics on error.
func Must[K comparable, V any](srcs ...Source[K, V]) *Chain[K, V] {
	c, err := New(srcs...)
	if err != nil {
		panic(err)
	}
	return c
}

// Sources returns a copy of the flattened source list.
func (c *Chain[K, V]) Sources() []Mapping[K, V] {
	out := make([]Mapping[K, V], len(c.sources))
	copy(out, c.sources)
	return out
}

// Name returns the chain name used in logs and stats.
func (c *Chain[K, V]) Name() string {
	return c.name
}

// Get returns the value held by the first source that either has key or
// yields a value for it. The value is returned as is, even when it is nil or
// zero. The boolean is false when no source matched.
func (c *Chain[K, V]) Get(key K) (V, bool) {
	for _, src := range c.sources {
		c.statsHandler.IncrProbe()
		if src.Has(key) {
			val, _ := src.Get(key)
			c.statsHandler.IncrHit()
			return val, true
		}
		// Sources with generated or computed values answer through Get only.
		if val, ok := src.Get(key); ok {
			c.statsHandler.IncrHit()
			return val, true
		}
	}

	c.statsHandler.IncrMiss()
	var zero V
	return zero, false
}

// Has reports whether any source has key. Computed values do not count.
func (c *Chain[K, V]) Has(key K) bool {
	for _, src := range c.sources {
		if src.Has(key) {
			return true
		}
	}
	return false
}

// Keys returns the distinct keys of all sources in order of first appearance.
func (c *Chain[K, V]) Keys() []K {
	var (
		keys []K
		seen = make(map[K]struct{})
	)
	for _, src := range c.sources {
		for _, key := range src.Keys() {
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
	}

	return keys
}

// Values returns Get of every key in Keys order.
func (c *Chain[K, V]) Values() []V {
	keys := c.Keys()
	values := make([]V, 0, len(keys))
	for _, key := range keys {
		val, _ := c.Get(key)
		values = append(values, val)
	}

	return values
}

// Len returns the number of distinct keys.
func (c *Chain[K, V]) Len() int {
	return len(c.Keys())
}

// IsEmpty reports whether every source is empty. A chain without sources is
// empty.
func (c *Chain[K, V]) IsEmpty() bool {
	for _, src := range c.sources {
		if !src.IsEmpty() {
			return false
		}
	}
	return true
}

// Each calls fn with every key of Keys and its chained value.
func (c *Chain[K, V]) Each(fn func(key K, val V)) {
	for _, key := range c.Keys() {
		val, _ := c.Get(key)
		fn(key, val)
	}
}

// ToMap materializes the chain into a new ordered map. Entries are taken
// from each source's own Each, and the first source holding a key wins.
func (c *Chain[K, V]) ToMap() *Map[K, V] {
	combined := NewMap[K, V]()
	for _, src := range c.sources {
		src.Each(func(key K, val V) {
			if combined.Has(key) {
				return
			}
			combined.Set(key, val)
		})
	}

	return combined
}

// Entries returns the entries of ToMap in order.
func (c *Chain[K, V]) Entries() []Entry[K, V] {
	return c.ToMap().Entries()
}
