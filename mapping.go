package hashchain

// Mapping is the set of capabilities a Chain needs from each of its sources.
// Chain implements it too, so chains can be nested into other chains.
type Mapping[K comparable, V any] interface {
	// Get looks up key. The boolean reports whether the lookup yielded a
	// value, either stored (a stored nil or zero value counts) or computed.
	Get(key K) (V, bool)

	// Has reports whether key is explicitly present.
	Has(key K) bool

	// Keys returns the keys in the mapping's own stable order.
	Keys() []K

	// Values returns the values in the same order as Keys.
	Values() []V

	// IsEmpty reports whether the mapping holds no entries.
	IsEmpty() bool

	// Each calls fn for every entry in key order.
	Each(fn func(key K, val V))
}

// Entry is a single key/value pair.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}
