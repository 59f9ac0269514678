// Package local adapts in-process byte stores to chain sources.
package local

// Size is a byte size used to configure local stores.
type Size int

const (
	B Size = 1 << (10 * iota)
	KB
	MB
	GB
)

// Local is an in-process byte store.
type Local interface {
	// Set stores the given data with the specified key.
	Set(key string, data []byte)

	// Get retrieves the data associated with the specified key.
	// It returns the data and a boolean indicating whether the key was found.
	Get(key string) ([]byte, bool)

	// Del deletes the data associated with the specified key.
	Del(key string)
}
