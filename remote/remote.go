// Package remote adapts Redis clients to chain sources.
package remote

import (
	"context"
	"time"
)

// scanCount is the COUNT hint of every SCAN round trip.
const scanCount = 512

type Remote interface {
	// SetEX sets the value of a key with an expiration.
	SetEX(ctx context.Context, key string, value any, expire time.Duration) error

	// Get retrieves the value of a key. It returns Nil() when the key does not exist.
	Get(ctx context.Context, key string) (val string, err error)

	// Exists reports whether key exists without fetching its value.
	Exists(ctx context.Context, key string) (bool, error)

	// Del deletes the values associated with keys.
	Del(ctx context.Context, keys ...string) (val int64, err error)

	// MGet retrieves the values of multiple keys. Missing keys are left out
	// of the result.
	MGet(ctx context.Context, keys ...string) (map[string]string, error)

	// MSet sets multiple key-value pairs with the same expiration.
	MSet(ctx context.Context, value map[string]any, expire time.Duration) error

	// Scan returns every key matching the glob pattern match.
	Scan(ctx context.Context, match string) ([]string, error)

	// Nil returns an error indicating that the key does not exist.
	Nil() error
}
