package local

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"

	"github.com/mgtv-tech/hashchain-go/util"
)

const (
	numCounters = 1e7 // number of keys to track frequency of (10M).
	bufferItems = 64  // number of keys per Get buffer.
)

var _ Local = (*TinyLFU)(nil)

// TinyLFU is a Local backed by ristretto. Entries may be rejected or evicted
// by the admission policy once size is reached.
type TinyLFU struct {
	rand   *util.SafeRand
	cache  *ristretto.Cache[string, []byte]
	ttl    time.Duration
	offset time.Duration
}

// NewTinyLFU creates a TinyLFU holding up to size entries. A zero ttl never
// expires.
func NewTinyLFU(size int, ttl time.Duration) *TinyLFU {
	const maxOffset = 10 * time.Second

	offset := ttl / 10
	if offset > maxOffset {
		offset = maxOffset
	}

	cache, err := ristretto.NewCache[string, []byte](&ristretto.Config[string, []byte]{
		NumCounters: numCounters,
		MaxCost:     int64(size),
		BufferItems: bufferItems,
	})
	if err != nil {
		panic(err)
	}

	return &TinyLFU{
		rand:   util.NewSafeRand(),
		cache:  cache,
		ttl:    ttl,
		offset: offset,
	}
}

// UseRandomizedTTL sets the upper bound of the jitter added to every ttl.
func (c *TinyLFU) UseRandomizedTTL(offset time.Duration) {
	c.offset = offset
}

func (c *TinyLFU) Set(key string, b []byte) {
	ttl := c.ttl
	if ttl > 0 && c.offset > 0 {
		ttl += time.Duration(c.rand.Int63n(int64(c.offset)))
	}

	c.cache.SetWithTTL(key, b, 1, ttl)

	// wait for value to pass through buffers
	c.cache.Wait()
}

func (c *TinyLFU) Get(key string) ([]byte, bool) {
	return c.cache.Get(key)
}

func (c *TinyLFU) Del(key string) {
	c.cache.Del(key)
}
