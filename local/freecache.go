package local

import (
	"errors"
	"sync"
	"time"

	"github.com/coocood/freecache"

	"github.com/mgtv-tech/hashchain-go/logger"
	"github.com/mgtv-tech/hashchain-go/util"
)

var _ Local = (*FreeCache)(nil)

var (
	innerCache *freecache.Cache
	once       sync.Once
)

// FreeCache is a Local backed by a process wide freecache instance. Each
// FreeCache keeps its keys apart with its own prefix.
type FreeCache struct {
	rand           *util.SafeRand
	ttl            time.Duration
	offset         time.Duration
	innerKeyPrefix string
}

// NewFreeCache creates a FreeCache. The shared inner cache is allocated by
// the first call only, with that call's size; sizes outside 512KB..8GB fall
// back to 256MB. A zero ttl never expires.
func NewFreeCache(size Size, ttl time.Duration, innerKeyPrefix ...string) *FreeCache {
	prefix := ""
	if len(innerKeyPrefix) > 0 {
		prefix = innerKeyPrefix[0]
	}

	// freecache treats expireSeconds <= 0 as no expiry
	if ttl > 0 && ttl < time.Second {
		ttl = time.Second
	}

	const maxOffset = 10 * time.Second
	offset := ttl / 10
	if offset > maxOffset {
		offset = maxOffset
	}

	once.Do(func() {
		if size < 512*KB || size > 8*GB {
			size = 256 * MB
		}
		innerCache = freecache.NewCache(int(size))
	})

	return &FreeCache{
		innerKeyPrefix: prefix,
		rand:           util.NewSafeRand(),
		ttl:            ttl,
		offset:         offset,
	}
}

// UseRandomizedTTL sets the upper bound of the jitter added to every ttl.
func (c *FreeCache) UseRandomizedTTL(offset time.Duration) {
	c.offset = offset
}

func (c *FreeCache) Set(key string, b []byte) {
	ttl := c.ttl
	if ttl > 0 && c.offset > 0 {
		ttl += time.Duration(c.rand.Int63n(int64(c.offset)))
	}

	if err := innerCache.Set(util.Bytes(c.Key(key)), b, int(ttl.Seconds())); err != nil {
		logger.Error("freeCache set(%s) error(%v)", key, err)
	}
}

func (c *FreeCache) Get(key string) ([]byte, bool) {
	b, err := innerCache.Get(util.Bytes(c.Key(key)))
	if err != nil {
		if !errors.Is(err, freecache.ErrNotFound) {
			logger.Error("freeCache get(%s) error(%v)", key, err)
		}
		return nil, false
	}

	return b, true
}

func (c *FreeCache) Del(key string) {
	innerCache.Del(util.Bytes(c.Key(key)))
}

// Key returns the key used in the shared inner cache.
func (c *FreeCache) Key(key string) string {
	if c.innerKeyPrefix == "" {
		return key
	}

	return util.JoinAny(":", c.innerKeyPrefix, key)
}
