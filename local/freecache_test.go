package local

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewFreeCache(t *testing.T) {
	cache := NewFreeCache(256*MB, time.Second, "fc")
	assert.Equal(t, time.Second/10, cache.offset)
	cache.UseRandomizedTTL(time.Millisecond)
	assert.Equal(t, time.Millisecond, cache.offset)

	assert.Equal(t, "fc:key1", cache.Key("key1"))
	assert.Equal(t, "key1", NewFreeCache(256*MB, 0).Key("key1"))

	val, exists := cache.Get("key1")
	assert.False(t, exists)
	assert.Nil(t, val)

	cache.Set("key1", []byte("value1"))
	val, exists = cache.Get("key1")
	assert.True(t, exists)
	assert.Equal(t, []byte("value1"), val)

	cache.Del("key1")
	_, exists = cache.Get("key1")
	assert.False(t, exists)
}

func TestFreeCachePrefixIsolation(t *testing.T) {
	a := NewFreeCache(256*MB, time.Minute, "a")
	b := NewFreeCache(256*MB, time.Minute, "b")

	a.Set("shared", []byte("from a"))
	_, exists := b.Get("shared")
	assert.False(t, exists)

	b.Set("shared", []byte("from b"))
	val, _ := a.Get("shared")
	assert.Equal(t, []byte("from a"), val)
}

func TestFreeCacheShortTTL(t *testing.T) {
	cache := NewFreeCache(256*MB, time.Millisecond, "short")
	assert.Equal(t, time.Second, cache.ttl)
}
