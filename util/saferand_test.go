package util

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRandSafe_Int63n(t *testing.T) {
	rand := NewSafeRand()
	for i := 0; i < 1000; i++ {
		val := rand.Int63n(1000)
		assert.True(t, val >= 0)
		assert.True(t, val < 1000)
	}
}

func TestRandSafe_TTLJitter(t *testing.T) {
	const ttl = time.Minute
	offset := ttl / 10
	rand := NewSafeRand()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				got := ttl + time.Duration(rand.Int63n(int64(offset)))
				assert.True(t, got >= ttl)
				assert.True(t, got < ttl+offset)
			}
		}()
	}
	wg.Wait()

	assert.Panics(t, func() { rand.Int63n(0) })
}

func BenchmarkInt63ThreadSafe(b *testing.B) {
	rand := NewSafeRand()
	for n := b.N; n > 0; n-- {
		rand.Int63n(1000)
	}
}

func BenchmarkInt63ThreadSafeParallel(b *testing.B) {
	rand := NewSafeRand()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			rand.Int63n(1000)
		}
	})
}
