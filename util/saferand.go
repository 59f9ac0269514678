package util

import (
	"math/rand"
	"sync"
	"time"
)

// SafeRand is a math/rand source safe for concurrent use.
type SafeRand struct {
	mu   sync.Mutex
	rand *rand.Rand
}

func NewSafeRand() *SafeRand {
	return &SafeRand{
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Int63n returns a non-negative pseudo-random number in [0,n). It panics if
// n <= 0.
func (r *SafeRand) Int63n(n int64) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Int63n(n)
}
