package stats

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testHandler struct {
	Hit   uint64
	Miss  uint64
	Probe uint64
}

func TestNewHandles(t *testing.T) {
	tests := []struct {
		input  bool
		expect uint64
	}{
		{
			input:  false,
			expect: 1,
		},
		{
			input:  true,
			expect: 0,
		},
	}
	for _, v := range tests {
		var handler testHandler
		h := NewHandles(v.input, &handler)
		h.IncrHit()
		h.IncrMiss()
		h.IncrProbe()

		assert.Equal(t, v.expect, handler.Hit)
		assert.Equal(t, v.expect, handler.Miss)
		assert.Equal(t, v.expect, handler.Probe)
	}
}

func TestNewHandlesFanOut(t *testing.T) {
	var h1, h2 testHandler
	h := NewHandles(false, &h1, &h2)
	h.IncrProbe()
	h.IncrProbe()
	h.IncrHit()

	assert.Equal(t, uint64(2), h1.Probe)
	assert.Equal(t, uint64(2), h2.Probe)
	assert.Equal(t, uint64(1), h1.Hit)
	assert.Equal(t, uint64(1), h2.Hit)
}

func TestNewHandlesEmpty(t *testing.T) {
	h := NewHandles(false)
	assert.NotPanics(t, func() {
		h.IncrHit()
		h.IncrMiss()
		h.IncrProbe()
	})
}

func (h *testHandler) IncrHit() {
	atomic.AddUint64(&h.Hit, 1)
}

func (h *testHandler) IncrMiss() {
	atomic.AddUint64(&h.Miss, 1)
}

func (h *testHandler) IncrProbe() {
	atomic.AddUint64(&h.Probe, 1)
}
