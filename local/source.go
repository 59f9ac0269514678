package local

import (
	"bytes"
	"sync"

	hashchain "github.com/mgtv-tech/hashchain-go"
	"github.com/mgtv-tech/hashchain-go/encoding"
	"github.com/mgtv-tech/hashchain-go/encoding/msgpack"
	"github.com/mgtv-tech/hashchain-go/logger"
)

var _ hashchain.Mapping[string, any] = (*Source[any])(nil)

type (
	sourceOptions struct {
		codec string
	}

	// SourceOption defines the method to customize a Source.
	SourceOption func(o *sourceOptions)
)

// WithCodec sets the codec used for values. Default is msgpack.
func WithCodec(codec string) SourceOption {
	return func(o *sourceOptions) {
		o.codec = codec
	}
}

// Source exposes a Local as a chain source with values of type V. Keys are
// enumerated in the order they were first written through the Source; keys
// the store has since evicted or expired are skipped.
type Source[V any] struct {
	local Local
	codec string

	mu      sync.RWMutex
	written *hashchain.Map[string, struct{}]
}

// NewSource wraps l. It panics when the configured codec is not registered.
func NewSource[V any](l Local, opts ...SourceOption) *Source[V] {
	o := sourceOptions{codec: msgpack.Name}
	for _, opt := range opts {
		opt(&o)
	}
	if encoding.GetCodec(o.codec) == nil {
		panic("encoding " + o.codec + " is not registered, please register it first")
	}

	return &Source[V]{
		local:   l,
		codec:   o.codec,
		written: hashchain.NewMap[string, struct{}](),
	}
}

// Set encodes and stores val under key.
func (s *Source[V]) Set(key string, val V) error {
	b, err := encoding.Marshal(s.codec, val)
	if err != nil {
		return err
	}
	if b == nil {
		b = encoding.NilPlaceholder
	}

	s.store(key, b)
	return nil
}

// SetNil marks key as present with a nil value. Get then yields the zero V
// and Has reports true, so the key is answered by this source.
func (s *Source[V]) SetNil(key string) {
	s.store(key, encoding.NilPlaceholder)
}

func (s *Source[V]) store(key string, b []byte) {
	s.local.Set(key, b)
	s.mu.Lock()
	s.written.Set(key, struct{}{})
	s.mu.Unlock()
}

func (s *Source[V]) Delete(key string) {
	s.local.Del(key)
	s.mu.Lock()
	s.written.Delete(key)
	s.mu.Unlock()
}

// Get decodes the value stored under key. Values that fail to decode are
// logged and reported as absent.
func (s *Source[V]) Get(key string) (V, bool) {
	var val V
	b, ok := s.local.Get(key)
	if !ok {
		return val, false
	}
	if bytes.Equal(b, encoding.NilPlaceholder) {
		return val, true
	}

	if err := encoding.Unmarshal(s.codec, b, &val); err != nil {
		logger.Error("local source get(%s) unmarshal error(%v)", key, err)
		var zero V
		return zero, false
	}

	return val, true
}

// Has agrees with Get: a stored value that fails to decode is absent.
func (s *Source[V]) Has(key string) bool {
	_, ok := s.Get(key)
	return ok
}

func (s *Source[V]) Keys() []string {
	s.mu.RLock()
	written := s.written.Keys()
	s.mu.RUnlock()

	keys := make([]string, 0, len(written))
	for _, key := range written {
		if s.Has(key) {
			keys = append(keys, key)
		}
	}
	return keys
}

func (s *Source[V]) Values() []V {
	keys := s.Keys()
	values := make([]V, 0, len(keys))
	for _, key := range keys {
		val, _ := s.Get(key)
		values = append(values, val)
	}
	return values
}

func (s *Source[V]) IsEmpty() bool {
	return len(s.Keys()) == 0
}

func (s *Source[V]) Each(fn func(key string, val V)) {
	for _, key := range s.Keys() {
		if val, ok := s.Get(key); ok {
			fn(key, val)
		}
	}
}
