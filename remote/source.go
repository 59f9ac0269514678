package remote

import (
	"bytes"
	"context"
	"strings"
	"time"

	"golang.org/x/exp/slices"

	hashchain "github.com/mgtv-tech/hashchain-go"
	"github.com/mgtv-tech/hashchain-go/encoding"
	"github.com/mgtv-tech/hashchain-go/encoding/msgpack"
	"github.com/mgtv-tech/hashchain-go/logger"
	"github.com/mgtv-tech/hashchain-go/util"
)

const defaultTTL = time.Hour

var _ hashchain.Mapping[string, any] = (*Source[any])(nil)

type (
	sourceOptions struct {
		ctx   context.Context
		ttl   time.Duration
		codec string
	}

	// SourceOption defines the method to customize a Source.
	SourceOption func(o *sourceOptions)
)

// WithContext sets the context used for every Redis call. Default is
// context.Background().
func WithContext(ctx context.Context) SourceOption {
	return func(o *sourceOptions) {
		o.ctx = ctx
	}
}

// WithTTL sets the expiration of values written through the Source. Default
// is 1 hour.
func WithTTL(ttl time.Duration) SourceOption {
	return func(o *sourceOptions) {
		o.ttl = ttl
	}
}

// WithCodec sets the codec used for values. Default is msgpack.
func WithCodec(codec string) SourceOption {
	return func(o *sourceOptions) {
		o.codec = codec
	}
}

// Source exposes the Redis keys under a prefix as a chain source. Keys are
// enumerated in ascending order. Redis errors other than a missing key are
// logged and the key is reported as absent.
type Source[V any] struct {
	sourceOptions
	remote Remote
	prefix string
}

// NewSource returns a Source over the keys of r starting with prefix. It
// panics when the configured codec is not registered.
func NewSource[V any](r Remote, prefix string, opts ...SourceOption) *Source[V] {
	o := sourceOptions{
		ctx:   context.Background(),
		ttl:   defaultTTL,
		codec: msgpack.Name,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.ttl <= 0 {
		o.ttl = defaultTTL
	}
	if encoding.GetCodec(o.codec) == nil {
		panic("encoding " + o.codec + " is not registered, please register it first")
	}

	return &Source[V]{
		sourceOptions: o,
		remote:        r,
		prefix:        prefix,
	}
}

func (s *Source[V]) key(key string) string {
	return s.prefix + key
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

	return s.remote.SetEX(s.ctx, s.key(key), b, s.ttl)
}

// SetMany stores all entries in one pipeline.
func (s *Source[V]) SetMany(entries map[string]V) error {
	value := make(map[string]any, len(entries))
	for key, val := range entries {
		b, err := encoding.Marshal(s.codec, val)
		if err != nil {
			return err
		}
		if b == nil {
			b = encoding.NilPlaceholder
		}
		value[s.key(key)] = b
	}

	return s.remote.MSet(s.ctx, value, s.ttl)
}

// SetNil marks key as present with a nil value.
func (s *Source[V]) SetNil(key string) error {
	return s.remote.SetEX(s.ctx, s.key(key), encoding.NilPlaceholder, s.ttl)
}

func (s *Source[V]) Delete(keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, key := range keys {
		full[i] = s.key(key)
	}

	_, err := s.remote.Del(s.ctx, full...)
	return err
}

func (s *Source[V]) Get(key string) (V, bool) {
	val, err := s.remote.Get(s.ctx, s.key(key))
	if err != nil {
		if err != s.remote.Nil() {
			logger.Error("remote source get(%s) error(%v)", s.key(key), err)
		}
		var zero V
		return zero, false
	}

	return s.decode(key, val)
}

func (s *Source[V]) decode(key, raw string) (V, bool) {
	var val V
	b := util.Bytes(raw)
	if bytes.Equal(b, encoding.NilPlaceholder) {
		return val, true
	}

	if err := encoding.Unmarshal(s.codec, b, &val); err != nil {
		logger.Error("remote source get(%s) unmarshal error(%v)", s.key(key), err)
		var zero V
		return zero, false
	}

	return val, true
}

// Has checks the key with EXISTS and does not decode the value, so a value
// that Get cannot decode still counts as present.
func (s *Source[V]) Has(key string) bool {
	ok, err := s.remote.Exists(s.ctx, s.key(key))
	if err != nil {
		logger.Error("remote source has(%s) error(%v)", s.key(key), err)
		return false
	}
	return ok
}

func (s *Source[V]) Keys() []string {
	full, err := s.remote.Scan(s.ctx, escapeGlob(s.prefix)+"*")
	if err != nil {
		logger.Error("remote source scan(%s) error(%v)", s.prefix, err)
		return nil
	}

	keys := make([]string, 0, len(full))
	for _, key := range full {
		keys = append(keys, strings.TrimPrefix(key, s.prefix))
	}
	slices.Sort(keys)

	return keys
}

// Values fetches all values with a single MGET pipeline.
func (s *Source[V]) Values() []V {
	var values []V
	s.Each(func(_ string, val V) {
		values = append(values, val)
	})
	return values
}

func (s *Source[V]) IsEmpty() bool {
	return len(s.Keys()) == 0
}

// Each calls fn for every key in Keys order that still holds a decodable
// value when the batch is fetched.
func (s *Source[V]) Each(fn func(key string, val V)) {
	keys := s.Keys()
	if len(keys) == 0 {
		return
	}

	full := make([]string, len(keys))
	for i, key := range keys {
		full[i] = s.key(key)
	}

	raw, err := s.remote.MGet(s.ctx, full...)
	if err != nil {
		logger.Error("remote source mget(%s) error(%v)", s.prefix, err)
		return
	}

	for i, key := range keys {
		str, ok := raw[full[i]]
		if !ok {
			continue
		}
		if val, ok := s.decode(key, str); ok {
			fn(key, val)
		}
	}
}

func escapeGlob(s string) string {
	var b strings.Builder
	for _, c := range s {
		switch c {
		case '*', '?', '[', ']', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(c)
	}
	return b.String()
}
