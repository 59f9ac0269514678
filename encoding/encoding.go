// Package encoding holds the value codecs used by the byte-oriented chain
// sources. Codecs register themselves from their own packages:
//
//	import _ "github.com/mgtv-tech/hashchain-go/encoding/sonic"
package encoding

import (
	"fmt"
	"strings"
	"sync"
)

// Codec defines the interface used to encode and decode values stored in a
// byte store.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	// Name returns the name the codec is registered under. It is matched
	// case-insensitively.
	Name() string
}

var (
	mu       sync.RWMutex
	registry = make(map[string]Codec)
)

// RegisterCodec registers codec under its name, replacing any codec already
// registered with that name. It panics on a nil codec or an empty name.
func RegisterCodec(codec Codec) {
	if codec == nil {
		panic("cannot register a nil Codec")
	}
	if codec.Name() == "" {
		panic("cannot register Codec with empty string result for Name()")
	}
	mu.Lock()
	registry[strings.ToLower(codec.Name())] = codec
	mu.Unlock()
}

// GetCodec returns the codec registered under name, or nil.
func GetCodec(name string) Codec {
	mu.RLock()
	defer mu.RUnlock()
	return registry[strings.ToLower(name)]
}

// Marshal encodes v with the named codec. Strings and byte slices are stored
// as is.
func Marshal(name string, v any) ([]byte, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	}

	codec := GetCodec(name)
	if codec == nil {
		return nil, fmt.Errorf("encoding %s is not registered", name)
	}
	return codec.Marshal(v)
}

// Unmarshal decodes b into v with the named codec. Empty input leaves v
// untouched.
func Unmarshal(name string, b []byte, v any) error {
	if len(b) == 0 {
		return nil
	}

	switch v := v.(type) {
	case nil:
		return nil
	case *[]byte:
		clone := make([]byte, len(b))
		copy(clone, b)
		*v = clone
		return nil
	case *string:
		*v = string(b)
		return nil
	}

	codec := GetCodec(name)
	if codec == nil {
		return fmt.Errorf("encoding %s is not registered", name)
	}
	return codec.Unmarshal(b, v)
}

// NilPlaceholder is stored by byte-backed sources for a key that is present
// with a nil value.
var NilPlaceholder = []byte("\x00hashchain:nil\x00")
