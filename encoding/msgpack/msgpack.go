package msgpack

import (
	"errors"
	"fmt"

	"github.com/klauspost/compress/s2"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/mgtv-tech/hashchain-go/encoding"
)

// Name is the name registered for the msgpack codec.
const Name = "msgpack"

const (
	// payloads shorter than this are stored uncompressed
	compressionThreshold = 64

	noCompression = 0x0
	s2Compression = 0x1
)

var errEmpty = errors.New("msgpack: empty payload")

func init() {
	encoding.RegisterCodec(codec{})
}

// codec encodes with msgpack and compresses large payloads with s2. The last
// byte of every payload marks the compression used.
type codec struct{}

func (codec) Marshal(v any) ([]byte, error) {
	b, err := msgpack.Marshal(v)
	if err != nil {
		return nil, err
	}

	return compress(b), nil
}

func (codec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return errEmpty
	}

	switch c := data[len(data)-1]; c {
	case noCompression:
		data = data[:len(data)-1]
	case s2Compression:
		var err error
		if data, err = s2.Decode(nil, data[:len(data)-1]); err != nil {
			return err
		}
	default:
		return fmt.Errorf("msgpack: unknown compression method: %x", c)
	}

	return msgpack.Unmarshal(data, v)
}

func (codec) Name() string {
	return Name
}

func compress(data []byte) []byte {
	if len(data) < compressionThreshold {
		b := make([]byte, len(data)+1)
		copy(b, data)
		b[len(b)-1] = noCompression
		return b
	}

	b := s2.Encode(make([]byte, s2.MaxEncodedLen(len(data))+1), data)
	return append(b, s2Compression)
}
