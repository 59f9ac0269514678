package sonic

import (
	"github.com/bytedance/sonic"

	"github.com/mgtv-tech/hashchain-go/encoding"
)

// Name is the name registered for the sonic codec.
const Name = "sonic"

func init() {
	encoding.RegisterCodec(codec{})
}

// codec is a JSON Codec implementation with bytedance/sonic.
type codec struct{}

func (codec) Marshal(v any) ([]byte, error) {
	return sonic.ConfigStd.Marshal(v)
}

func (codec) Unmarshal(data []byte, v any) error {
	return sonic.ConfigStd.Unmarshal(data, v)
}

func (codec) Name() string {
	return Name
}
