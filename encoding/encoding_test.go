package encoding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mgtv-tech/hashchain-go/encoding"
	"github.com/mgtv-tech/hashchain-go/encoding/json"
	"github.com/mgtv-tech/hashchain-go/encoding/msgpack"
	"github.com/mgtv-tech/hashchain-go/encoding/sonic"
)

type object struct {
	Str string
	Num int
}

type upperCodec struct{}

func (upperCodec) Marshal(any) ([]byte, error) { return []byte("UPPER"), nil }
func (upperCodec) Unmarshal([]byte, any) error { return nil }
func (upperCodec) Name() string                { return "UpperCase" }

func TestRegisteredCodecs(t *testing.T) {
	for _, name := range []string{json.Name, msgpack.Name, sonic.Name} {
		codec := encoding.GetCodec(name)
		if assert.NotNil(t, codec, name) {
			assert.Equal(t, name, codec.Name())
		}
	}
	assert.Nil(t, encoding.GetCodec("gob"))
}

func TestRegisterCodec(t *testing.T) {
	encoding.RegisterCodec(upperCodec{})
	assert.NotNil(t, encoding.GetCodec("uppercase"))

	assert.Panics(t, func() { encoding.RegisterCodec(nil) })
}

func TestMarshalRoundTrip(t *testing.T) {
	for _, name := range []string{json.Name, msgpack.Name, sonic.Name} {
		t.Run(name, func(t *testing.T) {
			b, err := encoding.Marshal(name, &object{Str: "mystring", Num: 42})
			assert.Nil(t, err)

			var got object
			assert.Nil(t, encoding.Unmarshal(name, b, &got))
			assert.Equal(t, object{Str: "mystring", Num: 42}, got)
		})
	}
}

func TestMarshalPassThrough(t *testing.T) {
	b, err := encoding.Marshal("unknown", "plain")
	assert.Nil(t, err)
	assert.Equal(t, []byte("plain"), b)

	b, err = encoding.Marshal("unknown", []byte("raw"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("raw"), b)

	b, err = encoding.Marshal("unknown", nil)
	assert.Nil(t, err)
	assert.Nil(t, b)

	var s string
	assert.Nil(t, encoding.Unmarshal("unknown", []byte("plain"), &s))
	assert.Equal(t, "plain", s)

	var raw []byte
	assert.Nil(t, encoding.Unmarshal("unknown", []byte("raw"), &raw))
	assert.Equal(t, []byte("raw"), raw)
}

func TestUnknownCodec(t *testing.T) {
	_, err := encoding.Marshal("unknown", &object{})
	assert.Error(t, err)

	var obj object
	assert.Error(t, encoding.Unmarshal("unknown", []byte("x"), &obj))
	assert.Nil(t, encoding.Unmarshal("unknown", nil, &obj))
}
