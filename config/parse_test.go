package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	hashchain "github.com/mgtv-tech/hashchain-go"
)

const yamlDoc = `
name: demo
server:
  port: 8080
  host: localhost
tags: [a, b]
debug: false
empty:
`

func TestParse(t *testing.T) {
	m, err := Parse([]byte(yamlDoc))
	assert.Nil(t, err)

	assert.Equal(t, []string{"name", "server", "tags", "debug", "empty"}, m.Keys())

	server, ok := m.Get("server")
	assert.True(t, ok)
	assert.Equal(t, []string{"port", "host"}, server.(*hashchain.Map[string, any]).Keys())

	port, ok := Lookup(m, "server.port")
	assert.True(t, ok)
	assert.Equal(t, 8080, port)

	tags, _ := m.Get("tags")
	assert.Equal(t, []any{"a", "b"}, tags)

	debug, ok := m.Get("debug")
	assert.True(t, ok)
	assert.Equal(t, false, debug)

	empty, ok := m.Get("empty")
	assert.True(t, ok)
	assert.Nil(t, empty)
}

func TestParseEdgeCases(t *testing.T) {
	m, err := Parse(nil)
	assert.Nil(t, err)
	assert.True(t, m.IsEmpty())

	_, err = Parse([]byte("- a\n- b\n"))
	assert.ErrorIs(t, err, ErrNotMapping)

	_, err = Parse([]byte("? [a, b]\n: c\n"))
	assert.ErrorIs(t, err, ErrBadKey)

	_, err = Parse([]byte("a: [unclosed\n"))
	assert.Error(t, err)

	m, err = Parse([]byte("base: &b\n  x: 1\ncopy: *b\n"))
	assert.Nil(t, err)
	x, ok := Lookup(m, "copy.x")
	assert.True(t, ok)
	assert.Equal(t, 1, x)
}

func TestParseJSONC(t *testing.T) {
	m, err := ParseJSONC([]byte(`{
	// comment
	"zeta": 1,
	"alpha": {"inner": 2.5, "list": [1, {"k": "v"}],},
	"none": null,
	/* block */
	"flag": true,
}`))
	assert.Nil(t, err)

	assert.Equal(t, []string{"zeta", "alpha", "none", "flag"}, m.Keys())

	zeta, _ := m.Get("zeta")
	assert.Equal(t, 1, zeta)

	inner, ok := Lookup(m, "alpha.inner")
	assert.True(t, ok)
	assert.Equal(t, 2.5, inner)

	list, _ := Lookup(m, "alpha.list")
	if assert.Len(t, list, 2) {
		assert.Equal(t, "v", func() any {
			v, _ := list.([]any)[1].(*hashchain.Map[string, any]).Get("k")
			return v
		}())
	}

	none, ok := m.Get("none")
	assert.True(t, ok)
	assert.Nil(t, none)

	m, err = ParseJSONC(nil)
	assert.Nil(t, err)
	assert.True(t, m.IsEmpty())

	_, err = ParseJSONC([]byte(`[1, 2]`))
	assert.ErrorIs(t, err, ErrNotMapping)

	_, err = ParseJSONC([]byte(`{"a": }`))
	assert.Error(t, err)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "app.yaml")
	jsonPath := filepath.Join(dir, "app.jsonc")
	assert.Nil(t, os.WriteFile(yamlPath, []byte("a: 1\nb: 2\n"), 0o600))
	assert.Nil(t, os.WriteFile(jsonPath, []byte("{\"b\": 3, // trailing\n}"), 0o600))

	m, err := ReadFile(yamlPath)
	assert.Nil(t, err)
	assert.Equal(t, []string{"a", "b"}, m.Keys())

	m, err = ReadFile(jsonPath)
	assert.Nil(t, err)
	assert.Equal(t, []any{3}, m.Values())

	_, err = ReadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLookup(t *testing.T) {
	m := hashchain.MapOf(
		hashchain.Entry[string, any]{Key: "a", Value: hashchain.MapOf(hashchain.Entry[string, any]{Key: "b", Value: "c"})},
		hashchain.Entry[string, any]{Key: "leaf", Value: 1},
	)

	val, ok := Lookup(m, "a.b")
	assert.True(t, ok)
	assert.Equal(t, "c", val)

	_, ok = Lookup(m, "a.missing")
	assert.False(t, ok)

	_, ok = Lookup(m, "leaf.deeper")
	assert.False(t, ok)
}

func TestLookupDottedKey(t *testing.T) {
	m := hashchain.MapOf(
		hashchain.Entry[string, any]{Key: "a.b", Value: "flat"},
		hashchain.Entry[string, any]{Key: "a", Value: hashchain.MapOf(hashchain.Entry[string, any]{Key: "b", Value: "nested"})},
		hashchain.Entry[string, any]{Key: "x", Value: hashchain.MapOf(hashchain.Entry[string, any]{Key: "y.z", Value: 1})},
	)

	val, ok := Lookup(m, "a.b")
	assert.True(t, ok)
	assert.Equal(t, "flat", val)

	val, ok = Lookup(m, "x.y.z")
	assert.True(t, ok)
	assert.Equal(t, 1, val)
}
