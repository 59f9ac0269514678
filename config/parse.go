// Package config builds layered configuration on top of hashchain: command
// line flags override environment variables, which override configuration
// files, which override flag defaults. Every layer is a live
// hashchain.Mapping and documents keep their key order.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	hashchain "github.com/mgtv-tech/hashchain-go"
)

var (
	ErrNotMapping = errors.New("config: document root is not a mapping")
	ErrBadKey     = errors.New("config: mapping key is not a scalar")
)

// Parse decodes a YAML document into an ordered map. Nested mappings become
// nested *hashchain.Map values; an empty document yields an empty map.
func Parse(data []byte) (*hashchain.Map[string, any], error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return hashchain.NewMap[string, any](), nil
		}
		root = root.Content[0]
	}
	if root.Kind == 0 {
		return hashchain.NewMap[string, any](), nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, ErrNotMapping
	}

	return decodeMapping(root)
}

func decodeMapping(node *yaml.Node) (*hashchain.Map[string, any], error) {
	m := hashchain.NewMap[string, any]()
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]
		if keyNode.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w at line %d", ErrBadKey, keyNode.Line)
		}
		if valNode.Kind == yaml.AliasNode {
			valNode = valNode.Alias
		}

		if valNode.Kind == yaml.MappingNode {
			nested, err := decodeMapping(valNode)
			if err != nil {
				return nil, err
			}
			m.Set(keyNode.Value, nested)
			continue
		}

		var val any
		if err := valNode.Decode(&val); err != nil {
			return nil, fmt.Errorf("decoding %q: %w", keyNode.Value, err)
		}
		m.Set(keyNode.Value, val)
	}

	return m, nil
}

// ParseJSONC decodes JSON extended with comments and trailing commas into an
// ordered map, the same shape Parse returns.
func ParseJSONC(data []byte) (*hashchain.Map[string, any], error) {
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	dec.UseNumber()

	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return hashchain.NewMap[string, any](), nil
	}
	if err != nil {
		return nil, fmt.Errorf("parsing json: %w", err)
	}
	if tok != json.Delim('{') {
		return nil, ErrNotMapping
	}

	m, err := decodeObject(dec)
	if err != nil {
		return nil, fmt.Errorf("parsing json: %w", err)
	}
	return m, nil
}

// decodeObject reads the members of an object whose opening brace has been
// consumed.
func decodeObject(dec *json.Decoder) (*hashchain.Map[string, any], error) {
	m := hashchain.NewMap[string, any]()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, ErrBadKey
		}
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		m.Set(key, val)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return m, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch tok := tok.(type) {
	case json.Delim:
		if tok == '{' {
			return decodeObject(dec)
		}
		var list []any
		for dec.More() {
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			list = append(list, val)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return list, nil
	case json.Number:
		if i, err := tok.Int64(); err == nil {
			return int(i), nil
		}
		return tok.Float64()
	default:
		return tok, nil
	}
}

// ReadFile reads a configuration file. Files ending in .json or .jsonc are
// parsed with ParseJSONC, anything else as YAML.
func ReadFile(path string) (*hashchain.Map[string, any], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var m *hashchain.Map[string, any]
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		m, err = ParseJSONC(data)
	default:
		m, err = Parse(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}
