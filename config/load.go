package config

import (
	"github.com/spf13/pflag"

	hashchain "github.com/mgtv-tech/hashchain-go"
	"github.com/mgtv-tech/hashchain-go/logger"
)

// Load builds the configuration chain
//
//	flags set on fs > environment under envPrefix > files in order > flag defaults
//
// A nil fs or an empty envPrefix leaves out the corresponding layers. Files
// are read once; flags and environment stay live.
func Load(fs *pflag.FlagSet, envPrefix string, paths ...string) (*hashchain.Chain[string, any], error) {
	files := make([]hashchain.Mapping[string, any], 0, len(paths))
	for _, path := range paths {
		m, err := ReadFile(path)
		if err != nil {
			return nil, err
		}
		logger.Debug("config: loaded %d keys from %s", m.Len(), path)
		files = append(files, m)
	}

	var layers []hashchain.Source[string, any]
	if fs != nil {
		layers = append(layers, hashchain.Single[string, any](Flags(fs)))
	}
	if envPrefix != "" {
		layers = append(layers, hashchain.Single[string, any](Env(envPrefix)))
	}
	layers = append(layers, hashchain.Flat(files...))
	if fs != nil {
		layers = append(layers, hashchain.Single[string, any](FlagDefaults(fs)))
	}

	return hashchain.NewWithOptions([]hashchain.Option{hashchain.WithName("config")}, layers...)
}

// layered is implemented by *hashchain.Chain.
type layered interface {
	Sources() []hashchain.Mapping[string, any]
}

// Lookup resolves a dotted path such as "server.port". Within each mapping
// the whole path is tried as a key first, so an environment variable or flag
// named "server.port" answers it; otherwise the path descends through nested
// mappings. The layers of a chain are searched in order, and the first layer
// that resolves the path wins.
func Lookup(m hashchain.Mapping[string, any], path string) (any, bool) {
	if c, ok := m.(layered); ok {
		for _, src := range c.Sources() {
			if val, ok := Lookup(src, path); ok {
				return val, true
			}
		}
		return nil, false
	}

	if val, ok := get(m, path); ok {
		return val, true
	}
	for i := 0; i < len(path); i++ {
		if path[i] != '.' {
			continue
		}
		val, ok := get(m, path[:i])
		if !ok {
			continue
		}
		if nested, ok := val.(hashchain.Mapping[string, any]); ok {
			if val, ok := Lookup(nested, path[i+1:]); ok {
				return val, true
			}
		}
	}

	return nil, false
}

func get(m hashchain.Mapping[string, any], key string) (any, bool) {
	if m.Has(key) {
		val, _ := m.Get(key)
		return val, true
	}
	return m.Get(key)
}
