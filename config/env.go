package config

import (
	"os"
	"strings"

	"golang.org/x/exp/slices"

	hashchain "github.com/mgtv-tech/hashchain-go"
)

var (
	_ hashchain.Mapping[string, any] = Env("")

	keyToEnv = strings.NewReplacer(".", "_", "-", "_")
	envToKey = strings.NewReplacer("_", ".")
)

// Env is a live view over the environment variables starting with its
// prefix. Key "log.level" reads variable PREFIX_LOG_LEVEL for prefix
// "PREFIX_"; enumerated keys are lower case with underscores read as dots.
type Env string

func (e Env) name(key string) string {
	return string(e) + strings.ToUpper(keyToEnv.Replace(key))
}

func (e Env) Get(key string) (any, bool) {
	val, ok := os.LookupEnv(e.name(key))
	if !ok {
		return nil, false
	}
	return val, true
}

func (e Env) Has(key string) bool {
	_, ok := os.LookupEnv(e.name(key))
	return ok
}

func (e Env) Keys() []string {
	var keys []string
	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if !strings.HasPrefix(name, string(e)) || len(name) == len(e) {
			continue
		}
		keys = append(keys, envToKey.Replace(strings.ToLower(strings.TrimPrefix(name, string(e)))))
	}
	slices.Sort(keys)
	return slices.Compact(keys)
}

func (e Env) Values() []any {
	var values []any
	e.Each(func(_ string, val any) {
		values = append(values, val)
	})
	return values
}

func (e Env) IsEmpty() bool {
	return len(e.Keys()) == 0
}

func (e Env) Each(fn func(key string, val any)) {
	for _, key := range e.Keys() {
		if val, ok := e.Get(key); ok {
			fn(key, val)
		}
	}
}
