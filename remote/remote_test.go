package remote

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	redisv8 "github.com/go-redis/redis/v8"
	redisv9 "github.com/redis/go-redis/v9"
)

func newMiniredis(t *testing.T) *miniredis.Miniredis {
	s, err := miniredis.Run()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(s.Close)
	return s
}

func newV8Rdb(t *testing.T) *redisv8.Client {
	return redisv8.NewClient(&redisv8.Options{
		Addr: newMiniredis(t).Addr(),
	})
}

func newV9Rdb(t *testing.T) *redisv9.Client {
	return redisv9.NewClient(&redisv9.Options{
		Addr: newMiniredis(t).Addr(),
	})
}

// adapters returns one Remote per supported client, each on its own server.
func adapters(t *testing.T) map[string]Remote {
	return map[string]Remote{
		"v8": NewGoRedisV8Adaptor(newV8Rdb(t)),
		"v9": NewGoRedisV9Adapter(newV9Rdb(t)),
	}
}

func TestEscapeGlob(t *testing.T) {
	tests := map[string]string{
		"app:":    "app:",
		"a*b":     `a\*b`,
		"q?[x]":   `q\?\[x\]`,
		`back\tk`: `back\\tk`,
	}
	for in, want := range tests {
		if got := escapeGlob(in); got != want {
			t.Errorf("escapeGlob(%q) = %q, want %q", in, got, want)
		}
	}
}
