package remote

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

var _ Remote = (*GoRedisV8Adaptor)(nil)

type GoRedisV8Adaptor struct {
	client redis.Cmdable
}

// NewGoRedisV8Adaptor wraps a go-redis v8 client, ring or cluster client.
func NewGoRedisV8Adaptor(client redis.Cmdable) Remote {
	return &GoRedisV8Adaptor{
		client: client,
	}
}

func (r *GoRedisV8Adaptor) SetEX(ctx context.Context, key string, value any, expire time.Duration) error {
	return r.client.SetEX(ctx, key, value, expire).Err()
}

func (r *GoRedisV8Adaptor) Get(ctx context.Context, key string) (val string, err error) {
	return r.client.Get(ctx, key).Result()
}

func (r *GoRedisV8Adaptor) Exists(ctx context.Context, key string) (bool, error) {
	n, err := r.client.Exists(ctx, key).Result()
	return n > 0, err
}

func (r *GoRedisV8Adaptor) Del(ctx context.Context, keys ...string) (val int64, err error) {
	return r.client.Del(ctx, keys...).Result()
}

func (r *GoRedisV8Adaptor) MGet(ctx context.Context, keys ...string) (map[string]string, error) {
	pipeline := r.client.Pipeline()
	keyIdxMap := make(map[int]string, len(keys))
	ret := make(map[string]string, len(keys))

	for idx, key := range keys {
		keyIdxMap[idx] = key
		pipeline.Get(ctx, key)
	}

	cmder, err := pipeline.Exec(ctx)
	if err != nil && !errors.Is(err, r.Nil()) {
		return nil, err
	}

	for idx, cmd := range cmder {
		if strCmd, ok := cmd.(*redis.StringCmd); ok {
			if val, err := strCmd.Result(); err == nil {
				ret[keyIdxMap[idx]] = val
			}
		}
	}

	return ret, nil
}

func (r *GoRedisV8Adaptor) MSet(ctx context.Context, value map[string]any, expire time.Duration) error {
	pipeline := r.client.Pipeline()

	for key, val := range value {
		pipeline.SetEX(ctx, key, val, expire)
	}
	_, err := pipeline.Exec(ctx)

	return err
}

func (r *GoRedisV8Adaptor) Scan(ctx context.Context, match string) ([]string, error) {
	var keys []string
	iter := r.client.Scan(ctx, 0, match, scanCount).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}

	return keys, iter.Err()
}

func (r *GoRedisV8Adaptor) Nil() error {
	return redis.Nil
}
