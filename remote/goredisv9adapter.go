package remote

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var _ Remote = (*GoRedisV9Adapter)(nil)

type GoRedisV9Adapter struct {
	client redis.Cmdable
}

// NewGoRedisV9Adapter wraps a go-redis v9 client, ring or cluster client.
func NewGoRedisV9Adapter(client redis.Cmdable) Remote {
	return &GoRedisV9Adapter{
		client: client,
	}
}

func (r *GoRedisV9Adapter) SetEX(ctx context.Context, key string, value any, expire time.Duration) error {
	return r.client.SetEx(ctx, key, value, expire).Err()
}

func (r *GoRedisV9Adapter) Get(ctx context.Context, key string) (val string, err error) {
	return r.client.Get(ctx, key).Result()
}

func (r *GoRedisV9Adapter) Exists(ctx context.Context, key string) (bool, error) {
	n, err := r.client.Exists(ctx, key).Result()
	return n > 0, err
}

func (r *GoRedisV9Adapter) Del(ctx context.Context, keys ...string) (val int64, err error) {
	return r.client.Del(ctx, keys...).Result()
}

func (r *GoRedisV9Adapter) MGet(ctx context.Context, keys ...string) (map[string]string, error) {
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

func (r *GoRedisV9Adapter) MSet(ctx context.Context, value map[string]any, expire time.Duration) error {
	pipeline := r.client.Pipeline()

	for key, val := range value {
		pipeline.SetEx(ctx, key, val, expire)
	}
	_, err := pipeline.Exec(ctx)

	return err
}

func (r *GoRedisV9Adapter) Scan(ctx context.Context, match string) ([]string, error) {
	var keys []string
	iter := r.client.Scan(ctx, 0, match, scanCount).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}

	return keys, iter.Err()
}

func (r *GoRedisV9Adapter) Nil() error {
	return redis.Nil
}
