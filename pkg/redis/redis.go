package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

func (r *redisImpl) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

// SetNX sets key only if it does not exist. It reports whether the key was set.
func (r *redisImpl) SetNX(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error) {
	return r.client.SetNX(ctx, key, value, ttl).Result()
}

func (r *redisImpl) Get(ctx context.Context, key string) (string, error) {
	return r.client.Get(ctx, key).Result()
}

// MGet returns one entry per key; missing keys are nil.
func (r *redisImpl) MGet(ctx context.Context, keys ...string) ([]interface{}, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	return r.client.MGet(ctx, keys...).Result()
}

func (r *redisImpl) IncrBy(ctx context.Context, key string, n int64) (int64, error) {
	return r.client.IncrBy(ctx, key, n).Result()
}

func (r *redisImpl) HIncrBy(ctx context.Context, key, field string, n int64) (int64, error) {
	return r.client.HIncrBy(ctx, key, field, n).Result()
}

// HGetAllMany reads several hashes in one pipeline. Missing keys give empty maps.
func (r *redisImpl) HGetAllMany(ctx context.Context, keys ...string) ([]map[string]string, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	cmds := make([]*goredis.MapStringStringCmd, len(keys))
	_, err := r.client.Pipelined(ctx, func(p goredis.Pipeliner) error {
		for i, key := range keys {
			cmds[i] = p.HGetAll(ctx, key)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]map[string]string, len(keys))
	for i, cmd := range cmds {
		out[i] = cmd.Val()
	}
	return out, nil
}

func (r *redisImpl) Expire(ctx context.Context, key string, ttl time.Duration) error {
	return r.client.Expire(ctx, key, ttl).Err()
}

func (r *redisImpl) Delete(ctx context.Context, keys ...string) error {
	return r.client.Del(ctx, keys...).Err()
}

func (r *redisImpl) Exists(ctx context.Context, key string) (bool, error) {
	count, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *redisImpl) TTL(ctx context.Context, key string) (time.Duration, error) {
	return r.client.TTL(ctx, key).Result()
}

func (r *redisImpl) Close() error {
	return r.client.Close()
}

func (r *redisImpl) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// GetClient returns the underlying go-redis client for advanced operations.
func (r *redisImpl) GetClient() *goredis.Client {
	return r.client
}
