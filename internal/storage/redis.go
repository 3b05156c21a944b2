package storage

import (
	"context"
	"errors"

	errx "github.com/arogyasagar/storefront/internal/core/error"
	logx "github.com/arogyasagar/storefront/pkg/logger"
	"github.com/redis/go-redis/v9"
)

// RedisStore persists values as plain Redis strings under a key prefix.
type RedisStore struct {
	rdb    redis.Cmdable
	prefix string
}

func NewRedisStore(rdb redis.Cmdable, prefix string) *RedisStore {
	return &RedisStore{rdb: rdb, prefix: prefix}
}

func (r *RedisStore) key(k string) string {
	return r.prefix + k
}

func (r *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	k := r.key(key)
	v, err := r.rdb.Get(ctx, k).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		logx.Error().Err(err).Str("key", k).Msg("failed to read key from redis")
		return "", false, errx.WrapRedis(err)
	}
	return v, true, nil
}

func (r *RedisStore) Set(ctx context.Context, key, value string) error {
	k := r.key(key)
	if err := r.rdb.Set(ctx, k, value, 0).Err(); err != nil {
		logx.Error().Err(err).Str("key", k).Msg("failed to write key to redis")
		return errx.WrapRedis(err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, key string) error {
	k := r.key(key)
	if err := r.rdb.Del(ctx, k).Err(); err != nil {
		logx.Error().Err(err).Str("key", k).Msg("failed to delete key from redis")
		return errx.WrapRedis(err)
	}
	return nil
}

var _ Store = (*RedisStore)(nil)
