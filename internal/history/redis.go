package history

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisCache is a redis-backed implementation of Cache.
type RedisCache struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisCache connects to the redis instance at addr.
func NewRedisCache(addr string) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{
		client: rdb,
		ctx:    context.Background(),
	}
}

// Get returns the cached value for key. Any redis error is treated as a
// cache miss; the caller recomputes.
func (r *RedisCache) Get(key string) (string, bool) {
	val, err := r.client.Get(r.ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// Set stores value under key without expiration.
func (r *RedisCache) Set(key string, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// Ping verifies connectivity to redis.
func (r *RedisCache) Ping() error {
	return r.client.Ping(r.ctx).Err()
}
