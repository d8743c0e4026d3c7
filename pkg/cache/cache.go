// Package cache is a small JSON-over-redis read cache for property
// lookups. Misses are not errors; a nil-safe no-op implementation keeps
// the repository usable without redis configured.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

type Redis struct{ c *redis.Client }

func NewRedis(addr, password string, db int) *Redis {
	return &Redis{c: redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})}
}

func (r *Redis) Get(ctx context.Context, key string, dst any) (bool, error) {
	v, err := r.c.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(v, dst)
}

func (r *Redis) Set(ctx context.Context, key string, v any, ttl time.Duration) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return r.c.Set(ctx, key, b, ttl).Err()
}

func (r *Redis) Del(ctx context.Context, key string) error {
	return r.c.Del(ctx, key).Err()
}

// Noop satisfies Cache when no redis address is configured.
type Noop struct{}

func (Noop) Get(ctx context.Context, key string, dst any) (bool, error) { return false, nil }
func (Noop) Set(ctx context.Context, key string, v any, ttl time.Duration) error {
	return nil
}
func (Noop) Del(ctx context.Context, key string) error { return nil }
