// pkg/ratelimit/redis.go
package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore shares the cooldown window across instances. Keys expire with
// the window, so Redis does the eviction a MemoryStore has to do itself.
type RedisStore struct {
	client *redis.Client
	window time.Duration
	max    int
	prefix string
}

func NewRedisStore(client *redis.Client, window time.Duration, max int) *RedisStore {
	return &RedisStore{
		client: client,
		window: window,
		max:    max,
		prefix: "cooldown:",
	}
}

func (s *RedisStore) Hit(ctx context.Context, key string) (bool, time.Duration, error) {
	k := s.prefix + key

	count, err := s.client.Incr(ctx, k).Result()
	if err != nil {
		return false, 0, err
	}
	if count == 1 {
		if err := s.client.Expire(ctx, k, s.window).Err(); err != nil {
			return false, 0, err
		}
	}
	if count <= int64(s.max) {
		return true, 0, nil
	}

	ttl, err := s.client.TTL(ctx, k).Result()
	if err != nil {
		return false, 0, err
	}
	if ttl < 0 {
		// Key survived without an expiry (e.g. a failed Expire call); reset
		// rather than lock the client out forever.
		s.client.Expire(ctx, k, s.window)
		ttl = s.window
	}
	return false, ttl, nil
}
