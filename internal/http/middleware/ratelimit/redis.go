package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ratelimit:"

// Redis counts requests in fixed windows shared by every instance using the
// same server.
type Redis struct {
	client   redis.UniversalClient
	requests int64
	window   time.Duration
}

func NewRedis(client redis.UniversalClient, requests int, window time.Duration) *Redis {
	return &Redis{client: client, requests: int64(requests), window: window}
}

func (l *Redis) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	const op = "middleware.ratelimit.Redis.Allow"

	key = keyPrefix + key

	// EXPIRE NX runs on every hit in the same transaction, so a counter
	// left without a TTL regains one.
	var incr *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, l.window)
		return nil
	})
	if err != nil {
		return false, 0, fmt.Errorf("%s: Counting request error: %w", op, err)
	}

	count := incr.Val()

	if count <= l.requests {
		return true, 0, nil
	}

	ttl, err := l.client.TTL(ctx, key).Result()
	if err != nil {
		return false, 0, fmt.Errorf("%s: Reading window error: %w", op, err)
	}

	if ttl < 0 {
		ttl = l.window
	}

	return false, ttl, nil
}
