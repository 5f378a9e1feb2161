package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Locker is the cooperative mutex used to keep two instances from running
// the same snapshot batch. It is advisory: the TTL guards against a crashed
// holder, and callers must still tolerate duplicate work (the snapshot layer
// re-checks before every write and sweeps duplicates afterwards).
type Locker interface {
	// Acquire returns a release function when the lock was taken, or
	// (nil, false) when another holder owns the key.
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func(), acquired bool)
}

type redisLocker struct {
	rdb *redis.Client
}

func NewRedisLocker(rdb *redis.Client) Locker {
	return &redisLocker{rdb: rdb}
}

func (l *redisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (func(), bool) {
	if l.rdb == nil {
		// No Redis: fall back to "always acquired". The in-process flag in the
		// scheduler still prevents concurrent runs within one instance.
		return func() {}, true
	}

	token := uuid.NewString()
	fullKey := fmt.Sprintf("lock:%s", key)

	ok, err := l.rdb.SetNX(ctx, fullKey, token, ttl).Result()
	if err != nil {
		// Treat Redis failures as lock-denied; the next arm will retry.
		return nil, false
	}
	if !ok {
		return nil, false
	}

	release := func() {
		// Only delete our own token so an expired-and-retaken lock survives.
		current, err := l.rdb.Get(context.Background(), fullKey).Result()
		if err == nil && current == token {
			l.rdb.Del(context.Background(), fullKey)
		}
	}
	return release, true
}
