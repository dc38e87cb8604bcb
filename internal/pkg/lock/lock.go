package lock

import (
	"context"
	"errors"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

// ErrNotAcquired is returned when another holder owns the lock.
var ErrNotAcquired = errors.New("lock held by another worker")

type Locker interface {
	// WithLock runs fn while holding the named lock.
	WithLock(ctx context.Context, name string, fn func(ctx context.Context) error) error
}

type locker struct {
	rs     *redsync.Redsync
	expiry time.Duration
}

func New(client *redis.Client, expiry time.Duration) Locker {
	return &locker{
		rs:     redsync.New(goredis.NewPool(client)),
		expiry: expiry,
	}
}

func (l *locker) WithLock(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	mutex := l.rs.NewMutex(name, redsync.WithExpiry(l.expiry), redsync.WithTries(1))

	if err := mutex.LockContext(ctx); err != nil {
		var taken *redsync.ErrTaken
		if errors.Is(err, redsync.ErrFailed) || errors.As(err, &taken) {
			return ErrNotAcquired
		}
		return err
	}
	defer mutex.UnlockContext(context.Background())

	return fn(ctx)
}
