package lock_test

import (
	"context"
	"testing"
	"time"

	"guide-booking-service/internal/pkg/lock"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocker(t *testing.T) lock.Locker {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return lock.New(client, time.Minute)
}

func TestWithLock(t *testing.T) {
	l := newLocker(t)
	ctx := context.Background()

	t.Run("runs fn and releases", func(t *testing.T) {
		calls := 0
		require.NoError(t, l.WithLock(ctx, "payout-batch", func(ctx context.Context) error {
			calls++
			return nil
		}))
		require.NoError(t, l.WithLock(ctx, "payout-batch", func(ctx context.Context) error {
			calls++
			return nil
		}))
		assert.Equal(t, 2, calls)
	})

	t.Run("second holder is rejected", func(t *testing.T) {
		err := l.WithLock(ctx, "payout-batch", func(ctx context.Context) error {
			return l.WithLock(ctx, "payout-batch", func(ctx context.Context) error {
				t.Fatal("inner fn must not run")
				return nil
			})
		})
		assert.ErrorIs(t, err, lock.ErrNotAcquired)
	})
}
