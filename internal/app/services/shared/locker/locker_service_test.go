package locker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"linkcare-service/internal/app/contracts"
	"linkcare-service/internal/app/services/shared/redis"
	"linkcare-service/internal/pkg/exceptions"
)

func newLocker(t *testing.T) (contracts.LockerService, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewLockService(redis.NewRedisRepository(client), zap.NewNop()), server
}

func TestTryLockAndUnlock(t *testing.T) {
	locker, server := newLocker(t)
	ctx := context.Background()

	acquired, owner, err := locker.TryLock(ctx, "lock:admission:1", time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)
	assert.NotEmpty(t, owner)

	acquired, _, err = locker.TryLock(ctx, "lock:admission:1", time.Minute)
	require.NoError(t, err)
	assert.False(t, acquired)

	assert.Error(t, locker.Unlock(ctx, "lock:admission:1", "someone-else"))
	require.NoError(t, locker.Unlock(ctx, "lock:admission:1", owner))
	assert.False(t, server.Exists("lock:admission:1"))

	require.NoError(t, locker.Unlock(ctx, "lock:admission:1", owner))
}

func TestLockExpires(t *testing.T) {
	locker, server := newLocker(t)
	ctx := context.Background()

	acquired, _, err := locker.TryLock(ctx, "lock:admission:2", time.Second)
	require.NoError(t, err)
	require.True(t, acquired)

	server.FastForward(2 * time.Second)

	acquired, _, err = locker.TryLock(ctx, "lock:admission:2", time.Second)
	require.NoError(t, err)
	assert.True(t, acquired)
}

func TestRunExclusive(t *testing.T) {
	locker, server := newLocker(t)
	ctx := context.Background()

	ran := false
	err := RunExclusive(ctx, locker, zap.NewNop(), "lock:admission:3", time.Minute, func(ctx context.Context) error {
		ran = true
		assert.True(t, server.Exists("lock:admission:3"))
		return nil
	})
	require.NoError(t, err)
	assert.True(t, ran)
	assert.False(t, server.Exists("lock:admission:3"))

	failure := errors.New("boom")
	err = RunExclusive(ctx, locker, zap.NewNop(), "lock:admission:3", time.Minute, func(ctx context.Context) error {
		return failure
	})
	assert.ErrorIs(t, err, failure)
	assert.False(t, server.Exists("lock:admission:3"))
}

func TestRunExclusiveBusy(t *testing.T) {
	locker, _ := newLocker(t)
	ctx := context.Background()

	_, _, err := locker.TryLock(ctx, "lock:admission:4", time.Minute)
	require.NoError(t, err)

	err = RunExclusive(ctx, locker, zap.NewNop(), "lock:admission:4", time.Minute, func(ctx context.Context) error {
		t.Fatal("must not run while the lock is held")
		return nil
	})
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, 409, customErr.StatusCode)
}

func TestRunExclusiveWithoutLocker(t *testing.T) {
	ran := false
	err := RunExclusive(context.Background(), nil, zap.NewNop(), "k", time.Minute, func(ctx context.Context) error {
		ran = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, ran)
}

func TestRunExclusiveOnAdmission(t *testing.T) {
	locker, server := newLocker(t)
	ctx := context.Background()
	assert.Equal(t, "lock:admission:A1", AdmissionKey("A1"))

	err := RunExclusive(ctx, locker, zap.NewNop(), AdmissionKey("A1"), time.Minute, func(ctx context.Context) error {
		assert.True(t, server.Exists("lock:admission:A1"))

		inner := RunExclusive(ctx, locker, zap.NewNop(), AdmissionKey("A1"), time.Minute, func(ctx context.Context) error {
			return nil
		})
		var customErr *exceptions.CustomError
		require.True(t, errors.As(inner, &customErr))
		assert.Equal(t, 409, customErr.StatusCode)

		return RunExclusive(ctx, locker, zap.NewNop(), AdmissionKey("A2"), time.Minute, func(ctx context.Context) error {
			return nil
		})
	})
	require.NoError(t, err)
	assert.False(t, server.Exists("lock:admission:A1"))
}
