package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"logdemo/loghub/internal/repository"
)

var errStoreDown = errors.New("connection refused")

// failingStore fails Set for the keys listed in failSet, and every Get when failGet is true.
type failingStore struct {
	repository.StateStore
	failSet map[string]bool
	failGet bool
}

func (s *failingStore) Get(ctx context.Context, key string) (string, bool, error) {
	if s.failGet {
		return "", false, errStoreDown
	}
	return s.StateStore.Get(ctx, key)
}

func (s *failingStore) Set(ctx context.Context, key, value string) error {
	if s.failSet[key] {
		return errStoreDown
	}
	return s.StateStore.Set(ctx, key, value)
}

func newTestService(store repository.StateStore) IOService {
	return NewIOService(store, NewDefaultLogSampler(), zap.NewNop())
}

func TestIOServiceReadBeforeWrite(t *testing.T) {
	svc := newTestService(repository.NewMemoryStateStore())

	_, err := svc.Read(context.Background())
	assert.ErrorIs(t, err, ErrMessageNotFound)
}

func TestIOServiceWriteThenRead(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(repository.NewMemoryStateStore())

	for _, msg := range []string{"hello", "second message", "ünïcode ✓"} {
		require.NoError(t, svc.Write(ctx, msg))
		got, err := svc.Read(ctx)
		require.NoError(t, err)
		assert.Equal(t, msg, got)
	}
}

func TestIOServiceStartBlocksLogs(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStateStore()
	svc := newTestService(store)

	require.NoError(t, svc.Start(ctx))
	require.NoError(t, svc.Start(ctx))

	flag, ok, err := store.Get(ctx, KeyAwaitingIO)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "true", flag)

	result, err := svc.Logs(ctx)
	require.NoError(t, err)
	assert.True(t, result.Waiting)
	assert.Empty(t, result.Logs)
}

func TestIOServiceReadIgnoresWaitFlag(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(repository.NewMemoryStateStore())

	require.NoError(t, svc.Write(ctx, "kept"))
	require.NoError(t, svc.Start(ctx))

	got, err := svc.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, "kept", got)
}

func TestIOServiceWriteUnblocksLogs(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStateStore()
	svc := newTestService(store)

	require.NoError(t, svc.Start(ctx))
	require.NoError(t, svc.Write(ctx, "hello"))

	flag, _, err := store.Get(ctx, KeyAwaitingIO)
	require.NoError(t, err)
	assert.Equal(t, "false", flag)

	result, err := svc.Logs(ctx)
	require.NoError(t, err)
	assert.False(t, result.Waiting)
	assert.Len(t, result.Logs, DefaultSampleSize)
}

func TestIOServiceLogsOnFreshStore(t *testing.T) {
	svc := newTestService(repository.NewMemoryStateStore())

	result, err := svc.Logs(context.Background())
	require.NoError(t, err)
	assert.False(t, result.Waiting)
	assert.Len(t, result.Logs, DefaultSampleSize)
}

func TestIOServiceWriteEmptyMessage(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStateStore()
	svc := newTestService(store)

	require.NoError(t, svc.Write(ctx, "original"))
	require.NoError(t, svc.Start(ctx))

	err := svc.Write(ctx, "")
	assert.ErrorIs(t, err, ErrMessageRequired)

	msg, _, _ := store.Get(ctx, KeyUserMessage)
	assert.Equal(t, "original", msg)
	flag, _, _ := store.Get(ctx, KeyAwaitingIO)
	assert.Equal(t, "true", flag)
}

func TestIOServiceCorruptWaitFlag(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStateStore()
	require.NoError(t, store.Set(ctx, KeyAwaitingIO, "maybe"))
	svc := newTestService(store)

	_, err := svc.Logs(ctx)
	assert.ErrorIs(t, err, ErrInvalidWaitFlag)
}

func TestIOServiceStoreErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("get fails", func(t *testing.T) {
		svc := newTestService(&failingStore{StateStore: repository.NewMemoryStateStore(), failGet: true})

		_, err := svc.Logs(ctx)
		assert.ErrorIs(t, err, errStoreDown)
		_, err = svc.Read(ctx)
		assert.ErrorIs(t, err, errStoreDown)
	})

	t.Run("start fails", func(t *testing.T) {
		svc := newTestService(&failingStore{
			StateStore: repository.NewMemoryStateStore(),
			failSet:    map[string]bool{KeyAwaitingIO: true},
		})
		assert.ErrorIs(t, svc.Start(ctx), errStoreDown)
	})

	t.Run("flag clear fails after message stored", func(t *testing.T) {
		mem := repository.NewMemoryStateStore()
		require.NoError(t, mem.Set(ctx, KeyAwaitingIO, "true"))
		svc := newTestService(&failingStore{
			StateStore: mem,
			failSet:    map[string]bool{KeyAwaitingIO: true},
		})

		assert.ErrorIs(t, svc.Write(ctx, "hello"), errStoreDown)

		// The message landed but the system is still awaiting.
		msg, _, _ := mem.Get(ctx, KeyUserMessage)
		assert.Equal(t, "hello", msg)
		flag, _, _ := mem.Get(ctx, KeyAwaitingIO)
		assert.Equal(t, "true", flag)
	})
}
