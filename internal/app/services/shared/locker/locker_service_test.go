package locker

import (
	"context"
	"daily-journal-service/internal/app/contracts/mocks"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTryLockAndUnlock(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.RedisRepository)

	var stored string
	repo.On("TrySetNX", ctx, "quote_announced:2024-0-15", mock.AnythingOfType("string"), time.Hour).
		Run(func(args mock.Arguments) { stored = args.String(2) }).
		Return(true, nil).Once()

	svc := NewLockService(repo, zap.NewNop())
	acquired, lockValue, err := svc.TryLock(ctx, "quote_announced:2024-0-15", time.Hour)
	require.NoError(t, err)
	require.True(t, acquired)
	assert.Equal(t, stored, lockValue)

	repo.On("Get", ctx, "quote_announced:2024-0-15").Return(`"`+lockValue+`"`, nil)
	repo.On("Delete", ctx, "quote_announced:2024-0-15").Return(nil)

	require.NoError(t, svc.Unlock(ctx, "quote_announced:2024-0-15", lockValue))
	repo.AssertExpectations(t)
}

func TestTryLockHeldElsewhere(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.RedisRepository)
	repo.On("TrySetNX", ctx, "k", mock.Anything, time.Minute).Return(false, nil)

	acquired, lockValue, err := NewLockService(repo, zap.NewNop()).TryLock(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.False(t, acquired)
	assert.Empty(t, lockValue)
}

func TestUnlockNotOwned(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.RedisRepository)
	repo.On("Get", ctx, "k").Return(`"someone-else"`, nil)

	err := NewLockService(repo, zap.NewNop()).Unlock(ctx, "k", "mine")
	assert.Error(t, err)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestUnlockAlreadyExpired(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.RedisRepository)
	repo.On("Get", ctx, "k").Return("", nil)

	assert.NoError(t, NewLockService(repo, zap.NewNop()).Unlock(ctx, "k", "mine"))
}
