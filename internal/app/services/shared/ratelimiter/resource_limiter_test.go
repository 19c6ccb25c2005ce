package ratelimiter

import (
	"context"
	"daily-journal-service/internal/app/contracts/mocks"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestResourceLimiterAllow(t *testing.T) {
	now := time.Unix(1_700_000_030, 0).UTC()
	windowID := now.Unix() / 3600
	expectedKey := "ENCOURAGE:abc:" + strconv.FormatInt(windowID, 10)

	t.Run("Under Quota", func(t *testing.T) {
		repo := new(mocks.RedisRepository)
		repo.On("IncrementWithTTL", mock.Anything, expectedKey, time.Hour+time.Second).Return(3, nil)

		limiter := NewResourceLimiter(repo, zap.NewNop())
		allowed, retryAfter, err := limiter.Allow(context.Background(), "encourage", " ABC ", time.Hour, 5, now)

		require.NoError(t, err)
		assert.True(t, allowed, "third request within quota should pass")
		assert.Zero(t, retryAfter)
		repo.AssertExpectations(t)
	})

	t.Run("Over Quota", func(t *testing.T) {
		repo := new(mocks.RedisRepository)
		repo.On("IncrementWithTTL", mock.Anything, expectedKey, mock.Anything).Return(6, nil)

		limiter := NewResourceLimiter(repo, zap.NewNop())
		allowed, retryAfter, err := limiter.Allow(context.Background(), "encourage", "abc", time.Hour, 5, now)

		require.NoError(t, err)
		assert.False(t, allowed, "sixth request should be rejected")
		assert.Equal(t, time.Duration((windowID+1)*3600-now.Unix())*time.Second, retryAfter)
	})

	t.Run("Disabled", func(t *testing.T) {
		repo := new(mocks.RedisRepository)

		limiter := NewResourceLimiter(repo, zap.NewNop())
		allowed, _, err := limiter.Allow(context.Background(), "encourage", "abc", time.Hour, 0, now)

		require.NoError(t, err)
		assert.True(t, allowed)
		repo.AssertNotCalled(t, "IncrementWithTTL", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Redis Failure", func(t *testing.T) {
		repo := new(mocks.RedisRepository)
		repo.On("IncrementWithTTL", mock.Anything, mock.Anything, mock.Anything).Return(0, errors.New("down"))

		limiter := NewResourceLimiter(repo, zap.NewNop())
		allowed, _, err := limiter.Allow(context.Background(), "encourage", "abc", time.Hour, 5, now)

		assert.Error(t, err)
		assert.False(t, allowed)
	})
}

func TestResourceLimiterDailyWindowFollowsLocalMidnight(t *testing.T) {
	wib := time.FixedZone("WIB", 7*60*60)
	// 2024-01-15 is day 19737 since the epoch.
	localDayKey := "ENCOURAGE:abc:19737"

	tests := map[string]struct {
		now        time.Time
		retryAfter time.Duration
	}{
		"Just After Local Midnight": {
			now:        time.Date(2024, time.January, 15, 0, 30, 0, 0, wib),
			retryAfter: 23*time.Hour + 30*time.Minute,
		},
		"Before UTC Midnight": {
			now:        time.Date(2024, time.January, 15, 6, 0, 0, 0, wib),
			retryAfter: 18 * time.Hour,
		},
		"Late Evening": {
			now:        time.Date(2024, time.January, 15, 23, 59, 0, 0, wib),
			retryAfter: time.Minute,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			repo := new(mocks.RedisRepository)
			repo.On("IncrementWithTTL", mock.Anything, localDayKey, 24*time.Hour+time.Second).Return(51, nil)

			limiter := NewResourceLimiter(repo, zap.NewNop())
			allowed, retryAfter, err := limiter.Allow(context.Background(), "encourage", "abc", 24*time.Hour, 50, tc.now)

			require.NoError(t, err)
			assert.False(t, allowed)
			assert.Equal(t, tc.retryAfter, retryAfter)
			repo.AssertExpectations(t)
		})
	}
}
