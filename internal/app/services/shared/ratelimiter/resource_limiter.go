package ratelimiter

import (
	"context"
	"daily-journal-service/internal/app/contracts"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// resourceLimiter is a fixed-window counter stored in Redis with a TTL equal to the window.
// It caps how many encouragements a single share link accepts, regardless of sender IP.
type resourceLimiter struct {
	redis contracts.RedisRepository
	log   *zap.Logger
}

func NewResourceLimiter(redis contracts.RedisRepository, log *zap.Logger) contracts.ResourceLimiter {
	return &resourceLimiter{redis: redis, log: log}
}

// Allow counts one request for group+resource in the window containing now. Windows are aligned
// to now's zone offset, so a 24h window rolls over at local midnight. A non-positive maxQuota
// disables the limit.
func (l *resourceLimiter) Allow(ctx context.Context, group, resource string, window time.Duration, maxQuota int, now time.Time) (bool, time.Duration, error) {
	resource = strings.ToLower(strings.TrimSpace(resource))
	group = strings.ToUpper(strings.TrimSpace(group))
	if maxQuota <= 0 {
		return true, 0, nil
	}

	windowSec := int64(window / time.Second)
	if windowSec <= 0 {
		windowSec = 60
	}
	if resource == "" || group == "" {
		return false, time.Duration(windowSec) * time.Second, nil
	}

	_, offset := now.Zone()
	localSec := now.Unix() + int64(offset)
	windowID := localSec / windowSec
	key := fmt.Sprintf("%s:%s:%d", group, resource, windowID)

	count, err := l.redis.IncrementWithTTL(ctx, key, time.Duration(windowSec)*time.Second+time.Second)
	if err != nil {
		l.log.Error("resourceLimiter.Allow increment failed",
			zap.String("key", key),
			zap.Error(err),
		)
		return false, 0, err
	}

	if count > maxQuota {
		nextWindowStart := (windowID + 1) * windowSec
		retryAfter := time.Duration(nextWindowStart-localSec) * time.Second
		return false, retryAfter, nil
	}
	return true, 0, nil
}
