package contracts

import (
	"context"
	"time"
)

type ResourceLimiter interface {
	Allow(ctx context.Context, group, resource string, window time.Duration, maxQuota int, now time.Time) (allowed bool, retryAfter time.Duration, err error)
}
