package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionIsExpired(t *testing.T) {
	now := time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)

	assert.False(t, (&Session{ExpiresAt: now.Add(time.Hour)}).IsExpired(now))
	assert.True(t, (&Session{ExpiresAt: now.Add(-time.Second)}).IsExpired(now))
	assert.False(t, (&Session{}).IsExpired(now), "zero expiry never expires")
}
