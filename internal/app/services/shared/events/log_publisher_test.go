package events

import (
	"context"
	"daily-journal-service/internal/app/models"
	"daily-journal-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogPublisher(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	publisher := NewLogPublisher(zap.New(core))

	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "JRNL_SVC_1")
	err := publisher.Publish(ctx, constvars.EventRoutingEntrySaved, &models.JournalEvent{
		Type:       constvars.EventRoutingEntrySaved,
		UserID:     "u1",
		OccurredAt: time.Now(),
	})
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "JRNL_SVC_1", fields[constvars.LoggingRequestIDKey])
	assert.Equal(t, constvars.EventRoutingEntrySaved, fields[constvars.LoggingRoutingKey])
	assert.NoError(t, publisher.Close())
}
