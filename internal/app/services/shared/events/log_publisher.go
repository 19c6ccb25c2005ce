package events

import (
	"context"
	"daily-journal-service/internal/app/contracts"
	"daily-journal-service/internal/app/models"
	"daily-journal-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// logPublisher stands in for the broker when publishing is disabled.
type logPublisher struct {
	log *zap.Logger
}

func NewLogPublisher(log *zap.Logger) contracts.EventPublisher {
	return &logPublisher{log: log}
}

func (p *logPublisher) Publish(ctx context.Context, routingKey string, event *models.JournalEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	p.log.Info("logPublisher.Publish event dropped, publishing disabled",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoutingKey, routingKey),
		zap.String(constvars.LoggingUserIDKey, event.UserID),
	)
	return nil
}

func (p *logPublisher) Close() error {
	return nil
}
