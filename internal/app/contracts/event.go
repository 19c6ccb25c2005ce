package contracts

import (
	"context"
	"daily-journal-service/internal/app/models"
)

type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, event *models.JournalEvent) error
	Close() error
}
