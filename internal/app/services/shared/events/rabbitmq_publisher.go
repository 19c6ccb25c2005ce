package events

import (
	"context"
	"daily-journal-service/internal/app/contracts"
	"daily-journal-service/internal/app/models"
	"daily-journal-service/internal/pkg/constvars"
	"daily-journal-service/internal/pkg/exceptions"
	"fmt"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type rabbitMQPublisher struct {
	ch       *amqp.Channel
	exchange string
	log      *zap.Logger
	confirms chan amqp.Confirmation
	mu       sync.Mutex
}

// NewRabbitMQPublisher opens a dedicated channel in confirm mode. Publishes are serialized
// so each confirmation matches the message that produced it.
func NewRabbitMQPublisher(conn *amqp.Connection, exchange string, log *zap.Logger) (contracts.EventPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		ch.Close()
		return nil, err
	}

	return &rabbitMQPublisher{
		ch:       ch,
		exchange: exchange,
		log:      log,
		confirms: ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}, nil
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, routingKey string, event *models.JournalEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	p.log.Info("rabbitMQPublisher.Publish called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoutingKey, routingKey),
	)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrEventMarshal(err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
		MessageId:    requestID,
		Timestamp:    event.OccurredAt,
		Type:         event.Type,
	}

	if err := p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, msg); err != nil {
		return exceptions.ErrEventPublish(err, p.exchange)
	}

	select {
	case confirmed, ok := <-p.confirms:
		if !ok {
			return exceptions.ErrEventPublish(fmt.Errorf("channel closed before confirm"), p.exchange)
		}
		if !confirmed.Ack {
			return exceptions.ErrEventPublish(fmt.Errorf("message not confirmed"), p.exchange)
		}
	case <-ctx.Done():
		return exceptions.ErrEventPublish(ctx.Err(), p.exchange)
	}

	p.log.Info("rabbitMQPublisher.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoutingKey, routingKey),
	)
	return nil
}

func (p *rabbitMQPublisher) Close() error {
	return p.ch.Close()
}
