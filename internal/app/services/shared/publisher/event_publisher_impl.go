package publisher

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"linkcare-service/internal/app/contracts"
	"linkcare-service/internal/pkg/constvars"
	"linkcare-service/internal/pkg/exceptions"
)

// Event is the message body written to the queue.
type Event struct {
	Type       string      `json:"type"`
	RequestID  string      `json:"request_id,omitempty"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload"`
}

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type rabbitPublisher struct {
	ch       channel
	queue    string
	confirms chan amqp.Confirmation
	mu       sync.Mutex
	now      func() time.Time
	Log      *zap.Logger
}

// NewRabbitPublisher declares the durable queue and enables publisher
// confirms on a dedicated channel of conn.
func NewRabbitPublisher(conn *amqp.Connection, queue string, logger *zap.Logger) (contracts.EventPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	)
	if err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	return &rabbitPublisher{
		ch:       ch,
		queue:    queue,
		confirms: ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
		now:      time.Now,
		Log:      logger,
	}, nil
}

// Publish writes a persistent event and waits for the broker confirmation.
func (p *rabbitPublisher) Publish(ctx context.Context, eventType string, payload interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	p.Log.Info("eventPublisher.Publish called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, p.queue),
		zap.String(constvars.LoggingOperationKey, eventType),
	)

	body, err := json.Marshal(Event{
		Type:       eventType,
		RequestID:  requestID,
		OccurredAt: p.now().UTC(),
		Payload:    payload,
	})
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
		MessageId:    requestID,
		Type:         eventType,
	}
	if err := p.ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		p.Log.Error("eventPublisher.Publish error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPublishMessage(err, p.queue)
	}

	select {
	case confirmed := <-p.confirms:
		if !confirmed.Ack {
			return exceptions.ErrPublishMessage(fmt.Errorf("message not confirmed"), p.queue)
		}
	case <-ctx.Done():
		return exceptions.ErrPublishMessage(ctx.Err(), p.queue)
	}

	p.Log.Info("eventPublisher.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, p.queue),
	)
	return nil
}

type noopPublisher struct {
	Log *zap.Logger
}

// NewNoopPublisher is used when no broker is configured.
func NewNoopPublisher(logger *zap.Logger) contracts.EventPublisher {
	return &noopPublisher{Log: logger}
}

func (p *noopPublisher) Publish(ctx context.Context, eventType string, payload interface{}) error {
	p.Log.Debug("eventPublisher.Publish skipped, no broker configured",
		zap.String(constvars.LoggingOperationKey, eventType),
	)
	return nil
}
