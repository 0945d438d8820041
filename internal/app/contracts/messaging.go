package contracts

import "context"

// EventPublisher announces indicators computed by the training rules.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, payload interface{}) error
}
