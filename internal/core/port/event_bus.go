package port

import (
	"context"

	"mesa-campaigns/internal/core/domain"
)

// Handler consumes a published event. The event is shared with every other
// handler of the same publish call and must not be modified.
type Handler func(ctx context.Context, ev *domain.Event) error

// Subscription identifies one registration on the bus. Registering the same
// handler twice yields two distinct subscriptions.
type Subscription struct {
	Topic domain.Topic
	ID    uint64
}

// EventBus decouples event producers from consumers by topic name. Handlers
// run synchronously on the publisher's goroutine in subscription order.
type EventBus interface {
	// Subscribe registers handler for topic and returns the handle used to
	// remove it again.
	Subscribe(topic domain.Topic, handler Handler) Subscription

	// Unsubscribe removes a single registration. It reports whether the
	// subscription was present.
	Unsubscribe(sub Subscription) bool

	// Publish delivers payload to every handler of topic and returns once
	// all of them have run. Publishing to a topic without subscribers is a
	// no-op.
	Publish(ctx context.Context, topic domain.Topic, payload domain.Payload) error
}
