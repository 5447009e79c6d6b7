package eventbus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"mesa-campaigns/internal/core/domain"
	"mesa-campaigns/internal/core/port"
)

// ErrHandlerPanic marks a handler failure that was a recovered panic. It
// is only produced when the bus isolates handler failures.
var ErrHandlerPanic = errors.New("event handler panicked")

type entry struct {
	id      uint64
	handler port.Handler
}

// Bus is a synchronous, in-process implementation of port.EventBus.
//
// Publish runs every handler of the topic on the caller's goroutine in
// subscription order. By default delivery is fail-fast: the first handler
// error stops delivery to the remaining handlers and is returned to the
// publisher, and a handler panic unwinds into the publisher. With
// WithIsolation every handler runs regardless of earlier failures and
// Publish returns all failures joined.
//
// The registry is safe for concurrent use. Handlers are invoked outside of
// the registry lock, so a handler may publish or subscribe itself.
type Bus struct {
	mu       sync.RWMutex
	handlers map[domain.Topic][]entry
	nextID   uint64

	isolate bool
	logger  *slog.Logger
	now     func() time.Time
}

var _ port.EventBus = (*Bus)(nil)

// Option customises a Bus.
type Option func(*Bus)

// WithIsolation makes the bus deliver to every handler even when earlier
// handlers fail or panic.
func WithIsolation(enabled bool) Option {
	return func(b *Bus) { b.isolate = enabled }
}

// WithClock overrides the clock used to stamp events.
func WithClock(now func() time.Time) Option {
	return func(b *Bus) { b.now = now }
}

// New creates an empty bus.
func New(logger *slog.Logger, opts ...Option) *Bus {
	b := &Bus{
		handlers: make(map[domain.Topic][]entry),
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscribe appends handler to the topic's handler list. The same handler
// may be registered more than once and is then invoked once per
// registration.
func (b *Bus) Subscribe(topic domain.Topic, handler port.Handler) port.Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.handlers[topic] = append(b.handlers[topic], entry{id: b.nextID, handler: handler})
	b.logger.Debug("subscription registered",
		slog.String("topic", string(topic)),
		slog.Int("subscribers", len(b.handlers[topic])),
	)
	return port.Subscription{Topic: topic, ID: b.nextID}
}

// Unsubscribe removes the registration identified by sub.
func (b *Bus) Unsubscribe(sub port.Subscription) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	entries := b.handlers[sub.Topic]
	for i, e := range entries {
		if e.id != sub.ID {
			continue
		}
		// Publish may still be iterating the old slice, so build a new one.
		next := make([]entry, 0, len(entries)-1)
		next = append(next, entries[:i]...)
		next = append(next, entries[i+1:]...)
		if len(next) == 0 {
			delete(b.handlers, sub.Topic)
		} else {
			b.handlers[sub.Topic] = next
		}
		return true
	}
	return false
}

// Publish delivers payload to the handlers of topic.
func (b *Bus) Publish(ctx context.Context, topic domain.Topic, payload domain.Payload) error {
	b.mu.RLock()
	entries := b.handlers[topic]
	b.mu.RUnlock()

	if len(entries) == 0 {
		b.logger.Debug("no subscribers for event", slog.String("topic", string(topic)))
		return nil
	}

	ev := &domain.Event{Topic: topic, Payload: payload, PublishedAt: b.now()}
	b.logger.Debug("event published",
		slog.String("topic", string(topic)),
		slog.Int("subscribers", len(entries)),
	)

	if !b.isolate {
		for i, e := range entries {
			if err := e.handler(ctx, ev); err != nil {
				return fmt.Errorf("eventbus: %s handler %d/%d: %w", topic, i+1, len(entries), err)
			}
		}
		return nil
	}

	var errs []error
	for i, e := range entries {
		if err := deliverIsolated(ctx, e.handler, ev); err != nil {
			b.logger.Error("event handler failed",
				slog.String("topic", string(topic)),
				slog.Int("position", i+1),
				slog.Any("error", err),
			)
			errs = append(errs, fmt.Errorf("eventbus: %s handler %d/%d: %w", topic, i+1, len(entries), err))
		}
	}
	return errors.Join(errs...)
}

func deliverIsolated(ctx context.Context, h port.Handler, ev *domain.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrHandlerPanic, r)
		}
	}()
	return h(ctx, ev)
}

// SubscriberCount returns the number of registrations for topic.
func (b *Bus) SubscriberCount(topic domain.Topic) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[topic])
}

// Topics returns every topic with at least one subscriber, sorted.
func (b *Bus) Topics() []domain.Topic {
	b.mu.RLock()
	defer b.mu.RUnlock()
	topics := make([]domain.Topic, 0, len(b.handlers))
	for t := range b.handlers {
		topics = append(topics, t)
	}
	slices.Sort(topics)
	return topics
}
