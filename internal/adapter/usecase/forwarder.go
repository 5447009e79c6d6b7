package usecase

import (
	"context"
	"log/slog"

	"mesa-campaigns/internal/adapter/async"
	"mesa-campaigns/internal/core/domain"
	"mesa-campaigns/internal/core/port"
)

// TaskSubmitter queues background work. *async.WorkerPool satisfies it.
type TaskSubmitter interface {
	Submit(task async.Task) bool
}

// EventForwarder copies every behavior event into an EventSink such as the
// journal or the Kafka relay. The write happens on a worker. Publishers
// only wait when the queue is full and sink failures never reach the bus.
type EventForwarder struct {
	name   string
	sink   port.EventSink
	pool   TaskSubmitter
	logger *slog.Logger
}

// NewEventForwarder creates a forwarder writing to sink through pool. name
// tags the forwarder's log records.
func NewEventForwarder(name string, sink port.EventSink, pool TaskSubmitter, logger *slog.Logger) *EventForwarder {
	return &EventForwarder{
		name:   name,
		sink:   sink,
		pool:   pool,
		logger: logger.With(slog.String("sink", name)),
	}
}

// Subscribe registers the forwarder for every behavior topic.
func (f *EventForwarder) Subscribe(bus port.EventBus) []port.Subscription {
	topics := domain.Topics()
	subs := make([]port.Subscription, 0, len(topics))
	for _, topic := range topics {
		subs = append(subs, bus.Subscribe(topic, f.Handle))
	}
	return subs
}

// Handle queues ev for the sink.
func (f *EventForwarder) Handle(_ context.Context, ev *domain.Event) error {
	record := *ev
	ok := f.pool.Submit(func(ctx context.Context) {
		if err := f.sink.Append(ctx, record); err != nil {
			f.logger.Error("sink append failed",
				slog.String("topic", string(record.Topic)),
				slog.Any("error", err),
			)
		}
	})
	if !ok {
		f.logger.Warn("sink closed, event dropped", slog.String("topic", string(ev.Topic)))
	}
	return nil
}
