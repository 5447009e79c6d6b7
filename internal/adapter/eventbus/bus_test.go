package eventbus

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-campaigns/internal/core/domain"
	"mesa-campaigns/internal/core/port"
)

func newTestBus(opts ...Option) *Bus {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)), opts...)
}

func recorder(calls *[]string, name string) port.Handler {
	return func(context.Context, *domain.Event) error {
		*calls = append(*calls, name)
		return nil
	}
}

// TestFanOutOrder ensures handlers of one topic run in subscription order.
func TestFanOutOrder(t *testing.T) {
	bus := newTestBus()
	var calls []string
	bus.Subscribe("T", recorder(&calls, "H1"))
	bus.Subscribe("T", recorder(&calls, "H2"))
	bus.Subscribe("T", recorder(&calls, "H3"))

	require.NoError(t, bus.Publish(context.Background(), "T", domain.Payload{}))
	assert.Equal(t, []string{"H1", "H2", "H3"}, calls)
}

// TestTopicIsolation ensures a handler only sees its own topic.
func TestTopicIsolation(t *testing.T) {
	bus := newTestBus()
	var calls []string
	bus.Subscribe(domain.TopicPurchase, recorder(&calls, "purchase"))

	ctx := context.Background()
	require.NoError(t, bus.Publish(ctx, domain.TopicCancel, domain.Payload{}))
	require.NoError(t, bus.Publish(ctx, domain.TopicAdInteraction, domain.Payload{}))
	assert.Empty(t, calls)

	require.NoError(t, bus.Publish(ctx, domain.TopicPurchase, domain.Payload{}))
	assert.Equal(t, []string{"purchase"}, calls)
}

func TestPublishWithoutSubscribers(t *testing.T) {
	bus := newTestBus()
	assert.NoError(t, bus.Publish(context.Background(), "Nobody", domain.Payload{Value: 1}))
	assert.Empty(t, bus.Topics())
}

func TestHandlersShareEventInstance(t *testing.T) {
	stamp := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	bus := newTestBus(WithClock(func() time.Time { return stamp }))
	payload := domain.Payload{CustomerID: "c-1", ProductID: uuid.New(), CampaignID: uuid.New(), Value: 9.5}

	var seen []*domain.Event
	h := func(_ context.Context, ev *domain.Event) error {
		seen = append(seen, ev)
		return nil
	}
	bus.Subscribe(domain.TopicPurchase, h)
	bus.Subscribe(domain.TopicPurchase, h)

	require.NoError(t, bus.Publish(context.Background(), domain.TopicPurchase, payload))
	require.Len(t, seen, 2)
	assert.Same(t, seen[0], seen[1])
	assert.Equal(t, payload, seen[0].Payload)
	assert.Equal(t, domain.TopicPurchase, seen[0].Topic)
	assert.Equal(t, stamp, seen[0].PublishedAt)
}

func TestDuplicateSubscriptionIsAdditive(t *testing.T) {
	bus := newTestBus()
	var n int
	h := func(context.Context, *domain.Event) error { n++; return nil }
	bus.Subscribe("T", h)
	bus.Subscribe("T", h)

	require.NoError(t, bus.Publish(context.Background(), "T", domain.Payload{}))
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, bus.SubscriberCount("T"))
}

func TestUnsubscribeRemovesSingleRegistration(t *testing.T) {
	bus := newTestBus()
	var calls []string
	first := bus.Subscribe("T", recorder(&calls, "a"))
	bus.Subscribe("T", recorder(&calls, "b"))
	bus.Subscribe("T", recorder(&calls, "c"))

	assert.True(t, bus.Unsubscribe(first))
	assert.False(t, bus.Unsubscribe(first), "second removal must report absence")
	assert.False(t, bus.Unsubscribe(port.Subscription{Topic: "Other", ID: first.ID}))

	require.NoError(t, bus.Publish(context.Background(), "T", domain.Payload{}))
	assert.Equal(t, []string{"b", "c"}, calls)
}

func TestUnsubscribeLastDropsTopic(t *testing.T) {
	bus := newTestBus()
	sub := bus.Subscribe("T", func(context.Context, *domain.Event) error { return nil })
	assert.ElementsMatch(t, []domain.Topic{"T"}, bus.Topics())

	require.True(t, bus.Unsubscribe(sub))
	assert.Empty(t, bus.Topics())
	assert.Zero(t, bus.SubscriberCount("T"))
}

func TestTopicsAreSorted(t *testing.T) {
	bus := newTestBus()
	noop := func(context.Context, *domain.Event) error { return nil }
	for _, topic := range []domain.Topic{"Purchase", "AdInteraction", "Ignore", "Cancel"} {
		bus.Subscribe(topic, noop)
	}

	assert.Equal(t, []domain.Topic{"AdInteraction", "Cancel", "Ignore", "Purchase"}, bus.Topics())
}

func TestFailFastStopsDelivery(t *testing.T) {
	bus := newTestBus()
	boom := errors.New("boom")
	var calls []string
	bus.Subscribe("T", recorder(&calls, "first"))
	bus.Subscribe("T", func(context.Context, *domain.Event) error { return boom })
	bus.Subscribe("T", recorder(&calls, "never"))

	err := bus.Publish(context.Background(), "T", domain.Payload{})
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "handler 2/3")
	assert.Equal(t, []string{"first"}, calls)
}

func TestFailFastPanicReachesPublisher(t *testing.T) {
	bus := newTestBus()
	bus.Subscribe("T", func(context.Context, *domain.Event) error { panic("kaput") })

	assert.PanicsWithValue(t, "kaput", func() {
		_ = bus.Publish(context.Background(), "T", domain.Payload{})
	})
}

func TestIsolationContinuesAfterFailures(t *testing.T) {
	bus := newTestBus(WithIsolation(true))
	boom := errors.New("boom")
	var calls []string
	bus.Subscribe("T", func(context.Context, *domain.Event) error { return boom })
	bus.Subscribe("T", recorder(&calls, "second"))
	bus.Subscribe("T", func(context.Context, *domain.Event) error { panic("kaput") })
	bus.Subscribe("T", recorder(&calls, "fourth"))

	err := bus.Publish(context.Background(), "T", domain.Payload{})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, err, ErrHandlerPanic)
	assert.Equal(t, []string{"second", "fourth"}, calls)
}

func TestIsolationWithoutFailuresReturnsNil(t *testing.T) {
	bus := newTestBus(WithIsolation(true))
	var calls []string
	bus.Subscribe("T", recorder(&calls, "only"))

	assert.NoError(t, bus.Publish(context.Background(), "T", domain.Payload{}))
	assert.Equal(t, []string{"only"}, calls)
}

func TestHandlerMayPublish(t *testing.T) {
	bus := newTestBus()
	var inner int
	bus.Subscribe("inner", func(context.Context, *domain.Event) error { inner++; return nil })
	bus.Subscribe("outer", func(ctx context.Context, ev *domain.Event) error {
		return bus.Publish(ctx, "inner", ev.Payload)
	})

	require.NoError(t, bus.Publish(context.Background(), "outer", domain.Payload{}))
	assert.Equal(t, 1, inner)
}

func TestConcurrentPublish(t *testing.T) {
	bus := newTestBus()
	var n atomic.Int64
	bus.Subscribe("T", func(context.Context, *domain.Event) error { n.Add(1); return nil })

	const workers, perWorker = 8, 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				_ = bus.Publish(context.Background(), "T", domain.Payload{})
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, workers*perWorker, n.Load())
}
