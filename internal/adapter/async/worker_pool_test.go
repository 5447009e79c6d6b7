package async

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestWorkerPoolRunsQueuedTasksBeforeShutdown(t *testing.T) {
	p := NewWorkerPool(context.Background(), 3, 16, time.Second, discard)

	var n atomic.Int32
	for i := 0; i < 50; i++ {
		assert.True(t, p.Submit(func(context.Context) { n.Add(1) }))
	}
	p.Shutdown()

	assert.EqualValues(t, 50, n.Load())
}

func TestWorkerPoolRecoversPanics(t *testing.T) {
	p := NewWorkerPool(context.Background(), 1, 4, time.Second, discard)

	var after atomic.Bool
	p.Submit(func(context.Context) { panic("boom") })
	p.Submit(func(context.Context) { after.Store(true) })
	p.Shutdown()

	assert.True(t, after.Load(), "worker must survive a panicking task")
}

func TestWorkerPoolRejectsAfterShutdown(t *testing.T) {
	p := NewWorkerPool(context.Background(), 2, 0, 0, discard)
	p.Shutdown()
	p.Shutdown()

	assert.False(t, p.Submit(func(context.Context) {}))
}

func TestWorkerPoolTaskTimeout(t *testing.T) {
	p := NewWorkerPool(context.Background(), 1, 1, 10*time.Millisecond, discard)

	var deadline atomic.Bool
	p.Submit(func(ctx context.Context) {
		_, ok := ctx.Deadline()
		deadline.Store(ok)
		<-ctx.Done()
	})
	p.Shutdown()

	assert.True(t, deadline.Load())
}

func TestWorkerPoolStopsWithParentContext(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	p := NewWorkerPool(parent, 1, 0, 0, discard)
	cancel()

	assert.Eventually(t, func() bool {
		return !p.Submit(func(context.Context) {})
	}, time.Second, 5*time.Millisecond)
	p.Shutdown()
}
