package async

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Task is a unit of background work. The context is cancelled after the
// pool's task timeout.
type Task func(ctx context.Context)

// WorkerPool runs tasks on a fixed number of goroutines fed by a bounded
// queue. Panicking tasks are recovered and logged.
type WorkerPool struct {
	tasks   chan Task
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
	timeout time.Duration
	log     *slog.Logger

	mu     sync.RWMutex
	closed bool
}

// NewWorkerPool starts size workers. queue is the number of tasks that may
// wait for a worker before Submit blocks.
func NewWorkerPool(parent context.Context, size, queue int, timeout time.Duration, log *slog.Logger) *WorkerPool {
	if size < 1 {
		size = 1
	}
	if queue < 0 {
		queue = 0
	}
	ctx, cancel := context.WithCancel(parent)
	p := &WorkerPool{
		tasks:   make(chan Task, queue),
		ctx:     ctx,
		cancel:  cancel,
		timeout: timeout,
		log:     log,
	}

	for i := 0; i < size; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	return p
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case task, ok := <-p.tasks:
			if !ok {
				return
			}
			p.run(id, task)
		}
	}
}

func (p *WorkerPool) run(id int, task Task) {
	ctx, cancel := p.ctx, context.CancelFunc(func() {})
	if p.timeout > 0 {
		ctx, cancel = context.WithTimeout(p.ctx, p.timeout)
	}
	defer cancel()
	defer func() {
		if r := recover(); r != nil {
			p.log.Error("task panicked", slog.Int("worker", id), slog.Any("panic", r))
		}
	}()
	task(ctx)
}

// Submit queues task. It returns false when the pool is shut down or its
// parent context is done.
func (p *WorkerPool) Submit(task Task) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return false
	}

	select {
	case <-p.ctx.Done():
		return false
	case p.tasks <- task:
		return true
	}
}

// Shutdown stops accepting tasks, waits for queued tasks to finish and
// releases the workers. It is safe to call more than once.
func (p *WorkerPool) Shutdown() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.tasks)
	p.mu.Unlock()

	p.wg.Wait()
	p.cancel()
}
