package configs

import "time"

// Bus configures event delivery.
type Bus struct {
	// IsolateFailures keeps delivering to the remaining handlers when one
	// handler fails. The default is fail-fast.
	IsolateFailures bool `env:"ISOLATE_FAILURES" envDefault:"false"`
	// SinkWorkers and SinkQueue size the worker pool that copies events to
	// every enabled sink.
	SinkWorkers int `env:"SINK_WORKERS" envDefault:"2"`
	SinkQueue   int `env:"SINK_QUEUE" envDefault:"256"`
	// SinkTimeout bounds a single sink write.
	SinkTimeout time.Duration `env:"SINK_TIMEOUT" envDefault:"2s"`
}
