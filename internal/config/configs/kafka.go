package configs

import "time"

// Kafka configures the relay that forwards bus events to a Kafka topic.
type Kafka struct {
	Enabled bool `env:"ENABLED" envDefault:"false"`
	// Brokers is a comma separated list of host:port addresses.
	Brokers []string `env:"BROKERS" envSeparator:"," envDefault:"localhost:9092"`
	Topic   string   `env:"TOPIC" envDefault:"campaign-events"`
	// MaxAttempts is how many times a write is tried before it is dropped.
	MaxAttempts  int           `env:"MAX_ATTEMPTS" envDefault:"3"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
}
