package kafkaadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"mesa-campaigns/internal/config/configs"
	"mesa-campaigns/internal/core/domain"
	"mesa-campaigns/internal/core/port"
)

// messageWriter is the part of *kafka.Writer the relay needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// EventRelay forwards bus events to a Kafka topic as JSON. Messages are
// keyed by campaign so that one campaign's events stay on one partition
// and keep their order.
type EventRelay struct {
	writer messageWriter
}

var _ port.EventSink = (*EventRelay)(nil)

// NewEventRelay creates a relay writing to cfg.Topic.
func NewEventRelay(cfg configs.Kafka) (*EventRelay, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("kafka: at least one broker required")
	}
	if cfg.Topic == "" {
		return nil, fmt.Errorf("kafka: topic required")
	}
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		MaxAttempts:  cfg.MaxAttempts,
		WriteTimeout: cfg.WriteTimeout,
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}
	return &EventRelay{writer: w}, nil
}

type relayMessage struct {
	Topic       domain.Topic   `json:"topic"`
	Payload     domain.Payload `json:"payload"`
	PublishedAt time.Time      `json:"published_at"`
}

// Append writes ev to Kafka.
func (r *EventRelay) Append(ctx context.Context, ev domain.Event) error {
	msg, err := encodeMessage(ev)
	if err != nil {
		return err
	}
	if err = r.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("relay %s event: %w", ev.Topic, err)
	}
	return nil
}

// Close flushes pending messages and releases the writer.
func (r *EventRelay) Close() error {
	return r.writer.Close()
}

func encodeMessage(ev domain.Event) (kafka.Message, error) {
	value, err := json.Marshal(relayMessage{
		Topic:       ev.Topic,
		Payload:     ev.Payload,
		PublishedAt: ev.PublishedAt,
	})
	if err != nil {
		return kafka.Message{}, fmt.Errorf("marshal json: %w", err)
	}

	// events without a campaign share one partition key
	key := []byte(string(ev.Topic))
	if ev.Payload.CampaignID != uuid.Nil {
		key = []byte(ev.Payload.CampaignID.String())
	}
	return kafka.Message{
		Key:   key,
		Value: value,
		Time:  ev.PublishedAt,
		Headers: []kafka.Header{
			{Key: "topic", Value: []byte(ev.Topic)},
		},
	}, nil
}
