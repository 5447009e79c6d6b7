package redisadapter

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"mesa-campaigns/internal/core/domain"
	"mesa-campaigns/internal/core/port"
)

// LiveCounters keeps running event counts in Redis. Every event increments
// the global counters and, when it references a campaign, that campaign's
// counters. Counts live in a hash keyed by topic; purchase value is a
// separate float key so that no topic name can collide with it.
type LiveCounters struct {
	rdb    *redis.Client
	prefix string
}

var _ port.LiveStats = (*LiveCounters)(nil)

// NewLiveCounters returns counters stored under keys starting with prefix.
func NewLiveCounters(rdb *redis.Client, prefix string) *LiveCounters {
	return &LiveCounters{rdb: rdb, prefix: prefix}
}

// Append counts ev.
func (l *LiveCounters) Append(ctx context.Context, ev domain.Event) error {
	scopes := []*uuid.UUID{nil}
	if ev.Payload.CampaignID != uuid.Nil {
		id := ev.Payload.CampaignID
		scopes = append(scopes, &id)
	}

	pipe := l.rdb.TxPipeline()
	for _, scope := range scopes {
		eventsKey, valueKey := counterKeys(l.prefix, scope)
		pipe.HIncrBy(ctx, eventsKey, string(ev.Topic), 1)
		if ev.Topic == domain.TopicPurchase {
			pipe.IncrByFloat(ctx, valueKey, ev.Payload.Value)
		}
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("count %s event: %w", ev.Topic, err)
	}
	return nil
}

// Live returns the counters since the keys were created, for one campaign
// or, with a nil campaignID, for all events.
func (l *LiveCounters) Live(ctx context.Context, campaignID *uuid.UUID) (*port.StatsResp, error) {
	eventsKey, valueKey := counterKeys(l.prefix, campaignID)

	pipe := l.rdb.Pipeline()
	events := pipe.HGetAll(ctx, eventsKey)
	value := pipe.Get(ctx, valueKey)
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}

	raw, err := events.Result()
	if err != nil {
		return nil, err
	}
	purchaseValue, err := value.Float64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}
	return parseCounters(raw, purchaseValue)
}

func counterKeys(prefix string, campaignID *uuid.UUID) (events, value string) {
	scope := prefix
	if campaignID != nil {
		scope = prefix + "campaign:" + campaignID.String() + ":"
	}
	return scope + "events", scope + "purchase_value"
}

func parseCounters(raw map[string]string, purchaseValue float64) (*port.StatsResp, error) {
	resp := &port.StatsResp{
		Events:        make(map[domain.Topic]int64, len(raw)),
		PurchaseValue: purchaseValue,
	}
	for topic, s := range raw {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("counter %q: %w", topic, err)
		}
		resp.Events[domain.Topic(topic)] = n
	}
	return resp, nil
}
