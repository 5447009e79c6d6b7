package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"mesa-campaigns/internal/core/domain"
)

// EventSink receives a copy of every published event, off the publishing
// goroutine. Implementations must be safe for concurrent use.
type EventSink interface {
	// Append stores or forwards a single published event.
	Append(ctx context.Context, ev domain.Event) error
}

// EventJournal is the queryable sink used for analytics.
type EventJournal interface {
	EventSink
	// Stats aggregates journaled events in a period.
	Stats(ctx context.Context, req StatsReq) (*StatsResp, error)
}

// LiveStats is a sink that keeps running counters since it was first
// written to, without a time window.
type LiveStats interface {
	EventSink
	// Live returns the counters of one campaign, or of all events when
	// campaignID is nil.
	Live(ctx context.Context, campaignID *uuid.UUID) (*StatsResp, error)
}

// StatsReq selects the journal window and an optional campaign.
type StatsReq struct {
	From       time.Time
	To         time.Time
	CampaignID *uuid.UUID
}

// StatsResp contains event counts per topic and the summed value of
// purchase events.
type StatsResp struct {
	Events        map[domain.Topic]int64 `json:"events"`
	PurchaseValue float64                `json:"purchase_value"`
}
