package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mesa-campaigns/internal/core/domain"
	"mesa-campaigns/internal/core/port"
)

// EventJournal implements port.EventJournal on the campaign_events table.
type EventJournal struct {
	pool *pgxpool.Pool
}

var _ port.EventJournal = (*EventJournal)(nil)

// NewEventJournal returns a journal backed by pool.
func NewEventJournal(pool *pgxpool.Pool) *EventJournal {
	return &EventJournal{pool: pool}
}

// Append inserts one event. Absent product or campaign references are
// stored as NULL.
func (j *EventJournal) Append(ctx context.Context, ev domain.Event) error {
	_, err := j.pool.Exec(ctx, insertEventSQL, appendArgs(ev)...)
	if err != nil {
		return fmt.Errorf("append %s event: %w", ev.Topic, err)
	}
	return nil
}

// Stats counts journaled events per topic within the requested window.
func (j *EventJournal) Stats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	query, args := statsQuery(req)
	rows, err := j.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	type topicRow struct {
		Topic domain.Topic
		Count int64
		Value float64
	}
	aggregated, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (topicRow, error) {
		var tr topicRow
		err := row.Scan(&tr.Topic, &tr.Count, &tr.Value)
		return tr, err
	})
	if err != nil {
		return nil, err
	}

	resp := &port.StatsResp{Events: make(map[domain.Topic]int64, len(aggregated))}
	for _, tr := range aggregated {
		resp.Events[tr.Topic] = tr.Count
		if tr.Topic == domain.TopicPurchase {
			resp.PurchaseValue = tr.Value
		}
	}
	return resp, nil
}

const insertEventSQL = `INSERT INTO campaign_events (topic, customer_id, product_id, campaign_id, value, published_at)
VALUES ($1, $2, $3, $4, $5, $6)`

func appendArgs(ev domain.Event) []any {
	return []any{
		string(ev.Topic),
		ev.Payload.CustomerID,
		nullUUID(ev.Payload.ProductID),
		nullUUID(ev.Payload.CampaignID),
		ev.Payload.Value,
		ev.PublishedAt,
	}
}

func statsQuery(req port.StatsReq) (string, []any) {
	args := []any{req.From, req.To}
	whereCampaign := ""
	if req.CampaignID != nil {
		whereCampaign = "AND campaign_id = $3"
		args = append(args, *req.CampaignID)
	}
	query := fmt.Sprintf(`SELECT topic, count(*), COALESCE(sum(value), 0)
FROM campaign_events
WHERE published_at >= $1 AND published_at <= $2 %s
GROUP BY topic`, whereCampaign)
	return query, args
}

func nullUUID(id uuid.UUID) uuid.NullUUID {
	return uuid.NullUUID{UUID: id, Valid: id != uuid.Nil}
}
