package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"mesa-campaigns/internal/core/domain"
	"mesa-campaigns/internal/core/port"
)

// CampaignManager owns the campaign registry and is the bus subscriber that
// turns behavior events into campaign metric updates. A single lock guards
// the registry and every metric mutation, so handlers may be called from
// concurrent publishers.
type CampaignManager struct {
	mu        sync.RWMutex
	campaigns map[uuid.UUID]*domain.Campaign
	order     []uuid.UUID

	// products is built once at construction and never modified.
	products map[uuid.UUID]domain.Product
	logger   *slog.Logger
}

// NewCampaignManager creates a manager with an empty registry and a product
// lookup table built from products.
func NewCampaignManager(products []domain.Product, logger *slog.Logger) *CampaignManager {
	m := &CampaignManager{
		campaigns: make(map[uuid.UUID]*domain.Campaign),
		products:  make(map[uuid.UUID]domain.Product, len(products)),
		logger:    logger,
	}
	for _, p := range products {
		m.products[p.ID] = p
	}
	return m
}

// CreateCampaign registers a new campaign with zeroed metrics. Every
// product id must be known to the manager.
func (m *CampaignManager) CreateCampaign(name string, segment domain.Segment, budget float64, productIDs []uuid.UUID) (domain.Campaign, error) {
	for _, id := range productIDs {
		if _, ok := m.products[id]; !ok {
			return domain.Campaign{}, &domain.ValidationError{
				Field:  "product_ids",
				Reason: fmt.Sprintf("unknown product %s", id),
			}
		}
	}
	c, err := domain.NewCampaign(name, segment, budget, productIDs)
	if err != nil {
		return domain.Campaign{}, err
	}

	m.mu.Lock()
	m.campaigns[c.ID] = c
	m.order = append(m.order, c.ID)
	snapshot := c.Clone()
	m.mu.Unlock()

	m.logger.Info("campaign created",
		slog.String("campaign_id", c.ID.String()),
		slog.String("name", c.Name),
		slog.String("segment", string(c.TargetSegment)),
		slog.Float64("budget", c.Budget),
	)
	return snapshot, nil
}

// OnPurchase counts a conversion and adds the product's base price to the
// campaign revenue. An unknown product still counts as a conversion.
func (m *CampaignManager) OnPurchase(_ context.Context, ev *domain.Event) error {
	m.update(ev, func(c *domain.Campaign) {
		var revenue float64
		if p, ok := m.products[ev.Payload.ProductID]; ok {
			revenue = p.BasePrice
		} else {
			m.logger.Debug("purchase of unknown product",
				slog.String("product_id", ev.Payload.ProductID.String()),
			)
		}
		c.RecordConversion(revenue)
		m.logger.Info("purchase processed",
			slog.String("campaign", c.Name),
			slog.Float64("conversion_rate", c.ConversionRate),
			slog.Float64("roi", c.ROI),
		)
	})
	return nil
}

// OnCancel lowers campaign effectiveness. It serves both cancel and ignore
// signals.
func (m *CampaignManager) OnCancel(_ context.Context, ev *domain.Event) error {
	m.update(ev, func(c *domain.Campaign) {
		c.RecordNegativeSignal()
		m.logger.Info("negative signal processed",
			slog.String("topic", string(ev.Topic)),
			slog.String("campaign", c.Name),
			slog.Float64("effectiveness", c.Effectiveness),
		)
	})
	return nil
}

// OnAdInteraction counts an impression.
func (m *CampaignManager) OnAdInteraction(_ context.Context, ev *domain.Event) error {
	m.update(ev, func(c *domain.Campaign) {
		c.RecordImpression()
		m.logger.Info("impression tracked",
			slog.String("campaign", c.Name),
			slog.Int64("impressions", c.TotalImpressions),
		)
	})
	return nil
}

// update applies fn to the campaign referenced by ev. Events for unknown
// campaigns are dropped.
func (m *CampaignManager) update(ev *domain.Event, fn func(c *domain.Campaign)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.campaigns[ev.Payload.CampaignID]
	if !ok {
		m.logger.Debug("dangling campaign reference",
			slog.String("topic", string(ev.Topic)),
			slog.String("campaign_id", ev.Payload.CampaignID.String()),
		)
		return
	}
	fn(c)
}

// SetupSubscriptions wires the manager's handlers into bus. It is meant to
// be called once at startup; calling it again registers the handlers a
// second time.
func (m *CampaignManager) SetupSubscriptions(bus port.EventBus) []port.Subscription {
	return []port.Subscription{
		bus.Subscribe(domain.TopicPurchase, m.OnPurchase),
		bus.Subscribe(domain.TopicCancel, m.OnCancel),
		bus.Subscribe(domain.TopicIgnore, m.OnCancel),
		bus.Subscribe(domain.TopicAdInteraction, m.OnAdInteraction),
	}
}

// Campaigns returns snapshots of all campaigns in creation order.
func (m *CampaignManager) Campaigns() []domain.Campaign {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Campaign, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.campaigns[id].Clone())
	}
	return out
}

// Campaign returns a snapshot of one campaign.
func (m *CampaignManager) Campaign(id uuid.UUID) (domain.Campaign, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.campaigns[id]
	if !ok {
		return domain.Campaign{}, false
	}
	return c.Clone(), true
}

// Product looks a product up in the manager's product table.
func (m *CampaignManager) Product(id uuid.UUID) (domain.Product, bool) {
	p, ok := m.products[id]
	return p, ok
}

// CampaignForProduct returns the earliest created campaign that targets
// productID.
func (m *CampaignManager) CampaignForProduct(productID uuid.UUID) (domain.Campaign, bool) {
	return m.first(func(c *domain.Campaign) bool { return c.Targets(productID) })
}

// CampaignForSegment returns the earliest created campaign aimed at
// segment.
func (m *CampaignManager) CampaignForSegment(segment domain.Segment) (domain.Campaign, bool) {
	return m.first(func(c *domain.Campaign) bool { return c.TargetSegment == segment })
}

func (m *CampaignManager) first(match func(c *domain.Campaign) bool) (domain.Campaign, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, id := range m.order {
		if c := m.campaigns[id]; match(c) {
			return c.Clone(), true
		}
	}
	return domain.Campaign{}, false
}
