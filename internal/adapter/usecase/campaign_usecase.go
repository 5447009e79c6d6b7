package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"mesa-campaigns/internal/core/domain"
	"mesa-campaigns/internal/core/port"
)

// CampaignUseCase implements port.CampaignUseCase on top of a campaign
// manager, the event bus and the catalog. It plays the publisher role for
// customer actions and serves the read models.
type CampaignUseCase struct {
	manager *CampaignManager
	bus     port.EventBus
	catalog port.Catalog

	// journal and live are nil when disabled.
	journal port.EventJournal
	live    port.LiveStats
	logger  *slog.Logger
}

var _ port.CampaignUseCase = (*CampaignUseCase)(nil)

// NewCampaignUseCase creates the use case. journal and live may be nil.
func NewCampaignUseCase(
	manager *CampaignManager,
	bus port.EventBus,
	catalog port.Catalog,
	journal port.EventJournal,
	live port.LiveStats,
	logger *slog.Logger,
) *CampaignUseCase {
	return &CampaignUseCase{
		manager: manager,
		bus:     bus,
		catalog: catalog,
		journal: journal,
		live:    live,
		logger:  logger,
	}
}

// CreateCampaign registers a campaign. When no segment is given the
// campaign targets the segment of its first product.
func (u *CampaignUseCase) CreateCampaign(_ context.Context, req port.CreateCampaignReq) (domain.Campaign, error) {
	segment := req.TargetSegment
	if segment == "" && len(req.ProductIDs) > 0 {
		if p, ok := u.catalog.Product(req.ProductIDs[0]); ok {
			segment = p.Segment
		}
	}
	return u.manager.CreateCampaign(req.Name, segment, req.Budget, req.ProductIDs)
}

// ListCampaigns returns all campaign snapshots in creation order.
func (u *CampaignUseCase) ListCampaigns(context.Context) []domain.Campaign {
	return u.manager.Campaigns()
}

// GetCampaign returns one campaign snapshot.
func (u *CampaignUseCase) GetCampaign(_ context.Context, id uuid.UUID) (domain.Campaign, error) {
	c, ok := u.manager.Campaign(id)
	if !ok {
		return domain.Campaign{}, fmt.Errorf("campaign %s: %w", id, port.ErrNotFound)
	}
	return c, nil
}

// ListProducts returns the catalog for a customer of segment. The first
// product of the earliest campaign aimed at the segment is flagged as
// targeted and listed first.
func (u *CampaignUseCase) ListProducts(_ context.Context, segment domain.Segment) port.ProductListing {
	listing := port.ProductListing{Segment: segment}

	var targeted uuid.UUID
	if c, ok := u.manager.CampaignForSegment(segment); ok {
		listing.TargetingActive = true
		if len(c.ProductIDs) > 0 {
			targeted = c.ProductIDs[0]
		}
	}

	products := u.catalog.Products()
	listing.Products = make([]port.ProductView, 0, len(products))
	for _, p := range products {
		view := port.ProductView{Product: p, Targeted: targeted != uuid.Nil && p.ID == targeted}
		if view.Targeted {
			listing.Products = append([]port.ProductView{view}, listing.Products...)
			continue
		}
		listing.Products = append(listing.Products, view)
	}
	return listing
}

// ListCustomers returns the customer catalog.
func (u *CampaignUseCase) ListCustomers(context.Context) []domain.Customer {
	return u.catalog.Customers()
}

// RecordAction publishes the event for a customer action. Nothing is
// published when the product is unknown or no campaign tracks it.
func (u *CampaignUseCase) RecordAction(ctx context.Context, req port.ActionReq) (*port.ActionResp, error) {
	if strings.TrimSpace(string(req.Topic)) == "" {
		return nil, &domain.ValidationError{Field: "action_type", Reason: "must not be empty"}
	}

	product, ok := u.catalog.Product(req.ProductID)
	var campaign domain.Campaign
	if ok {
		campaign, ok = u.manager.CampaignForProduct(product.ID)
	}
	if !ok {
		u.logger.Info("action ignored, no campaign tracks product",
			slog.String("action", string(req.Topic)),
			slog.String("product_id", req.ProductID.String()),
		)
		return &port.ActionResp{
			Message: fmt.Sprintf("Action '%s' ignored: no active campaign tracks this product.", req.Topic),
		}, nil
	}

	payload := domain.Payload{
		CustomerID: req.CustomerID,
		ProductID:  product.ID,
		CampaignID: campaign.ID,
		Value:      product.BasePrice,
	}
	if err := u.bus.Publish(ctx, req.Topic, payload); err != nil {
		return nil, fmt.Errorf("publish %s: %w", req.Topic, err)
	}
	return &port.ActionResp{
		Published:    true,
		CampaignID:   campaign.ID,
		CampaignName: campaign.Name,
		Message:      fmt.Sprintf("Event '%s' published for campaign '%s'.", req.Topic, campaign.Name),
	}, nil
}

// PublishEvent publishes a raw event.
func (u *CampaignUseCase) PublishEvent(ctx context.Context, topic domain.Topic, payload domain.Payload) error {
	if strings.TrimSpace(string(topic)) == "" {
		return &domain.ValidationError{Field: "topic", Reason: "must not be empty"}
	}
	return u.bus.Publish(ctx, topic, payload)
}

// GetStats returns journal aggregates for a period.
func (u *CampaignUseCase) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	if u.journal == nil {
		return nil, port.ErrJournalDisabled
	}
	if req.To.Before(req.From) {
		return nil, &domain.ValidationError{Field: "to", Reason: "must not be before from"}
	}
	return u.journal.Stats(ctx, req)
}

// GetLiveStats returns the running counters kept by the live sink.
func (u *CampaignUseCase) GetLiveStats(ctx context.Context, campaignID *uuid.UUID) (*port.StatsResp, error) {
	if u.live == nil {
		return nil, port.ErrLiveDisabled
	}
	return u.live.Live(ctx, campaignID)
}
