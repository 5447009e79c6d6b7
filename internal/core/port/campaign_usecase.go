package port

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"mesa-campaigns/internal/core/domain"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrJournalDisabled = errors.New("event journal is disabled")
	ErrLiveDisabled    = errors.New("live counters are disabled")
)

// CampaignUseCase is the primary port used by the web layer. It covers
// campaign administration, the publisher side of customer actions and the
// read models rendered by the front end.
type CampaignUseCase interface {
	// CreateCampaign registers a new campaign. Invalid input yields a
	// *domain.ValidationError.
	CreateCampaign(ctx context.Context, req CreateCampaignReq) (domain.Campaign, error)

	// ListCampaigns returns snapshots of every campaign in creation order.
	ListCampaigns(ctx context.Context) []domain.Campaign

	// GetCampaign returns a campaign snapshot or ErrNotFound.
	GetCampaign(ctx context.Context, id uuid.UUID) (domain.Campaign, error)

	// ListProducts returns the catalog as seen by a customer of segment,
	// with the campaign-targeted product first.
	ListProducts(ctx context.Context, segment domain.Segment) ProductListing

	// ListCustomers returns the customer catalog.
	ListCustomers(ctx context.Context) []domain.Customer

	// RecordAction maps a customer action on a product to an event and
	// publishes it when a campaign tracks the product.
	RecordAction(ctx context.Context, req ActionReq) (*ActionResp, error)

	// PublishEvent publishes a raw event on behalf of an external producer.
	PublishEvent(ctx context.Context, topic domain.Topic, payload domain.Payload) error

	// GetStats returns journal aggregates, or ErrJournalDisabled.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)

	// GetLiveStats returns the running counters, or ErrLiveDisabled.
	GetLiveStats(ctx context.Context, campaignID *uuid.UUID) (*StatsResp, error)
}

// CreateCampaignReq carries the administrative input for a new campaign.
// An empty TargetSegment is taken from the first product.
type CreateCampaignReq struct {
	Name          string         `json:"name"`
	TargetSegment domain.Segment `json:"target_segment"`
	Budget        float64        `json:"budget"`
	ProductIDs    []uuid.UUID    `json:"product_ids"`
}

// ActionReq describes a customer action on a product. Topic is the action
// type, e.g. domain.TopicPurchase.
type ActionReq struct {
	CustomerID string       `json:"customer_id"`
	ProductID  uuid.UUID    `json:"product_id"`
	Topic      domain.Topic `json:"action_type"`
}

// ActionResp reports whether an event was published and for which
// campaign.
type ActionResp struct {
	Published    bool      `json:"published"`
	CampaignID   uuid.UUID `json:"campaign_id"`
	CampaignName string    `json:"campaign_name,omitempty"`
	Message      string    `json:"message"`
}

// ProductView is a catalog product annotated with targeting.
type ProductView struct {
	domain.Product
	Targeted bool `json:"targeted"`
}

// ProductListing is the product page for one segment.
type ProductListing struct {
	Segment         domain.Segment `json:"segment"`
	TargetingActive bool           `json:"targeting_active"`
	Products        []ProductView  `json:"products"`
}
