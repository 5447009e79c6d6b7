package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// CostFactor is the share of the budget counted as campaign cost when
	// computing ROI.
	CostFactor = 0.05
	// NegativeSignalPenalty is subtracted from effectiveness on every
	// cancel or ignore signal.
	NegativeSignalPenalty = 5.0
	// MaxEffectiveness is the starting effectiveness of a campaign.
	MaxEffectiveness = 100.0
)

// Campaign represents a marketing campaign and its running metrics.
// Structure (name, segment, budget, products) is fixed at creation; the
// metric fields change only through the Record* methods.
type Campaign struct {
	ID            uuid.UUID   `json:"id"`
	Name          string      `json:"name"`
	TargetSegment Segment     `json:"target_segment"`
	Budget        float64     `json:"budget"`
	ProductIDs    []uuid.UUID `json:"product_ids"`

	TotalImpressions int64   `json:"total_impressions"`
	TotalConversions int64   `json:"total_conversions"`
	RevenueGenerated float64 `json:"revenue_generated"`
	ConversionRate   float64 `json:"conversion_rate"` // percent, 0-100
	ROI              float64 `json:"roi"`
	Effectiveness    float64 `json:"effectiveness"` // percent, 0-100

	CreatedAt time.Time `json:"created_at"`
}

// NewCampaign validates the structural attributes and returns a campaign
// with a fresh id and zeroed metrics.
func NewCampaign(name string, segment Segment, budget float64, productIDs []uuid.UUID) (*Campaign, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("name", "must not be empty")
	}
	if !segment.Valid() {
		return nil, invalid("target_segment", "unknown segment %q", segment)
	}
	if !(budget > 0) {
		return nil, invalid("budget", "must be positive, got %v", budget)
	}
	if len(productIDs) == 0 {
		return nil, invalid("product_ids", "at least one product is required")
	}
	for _, id := range productIDs {
		if id == uuid.Nil {
			return nil, invalid("product_ids", "contains an empty id")
		}
	}
	return &Campaign{
		ID:            uuid.New(),
		Name:          name,
		TargetSegment: segment,
		Budget:        budget,
		ProductIDs:    append([]uuid.UUID(nil), productIDs...),
		Effectiveness: MaxEffectiveness,
		CreatedAt:     time.Now().UTC(),
	}, nil
}

// Targets reports whether productID is one of the campaign's products.
func (c *Campaign) Targets(productID uuid.UUID) bool {
	for _, id := range c.ProductIDs {
		if id == productID {
			return true
		}
	}
	return false
}

// Cost is the share of the budget charged against revenue.
func (c *Campaign) Cost() float64 {
	return c.Budget * CostFactor
}

// RecordImpression counts one ad interaction. Derived metrics are left
// untouched.
func (c *Campaign) RecordImpression() {
	c.TotalImpressions++
}

// RecordConversion counts one purchase and adds revenue. The conversion
// rate is only recomputed once impressions exist and ROI only when the
// cost is non-zero; otherwise the previous values are kept.
func (c *Campaign) RecordConversion(revenue float64) {
	c.TotalConversions++
	if revenue > 0 {
		c.RevenueGenerated += revenue
	}
	if c.TotalImpressions > 0 {
		c.ConversionRate = float64(c.TotalConversions) / float64(c.TotalImpressions) * 100
	}
	if cost := c.Cost(); cost > 0 {
		c.ROI = (c.RevenueGenerated - cost) / cost
	}
}

// RecordNegativeSignal lowers effectiveness, never below zero.
func (c *Campaign) RecordNegativeSignal() {
	c.Effectiveness = max(0, c.Effectiveness-NegativeSignalPenalty)
}

// Clone returns a deep copy safe to hand out as a snapshot.
func (c *Campaign) Clone() Campaign {
	cp := *c
	cp.ProductIDs = append([]uuid.UUID(nil), c.ProductIDs...)
	return cp
}
