package domain

import (
	"time"

	"github.com/google/uuid"
)

// Topic identifies an event category on the bus. Topics are plain strings
// so that new behavior topics can be published without code changes.
type Topic string

const (
	TopicPurchase      Topic = "Purchase"
	TopicCancel        Topic = "Cancel"
	TopicIgnore        Topic = "Ignore"
	TopicAdInteraction Topic = "AdInteraction"
)

// Topics returns the behavior topics the campaign manager understands.
func Topics() []Topic {
	return []Topic{TopicPurchase, TopicCancel, TopicIgnore, TopicAdInteraction}
}

// Payload is the data carried by a customer behavior event. A zero UUID
// means the reference is absent. CustomerID and Value are carried for
// consumers other than the campaign manager.
type Payload struct {
	CustomerID string    `json:"customer_id,omitempty"`
	ProductID  uuid.UUID `json:"product_id"`
	CampaignID uuid.UUID `json:"campaign_id"`
	Value      float64   `json:"value"`
}

// Event is a published payload together with its topic. A single Event
// instance is shared by every subscriber of one publish call, so
// subscribers must treat it as read-only.
type Event struct {
	Topic       Topic
	Payload     Payload
	PublishedAt time.Time
}
