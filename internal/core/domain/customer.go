package domain

import "github.com/google/uuid"

// Channel is the preferred way of reaching a customer.
type Channel string

const (
	ChannelEmail        Channel = "Email"
	ChannelNotification Channel = "Notification"
	ChannelPhoneCall    Channel = "Phone Call"
)

// Customer describes a shopper. LifetimeValue is a derived score and is
// never mutated by campaign processing.
type Customer struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Age              int       `json:"age"`
	Gender           string    `json:"gender"`
	Segment          Segment   `json:"segment"`
	PreferredChannel Channel   `json:"preferred_channel"`
	LifetimeValue    float64   `json:"lifetime_value"`
}
