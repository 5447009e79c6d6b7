package catalog

import (
	"github.com/google/uuid"

	"mesa-campaigns/internal/core/domain"
)

// Default returns the demo catalog: one product per segment and two
// customers per segment. Ids are generated on every call.
func Default() *Catalog {
	products := []domain.Product{
		newProduct("Smartwatch", "Accessories", 199.99, domain.SegmentMale),
		newProduct("Beauty Kit", "Cosmetics", 55.50, domain.SegmentFemale),
		newProduct("Reading Subscription", "Services", 15.00, domain.SegmentSeniorMale),
	}
	customers := []domain.Customer{
		newCustomer("Leo Dupont", 35, "Male", domain.SegmentMale, domain.ChannelEmail),
		newCustomer("Victor Moreau", 40, "Male", domain.SegmentMale, domain.ChannelEmail),
		newCustomer("Mia Dubois", 28, "Female", domain.SegmentFemale, domain.ChannelNotification),
		newCustomer("Sophie Leroux", 25, "Female", domain.SegmentFemale, domain.ChannelEmail),
		newCustomer("Jean Petit", 68, "Male", domain.SegmentSeniorMale, domain.ChannelPhoneCall),
		newCustomer("Marc Durand", 65, "Male", domain.SegmentSeniorMale, domain.ChannelEmail),
	}
	return New(products, customers)
}

func newProduct(name, category string, price float64, segment domain.Segment) domain.Product {
	return domain.Product{
		ID:        uuid.New(),
		Name:      name,
		Category:  category,
		BasePrice: price,
		Segment:   segment,
	}
}

func newCustomer(name string, age int, gender string, segment domain.Segment, channel domain.Channel) domain.Customer {
	return domain.Customer{
		ID:               uuid.New(),
		Name:             name,
		Age:              age,
		Gender:           gender,
		Segment:          segment,
		PreferredChannel: channel,
	}
}
