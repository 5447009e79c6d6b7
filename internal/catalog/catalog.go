// Package catalog holds the read-only product and customer reference data
// that campaigns and events point at.
package catalog

import (
	"github.com/google/uuid"

	"mesa-campaigns/internal/core/domain"
)

// Catalog is an immutable set of products and customers. Lookups are safe
// for concurrent use because nothing mutates a Catalog after New.
type Catalog struct {
	products    []domain.Product
	customers   []domain.Customer
	productByID map[uuid.UUID]domain.Product
}

// New indexes the given products and customers. Input order is kept for
// listings.
func New(products []domain.Product, customers []domain.Customer) *Catalog {
	c := &Catalog{
		products:    append([]domain.Product(nil), products...),
		customers:   append([]domain.Customer(nil), customers...),
		productByID: make(map[uuid.UUID]domain.Product, len(products)),
	}
	for _, p := range c.products {
		c.productByID[p.ID] = p
	}
	return c
}

// Products returns a copy of all products.
func (c *Catalog) Products() []domain.Product {
	return append([]domain.Product(nil), c.products...)
}

// Customers returns a copy of all customers.
func (c *Catalog) Customers() []domain.Customer {
	return append([]domain.Customer(nil), c.customers...)
}

// Product looks a product up by id.
func (c *Catalog) Product(id uuid.UUID) (domain.Product, bool) {
	p, ok := c.productByID[id]
	return p, ok
}
