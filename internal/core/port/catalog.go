package port

import (
	"github.com/google/uuid"

	"mesa-campaigns/internal/core/domain"
)

// Catalog is the read-only reference data owned outside the core.
type Catalog interface {
	Products() []domain.Product
	Customers() []domain.Customer
	Product(id uuid.UUID) (domain.Product, bool)
}
