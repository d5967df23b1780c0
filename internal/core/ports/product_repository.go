package ports

import (
	"context"

	"pos/internal/core/domain/model/catalog"
)

// ProductRepository serves the fixed product catalog.
type ProductRepository interface {
	// GetAll returns every product in catalog order.
	GetAll(ctx context.Context) ([]catalog.Product, error)
}
