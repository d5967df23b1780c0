// Package productrepo serves the fixed product catalog from memory.
package productrepo

import (
	"context"
	"slices"

	"pos/internal/core/domain/model/catalog"
)

// MemoryProductRepository implements ProductRepository over a fixed product list.
type MemoryProductRepository struct {
	products []catalog.Product
}

// NewMemoryProductRepository creates a repository over a copy of products.
func NewMemoryProductRepository(products []catalog.Product) *MemoryProductRepository {
	return &MemoryProductRepository{products: slices.Clone(products)}
}

// GetAll returns every product in catalog order.
func (r *MemoryProductRepository) GetAll(_ context.Context) ([]catalog.Product, error) {
	return slices.Clone(r.products), nil
}
