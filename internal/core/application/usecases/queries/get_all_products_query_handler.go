package queries

import (
	"context"

	"pos/internal/core/domain/model/catalog"
	"pos/internal/core/ports"
)

// GetAllProductsQueryHandler reads the catalog from the product repository.
type GetAllProductsQueryHandler struct {
	products ports.ProductRepository
}

func NewGetAllProductsQueryHandler(products ports.ProductRepository) GetAllProductsQueryHandler {
	return GetAllProductsQueryHandler{products: products}
}

// Handle returns every product in catalog order.
func (h GetAllProductsQueryHandler) Handle(ctx context.Context, query GetAllProductsQuery) ([]catalog.Product, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.products.GetAll(ctx)
}
