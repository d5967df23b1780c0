package queries

import (
	"errors"

	"pos/internal/pkg/guard"
)

var ErrGetAllProductsQueryIsNotConstructed = errors.New(
	"GetAllProductsQuery must be created via NewGetAllProductsQuery constructor",
)

// GetAllProductsQuery retrieves the whole product catalog.
//
// Example:
//
//	query := NewGetAllProductsQuery()
//	handler := NewGetAllProductsQueryHandler(productRepo)
//
//	products, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get menu: %w", err)
//	}
//	for _, p := range products {
//	    fmt.Printf("%s %s %.2f\n", p.Emoji(), p.Name(), p.Price())
//	}
type GetAllProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllProductsQuery creates a parameterless catalog query.
func NewGetAllProductsQuery() GetAllProductsQuery {
	return GetAllProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllProductsQueryIsNotConstructed)
}
