package queries

import (
	"context"

	"pos/internal/core/domain/model/order"
	"pos/internal/core/ports"
)

// GetOrdersQueryHandler lists orders from the read side of the order store.
//
// Example:
//
//	handler := NewGetOrdersQueryHandler(store.Orders())
//	orders, err := handler.Handle(ctx, NewGetOrdersQuery(""))
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d orders on the board\n", len(orders))
type GetOrdersQueryHandler struct {
	orders ports.OrderReader
}

func NewGetOrdersQueryHandler(orders ports.OrderReader) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{orders: orders}
}

// Handle returns the matching orders in creation order. The result is
// never nil.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if query.matchNone {
		return make([]*order.Order, 0), nil
	}

	if status, ok := query.Status(); ok {
		return h.orders.GetAllInStatus(ctx, status)
	}
	return h.orders.GetAll(ctx)
}
