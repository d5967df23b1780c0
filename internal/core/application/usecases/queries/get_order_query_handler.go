package queries

import (
	"context"

	"pos/internal/core/domain/model/order"
	"pos/internal/core/ports"
	"pos/internal/pkg/errs"
)

// GetOrderQueryHandler retrieves one order from the read side of the order store.
type GetOrderQueryHandler struct {
	orders ports.OrderReader
}

func NewGetOrderQueryHandler(orders ports.OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

// Handle returns an errs.ObjectNotFoundError for ids that are not stored,
// non-positive ids included.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if query.OrderID() <= 0 {
		return nil, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}
	return h.orders.Get(ctx, query.OrderID())
}
