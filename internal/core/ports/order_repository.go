package ports

import (
	"context"

	"pos/internal/core/domain/model/order"
)

// OrderReader is the read side of the order store. Implementations return
// copies; changing them does not change stored orders.
type OrderReader interface {
	// Get retrieves an order by id.
	// Returns an errs.ObjectNotFoundError when no order has that id.
	Get(ctx context.Context, id int) (*order.Order, error)

	// GetAll returns every order in creation order.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllInStatus returns the orders currently in status, in creation order.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
}

// OrderRepository is the write side of the order store, used inside a unit of work.
type OrderRepository interface {
	OrderReader

	// NextID hands out the next order identifier. Identifiers of committed
	// orders increase strictly and are never reused, deletions included.
	NextID(ctx context.Context) (int, error)

	// Add appends a new order to the store.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update replaces the stored order that has the same id.
	// Returns an errs.ObjectNotFoundError when it does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Delete removes the order and returns it.
	// Returns an errs.ObjectNotFoundError when it does not exist.
	Delete(ctx context.Context, id int) (*order.Order, error)
}
