package queries

import (
	"errors"

	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery lists orders, optionally only those in one status.
//
// The filter is the status label as received from the client:
//   - "" lists every order
//   - a recognized label lists the orders in that status
//   - any other label matches nothing and lists no orders
//
// Example:
//
//	query := NewGetOrdersQuery("pending")
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	filter    bool
	status    order.Status
	matchNone bool

	guard guard.ConstructorGuard
}

func NewGetOrdersQuery(statusFilter string) GetOrdersQuery {
	q := GetOrdersQuery{guard: guard.NewConstructorGuard()}
	if statusFilter == "" {
		return q
	}

	q.filter = true
	status, err := order.ParseStatus(statusFilter)
	if err != nil {
		q.matchNone = true
		return q
	}
	q.status = status
	return q
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status returns the status filter. The second result is false when every
// order is requested.
func (q GetOrdersQuery) Status() (order.Status, bool) {
	return q.status, q.filter
}
