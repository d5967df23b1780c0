package queries

import (
	"errors"

	"pos/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order by id.
type GetOrderQuery struct {
	orderID int

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID int) GetOrderQuery {
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() int {
	return q.orderID
}
