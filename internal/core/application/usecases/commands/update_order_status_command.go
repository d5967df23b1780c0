package commands

import (
	"errors"

	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand moves one order to a new status.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID int
	status  order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand parses the status label. A non-positive id
// is accepted here and reported as not found by the handler.
func NewUpdateOrderStatusCommand(orderID int, status string) (UpdateOrderStatusCommand, error) {
	parsed, err := order.ParseStatus(status)
	if err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return UpdateOrderStatusCommand{
		orderID: orderID,
		status:  parsed,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) OrderID() int {
	return c.orderID
}

func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}

// notFoundUnlessPositive reports ids that can never exist without touching the store.
func notFoundUnlessPositive(id int) error {
	if id <= 0 {
		return errs.NewObjectNotFoundError("orderId", id)
	}
	return nil
}
