package commands

import (
	"errors"

	"pos/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand removes one order for good.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int

	guard guard.ConstructorGuard
}

func NewDeleteOrderCommand(orderID int) DeleteOrderCommand {
	return DeleteOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}
}

func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

func (c DeleteOrderCommand) OrderID() int {
	return c.orderID
}
