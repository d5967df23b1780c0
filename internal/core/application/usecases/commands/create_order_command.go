package commands

import (
	"errors"
	"fmt"

	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// LineItemInput is one cart line as submitted by the client.
type LineItemInput struct {
	ProductID int
	Name      string
	Price     float64
	Quantity  int
}

// CreateOrderCommand represents a request to submit a cart as a new order.
// The total is the client's figure and is taken as-is.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("Ana", 4, []LineItemInput{
//	    {ProductID: 1, Name: "Coca Cola", Price: 19, Quantity: 2},
//	}, 38, "no ice")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerName string
	tableNumber  int
	items        []order.LineItem
	total        float64
	notes        string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the submitted fields. Every field problem
// is reported; item problems are nested under their position, as in
// items[0].name.
func NewCreateOrderCommand(
	customerName string,
	tableNumber int,
	items []LineItemInput,
	total float64,
	notes string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerName(customerName),
		cmd.setTableNumber(tableNumber),
		cmd.setItems(items),
		cmd.setTotal(total),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

func (c CreateOrderCommand) TableNumber() int {
	return c.tableNumber
}

// Items returns a copy of the validated line items.
func (c CreateOrderCommand) Items() []order.LineItem {
	items := make([]order.LineItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c CreateOrderCommand) Total() float64 {
	return c.total
}

func (c CreateOrderCommand) Notes() string {
	return c.notes
}

func (c *CreateOrderCommand) setCustomerName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	c.customerName = name
	return nil
}

func (c *CreateOrderCommand) setTableNumber(table int) error {
	if table == 0 {
		return errs.NewValueIsRequiredError("tableNumber")
	}
	if table < 0 {
		return errs.NewValueIsInvalidErrorWithCause("tableNumber", fmt.Errorf("%d is not greater than 0", table))
	}
	c.tableNumber = table
	return nil
}

func (c *CreateOrderCommand) setItems(inputs []LineItemInput) error {
	if len(inputs) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	items := make([]order.LineItem, 0, len(inputs))
	var problems []error
	for i, in := range inputs {
		item, err := order.NewLineItem(in.ProductID, in.Name, in.Price, in.Quantity)
		if err != nil {
			problems = append(problems, errs.Nest(fmt.Sprintf("items[%d]", i), err))
			continue
		}
		items = append(items, item)
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setTotal(total float64) error {
	if total < 0 {
		return errs.NewValueIsInvalidErrorWithCause("total", fmt.Errorf("%v is negative", total))
	}
	c.total = total
	return nil
}
