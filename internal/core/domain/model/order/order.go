package order

import (
	"errors"
	"fmt"
	"time"

	"pos/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is a single customer's submitted set of line items plus its
// fulfillment status. It is the aggregate root of the order store.
//
// Order follows these invariants:
//   - The identifier is positive and assigned by the store, never by the client
//   - Customer name is not empty, table number is positive
//   - There is at least one line item
//   - Total is not negative; it is the client's figure and is not recomputed
//   - Status starts as Pending and UpdatedAt is unset until the first status change
//   - Only status and UpdatedAt change after creation
//
// Fields are private; the only mutation is ChangeStatus.
type Order struct {
	id           int
	customerName string
	tableNumber  int
	items        []LineItem
	total        float64
	notes        string
	status       Status
	createdAt    time.Time
	updatedAt    *time.Time

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a Pending order. All constructor arguments are validated
// and every violation is reported in a single joined error.
//
// Example:
//
//	item, _ := order.NewLineItem(1, "Coca Cola", 19, 2)
//	o, err := order.NewOrder(1, "Ana", 4, []order.LineItem{item}, 38, "", time.Now())
//	if err != nil {
//	    // err unwraps to errs.ErrValueIsRequired / errs.ErrValueIsInvalid
//	}
func NewOrder(
	id int,
	customerName string,
	tableNumber int,
	items []LineItem,
	total float64,
	notes string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		notes:         notes,
		status:        Pending,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerName(customerName),
		o.setTableNumber(tableNumber),
		o.setItems(items),
		o.setTotal(total),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() int {
	return o.id
}

func (o *Order) CustomerName() string {
	return o.customerName
}

func (o *Order) TableNumber() int {
	return o.tableNumber
}

// Items returns a copy of the line items in submission order.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

func (o *Order) Total() float64 {
	return o.total
}

func (o *Order) Notes() string {
	return o.notes
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the last status change. The second result
// is false while the order has never been updated.
func (o *Order) UpdatedAt() (time.Time, bool) {
	if o.updatedAt == nil {
		return time.Time{}, false
	}
	return *o.updatedAt, true
}

// ChangeStatus moves the order to next under policy and stamps UpdatedAt.
// It returns the status the order had before the change. On error the
// order is left untouched.
func (o *Order) ChangeStatus(next Status, policy TransitionPolicy, at time.Time) (Status, error) {
	newStatus, err := o.status.TransitionTo(next, policy)
	if err != nil {
		return Unknown, err
	}

	previous := o.status
	o.status = newStatus
	o.updatedAt = &at
	return previous, nil
}

// Clone returns an independent copy of the order. Stores hand out clones so
// that callers cannot mutate stored state.
func (o *Order) Clone() *Order {
	c := *o
	c.items = o.Items()
	if o.updatedAt != nil {
		at := *o.updatedAt
		c.updatedAt = &at
	}
	return &c
}

func (o *Order) setID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderId", fmt.Errorf("%d is not greater than 0", id))
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	o.customerName = name
	return nil
}

func (o *Order) setTableNumber(table int) error {
	if table == 0 {
		return errs.NewValueIsRequiredError("tableNumber")
	}
	if table < 0 {
		return errs.NewValueIsInvalidErrorWithCause("tableNumber", fmt.Errorf("%d is not greater than 0", table))
	}
	o.tableNumber = table
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", i), err)
		}
	}
	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setTotal(total float64) error {
	if total < 0 {
		return errs.NewValueIsInvalidErrorWithCause("total", fmt.Errorf("%v is negative", total))
	}
	o.total = total
	return nil
}
