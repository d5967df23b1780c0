package order

import (
	"errors"
	"fmt"

	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not built by NewLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one product line of an order. Name and price are the values
// the client had when the product was put in the cart; they are never
// re-read from the catalog.
type LineItem struct {
	productID int
	name      string
	price     float64
	quantity  int

	guard guard.ConstructorGuard
}

// NewLineItem validates and builds a line item.
//
// Rules:
//   - productID must be positive (0 means the id is missing)
//   - name must not be empty
//   - price must not be negative
//   - quantity must be positive
//
// All violations are reported together.
func NewLineItem(productID int, name string, price float64, quantity int) (LineItem, error) {
	var problems []error

	if productID <= 0 {
		problems = append(problems, errs.NewValueIsRequiredError("productId"))
	}
	if name == "" {
		problems = append(problems, errs.NewValueIsRequiredError("name"))
	}
	if price < 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%v is negative", price)))
	}
	if quantity <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity)))
	}

	if err := errors.Join(problems...); err != nil {
		return LineItem{}, err
	}

	return LineItem{
		productID: productID,
		name:      name,
		price:     price,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the line item was created through NewLineItem.
func (i LineItem) Validate() error {
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

func (i LineItem) ProductID() int {
	return i.productID
}

func (i LineItem) Name() string {
	return i.name
}

func (i LineItem) Price() float64 {
	return i.price
}

func (i LineItem) Quantity() int {
	return i.quantity
}

// Subtotal is price times quantity.
func (i LineItem) Subtotal() float64 {
	return i.price * float64(i.quantity)
}
