package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"pos/internal/generated/servers"
	"pos/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// CartLine is one product in the cart. Name and price are copied when the
// product is added and are what the order is submitted with.
type CartLine struct {
	ProductID int             `json:"productId"`
	Name      string          `json:"name"`
	Emoji     string          `json:"emoji,omitempty"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// Subtotal is price times quantity.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is the staff member's pending order. Lines keep insertion order.
type Cart struct {
	lines []CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

// Add puts quantity units of p in the cart. A product already in the cart
// gets its quantity increased instead of a second line.
func (c *Cart) Add(p servers.Product, quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	if i := c.indexOf(p.Id); i >= 0 {
		c.lines[i].Quantity += quantity
		return nil
	}

	c.lines = append(c.lines, CartLine{
		ProductID: p.Id,
		Name:      p.Name,
		Emoji:     p.Emoji,
		Price:     decimal.NewFromFloat(p.Price),
		Quantity:  quantity,
	})
	return nil
}

// SetQuantity overwrites the quantity of a line. Zero or less removes it.
func (c *Cart) SetQuantity(productID, quantity int) error {
	i := c.indexOf(productID)
	if i < 0 {
		return errs.NewObjectNotFoundError("productId", productID)
	}
	if quantity <= 0 {
		c.lines = slices.Delete(c.lines, i, i+1)
		return nil
	}
	c.lines[i].Quantity = quantity
	return nil
}

// Remove drops the line of productID and reports whether it was there.
func (c *Cart) Remove(productID int) bool {
	i := c.indexOf(productID)
	if i < 0 {
		return false
	}
	c.lines = slices.Delete(c.lines, i, i+1)
	return true
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the lines.
func (c *Cart) Lines() []CartLine {
	return slices.Clone(c.lines)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Total is the sum of the line subtotals.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// ItemCount is the number of units across all lines.
func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Checkout builds the request body of the order. The cart is left as is;
// callers clear it once the server has accepted the order.
func (c *Cart) Checkout(customerName string, tableNumber int, notes string) (servers.NewOrder, error) {
	var problems []error
	if customerName == "" {
		problems = append(problems, errs.NewValueIsRequiredError("customerName"))
	}
	if tableNumber <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("tableNumber", fmt.Errorf("%d is not greater than 0", tableNumber)))
	}
	if c.IsEmpty() {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("items", errors.New("cart is empty")))
	}
	if err := errors.Join(problems...); err != nil {
		return servers.NewOrder{}, err
	}

	items := make([]servers.NewLineItem, 0, len(c.lines))
	for _, l := range c.lines {
		productID, name, quantity := l.ProductID, l.Name, l.Quantity
		price := l.Price.InexactFloat64()
		items = append(items, servers.NewLineItem{
			ProductId: &productID,
			Name:      &name,
			Price:     &price,
			Quantity:  &quantity,
		})
	}
	total := c.Total().InexactFloat64()

	body := servers.NewOrder{
		CustomerName: &customerName,
		TableNumber:  &tableNumber,
		Items:        &items,
		Total:        &total,
	}
	if notes != "" {
		body.Notes = &notes
	}
	return body, nil
}

func (c *Cart) indexOf(productID int) int {
	return slices.IndexFunc(c.lines, func(l CartLine) bool { return l.ProductID == productID })
}

// LoadCart reads a cart saved by Save. A missing file is an empty cart.
func LoadCart(path string) (*Cart, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewCart(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cart: %w", err)
	}

	var lines []CartLine
	if err = json.Unmarshal(raw, &lines); err != nil {
		return nil, fmt.Errorf("decode cart %s: %w", path, err)
	}
	return &Cart{lines: lines}, nil
}

// Save writes the cart to path, creating parent directories.
func (c *Cart) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create cart directory: %w", err)
	}

	lines := c.lines
	if lines == nil {
		lines = []CartLine{}
	}
	raw, err := json.MarshalIndent(lines, "", "  ")
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	return os.WriteFile(path, raw, 0o600)
}
