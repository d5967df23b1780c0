// Package catalog holds the read-only product catalog shown on the menu.
package catalog

import (
	"errors"
	"fmt"

	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Category is one of the fixed menu sections.
type Category string

const (
	Drinks   Category = "Bebidas"
	Food     Category = "Comidas"
	Desserts Category = "Postres"
)

// Categories returns the menu sections in display order.
func Categories() []Category {
	return []Category{Drinks, Food, Desserts}
}

// Validate checks that c is one of the fixed sections.
func (c Category) Validate() error {
	for _, known := range Categories() {
		if c == known {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%q is not a menu category", string(c)))
}

// Product is a menu entry. Products are created once at startup and never change.
type Product struct {
	id       int
	name     string
	price    float64
	category Category
	emoji    string

	guard guard.ConstructorGuard
}

// NewProduct validates and builds a product. The emoji is decorative and may be empty.
func NewProduct(id int, name string, price float64, category Category, emoji string) (Product, error) {
	var problems []error

	if id <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", id)))
	}
	if name == "" {
		problems = append(problems, errs.NewValueIsRequiredError("name"))
	}
	if price < 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%v is negative", price)))
	}
	problems = append(problems, category.Validate())

	if err := errors.Join(problems...); err != nil {
		return Product{}, err
	}

	return Product{
		id:       id,
		name:     name,
		price:    price,
		category: category,
		emoji:    emoji,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (p Product) Validate() error {
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p Product) ID() int {
	return p.id
}

func (p Product) Name() string {
	return p.name
}

func (p Product) Price() float64 {
	return p.price
}

func (p Product) Category() Category {
	return p.category
}

func (p Product) Emoji() string {
	return p.emoji
}
