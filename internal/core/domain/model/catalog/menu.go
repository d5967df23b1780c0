package catalog

import "fmt"

type menuEntry struct {
	name     string
	price    float64
	category Category
	emoji    string
}

var defaultMenu = []menuEntry{
	{"Coca Cola", 19, Drinks, "🥤"},
	{"Agua Mineral", 16, Drinks, "💧"},
	{"Jugo de Naranja", 18, Drinks, "🧃"},
	{"Hamburguesa Clásica", 100, Food, "🍔"},
	{"Pizza Margarita", 120, Food, "🍕"},
	{"Ensalada César", 70, Food, "🥗"},
	{"Pasta Carbonara", 105, Food, "🍝"},
	{"Tiramisú", 80, Desserts, "🍰"},
	{"Cheesecake", 60, Desserts, "🎂"},
	{"Helado de Vainilla", 40, Desserts, "🍨"},
}

// DefaultMenu returns the products the server is seeded with, ids 1..10.
func DefaultMenu() ([]Product, error) {
	products := make([]Product, 0, len(defaultMenu))
	for i, e := range defaultMenu {
		p, err := NewProduct(i+1, e.name, e.price, e.category, e.emoji)
		if err != nil {
			return nil, fmt.Errorf("menu entry %d: %w", i+1, err)
		}
		products = append(products, p)
	}
	return products, nil
}
