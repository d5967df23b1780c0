// Package presenter maps domain objects to their wire representation.
// The same shapes are used by REST responses and socket events.
package presenter

import (
	"pos/internal/core/domain/model/catalog"
	"pos/internal/core/domain/model/order"
	"pos/internal/generated/servers"
)

func Product(p catalog.Product) servers.Product {
	return servers.Product{
		Id:       p.ID(),
		Name:     p.Name(),
		Price:    p.Price(),
		Category: servers.ProductCategory(p.Category()),
		Emoji:    p.Emoji(),
	}
}

// Products never returns nil, so an empty catalog encodes as [].
func Products(products []catalog.Product) []servers.Product {
	out := make([]servers.Product, 0, len(products))
	for _, p := range products {
		out = append(out, Product(p))
	}
	return out
}

func Order(o *order.Order) servers.Order {
	items := o.Items()
	lines := make([]servers.LineItem, 0, len(items))
	for _, item := range items {
		lines = append(lines, servers.LineItem{
			ProductId: item.ProductID(),
			Name:      item.Name(),
			Price:     item.Price(),
			Quantity:  item.Quantity(),
		})
	}

	out := servers.Order{
		OrderId:      o.ID(),
		CustomerName: o.CustomerName(),
		TableNumber:  o.TableNumber(),
		Items:        lines,
		Total:        o.Total(),
		Notes:        o.Notes(),
		Status:       OrderStatus(o.Status()),
		Timestamp:    o.CreatedAt(),
	}
	if at, ok := o.UpdatedAt(); ok {
		out.UpdatedAt = &at
	}
	return out
}

// Orders never returns nil, so an empty board encodes as [].
func Orders(orders []*order.Order) []servers.Order {
	out := make([]servers.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, Order(o))
	}
	return out
}

func OrderStatus(s order.Status) servers.OrderStatus {
	return servers.OrderStatus(s.String())
}

// CreatedOrder is the short form returned when an order is submitted.
func CreatedOrder(o *order.Order) servers.CreatedOrder {
	return servers.CreatedOrder{
		OrderId:   o.ID(),
		Status:    OrderStatus(o.Status()),
		Timestamp: o.CreatedAt(),
	}
}
