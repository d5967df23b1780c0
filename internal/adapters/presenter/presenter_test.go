package presenter_test

import (
	"encoding/json"
	"testing"
	"time"

	"pos/internal/adapters/presenter"
	"pos/internal/core/domain/model/catalog"
	"pos/internal/core/domain/model/order"
	"pos/internal/generated/servers"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrder(t *testing.T) {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	item, err := order.NewLineItem(1, "Coca Cola", 19, 2)
	require.NoError(t, err)
	o, err := order.NewOrder(5, "Ana", 4, []order.LineItem{item}, 38, "no ice", created)
	require.NoError(t, err)

	want := servers.Order{
		OrderId:      5,
		CustomerName: "Ana",
		TableNumber:  4,
		Items:        []servers.LineItem{{ProductId: 1, Name: "Coca Cola", Price: 19, Quantity: 2}},
		Total:        38,
		Notes:        "no ice",
		Status:       servers.Pending,
		Timestamp:    created,
	}
	if diff := cmp.Diff(want, presenter.Order(o)); diff != "" {
		t.Errorf("Order() mismatch (-want +got):\n%s", diff)
	}

	t.Run("updatedAt is omitted until the first status change", func(t *testing.T) {
		raw, err := json.Marshal(presenter.Order(o))
		require.NoError(t, err)
		assert.NotContains(t, string(raw), "updatedAt")
		assert.Contains(t, string(raw), `"orderId":5`)
		assert.Contains(t, string(raw), `"timestamp":"2025-03-01T12:00:00Z"`)

		changed := created.Add(time.Minute)
		_, err = o.ChangeStatus(order.Ready, order.AnyRecognizedStatus, changed)
		require.NoError(t, err)

		raw, err = json.Marshal(presenter.Order(o))
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"updatedAt":"2025-03-01T12:01:00Z"`)
		assert.Contains(t, string(raw), `"status":"ready"`)
	})
}

func TestProducts(t *testing.T) {
	menu, err := catalog.DefaultMenu()
	require.NoError(t, err)

	products := presenter.Products(menu)
	require.Len(t, products, 10)
	assert.Equal(t, servers.Product{Id: 1, Name: "Coca Cola", Price: 19, Category: servers.Bebidas, Emoji: "🥤"}, products[0])

	raw, err := json.Marshal(presenter.Products(nil))
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(raw))
}

func TestOrders_Empty(t *testing.T) {
	raw, err := json.Marshal(presenter.Orders(nil))
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(raw))
}
