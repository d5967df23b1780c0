package wire_test

import (
	"encoding/json"
	"testing"

	"pos/internal/generated/servers"
	"pos/internal/pkg/wire"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	frame, err := wire.Encode(wire.EventOrderDeleted, wire.OrderDeletedPayload{
		OrderID: 7,
		Order:   servers.Order{OrderId: 7, Status: "pending"},
	})
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(frame, &raw))
	assert.Len(t, raw, 2)
	assert.JSONEq(t, `"orderDeleted"`, string(raw["event"]))

	msg, err := wire.Decode(frame)
	require.NoError(t, err)
	assert.Equal(t, wire.EventOrderDeleted, msg.Event)

	var payload wire.OrderDeletedPayload
	require.NoError(t, json.Unmarshal(msg.Data, &payload))
	assert.Equal(t, 7, payload.OrderID)
	assert.EqualValues(t, "pending", payload.Order.Status)
}

func TestDecode(t *testing.T) {
	t.Run("not json", func(t *testing.T) {
		_, err := wire.Decode([]byte("ping"))
		require.Error(t, err)
	})

	t.Run("unknown events still decode", func(t *testing.T) {
		msg, err := wire.Decode([]byte(`{"event":"later","data":{"x":1}}`))
		require.NoError(t, err)
		assert.Equal(t, "later", msg.Event)
		assert.JSONEq(t, `{"x":1}`, string(msg.Data))
	})
}

func TestEvents(t *testing.T) {
	assert.Equal(t, []string{"newOrder", "orderUpdated", "orderDeleted", "orders", "products"}, wire.Events())
}
