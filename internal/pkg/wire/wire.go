// Package wire holds the socket frame format shared by the server hub and
// the staff client.
package wire

import (
	"encoding/json"

	"pos/internal/generated/servers"
)

// Event names pushed to socket clients.
const (
	EventNewOrder     = "newOrder"
	EventOrderUpdated = "orderUpdated"
	EventOrderDeleted = "orderDeleted"
	EventOrders       = "orders"
	EventProducts     = "products"
)

// Events lists every event name a client may receive.
func Events() []string {
	return []string{EventNewOrder, EventOrderUpdated, EventOrderDeleted, EventOrders, EventProducts}
}

// Message is one text frame on the socket.
type Message struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// OrderUpdatedPayload is the data of an orderUpdated event.
type OrderUpdatedPayload struct {
	OrderID   int                 `json:"orderId"`
	OldStatus servers.OrderStatus `json:"oldStatus"`
	NewStatus servers.OrderStatus `json:"newStatus"`
	Order     servers.Order       `json:"order"`
}

// OrderDeletedPayload is the data of an orderDeleted event.
type OrderDeletedPayload struct {
	OrderID int           `json:"orderId"`
	Order   servers.Order `json:"order"`
}

// Encode builds the frame for one event.
func Encode(event string, data any) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Message{Event: event, Data: raw})
}

// Decode parses a frame. The data stays raw until the receiver knows the event.
func Decode(frame []byte) (Message, error) {
	var msg Message
	err := json.Unmarshal(frame, &msg)
	return msg, err
}
