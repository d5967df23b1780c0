// Package realtime pushes order events to connected socket clients.
//
// The Hub implements ports.OrderEventPublisher. Every committed order event
// becomes two frames for every client: the event itself, then the full order
// list. Delivery is best-effort: frames for a client whose queue is full are
// dropped and publishing never blocks the caller.
package realtime

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"pos/internal/adapters/presenter"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/wire"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	// DefaultQueueSize is used when a non-positive size is configured.
	DefaultQueueSize = 32
	// DefaultPongWait is how long a client may stay silent before it is dropped.
	DefaultPongWait = 60 * time.Second

	minQueueSize = 2
)

// Hub keeps the set of connected clients.
type Hub struct {
	mu        sync.RWMutex
	clients   map[uuid.UUID]*Client
	queueSize int
	pongWait  time.Duration
	logger    *slog.Logger
}

// NewHub creates an empty hub. Each client gets an outgoing queue of
// queueSize frames; two frames is the minimum so that the connect snapshot fits.
func NewHub(queueSize int, pongWait time.Duration, logger *slog.Logger) *Hub {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	if queueSize < minQueueSize {
		queueSize = minQueueSize
	}
	return &Hub{
		clients:   make(map[uuid.UUID]*Client),
		queueSize: queueSize,
		pongWait:  pongWait,
		logger:    logger.With("component", "realtime_hub"),
	}
}

// NewClient wraps an upgraded connection. The client receives broadcasts
// only after Register.
func (h *Hub) NewClient(conn *websocket.Conn) *Client {
	return newClient(conn, h.queueSize, h.pongWait, h.logger)
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c.ID()] = c
	count := len(h.clients)
	h.mu.Unlock()

	h.logger.Info("Client connected", "client_id", c.ID().String(), "clients", count)
}

// Unregister removes and closes the client.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	_, ok := h.clients[c.ID()]
	delete(h.clients, c.ID())
	count := len(h.clients)
	h.mu.Unlock()

	c.Close()
	if ok {
		h.logger.Info("Client disconnected", "client_id", c.ID().String(), "clients", count)
	}
}

// Broadcast encodes one event and enqueues it for every registered client.
func (h *Hub) Broadcast(event string, data any) {
	frame, err := wire.Encode(event, data)
	if err != nil {
		h.logger.Error("Failed to encode broadcast", "event", event, "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, c := range h.clients {
		c.enqueue(frame)
	}
}

// Publish turns a committed order event into its socket frames.
func (h *Hub) Publish(ctx context.Context, event order.Event, snapshot []*order.Order) {
	o := event.Order()

	switch event.Kind() {
	case order.EventCreated:
		h.Broadcast(wire.EventNewOrder, presenter.Order(o))
	case order.EventStatusChanged:
		h.Broadcast(wire.EventOrderUpdated, wire.OrderUpdatedPayload{
			OrderID:   o.ID(),
			OldStatus: presenter.OrderStatus(event.PreviousStatus()),
			NewStatus: presenter.OrderStatus(o.Status()),
			Order:     presenter.Order(o),
		})
	case order.EventDeleted:
		h.Broadcast(wire.EventOrderDeleted, wire.OrderDeletedPayload{
			OrderID: o.ID(),
			Order:   presenter.Order(o),
		})
	default:
		h.logger.WarnContext(ctx, "Ignoring unknown order event", "kind", event.Kind().String())
		return
	}

	h.Broadcast(wire.EventOrders, presenter.Orders(snapshot))
	h.logger.DebugContext(ctx, "Broadcast order event", "event", event.Kind().String(), "order_id", o.ID())
}

// Ping sends a ping to every client and drops the ones that cannot be written to.
func (h *Hub) Ping() {
	h.mu.RLock()
	clients := make([]*Client, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		if err := c.Ping(); err != nil {
			h.logger.Debug("Ping failed", "client_id", c.ID().String(), "error", err)
			h.Unregister(c)
		}
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// CloseAll disconnects every client.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	clients := h.clients
	h.clients = make(map[uuid.UUID]*Client)
	h.mu.Unlock()

	for _, c := range clients {
		c.Close()
	}
	if len(clients) > 0 {
		h.logger.Info("Closed all clients", "clients", len(clients))
	}
}
