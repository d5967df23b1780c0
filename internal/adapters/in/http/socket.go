package http

import (
	"log/slog"
	"net/http"

	"pos/internal/adapters/out/realtime"
	"pos/internal/adapters/presenter"
	"pos/internal/core/application/usecases/queries"
	"pos/internal/core/domain/model/order"
	"pos/internal/core/ports"
	"pos/internal/pkg/wire"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// SocketHandler upgrades GET /ws and attaches the connection to the hub.
type SocketHandler struct {
	hub         *realtime.Hub
	feed        ports.OrderFeed
	getProducts queries.GetAllProductsQueryHandler
	upgrader    websocket.Upgrader
	logger      *slog.Logger
}

func NewSocketHandler(
	hub *realtime.Hub,
	feed ports.OrderFeed,
	getProducts queries.GetAllProductsQueryHandler,
	logger *slog.Logger,
) *SocketHandler {
	return &SocketHandler{
		hub:         hub,
		feed:        feed,
		getProducts: getProducts,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Any origin may connect, like the REST API under CORS.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger: logger.With("component", "socket_handler"),
	}
}

// Handle serves one socket connection until the peer goes away. The new
// client first receives the products and the orders snapshot, then every
// broadcast that follows the snapshot.
func (h *SocketHandler) Handle(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	products, err := h.getProducts.Handle(reqCtx, queries.NewGetAllProductsQuery())
	if err != nil {
		return err
	}

	conn, err := h.upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		// The upgrader has already written the error response.
		h.logger.DebugContext(reqCtx, "Socket upgrade failed", "error", err)
		return nil
	}

	client := h.hub.NewClient(conn)
	err = h.feed.Subscribe(reqCtx, func(snapshot []*order.Order) {
		h.hub.Register(client)
		client.Send(wire.EventProducts, presenter.Products(products))
		client.Send(wire.EventOrders, presenter.Orders(snapshot))
	})
	if err != nil {
		h.logger.WarnContext(reqCtx, "Failed to subscribe socket client", "error", err)
		client.Close()
		return nil
	}

	go client.WritePump()
	client.ReadPump()
	h.hub.Unregister(client)
	return nil
}
