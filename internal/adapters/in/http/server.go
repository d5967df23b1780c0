package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"pos/internal/adapters/presenter"
	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/application/usecases/queries"
	"pos/internal/generated/servers"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler

	// Query handlers
	getAllProductsHandler queries.GetAllProductsQueryHandler
	getOrdersHandler      queries.GetOrdersQueryHandler
	getOrderHandler       queries.GetOrderQueryHandler

	info     servers.ApiInfo
	validate *validator.Validate
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getAllProductsHandler queries.GetAllProductsQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	info servers.ApiInfo,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		deleteOrderHandler:       deleteOrderHandler,
		getAllProductsHandler:    getAllProductsHandler,
		getOrdersHandler:         getOrdersHandler,
		getOrderHandler:          getOrderHandler,
		info:                     info,
		validate:                 newValidator(),
		logger:                   logger.With("component", "http_server"),
	}
}

// GetApiInfo handles GET / - describes the API.
func (s *Server) GetApiInfo(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, s.info)
}

// GetProducts handles GET /api/products - retrieves the catalog.
func (s *Server) GetProducts(ctx echo.Context) error {
	products, err := s.getAllProductsHandler.Handle(ctx.Request().Context(), queries.NewGetAllProductsQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve products")
	}

	data := presenter.Products(products)
	return ctx.JSON(http.StatusOK, servers.ProductListResponse{
		Success: true,
		Count:   len(data),
		Data:    data,
	})
}

// GetOrders handles GET /api/orders - retrieves orders, optionally by status.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	status := ""
	if params.Status != nil {
		status = *params.Status
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetOrdersQuery(status))
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve orders")
	}

	data := presenter.Orders(orders)
	return ctx.JSON(http.StatusOK, servers.OrderListResponse{
		Success: true,
		Count:   len(data),
		Data:    data,
	})
}

// CreateOrder handles POST /api/orders - submits a cart as a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := s.validate.Struct(body); err != nil {
		return badRequest(ctx, validationMessage(err))
	}

	items := make([]commands.LineItemInput, 0, len(*body.Items))
	for _, item := range *body.Items {
		items = append(items, commands.LineItemInput{
			ProductID: *item.ProductId,
			Name:      *item.Name,
			Price:     *item.Price,
			Quantity:  *item.Quantity,
		})
	}
	notes := ""
	if body.Notes != nil {
		notes = *body.Notes
	}

	cmd, err := commands.NewCreateOrderCommand(*body.CustomerName, *body.TableNumber, items, *body.Total, notes)
	if err != nil {
		return s.fail(ctx, err, "Failed to create order")
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to create order")
	}

	s.logger.InfoContext(ctx.Request().Context(), "Order created",
		"order_id", created.ID(),
		"table", created.TableNumber(),
		"total", created.Total(),
	)

	return ctx.JSON(http.StatusCreated, servers.CreatedOrderResponse{
		Success: true,
		Message: message("Order created successfully"),
		Data:    presenter.CreatedOrder(created),
	})
}

// GetOrder handles GET /api/orders/{id} - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context, id int) error {
	o, err := s.getOrderHandler.Handle(ctx.Request().Context(), queries.NewGetOrderQuery(id))
	if err != nil {
		return s.failOrder(ctx, id, err, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, servers.OrderResponse{
		Success: true,
		Data:    presenter.Order(o),
	})
}

// UpdateOrderStatus handles PUT /api/orders/{id} - changes the status of an order.
func (s *Server) UpdateOrderStatus(ctx echo.Context, id int) error {
	var body servers.StatusUpdate
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := s.validate.Struct(body); err != nil {
		return badRequest(ctx, validationMessage(err))
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, *body.Status)
	if err != nil {
		return s.failOrder(ctx, id, err, "Failed to update order")
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.failOrder(ctx, id, err, "Failed to update order")
	}

	s.logger.InfoContext(ctx.Request().Context(), "Order status changed",
		"order_id", updated.ID(),
		"status", updated.Status().String(),
	)

	return ctx.JSON(http.StatusOK, servers.OrderResponse{
		Success: true,
		Message: message("Order updated successfully"),
		Data:    presenter.Order(updated),
	})
}

// DeleteOrder handles DELETE /api/orders/{id} - removes an order.
func (s *Server) DeleteOrder(ctx echo.Context, id int) error {
	removed, err := s.deleteOrderHandler.Handle(ctx.Request().Context(), commands.NewDeleteOrderCommand(id))
	if err != nil {
		return s.failOrder(ctx, id, err, "Failed to delete order")
	}

	s.logger.InfoContext(ctx.Request().Context(), "Order deleted",
		"order_id", removed.ID(),
		"table", removed.TableNumber(),
	)

	return ctx.JSON(http.StatusOK, servers.OrderResponse{
		Success: true,
		Message: message(fmt.Sprintf("Order #%d deleted successfully", removed.ID())),
		Data:    presenter.Order(removed),
	})
}

func message(text string) *string {
	return &text
}
