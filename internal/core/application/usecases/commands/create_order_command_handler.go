package commands

import (
	"context"
	"time"

	"pos/internal/core/domain/model/order"
)

// CreateOrderCommandHandler stores a new Pending order under the next identifier.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Printf("order #%d is %s\n", created.ID(), created.Status())
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle assigns the identifier, stamps the creation time and commits the
// new order. The returned order is the committed one.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	id, err := orderRepo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	created, err := order.NewOrder(
		id,
		cmd.CustomerName(),
		cmd.TableNumber(),
		cmd.Items(),
		cmd.Total(),
		cmd.Notes(),
		h.now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
