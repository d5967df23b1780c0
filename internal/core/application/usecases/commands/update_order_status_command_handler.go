package commands

import (
	"context"
	"time"

	"pos/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler changes the status of a stored order.
// Which changes are allowed is decided by the configured TransitionPolicy.
//
// Example:
//
//	handler := NewUpdateOrderStatusCommandHandler(uowFactory, order.AnyRecognizedStatus)
//	cmd, err := NewUpdateOrderStatusCommand(3, "ready")
//	if err != nil {
//	    return err // unrecognized status
//	}
//	updated, err := handler.Handle(ctx, cmd)
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     order.TransitionPolicy
	now        func() time.Time
}

func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	policy order.TransitionPolicy,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		now:        time.Now,
	}
}

// Handle returns the order as stored after the change. A rejected change
// leaves the order untouched and publishes nothing.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := notFoundUnlessPositive(cmd.OrderID()); err != nil {
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
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if _, err = o.ChangeStatus(cmd.Status(), h.policy, h.now().UTC()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
