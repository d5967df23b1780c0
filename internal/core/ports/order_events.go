package ports

import (
	"context"

	"pos/internal/core/domain/model/order"
)

// OrderEventPublisher receives every committed order event together with
// the full order list as it stands after the mutation.
//
// Publishing is best-effort: implementations must not block and have no
// way to fail the mutation that raised the event.
type OrderEventPublisher interface {
	Publish(ctx context.Context, event order.Event, snapshot []*order.Order)
}

// OrderFeed lets a new subscriber take a snapshot of all orders that is
// consistent with the events published after it. attach runs while no
// mutation can commit, so anything the subscriber registers inside attach
// receives exactly the events that follow the snapshot.
type OrderFeed interface {
	Subscribe(ctx context.Context, attach func(snapshot []*order.Order)) error
}
