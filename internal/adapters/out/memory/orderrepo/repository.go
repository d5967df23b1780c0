// Package orderrepo keeps orders in process memory.
package orderrepo

import (
	"context"
	"fmt"
	"slices"

	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"
)

// Table is the in-memory order storage. It is not safe for concurrent use;
// the owner serializes access.
type Table struct {
	orders []*order.Order
	lastID int
}

// NewTable creates an empty table. The first identifier handed out is 1.
func NewTable() *Table {
	return &Table{orders: make([]*order.Order, 0)}
}

// Len returns the number of stored orders.
func (t *Table) Len() int {
	return len(t.orders)
}

// Snapshot returns copies of all stored orders in creation order.
func (t *Table) Snapshot() []*order.Order {
	return cloneAll(t.orders)
}

// changeTracker receives every change together with the function that undoes it.
// A zero event records an undo step that publishes nothing.
type changeTracker interface {
	TrackChange(event order.Event, undo func())
}

// MemoryOrderRepository implements OrderRepository on top of a Table.
type MemoryOrderRepository struct {
	table   *Table
	tracker changeTracker
}

// NewMemoryOrderRepository creates a repository over table. A nil tracker
// gives a read-only repository.
func NewMemoryOrderRepository(table *Table, tracker changeTracker) *MemoryOrderRepository {
	return &MemoryOrderRepository{
		table:   table,
		tracker: tracker,
	}
}

// NextID advances the identifier counter.
func (r *MemoryOrderRepository) NextID(_ context.Context) (int, error) {
	if r.tracker == nil {
		return 0, ErrReadOnly
	}

	r.table.lastID++
	r.tracker.TrackChange(order.Event{}, func() { r.table.lastID-- })
	return r.table.lastID, nil
}

// Add appends a copy of aggregate.
func (r *MemoryOrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if r.tracker == nil {
		return ErrReadOnly
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if r.indexOf(aggregate.ID()) >= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderId", fmt.Errorf("order %d already exists", aggregate.ID()))
	}
	if aggregate.ID() > r.table.lastID {
		r.table.lastID = aggregate.ID()
	}

	r.table.orders = append(r.table.orders, aggregate.Clone())
	r.tracker.TrackChange(order.NewCreatedEvent(aggregate), func() {
		r.table.orders = r.table.orders[:len(r.table.orders)-1]
	})
	return nil
}

// Update replaces the stored order with a copy of aggregate.
func (r *MemoryOrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if r.tracker == nil {
		return ErrReadOnly
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	i := r.indexOf(aggregate.ID())
	if i < 0 {
		return errs.NewObjectNotFoundError("orderId", aggregate.ID())
	}

	stored := r.table.orders[i]
	r.table.orders[i] = aggregate.Clone()
	r.tracker.TrackChange(order.NewStatusChangedEvent(aggregate, stored.Status()), func() {
		r.table.orders[i] = stored
	})
	return nil
}

// Delete removes the order and returns it.
func (r *MemoryOrderRepository) Delete(_ context.Context, id int) (*order.Order, error) {
	if r.tracker == nil {
		return nil, ErrReadOnly
	}

	i := r.indexOf(id)
	if i < 0 {
		return nil, errs.NewObjectNotFoundError("orderId", id)
	}

	removed := r.table.orders[i]
	r.table.orders = slices.Delete(r.table.orders, i, i+1)
	r.tracker.TrackChange(order.NewDeletedEvent(removed), func() {
		r.table.orders = slices.Insert(r.table.orders, i, removed)
	})
	return removed.Clone(), nil
}

// Get retrieves an order by id.
func (r *MemoryOrderRepository) Get(_ context.Context, id int) (*order.Order, error) {
	i := r.indexOf(id)
	if i < 0 {
		return nil, errs.NewObjectNotFoundError("orderId", id)
	}
	return r.table.orders[i].Clone(), nil
}

// GetAll retrieves every order in creation order.
func (r *MemoryOrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	return cloneAll(r.table.orders), nil
}

// GetAllInStatus retrieves the orders currently in status.
func (r *MemoryOrderRepository) GetAllInStatus(_ context.Context, status order.Status) ([]*order.Order, error) {
	orders := make([]*order.Order, 0)
	for _, o := range r.table.orders {
		if o.Status() == status {
			orders = append(orders, o.Clone())
		}
	}
	return orders, nil
}

func (r *MemoryOrderRepository) indexOf(id int) int {
	return slices.IndexFunc(r.table.orders, func(o *order.Order) bool {
		return o.ID() == id
	})
}

func cloneAll(orders []*order.Order) []*order.Order {
	out := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.Clone())
	}
	return out
}
