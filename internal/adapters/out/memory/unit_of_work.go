package memory

import (
	"context"
	"errors"
	"sync"

	"pos/internal/adapters/out/memory/orderrepo"
	"pos/internal/core/domain/model/order"
	"pos/internal/core/ports"
)

// ErrNoActiveTransaction is returned by Commit and Rollback when Begin was
// not called or the unit of work has already finished.
var ErrNoActiveTransaction = errors.New("no active unit of work")

// MemoryUnitOfWorkFactory creates units of work over one Store.
type MemoryUnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory for units of work over store.
func NewUnitOfWorkFactory(store *Store) *MemoryUnitOfWorkFactory {
	return &MemoryUnitOfWorkFactory{store: store}
}

// Create produces a new, not yet started unit of work.
func (f *MemoryUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &MemoryUnitOfWork{store: f.store}
}

type trackedChange struct {
	event order.Event
	undo  func()
}

// MemoryUnitOfWork applies changes directly to the table and keeps an undo
// log. The store's write lock is held while the unit of work is active.
//
// Example:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	repo := uow.OrderRepository()
//	o, err := repo.Get(ctx, 3)
//	// ... change o
//	if err := repo.Update(ctx, o); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
type MemoryUnitOfWork struct {
	store *Store

	mu      sync.Mutex
	active  bool
	changes []trackedChange
}

// Begin takes the store's write lock. Calling Begin on an active unit of
// work does nothing.
func (uow *MemoryUnitOfWork) Begin(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	uow.mu.Lock()
	defer uow.mu.Unlock()

	if uow.active {
		return nil
	}

	uow.store.mu.Lock()
	uow.active = true
	uow.changes = uow.changes[:0]
	return nil
}

// Commit publishes the tracked events with the resulting order list and
// releases the write lock.
func (uow *MemoryUnitOfWork) Commit(ctx context.Context) error {
	uow.mu.Lock()
	defer uow.mu.Unlock()

	if !uow.active {
		return ErrNoActiveTransaction
	}

	events := make([]order.Event, 0, len(uow.changes))
	for _, c := range uow.changes {
		if c.event.Kind() != 0 {
			events = append(events, c.event)
		}
	}
	uow.store.publish(ctx, events)

	uow.finish()
	return nil
}

// Rollback undoes the tracked changes in reverse order and releases the
// write lock. Nothing is published.
func (uow *MemoryUnitOfWork) Rollback(_ context.Context) error {
	uow.mu.Lock()
	defer uow.mu.Unlock()

	if !uow.active {
		return ErrNoActiveTransaction
	}

	for i := len(uow.changes) - 1; i >= 0; i-- {
		uow.changes[i].undo()
	}

	uow.finish()
	return nil
}

// OrderRepository returns the order repository bound to this unit of work.
// Outside an active unit of work the repository only reads, under the
// store's read lock.
func (uow *MemoryUnitOfWork) OrderRepository() ports.OrderRepository {
	uow.mu.Lock()
	defer uow.mu.Unlock()

	if !uow.active {
		return &readOnlyRepository{
			OrderReader: uow.store.Orders(),
		}
	}
	return orderrepo.NewMemoryOrderRepository(uow.store.table, uow)
}

// TrackChange records a change made by the repository. Called with uow.mu
// not held: repository calls happen between Begin and Commit.
func (uow *MemoryUnitOfWork) TrackChange(event order.Event, undo func()) {
	uow.mu.Lock()
	defer uow.mu.Unlock()

	uow.changes = append(uow.changes, trackedChange{event: event, undo: undo})
}

func (uow *MemoryUnitOfWork) finish() {
	uow.changes = nil
	uow.active = false
	uow.store.mu.Unlock()
}

type readOnlyRepository struct {
	ports.OrderReader
}

func (r *readOnlyRepository) NextID(context.Context) (int, error) {
	return 0, orderrepo.ErrReadOnly
}

func (r *readOnlyRepository) Add(context.Context, *order.Order) error {
	return orderrepo.ErrReadOnly
}

func (r *readOnlyRepository) Update(context.Context, *order.Order) error {
	return orderrepo.ErrReadOnly
}

func (r *readOnlyRepository) Delete(context.Context, int) (*order.Order, error) {
	return nil, orderrepo.ErrReadOnly
}
