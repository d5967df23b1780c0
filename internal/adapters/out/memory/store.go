// Package memory provides the in-process order store and its Unit of Work.
//
// All orders live in a single table guarded by one read-write lock. A unit
// of work holds the write lock from Begin until Commit or Rollback, so
// mutations are applied one at a time. Committed events are published while
// the lock is still held; every subscriber therefore sees events in the same
// order the mutations were applied.
//
// Usage:
//
//	store := memory.NewStore(hub)
//	factory := memory.NewUnitOfWorkFactory(store)
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
package memory

import (
	"context"
	"sync"

	"pos/internal/adapters/out/memory/orderrepo"
	"pos/internal/core/domain/model/order"
	"pos/internal/core/ports"
)

// Store owns the order table and the publisher of committed events.
type Store struct {
	mu        sync.RWMutex
	table     *orderrepo.Table
	publisher ports.OrderEventPublisher
}

// NewStore creates an empty store. publisher may be nil, in which case
// committed events are dropped.
func NewStore(publisher ports.OrderEventPublisher) *Store {
	return &Store{
		table:     orderrepo.NewTable(),
		publisher: publisher,
	}
}

// Orders returns the read side of the store. Every call takes the read lock
// for its own duration.
func (s *Store) Orders() ports.OrderReader {
	return &lockedReader{store: s}
}

// Count returns the number of stored orders.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table.Len()
}

// Subscribe runs attach with a snapshot of all orders while no unit of work
// can commit.
func (s *Store) Subscribe(ctx context.Context, attach func(snapshot []*order.Order)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	attach(s.table.Snapshot())
	return nil
}

func (s *Store) publish(ctx context.Context, events []order.Event) {
	if s.publisher == nil || len(events) == 0 {
		return
	}

	snapshot := s.table.Snapshot()
	for _, e := range events {
		s.publisher.Publish(ctx, e, snapshot)
	}
}

type lockedReader struct {
	store *Store
}

func (r *lockedReader) repo() *orderrepo.MemoryOrderRepository {
	return orderrepo.NewMemoryOrderRepository(r.store.table, nil)
}

func (r *lockedReader) Get(ctx context.Context, id int) (*order.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.repo().Get(ctx, id)
}

func (r *lockedReader) GetAll(ctx context.Context) ([]*order.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.repo().GetAll(ctx)
}

func (r *lockedReader) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.repo().GetAllInStatus(ctx, status)
}
