package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the boundary of one order mutation. Between Begin and
// Commit/Rollback no other mutation runs, and events raised by the
// repository are published only when Commit succeeds.
type UnitOfWork interface {
	// Begin starts the unit of work.
	Begin(ctx context.Context) error

	// Commit makes the changes final and publishes the tracked events.
	// Returns error if no unit of work is active.
	Commit(ctx context.Context) error

	// Rollback undoes the changes and drops the tracked events.
	// Returns error if no unit of work is active.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to this unit of work.
	OrderRepository() OrderRepository
}
