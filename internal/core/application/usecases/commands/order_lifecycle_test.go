package commands_test

import (
	"testing"

	"pos/internal/adapters/out/memory"
	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryUoWFactory struct {
	factory *memory.MemoryUnitOfWorkFactory
}

func (f memoryUoWFactory) Create() commands.OrderUoW {
	return f.factory.Create()
}

func newLifecycle(t *testing.T, policy order.TransitionPolicy) (
	*memory.Store,
	commands.CreateOrderCommandHandler,
	commands.UpdateOrderStatusCommandHandler,
	commands.DeleteOrderCommandHandler,
) {
	t.Helper()
	store := memory.NewStore(nil)
	factory := memoryUoWFactory{factory: memory.NewUnitOfWorkFactory(store)}
	return store,
		commands.NewCreateOrderCommandHandler(factory),
		commands.NewUpdateOrderStatusCommandHandler(factory, policy),
		commands.NewDeleteOrderCommandHandler(factory)
}

func TestOrderLifecycle_IdentifiersAfterDelete(t *testing.T) {
	ctx := t.Context()
	store, create, _, remove := newLifecycle(t, order.AnyRecognizedStatus)

	for _, name := range []string{"A", "B", "C"} {
		cmd, err := commands.NewCreateOrderCommand(name, 1, []commands.LineItemInput{cokeLine(1)}, 19, "")
		require.NoError(t, err)
		_, err = create.Handle(ctx, cmd)
		require.NoError(t, err)
	}

	_, err := remove.Handle(ctx, commands.NewDeleteOrderCommand(2))
	require.NoError(t, err)

	cmd, err := commands.NewCreateOrderCommand("D", 1, []commands.LineItemInput{cokeLine(1)}, 19, "")
	require.NoError(t, err)
	created, err := create.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 4, created.ID())

	_, err = store.Orders().Get(ctx, 2)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Equal(t, 3, store.Count())
}

func TestOrderLifecycle_InvalidStatusLeavesOrderUnchanged(t *testing.T) {
	ctx := t.Context()
	store, create, update, _ := newLifecycle(t, order.ForwardOnly)

	cmd, err := commands.NewCreateOrderCommand("Ana", 4, []commands.LineItemInput{cokeLine(2)}, 38, "")
	require.NoError(t, err)
	created, err := create.Handle(ctx, cmd)
	require.NoError(t, err)

	skip, err := commands.NewUpdateOrderStatusCommand(created.ID(), "ready")
	require.NoError(t, err)
	_, err = update.Handle(ctx, skip)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	stored, err := store.Orders().Get(ctx, created.ID())
	require.NoError(t, err)
	assert.Equal(t, order.Pending, stored.Status())
	_, touched := stored.UpdatedAt()
	assert.False(t, touched)

	for _, next := range []string{"preparing", "ready", "delivered"} {
		step, err := commands.NewUpdateOrderStatusCommand(created.ID(), next)
		require.NoError(t, err)
		updated, err := update.Handle(ctx, step)
		require.NoError(t, err)
		assert.Equal(t, next, updated.Status().String())
	}
}

func TestOrderLifecycle_LenientPolicyAllowsAnyRecognizedStatus(t *testing.T) {
	ctx := t.Context()
	_, create, update, _ := newLifecycle(t, order.AnyRecognizedStatus)

	cmd, err := commands.NewCreateOrderCommand("Ana", 4, []commands.LineItemInput{cokeLine(1)}, 19, "")
	require.NoError(t, err)
	created, err := create.Handle(ctx, cmd)
	require.NoError(t, err)

	for _, next := range []string{"delivered", "pending", "pending"} {
		step, err := commands.NewUpdateOrderStatusCommand(created.ID(), next)
		require.NoError(t, err)
		updated, err := update.Handle(ctx, step)
		require.NoError(t, err)
		assert.Equal(t, next, updated.Status().String())
	}
}
