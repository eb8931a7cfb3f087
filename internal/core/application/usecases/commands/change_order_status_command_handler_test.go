package commands_test

import (
	"testing"

	"bakery/internal/core/application/orderstore"
	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placeOrder(t *testing.T, store *orderstore.Store) kernel.UUID {
	t.Helper()
	id := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(id, "Alice Chen", "0912345678", "",
		pickupShipping(t), cartItems(), "")
	require.NoError(t, err)

	h := commands.NewPlaceOrderCommandHandler(store, nil, nil)
	require.NoError(t, h.Handle(t.Context(), cmd))
	return id
}

func TestChangeOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	store := orderstore.NewStore(nil, nil, nil)
	id := placeOrder(t, store)

	cmd, err := commands.NewChangeOrderStatusCommand(id, order.Paid)
	require.NoError(t, err)

	h := commands.NewChangeOrderStatusCommandHandler(store)
	require.NoError(t, h.Handle(ctx, cmd))

	got, _ := store.Get(id)
	assert.Equal(t, order.Paid, got.Status())
}

func TestChangeOrderStatusCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()
	store := orderstore.NewStore(nil, nil, nil)
	id := placeOrder(t, store)

	cmd, err := commands.NewChangeOrderStatusCommand(id, order.Completed)
	require.NoError(t, err)

	h := commands.NewChangeOrderStatusCommandHandler(store)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrInvalidTransition)

	got, _ := store.Get(id)
	assert.Equal(t, order.Pending, got.Status())
}

func TestChangeOrderStatusCommandHandler_Handle_UnknownOrderIsNoOp(t *testing.T) {
	ctx := t.Context()
	store := orderstore.NewStore(nil, nil, nil)

	cmd, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), order.Paid)
	require.NoError(t, err)

	h := commands.NewChangeOrderStatusCommandHandler(store)
	require.NoError(t, h.Handle(ctx, cmd))
}

func TestNewChangeOrderStatusCommand_RejectsUnknownStatus(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), order.Unknown)
	require.Error(t, err)
}
