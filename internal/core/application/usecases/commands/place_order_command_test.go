package commands_test

import (
	"testing"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pickupShipping(t *testing.T) order.Shipping {
	t.Helper()
	shipping, err := order.NewShipping(order.Pickup, "", "")
	require.NoError(t, err)
	return shipping
}

func cartItems() []commands.ItemInput {
	return []commands.ItemInput{
		{Name: "Sourdough Loaf", Quantity: 2, Price: 100},
		{Name: "Croissant", Quantity: 3, Price: 50, Notes: "extra crispy"},
	}
}

func TestNewPlaceOrderCommand_Success(t *testing.T) {
	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), "Alice Chen", "0912345678",
		"alice@example.com", pickupShipping(t), cartItems(), "gift wrap")
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "Alice Chen", cmd.CustomerName())
	assert.Len(t, cmd.Items(), 2)
}

func TestNewPlaceOrderCommand_EmailIsOptional(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), "Alice Chen", "0912345678",
		"", pickupShipping(t), cartItems(), "")
	require.NoError(t, err)
}

func TestNewPlaceOrderCommand_ValidationErrors(t *testing.T) {
	shipping := pickupShipping(t)

	tests := []struct {
		name    string
		builder func() (commands.PlaceOrderCommand, error)
		wantErr error
	}{
		{
			name: "empty customer name",
			builder: func() (commands.PlaceOrderCommand, error) {
				return commands.NewPlaceOrderCommand(kernel.NewUUID(), "", "0912345678", "",
					shipping, cartItems(), "")
			},
			wantErr: commands.ErrCustomerNameIsRequired,
		},
		{
			name: "single character name",
			builder: func() (commands.PlaceOrderCommand, error) {
				return commands.NewPlaceOrderCommand(kernel.NewUUID(), "A", "0912345678", "",
					shipping, cartItems(), "")
			},
			wantErr: commands.ErrCustomerNameIsTooShort,
		},
		{
			name: "malformed phone",
			builder: func() (commands.PlaceOrderCommand, error) {
				return commands.NewPlaceOrderCommand(kernel.NewUUID(), "Alice", "12345", "",
					shipping, cartItems(), "")
			},
			wantErr: commands.ErrCustomerPhoneIsInvalid,
		},
		{
			name: "malformed email",
			builder: func() (commands.PlaceOrderCommand, error) {
				return commands.NewPlaceOrderCommand(kernel.NewUUID(), "Alice", "0912345678", "not-an-email",
					shipping, cartItems(), "")
			},
			wantErr: commands.ErrCustomerEmailIsInvalid,
		},
		{
			name: "empty cart",
			builder: func() (commands.PlaceOrderCommand, error) {
				return commands.NewPlaceOrderCommand(kernel.NewUUID(), "Alice", "0912345678", "",
					shipping, nil, "")
			},
			wantErr: commands.ErrOrderItemsAreRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPlaceOrderCommand_Validate_ZeroValue(t *testing.T) {
	cmd := commands.PlaceOrderCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrPlaceOrderCommandIsNotConstructed)
}
