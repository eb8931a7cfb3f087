package order_test

import (
	"testing"

	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("should create a valid item", func(t *testing.T) {
		item, err := order.NewItem("Matcha Roll", 3, 4.5, "less sugar")

		require.NoError(t, err)
		assert.Equal(t, "Matcha Roll", item.Name())
		assert.Equal(t, 3, item.Quantity())
		assert.InDelta(t, 4.5, item.Price(), 0.0001)
		assert.Equal(t, "less sugar", item.Notes())
	})

	t.Run("should require a name", func(t *testing.T) {
		_, err := order.NewItem("", 1, 0, "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject non-positive quantities", func(t *testing.T) {
		for _, q := range []int{0, -1, -10} {
			_, err := order.NewItem("Croissant", q, 2, "")

			require.ErrorIs(t, err, errs.ErrValueIsInvalid, "quantity %d", q)
		}
	})

	t.Run("should reject a negative price", func(t *testing.T) {
		_, err := order.NewItem("Croissant", 1, -0.5, "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should allow a zero price for hand-entered items", func(t *testing.T) {
		item, err := order.NewItem("Custom Cake", 1, 0, "quote later")

		require.NoError(t, err)
		assert.Zero(t, item.Price())
	})
}

func TestItem_Subtotal(t *testing.T) {
	item, err := order.NewItem("Croissant", 4, 2.5, "")
	require.NoError(t, err)

	assert.InDelta(t, 10.0, item.Subtotal(), 0.0001)
}

func TestNewShipping(t *testing.T) {
	t.Run("should accept pickup without locker details", func(t *testing.T) {
		shipping, err := order.NewShipping(order.Pickup, "", "")

		require.NoError(t, err)
		assert.Equal(t, order.Pickup, shipping.Method())
	})

	t.Run("should require locker id and address for locker pickup", func(t *testing.T) {
		_, err := order.NewShipping(order.LockerPickup, "", "5F No.100 Sec.1")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = order.NewShipping(order.LockerPickup, "TPE-0042", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		shipping, err := order.NewShipping(order.LockerPickup, "TPE-0042", "5F No.100 Sec.1")
		require.NoError(t, err)
		assert.Equal(t, "TPE-0042", shipping.LockerID())
		assert.Equal(t, "5F No.100 Sec.1", shipping.LockerAddress())
	})

	t.Run("should reject an unknown method", func(t *testing.T) {
		_, err := order.NewShipping(order.MethodUnknown, "", "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestShippingMethodFromString(t *testing.T) {
	t.Run("should round-trip valid methods", func(t *testing.T) {
		for _, m := range []order.ShippingMethod{order.Pickup, order.Delivery, order.LockerPickup} {
			parsed, err := order.ShippingMethodFromString(m.String())

			require.NoError(t, err)
			assert.Equal(t, m, parsed)
		}
	})

	t.Run("should reject unknown strings", func(t *testing.T) {
		_, err := order.ShippingMethodFromString("CARRIER_PIGEON")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
