package services_test

import (
	"testing"

	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, name string, quantity int, price float64) order.Item {
	t.Helper()
	item, err := order.NewItem(name, quantity, price, "")
	require.NoError(t, err)
	return item
}

func TestOrderTotal(t *testing.T) {
	t.Run("should sum price times quantity", func(t *testing.T) {
		items := []order.Item{
			mustItem(t, "Birthday Cake", 2, 100),
			mustItem(t, "Cookie Box", 3, 50),
		}

		assert.InDelta(t, 350.0, services.OrderTotal(items), 0.0001)
	})

	t.Run("should return zero for no items", func(t *testing.T) {
		assert.Zero(t, services.OrderTotal(nil))
	})

	t.Run("should skip unpriced hand-entered items", func(t *testing.T) {
		items := []order.Item{
			mustItem(t, "Custom Cake", 1, 0),
			mustItem(t, "Croissant", 2, 2.5),
		}

		assert.InDelta(t, 5.0, services.OrderTotal(items), 0.0001)
	})
}
