package order_test

import (
	"fmt"
	"testing"

	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// legalEdges mirrors the fulfillment pipeline: a strict linear progression
// with Cancelled reachable from every non-terminal status.
var legalEdges = map[order.Status][]order.Status{
	order.Pending:    {order.Paid, order.Cancelled},
	order.Paid:       {order.Processing, order.Cancelled},
	order.Processing: {order.Shipped, order.Cancelled},
	order.Shipped:    {order.Completed, order.Cancelled},
	order.Completed:  {},
	order.Cancelled:  {},
}

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Pending))
		assert.Equal(t, 2, int(order.Paid))
		assert.Equal(t, 3, int(order.Processing))
		assert.Equal(t, 4, int(order.Shipped))
		assert.Equal(t, 5, int(order.Completed))
		assert.Equal(t, 6, int(order.Cancelled))
	})
}

func TestStatus_CanTransitionTo(t *testing.T) {
	t.Run("should match the transition table over the full cross-product", func(t *testing.T) {
		for _, from := range order.ValidStatuses() {
			for _, to := range order.ValidStatuses() {
				expected := from == to
				for _, next := range legalEdges[from] {
					if next == to {
						expected = true
					}
				}

				assert.Equal(t, expected, from.CanTransitionTo(to),
					"transition %s -> %s", from, to)
			}
		}
	})

	t.Run("should allow same-state transitions for every status", func(t *testing.T) {
		for _, s := range order.ValidStatuses() {
			assert.True(t, s.CanTransitionTo(s), "status %s", s)
		}
	})

	t.Run("should close terminal states", func(t *testing.T) {
		for _, from := range []order.Status{order.Completed, order.Cancelled} {
			for _, to := range order.ValidStatuses() {
				if to == from {
					continue
				}
				assert.False(t, from.CanTransitionTo(to), "transition %s -> %s", from, to)
			}
		}
	})

	t.Run("should reject transitions from Unknown", func(t *testing.T) {
		assert.False(t, order.Unknown.CanTransitionTo(order.Pending))
		assert.False(t, order.Unknown.CanTransitionTo(order.Cancelled))
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("should return the target status on a legal edge", func(t *testing.T) {
		next, err := order.Pending.TransitionTo(order.Paid)

		require.NoError(t, err)
		assert.Equal(t, order.Paid, next)
	})

	t.Run("should reject an illegal skip with both endpoints", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Shipped)

		require.Error(t, err)
		var invalid *order.InvalidTransitionError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, order.Pending, invalid.From)
		assert.Equal(t, order.Shipped, invalid.To)
		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Contains(t, err.Error(), "from PENDING to SHIPPED")
	})

	t.Run("should reject regression", func(t *testing.T) {
		_, err := order.Shipped.TransitionTo(order.Paid)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return wire form for valid statuses", func(t *testing.T) {
		testCases := []struct {
			status   order.Status
			expected string
		}{
			{order.Pending, "PENDING"},
			{order.Paid, "PAID"},
			{order.Processing, "PROCESSING"},
			{order.Shipped, "SHIPPED"},
			{order.Completed, "COMPLETED"},
			{order.Cancelled, "CANCELLED"},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.expected, tc.status.String())
		}
	})

	t.Run("should return UNKNOWN for invalid values", func(t *testing.T) {
		assert.Equal(t, "UNKNOWN", order.Unknown.String())
		assert.Equal(t, "UNKNOWN", order.Status(-1).String())
		assert.Equal(t, "UNKNOWN", order.Status(42).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should round-trip every valid status", func(t *testing.T) {
		for _, s := range order.ValidStatuses() {
			parsed, err := order.StatusFromString(s.String())

			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("should reject unknown strings", func(t *testing.T) {
		for _, raw := range []string{"", "pending", "DONE", "UNKNOWN"} {
			_, err := order.StatusFromString(raw)

			require.Error(t, err, "input %q", raw)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate the six statuses", func(t *testing.T) {
		for _, s := range order.ValidStatuses() {
			require.NoError(t, s.Validate(), "status %s", s)
		}
	})

	t.Run("should reject Unknown and out-of-range values", func(t *testing.T) {
		for _, s := range []order.Status{order.Unknown, order.Status(-1), order.Status(7)} {
			err := s.Validate()

			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(s)))
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Completed.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Paid.IsTerminal())
	assert.False(t, order.Processing.IsTerminal())
	assert.False(t, order.Shipped.IsTerminal())
}
