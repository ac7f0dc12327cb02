package order_test

import (
	"testing"

	"github.com/wael7705/movo-project/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Run("canonical_statuses_pass_through", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Pending,
			order.ChooseCaptain,
			order.Processing,
			order.OutForDelivery,
			order.Delivered,
			order.Cancelled,
			order.Problem,
		} {
			assert.Equal(t, status, order.Normalize(string(status)))
		}
	})

	t.Run("maps_legacy_aliases", func(t *testing.T) {
		testCases := []struct {
			raw  string
			want order.Status
		}{
			{"issue", order.Problem},
			{"accepted", order.ChooseCaptain},
			{"waiting_restaurant_acceptance", order.ChooseCaptain},
			{"preparing", order.Processing},
			{"pick_up_ready", order.Processing},
		}

		for _, tc := range testCases {
			t.Run(tc.raw, func(t *testing.T) {
				assert.Equal(t, tc.want, order.Normalize(tc.raw))
			})
		}
	})

	t.Run("lowercases_and_trims_input", func(t *testing.T) {
		assert.Equal(t, order.Delivered, order.Normalize("  DELIVERED "))
		assert.Equal(t, order.Problem, order.Normalize("Issue"))
	})

	t.Run("empty_input_defaults_to_pending", func(t *testing.T) {
		assert.Equal(t, order.Pending, order.Normalize(""))
		assert.Equal(t, order.Pending, order.Normalize("   "))
	})

	t.Run("unknown_input_defaults_to_pending", func(t *testing.T) {
		for _, raw := range []string{"garbage", "shipped", "on-hold", "42"} {
			assert.Equal(t, order.Pending, order.Normalize(raw))
		}
	})

	t.Run("is_idempotent", func(t *testing.T) {
		inputs := []string{
			"", "pending", "accepted", "ISSUE", "pick_up_ready",
			"garbage", "delivered", " choose_captain ",
		}

		for _, raw := range inputs {
			once := order.Normalize(raw)
			twice := order.Normalize(string(once))
			assert.Equal(t, once, twice, "input %q", raw)
		}
	})

	t.Run("always_returns_canonical_status", func(t *testing.T) {
		inputs := []string{"", "whatever", "issue", "preparing", "delivered", "x"}

		for _, raw := range inputs {
			assert.True(t, order.Normalize(raw).IsCanonical(), "input %q", raw)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	terminal := []order.Status{order.Delivered, order.Cancelled, order.Problem}
	for _, status := range terminal {
		assert.True(t, status.IsTerminal(), "status %q", status)
	}

	active := []order.Status{order.Pending, order.ChooseCaptain, order.Processing, order.OutForDelivery}
	for _, status := range active {
		assert.False(t, status.IsTerminal(), "status %q", status)
	}
}

func TestStatus_IsCanonical(t *testing.T) {
	assert.True(t, order.Pending.IsCanonical())
	assert.False(t, order.Status("accepted").IsCanonical())
	assert.False(t, order.Status("").IsCanonical())
}
